package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPatchsetCompositeIDRoundTrip(t *testing.T) {
	id := PatchsetCompositeID(10854242, 1001)
	assert.Equal(t, "10854242-1001", id)

	issue, patchset, err := SplitPatchsetCompositeID(id)
	require.NoError(t, err)
	assert.Equal(t, int64(10854242), issue)
	assert.Equal(t, int64(1001), patchset)
}

func TestPatchsetFileCompositeIDRoundTrip(t *testing.T) {
	tests := []struct {
		name     string
		filepath string
	}{
		{"plain path", "chrome/browser/ssl/ssl_browser_tests.cc"},
		{"path with separators", "third_party/lib-foo/x-y.cc"},
		{"single file", "OWNERS"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			psID := PatchsetCompositeID(111, 2)
			id := PatchsetFileCompositeID(psID, tt.filepath)

			gotPS, gotPath, err := SplitPatchsetFileCompositeID(id)
			require.NoError(t, err)
			assert.Equal(t, psID, gotPS)
			assert.Equal(t, tt.filepath, gotPath)
		})
	}
}

func TestSplitCompositeIDErrors(t *testing.T) {
	_, _, err := SplitPatchsetCompositeID("nodash")
	assert.Error(t, err)

	_, _, err = SplitPatchsetCompositeID("abc-1")
	assert.Error(t, err)

	_, _, err = SplitPatchsetFileCompositeID("111-2")
	assert.Error(t, err)
}
