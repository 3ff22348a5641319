package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reviewlab/revminer/internal/contract"
	"github.com/reviewlab/revminer/schema"
)

func TestPrintRunSummary(t *testing.T) {
	var buf bytes.Buffer
	err := PrintRunSummary(&buf, schema.RunSummary{
		Reviews:    3,
		Comments:   12,
		Developers: 5,
		DurationMs: 42,
	}, &contract.Config{})
	require.NoError(t, err)

	out := buf.String()
	for _, table := range schema.TableNames {
		assert.Contains(t, out, table)
	}
	assert.Contains(t, out, "12")
	assert.Contains(t, out, "Mining completed in 42ms")
	assert.NotContains(t, out, "missing patchset", "no skip line when nothing was skipped")
}

func TestPrintRunSummaryMissingPatchsets(t *testing.T) {
	var buf bytes.Buffer
	err := PrintRunSummary(&buf, schema.RunSummary{MissingPatchsets: 2}, &contract.Config{})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Skipped 2 missing patchset side-files")
}

func TestPrintCorpusStats(t *testing.T) {
	var buf bytes.Buffer
	err := PrintCorpusStats(&buf, schema.CorpusStats{
		Root:          "/data/corpus",
		Chunks:        4,
		ReviewDocs:    100,
		PatchsetDocs:  250,
		TotalSizeByte: 1024,
	}, &contract.Config{Width: 100})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "/data/corpus")
	assert.Contains(t, out, "250")
}

func TestTruncateLeft(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		maxWidth int
		expected string
	}{
		{"short path unchanged", "/tmp/corpus", 70, "/tmp/corpus"},
		{"long path keeps suffix", "/very/long/prefix/that/overflows/corpus", 20, ".../overflows/corpus"},
		{"tiny width unchanged", "/tmp/corpus", 3, "/tmp/corpus"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncateLeft(tt.path, tt.maxWidth)
			assert.Equal(t, tt.expected, got)
			if strings.HasPrefix(got, "...") {
				assert.LessOrEqual(t, len([]rune(got)), tt.maxWidth)
			}
		})
	}
}

func TestTerminalWidthOverride(t *testing.T) {
	assert.Equal(t, 120, terminalWidth(&contract.Config{Width: 120}))
}
