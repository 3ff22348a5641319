package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeywordClassifier(t *testing.T) {
	c := NewKeywordClassifier()

	tests := []struct {
		name string
		text string
		want bool
	}{
		{"empty", "", false},
		{"whitespace only", "   \n", false},
		{"lgtm", "LGTM", false},
		{"lgtm punctuated", "lgtm!", false},
		{"done", "Done.", false},
		{"plus one", "+1", false},
		{"commit notice", "Committed patchset #2 manually as r12345.", false},
		{"short remark", "nice catch", false},
		{"substantive", "This cast is unsafe when the buffer length exceeds INT_MAX, please bounds-check first.", true},
		{"substantive question", "Why does this handler skip the origin check for file:// URLs?", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Contribution(tt.text))
		})
	}
}
