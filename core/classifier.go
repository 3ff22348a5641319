package core

import (
	"strings"

	"github.com/reviewlab/revminer/internal/contract"
)

// DefaultMinWords is the word threshold below which a message is only a
// contribution when it is not pure boilerplate.
const DefaultMinWords = 4

// boilerplate holds whole-message phrases that never count as contributions
// on their own: sign-offs, pings and automated commit notices.
var boilerplate = map[string]struct{}{
	"lgtm":         {},
	"done":         {},
	"ping":         {},
	"thanks":       {},
	"thank you":    {},
	"+1":           {},
	"acknowledged": {},
	"rubberstamp":  {},
	"sgtm":         {},
}

// KeywordClassifier is the default contract.Classifier. It is a conservative
// heuristic: a message counts as a contribution when it carries enough text
// beyond greetings and sign-offs. Callers with a better-trained predicate can
// inject their own Classifier; nothing in the pipeline depends on this rule.
type KeywordClassifier struct {
	// MinWords is the minimum word count for a message to qualify.
	MinWords int
}

var _ contract.Classifier = &KeywordClassifier{} // Compile-time check

// NewKeywordClassifier creates a classifier with the default threshold.
func NewKeywordClassifier() *KeywordClassifier {
	return &KeywordClassifier{MinWords: DefaultMinWords}
}

// Contribution reports whether the text is substantive review input.
func (c *KeywordClassifier) Contribution(text string) bool {
	trimmed := strings.TrimSpace(strings.ToLower(text))
	if trimmed == "" {
		return false
	}
	if _, ok := boilerplate[strings.TrimRight(trimmed, ".!")]; ok {
		return false
	}
	// Automated commit notices carry no reviewer input.
	if strings.HasPrefix(trimmed, "committed patchset") || strings.HasPrefix(trimmed, "change committed as") {
		return false
	}
	return len(strings.Fields(trimmed)) >= c.MinWords
}
