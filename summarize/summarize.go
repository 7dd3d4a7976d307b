// Package summarize produces a bounded-length synopsis of a clause span.
package summarize

import (
	"strings"

	"github.com/c360studio/clausegraph/annotate"
)

// DefaultMaxLength is the default summary bound in characters.
const DefaultMaxLength = 300

// ellipsis marks a hard truncation.
const ellipsis = "..."

// Summarizer builds clause synopses.
type Summarizer struct {
	maxLength int
}

// New creates a summarizer with the given bound. A non-positive bound uses
// the default.
func New(maxLength int) *Summarizer {
	if maxLength <= 0 {
		maxLength = DefaultMaxLength
	}
	return &Summarizer{maxLength: maxLength}
}

// Summarize takes the first blank-line paragraph of the span; if it fits the
// bound it is returned verbatim. Otherwise whole sentences are accumulated
// until the next would exceed the bound. If no sentence fits, the first
// paragraph is hard-truncated with an ellipsis marker.
func (s *Summarizer) Summarize(text string) string {
	trimmed := strings.TrimSpace(text)
	paragraphs := strings.Split(trimmed, "\n\n")

	first := strings.TrimSpace(paragraphs[0])
	if len(first) <= s.maxLength {
		return first
	}

	var summary strings.Builder
	for _, sentence := range annotate.SplitSentences(first) {
		if summary.Len()+len(sentence) > s.maxLength {
			break
		}
		summary.WriteString(sentence)
		summary.WriteString(". ")
	}

	if result := strings.TrimSpace(summary.String()); result != "" {
		return result
	}
	return truncate(first, s.maxLength) + ellipsis
}

// truncate cuts a string to at most max characters on a rune boundary.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
