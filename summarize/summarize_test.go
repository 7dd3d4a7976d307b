package summarize

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummarizer_ShortParagraphVerbatim(t *testing.T) {
	s := New(300)

	text := "The Contractor shall commence the Works.\n\nMore detail follows in later paragraphs."
	assert.Equal(t, "The Contractor shall commence the Works.", s.Summarize(text))
}

func TestSummarizer_AccumulatesWholeSentences(t *testing.T) {
	s := New(100)

	first := "This is the first sentence of the clause. "
	second := "This is the second sentence of the clause. "
	third := "This is the third sentence which will not fit within the bound at all. "
	summary := s.Summarize(first + second + third)

	assert.True(t, strings.HasPrefix(summary, "This is the first sentence of the clause."))
	assert.NotContains(t, summary, "third")
	assert.LessOrEqual(t, len(summary), 103)
}

func TestSummarizer_HardTruncatesUnbrokenText(t *testing.T) {
	s := New(50)

	text := strings.Repeat("x", 200)
	summary := s.Summarize(text)

	assert.Len(t, summary, 53)
	assert.True(t, strings.HasSuffix(summary, "..."))
}

func TestSummarizer_EmptyInput(t *testing.T) {
	s := New(300)

	assert.Equal(t, "", s.Summarize(""))
	assert.Equal(t, "", s.Summarize("   \n\n  "))
}

func TestSummarizer_BoundProperty(t *testing.T) {
	s := New(300)

	inputs := []string{
		strings.Repeat("One short sentence here. ", 40),
		strings.Repeat("y", 1000),
		"A single short clause.",
	}
	for _, input := range inputs {
		summary := s.Summarize(input)
		assert.LessOrEqual(t, len(summary), 303)
	}
}

func TestSummarizer_DefaultBound(t *testing.T) {
	s := New(0)
	summary := s.Summarize(strings.Repeat("z", 1000))
	assert.LessOrEqual(t, len(summary), DefaultMaxLength+len("..."))
}
