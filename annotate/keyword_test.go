package annotate

import (
	"fmt"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeywordExtractor_TitleAndPhrases(t *testing.T) {
	e := NewKeywordExtractor()

	keywords := e.Extract("The Contractor shall commence the Works.", "The Contractor")

	// Title tokens minus stop words, plus capitalized phrases from the span,
	// all lower-cased and sorted.
	assert.Equal(t, []string{"contractor", "the contractor", "works"}, keywords)
}

func TestKeywordExtractor_DropsStopWords(t *testing.T) {
	e := NewKeywordExtractor()

	keywords := e.Extract("", "The Price of and for the Works")
	assert.NotContains(t, keywords, "the")
	assert.NotContains(t, keywords, "of")
	assert.NotContains(t, keywords, "and")
	assert.NotContains(t, keywords, "for")
	assert.Contains(t, keywords, "price")
	assert.Contains(t, keywords, "works")
}

func TestKeywordExtractor_ShortPhrasesDropped(t *testing.T) {
	e := NewKeywordExtractor()

	// Capitalized phrases of 3 characters or fewer are not keywords.
	keywords := e.Extract("Tax is payable on Plant", "")
	assert.NotContains(t, keywords, "tax")
	assert.Contains(t, keywords, "plant")
}

func TestKeywordExtractor_BoundedAndSorted(t *testing.T) {
	e := NewKeywordExtractor()

	words := make([]string, 0, 20)
	for i := 0; i < 20; i++ {
		words = append(words, fmt.Sprintf("word%02d", i))
	}
	keywords := e.Extract("", strings.Join(words, " "))

	assert.Len(t, keywords, 15)
	assert.True(t, sort.StringsAreSorted(keywords))
}
