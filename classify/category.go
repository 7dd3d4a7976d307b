// Package classify assigns each clause a subject-matter category and an
// importance level from fixed, human-authored rules.
package classify

import (
	"strings"

	"github.com/c360studio/clausegraph/vocabulary/contract"
)

// categoryWindow bounds how much of the clause body the classifier inspects.
const categoryWindow = 500

// Categorizer assigns exactly one category per clause.
type Categorizer struct {
	buckets []contract.CategoryBucket
}

// NewCategorizer builds a categorizer from the fixed bucket tables.
func NewCategorizer() *Categorizer {
	return &Categorizer{buckets: contract.CategoryBuckets()}
}

// Classify evaluates the buckets against the title and the first 500
// characters of the span, in strict priority order (financial, legal,
// technical, procedural), returning the first bucket with any match.
// Clauses matching no bucket are administrative.
func (c *Categorizer) Classify(title, text string) contract.CategoryType {
	titleLower := strings.ToLower(title)
	window := text
	if len(window) > categoryWindow {
		window = window[:categoryWindow]
	}
	window = strings.ToLower(window)

	for _, bucket := range c.buckets {
		for _, word := range bucket.Keywords {
			if strings.Contains(titleLower, word) || strings.Contains(window, word) {
				return bucket.Category
			}
		}
	}
	return contract.CategoryAdministrative
}
