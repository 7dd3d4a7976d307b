package annotate

import (
	"regexp"
	"sort"

	"github.com/c360studio/clausegraph/vocabulary/contract"
)

// ReferenceExtractor detects in-document clause cross-references and named
// external-document references.
type ReferenceExtractor struct {
	clauseRef   *regexp.Regexp
	externalRef *regexp.Regexp
}

// NewReferenceExtractor compiles the reference patterns.
func NewReferenceExtractor() *ReferenceExtractor {
	return &ReferenceExtractor{
		clauseRef:   regexp.MustCompile(contract.ClauseRefPattern),
		externalRef: regexp.MustCompile(contract.ExternalRefPattern),
	}
}

// CrossReferences returns the sorted distinct clause numbers referenced via
// "(Sub-)Clause <number>" or "clause <number>". The number is taken from
// whichever alternation branch matched.
func (e *ReferenceExtractor) CrossReferences(text string) []string {
	seen := make(map[string]bool)
	for _, m := range e.clauseRef.FindAllStringSubmatch(text, -1) {
		num := m[2]
		if num == "" {
			num = m[3]
		}
		if num != "" {
			seen[num] = true
		}
	}
	return sortedKeys(seen)
}

// ExternalDocs returns the sorted distinct matches against the fixed
// external-document vocabulary, deduplicated by exact matched text.
func (e *ReferenceExtractor) ExternalDocs(text string) []string {
	seen := make(map[string]bool)
	for _, m := range e.externalRef.FindAllString(text, -1) {
		seen[m] = true
	}
	return sortedKeys(seen)
}

func sortedKeys(set map[string]bool) []string {
	if len(set) == 0 {
		return nil
	}
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
