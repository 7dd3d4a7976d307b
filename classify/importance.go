package classify

import (
	"strings"

	"github.com/c360studio/clausegraph/vocabulary/contract"
)

// ImportanceScorer ranks clauses for retrieval weighting.
type ImportanceScorer struct {
	keyClauses map[string]bool
}

// NewImportanceScorer builds a scorer from the fixed key-clause set.
func NewImportanceScorer() *ImportanceScorer {
	return &ImportanceScorer{keyClauses: contract.KeyClauses()}
}

// Score returns high for key clauses regardless of obligation count, high
// for more than 3 obligations, medium for more than 1, and low otherwise.
func (s *ImportanceScorer) Score(clauseNumber string, obligationCount int) contract.ImportanceLevel {
	topLevel := strings.SplitN(clauseNumber, ".", 2)[0]
	if s.keyClauses[topLevel] {
		return contract.ImportanceHigh
	}
	if obligationCount > 3 {
		return contract.ImportanceHigh
	}
	if obligationCount > 1 {
		return contract.ImportanceMedium
	}
	return contract.ImportanceLow
}
