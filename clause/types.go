// Package clause defines the structured clause tree produced by a parsing
// run: one node per clause, carrying extracted obligations, party references,
// cross-references, keywords, a classification, and a generated summary.
package clause

import "github.com/c360studio/clausegraph/vocabulary/contract"

// Obligation is one detected duty or entitlement: a (sentence, party) pair
// where a modal verb and at least one party appear together. A sentence
// naming two parties yields two records sharing action and condition.
type Obligation struct {
	// Party is the responsible or affected party.
	Party string `json:"party"`

	// Action is the modal verb, preserved verbatim (shall/must/may/will).
	Action contract.ActionType `json:"action"`

	// Description is the sentence text, truncated to 200 characters.
	Description string `json:"description"`

	// Condition is the captured conditional sub-expression, if any.
	Condition string `json:"condition,omitempty"`
}

// References separates in-document cross-references from named external
// contract documents.
type References struct {
	// CrossReferences are clause numbers referenced from this clause.
	CrossReferences []string `json:"crossReferences"`

	// ExternalDocs are named external documents, e.g. "Specification".
	ExternalDocs []string `json:"externalDocs"`
}

// Metadata carries the classification and reference annotations of a clause.
type Metadata struct {
	// Section is the fixed document section label.
	Section string `json:"section"`

	// Importance is the retrieval weighting level.
	Importance contract.ImportanceLevel `json:"importance"`

	// Category is the subject-matter classification.
	Category contract.CategoryType `json:"category"`

	// HasSubClauses reports whether child nodes are attached.
	HasSubClauses bool `json:"hasSubClauses"`

	// References holds cross-document and external references.
	References References `json:"references"`
}

// Node is one addressable clause of the General Conditions. Field order
// matches the serialized artifact layout.
type Node struct {
	// ClauseID is the stable dot-separated identifier, e.g. "14.2".
	ClauseID string `json:"clauseId"`

	// ClauseNumber is the display number.
	ClauseNumber string `json:"clauseNumber"`

	// Title is the clause heading text.
	Title string `json:"title"`

	// Level is the nesting depth: 1 + the number of dots in ClauseID.
	Level int `json:"level"`

	// Summary is the generated bounded-length synopsis.
	Summary string `json:"summary"`

	// FullText is the extracted clause text, capped to bound artifact size.
	FullText string `json:"fullText"`

	// Obligations are the detected obligations in document order.
	Obligations []Obligation `json:"obligations"`

	// RelatedClauses is the sorted set of referenced clause numbers.
	// It never contains the clause's own identifier.
	RelatedClauses []string `json:"relatedClauses"`

	// Keywords is the sorted keyword set, at most 15 entries.
	Keywords []string `json:"keywords"`

	// Parties is the sorted set of party names appearing in the clause.
	Parties []string `json:"parties"`

	// Metadata holds classification and reference annotations.
	Metadata Metadata `json:"metadata"`

	// SubClauses are child nodes; empty until sub-clause parsing populates
	// them.
	SubClauses []*Node `json:"subClauses"`

	// ParentClause is the identifier of the parent node, omitted at the top
	// level. A name reference, not a pointer, so the tree serializes without
	// cycle handling.
	ParentClause string `json:"parentClause,omitempty"`
}
