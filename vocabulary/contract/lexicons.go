// Package contract defines the fixed vocabularies of the FIDIC Red Book 1999
// General Conditions: party names, obligation modalities, clause categories,
// and the lexical pattern tables the annotators are built from.
//
// The tables are ordered associations, not maps: for modalities and category
// buckets the first match wins, so iteration order is part of the contract.
package contract

// PartyPattern associates a party with the regular expression that detects
// its lexical markers, including possessive forms.
type PartyPattern struct {
	Party   PartyType
	Pattern string
}

// PartyPatterns lists the detection patterns for every contract party.
// Matching is case-sensitive: party names are proper nouns in the text.
func PartyPatterns() []PartyPattern {
	return []PartyPattern{
		{PartyEmployer, `\b(Employer|Employer's)\b`},
		{PartyContractor, `\b(Contractor|Contractor's)\b`},
		{PartyEngineer, `\b(Engineer|Engineer's)\b`},
		{PartySubcontractor, `\b(Subcontractor|Subcontractor's)\b`},
		{PartyDAB, `\b(DAB|Dispute Adjudication Board)\b`},
	}
}

// ModalPattern associates an obligation modality with its detection pattern.
type ModalPattern struct {
	Action  ActionType
	Pattern string
}

// ModalPatterns lists modality patterns in priority order. A sentence
// containing several modal verbs is classified under the first that matches.
func ModalPatterns() []ModalPattern {
	return []ModalPattern{
		{ActionShall, `(?i)\b(shall)\b`},
		{ActionMust, `(?i)\b(must)\b`},
		{ActionMay, `(?i)\b(may)\b`},
		{ActionWill, `(?i)\b(will)\b`},
	}
}

// ConditionPattern captures a conditional sub-expression from a conditional
// marker up to the next sentence-terminating punctuation or end of sentence.
const ConditionPattern = `(?i)\b(if|unless|where|when|provided that)\b(.+?)([.;]|$)`

// ClauseRefPattern matches in-document cross-references by clause number.
// The number lands in whichever alternation branch matched.
const ClauseRefPattern = `(?i)(Sub-)?Clause\s+([\d.]+)|clause\s+([\d.]+)`

// ExternalRefPattern matches named external contract documents.
const ExternalRefPattern = `(?i)(Appendix to Tender|Specification|Drawings?|Contract|Bill of Quantities|Schedule)`

// CategoryBucket associates a category with its indicator keywords.
type CategoryBucket struct {
	Category CategoryType
	Keywords []string
}

// CategoryBuckets lists classification buckets in priority order. A clause
// mentioning both "payment" and "dispute" is financial because that bucket
// is evaluated first.
func CategoryBuckets() []CategoryBucket {
	return []CategoryBucket{
		{CategoryFinancial, []string{"payment", "price", "cost", "money", "financial", "currency", "advance"}},
		{CategoryLegal, []string{"law", "dispute", "arbitration", "termination", "liability", "indemnit"}},
		{CategoryTechnical, []string{"test", "completion", "works", "design", "construction", "materials", "plant"}},
		{CategoryProcedural, []string{"procedure", "notice", "claim", "time", "delay", "suspension"}},
	}
}

// KeyClauses is the fixed set of top-level clause numbers that are always
// high importance, regardless of obligation count.
func KeyClauses() map[string]bool {
	return map[string]bool{
		"4": true, "8": true, "10": true, "11": true,
		"14": true, "15": true, "16": true, "20": true,
	}
}

// StopWords are dropped when tokenizing clause titles for keywords.
func StopWords() map[string]bool {
	return map[string]bool{
		"the": true, "a": true, "an": true, "and": true, "or": true,
		"but": true, "in": true, "on": true, "at": true, "to": true,
		"for": true, "of": true, "by": true, "s": true,
	}
}
