package annotate

import (
	"regexp"
	"strings"

	"github.com/c360studio/clausegraph/clause"
	"github.com/c360studio/clausegraph/vocabulary/contract"
)

// maxDescriptionLength caps obligation descriptions.
const maxDescriptionLength = 200

// sentencePattern splits text into sentence-like units on sentence-ending
// punctuation followed by whitespace. A heuristic splitter: it under-splits
// abbreviations and over-splits decimal numbers.
var sentencePattern = regexp.MustCompile(`[.!?]\s+`)

// SplitSentences splits a span into sentence-like units.
func SplitSentences(text string) []string {
	return sentencePattern.Split(text, -1)
}

// ObligationExtractor detects obligations: sentences that pair a modal verb
// with at least one named party.
type ObligationExtractor struct {
	modals    []modalMatcher
	condition *regexp.Regexp
	parties   *PartyExtractor
}

type modalMatcher struct {
	action contract.ActionType
	re     *regexp.Regexp
}

// NewObligationExtractor compiles the modality and condition lexicons.
// The party extractor is shared with standalone party annotation.
func NewObligationExtractor(parties *PartyExtractor) *ObligationExtractor {
	lexicon := contract.ModalPatterns()
	modals := make([]modalMatcher, 0, len(lexicon))
	for _, m := range lexicon {
		modals = append(modals, modalMatcher{
			action: m.Action,
			re:     regexp.MustCompile(m.Pattern),
		})
	}
	return &ObligationExtractor{
		modals:    modals,
		condition: regexp.MustCompile(contract.ConditionPattern),
		parties:   parties,
	}
}

// Extract returns the obligations of a span in document order.
//
// Per sentence: the first matching modality in priority order wins (a
// sentence with both "shall" and "may" is classified under "shall");
// sentences without a detected party are discarded; a conditional marker
// captures the span up to the next sentence-terminating punctuation as the
// condition; one record is emitted per detected party, all sharing the same
// action, condition, and description.
func (e *ObligationExtractor) Extract(text string) []clause.Obligation {
	var obligations []clause.Obligation

	for _, sentence := range SplitSentences(text) {
		action, ok := e.matchModal(sentence)
		if !ok {
			continue
		}

		parties := e.parties.Extract(sentence)
		if len(parties) == 0 {
			continue
		}

		condition := ""
		if m := e.condition.FindString(sentence); m != "" {
			condition = trimSentence(m)
		}

		description := trimSentence(sentence)
		if len(description) > maxDescriptionLength {
			description = description[:maxDescriptionLength]
		}

		for _, party := range parties {
			obligations = append(obligations, clause.Obligation{
				Party:       party,
				Action:      action,
				Description: description,
				Condition:   condition,
			})
		}
	}

	return obligations
}

func (e *ObligationExtractor) matchModal(sentence string) (contract.ActionType, bool) {
	for _, m := range e.modals {
		if m.re.MatchString(sentence) {
			return m.action, true
		}
	}
	return "", false
}

// trimSentence strips surrounding whitespace and any trailing sentence
// terminator left over from the heuristic splitter.
func trimSentence(s string) string {
	s = strings.TrimSpace(s)
	return strings.TrimRight(s, ".!?;")
}
