package annotate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/clausegraph/vocabulary/contract"
)

func newObligationExtractor() *ObligationExtractor {
	return NewObligationExtractor(NewPartyExtractor())
}

func TestObligationExtractor_SimpleObligation(t *testing.T) {
	e := newObligationExtractor()

	obligations := e.Extract("The Contractor shall commence the Works.")
	require.Len(t, obligations, 1)

	ob := obligations[0]
	assert.Equal(t, "Contractor", ob.Party)
	assert.Equal(t, contract.ActionShall, ob.Action)
	assert.Equal(t, "The Contractor shall commence the Works", ob.Description)
	assert.Empty(t, ob.Condition)
}

func TestObligationExtractor_OneRecordPerParty(t *testing.T) {
	e := newObligationExtractor()

	obligations := e.Extract("The Employer and the Contractor shall agree the rates.")
	require.Len(t, obligations, 2)

	// One record per party, sharing action and description.
	assert.Equal(t, "Contractor", obligations[0].Party)
	assert.Equal(t, "Employer", obligations[1].Party)
	assert.Equal(t, obligations[0].Action, obligations[1].Action)
	assert.Equal(t, obligations[0].Description, obligations[1].Description)
	assert.Equal(t, obligations[0].Condition, obligations[1].Condition)
}

func TestObligationExtractor_ModalPriority(t *testing.T) {
	e := newObligationExtractor()

	// A sentence with both "shall" and "may" is classified under "shall".
	obligations := e.Extract("The Engineer shall determine the matter and may consult the Contractor.")
	require.NotEmpty(t, obligations)
	for _, ob := range obligations {
		assert.Equal(t, contract.ActionShall, ob.Action)
	}
}

func TestObligationExtractor_ConditionCapture(t *testing.T) {
	e := newObligationExtractor()

	obligations := e.Extract("The Engineer may, if the Contractor fails to comply, issue instructions.")
	require.Len(t, obligations, 2)

	// The condition runs to the end of the sentence, not to the end of the
	// conditional clause; this overshoot is the accepted boundary rule.
	for _, ob := range obligations {
		assert.Equal(t, contract.ActionMay, ob.Action)
		assert.Equal(t, "if the Contractor fails to comply, issue instructions", ob.Condition)
	}
}

func TestObligationExtractor_NoPartyNoObligation(t *testing.T) {
	e := newObligationExtractor()

	obligations := e.Extract("Payment shall be made within 56 days.")
	assert.Empty(t, obligations)
}

func TestObligationExtractor_NoModalNoObligation(t *testing.T) {
	e := newObligationExtractor()

	obligations := e.Extract("The Contractor submitted the programme to the Engineer.")
	assert.Empty(t, obligations)
}

func TestObligationExtractor_DescriptionTruncated(t *testing.T) {
	e := newObligationExtractor()

	long := "The Contractor shall maintain " + strings.Repeat("all records and documents ", 20)
	obligations := e.Extract(long)
	require.NotEmpty(t, obligations)
	assert.Len(t, obligations[0].Description, 200)
}

func TestObligationExtractor_DocumentOrder(t *testing.T) {
	e := newObligationExtractor()

	obligations := e.Extract("The Contractor shall proceed with the Works. The Engineer may object to the methods.")
	require.Len(t, obligations, 2)
	assert.Equal(t, "Contractor", obligations[0].Party)
	assert.Equal(t, contract.ActionShall, obligations[0].Action)
	assert.Equal(t, "Engineer", obligations[1].Party)
	assert.Equal(t, contract.ActionMay, obligations[1].Action)
}

func TestSplitSentences(t *testing.T) {
	sentences := SplitSentences("First sentence. Second sentence! Third?")
	assert.Equal(t, []string{"First sentence", "Second sentence", "Third?"}, sentences)
}
