package parse

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/clausegraph/document"
)

func testLocator() *Locator {
	return NewLocator(document.GeneralConditions())
}

func heading(n string) document.Heading {
	for _, h := range document.GeneralConditions() {
		if h.Number == n {
			return h
		}
	}
	panic("unknown clause " + n)
}

// padding keeps clause bodies longer than the 100-character heading skip.
func padding() string {
	return strings.Repeat("The provisions of this clause apply to the whole of the Works. ", 4)
}

func TestLocator_SpanEndsAtNextHeading(t *testing.T) {
	l := testLocator()

	content := "Preamble.\n\nClause 1 General Provisions\n" + padding() +
		"\n\nClause 2 The Employer\n" + padding()

	span, found := l.Locate(content, heading("1"))
	require.True(t, found)
	assert.Equal(t, strings.Index(content, "Clause 1"), span.Start)
	assert.Equal(t, strings.Index(content, "Clause 2"), span.End)
}

func TestLocator_MissingClauseReported(t *testing.T) {
	l := testLocator()

	content := "Clause 1 General Provisions\n" + padding()
	_, found := l.Locate(content, heading("2"))
	assert.False(t, found)
}

func TestLocator_FallbackWindowWhenNextHeadingAbsent(t *testing.T) {
	l := testLocator()

	// Clause 7 present, clause 8 absent: the span runs to end-of-document
	// (shorter than the 50000-character window).
	content := "Clause 7 Plant, Materials and Workmanship\n" + padding()
	span, found := l.Locate(content, heading("7"))
	require.True(t, found)
	assert.Equal(t, 0, span.Start)
	assert.Equal(t, len(content), span.End)

	_, found = l.Locate(content, heading("8"))
	assert.False(t, found)
}

func TestLocator_FallbackWindowBounded(t *testing.T) {
	l := testLocator()

	content := "Clause 20 Claims, Disputes and Arbitration\n" +
		strings.Repeat("x", fallbackWindow+1000)
	span, found := l.Locate(content, heading("20"))
	require.True(t, found)
	assert.Equal(t, fallbackWindow, span.End-span.Start)
}

func TestLocator_CaseInsensitiveHeading(t *testing.T) {
	l := testLocator()

	content := "CLAUSE 18 INSURANCE\n" + padding()
	span, found := l.Locate(content, heading("18"))
	require.True(t, found)
	assert.Equal(t, 0, span.Start)
}

func TestLocator_PunctuationInTitleEscaped(t *testing.T) {
	l := testLocator()

	// "Plant, Materials and Workmanship" carries a comma; the title must be
	// matched literally, not as pattern syntax.
	content := "Clause 7 Plant, Materials and Workmanship\n" + padding()
	_, found := l.Locate(content, heading("7"))
	assert.True(t, found)
}

func TestLocator_HeadingSkipAvoidsSelfMatch(t *testing.T) {
	l := testLocator()

	// The search for the next heading starts 100 characters past the start,
	// so a nearby mention of the following clause number within the skip
	// window is ignored.
	content := "Clause 1 General Provisions\nsee Clause 2 \n" + padding() +
		"\n\nClause 2 The Employer\n" + padding()
	span, found := l.Locate(content, heading("1"))
	require.True(t, found)
	assert.Greater(t, span.End, 100)
}
