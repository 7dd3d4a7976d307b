package parse

import (
	"log/slog"
	"strings"

	"github.com/c360studio/clausegraph/annotate"
	"github.com/c360studio/clausegraph/classify"
	"github.com/c360studio/clausegraph/clause"
	"github.com/c360studio/clausegraph/document"
	"github.com/c360studio/clausegraph/summarize"
)

// sectionLabel is the fixed label for the parsed document section.
const sectionLabel = "General Conditions"

// DefaultFullTextLimit caps the stored clause text to bound artifact size.
const DefaultFullTextLimit = 5000

// Options tunes the engine. Zero values select the defaults.
type Options struct {
	// SummaryLength is the summary bound in characters.
	SummaryLength int

	// FullTextLimit caps the stored clause text in characters.
	FullTextLimit int

	// Logger receives per-clause progress. Nil uses slog.Default.
	Logger *slog.Logger
}

// Engine runs the full clause pipeline: boundary location, annotation,
// classification, summarization, and assembly. Annotators are constructed
// once from the fixed vocabularies and are pure thereafter.
type Engine struct {
	locator     *Locator
	parties     *annotate.PartyExtractor
	obligations *annotate.ObligationExtractor
	references  *annotate.ReferenceExtractor
	keywords    *annotate.KeywordExtractor
	categorizer *classify.Categorizer
	importance  *classify.ImportanceScorer
	summarizer  *summarize.Summarizer

	fullTextLimit int
	logger        *slog.Logger
}

// NewEngine creates an engine over the General Conditions clause lexicon.
func NewEngine(opts Options) *Engine {
	if opts.FullTextLimit <= 0 {
		opts.FullTextLimit = DefaultFullTextLimit
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	parties := annotate.NewPartyExtractor()
	return &Engine{
		locator:       NewLocator(document.GeneralConditions()),
		parties:       parties,
		obligations:   annotate.NewObligationExtractor(parties),
		references:    annotate.NewReferenceExtractor(),
		keywords:      annotate.NewKeywordExtractor(),
		categorizer:   classify.NewCategorizer(),
		importance:    classify.NewImportanceScorer(),
		summarizer:    summarize.New(opts.SummaryLength),
		fullTextLimit: opts.FullTextLimit,
		logger:        opts.Logger,
	}
}

// Parse walks the top-level clause lexicon in order, locates each clause in
// the document, and assembles one node per located clause. Each clause is
// processed to completion before the next begins; a missing clause heading
// is reported and skipped, never fatal.
func (e *Engine) Parse(doc *document.Document) *clause.Collection {
	e.logger.Info("Parsing General Conditions",
		"document", doc.Filename,
		"characters", len(doc.Content))

	collection := clause.NewCollection()
	for _, heading := range e.locator.Lexicon() {
		span, found := e.locator.Locate(doc.Content, heading)
		if !found {
			e.logger.Warn("Clause not found",
				"clause", heading.Number,
				"title", heading.Title)
			continue
		}

		content := strings.TrimSpace(doc.Content[span.Start:span.End])
		node := e.buildNode(heading.Number, heading.Title, content)
		collection.Add(node)

		e.logger.Info("Clause parsed",
			"clause", heading.Number,
			"title", heading.Title,
			"obligations", len(node.Obligations))
	}

	e.logger.Info("Parsing complete", "clauses", collection.Len())
	return collection
}

// buildNode assembles one clause node from its raw span. The parent is
// always absent at the top level; it is reserved for sub-clause population.
func (e *Engine) buildNode(number, title, content string) *clause.Node {
	parties := e.parties.Extract(content)
	obligations := e.obligations.Extract(content)
	related := e.relatedClauses(number, content)
	keywords := e.keywords.Extract(content, title)
	summary := e.summarizer.Summarize(content)
	category := e.categorizer.Classify(title, content)
	importance := e.importance.Score(number, len(obligations))
	externalDocs := e.references.ExternalDocs(content)

	return &clause.Node{
		ClauseID:       number,
		ClauseNumber:   number,
		Title:          title,
		Level:          strings.Count(number, ".") + 1,
		Summary:        summary,
		FullText:       truncateRunes(content, e.fullTextLimit),
		Obligations:    nonNil(obligations),
		RelatedClauses: nonNil(related),
		Keywords:       nonNil(keywords),
		Parties:        nonNil(parties),
		Metadata: clause.Metadata{
			Section:       sectionLabel,
			Importance:    importance,
			Category:      category,
			HasSubClauses: false,
			References: clause.References{
				CrossReferences: nonNil(related),
				ExternalDocs:    nonNil(externalDocs),
			},
		},
		SubClauses: []*clause.Node{},
	}
}

// relatedClauses extracts cross-references, dropping any self-reference.
func (e *Engine) relatedClauses(number, content string) []string {
	refs := e.references.CrossReferences(content)
	out := refs[:0]
	for _, r := range refs {
		if r != number {
			out = append(out, r)
		}
	}
	return out
}

// nonNil keeps list fields serializing as arrays, never null.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

// truncateRunes caps a string to max characters on a rune boundary.
func truncateRunes(s string, max int) string {
	if len(s) <= max {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
