// Package export serializes a parsed clause collection: one self-contained
// JSON artifact per clause plus a master index artifact.
package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/c360studio/clausegraph/clause"
)

// IndexFilename is the master index artifact name.
const IndexFilename = "fidic-red-book-index.json"

// Bibliographic metadata of the parsed document, fixed for this engine.
const (
	documentName  = "FIDIC Red Book 1999"
	documentTitle = "Conditions of Contract for Construction"
	documentEdn   = "First Edition 1999"
	documentISBN  = "2-88432-022-9"
)

// Index is the master index artifact: fixed bibliographic metadata plus a
// summary entry per clause, document order preserved.
type Index struct {
	Document     string       `json:"document"`
	FullTitle    string       `json:"fullTitle"`
	Edition      string       `json:"edition"`
	ISBN         string       `json:"isbn"`
	TotalClauses int          `json:"totalClauses"`
	Clauses      []IndexEntry `json:"clauses"`
}

// IndexEntry summarizes one clause in the master index.
type IndexEntry struct {
	ClauseID      string `json:"clauseId"`
	Title         string `json:"title"`
	Level         int    `json:"level"`
	HasSubClauses bool   `json:"hasSubClauses"`
}

// Writer emits clause artifacts into an output directory.
type Writer struct {
	outputDir string
	logger    *slog.Logger
}

// NewWriter creates a writer for the given output directory.
func NewWriter(outputDir string, logger *slog.Logger) *Writer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Writer{outputDir: outputDir, logger: logger}
}

// WriteAll writes one artifact per clause and the master index, creating the
// output directory if absent. Each file is opened, fully written, and closed
// before the next; re-running on unchanged input produces identical bytes.
func (w *Writer) WriteAll(collection *clause.Collection) error {
	if err := os.MkdirAll(w.outputDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	for _, node := range collection.Nodes() {
		name := ClauseFilename(node)
		if err := w.writeJSON(name, node); err != nil {
			return fmt.Errorf("write clause %s: %w", node.ClauseID, err)
		}
		w.logger.Info("Wrote clause artifact", "file", name)
	}

	if err := w.writeJSON(IndexFilename, BuildIndex(collection)); err != nil {
		return fmt.Errorf("write index: %w", err)
	}
	w.logger.Info("Wrote master index", "file", IndexFilename)

	return nil
}

// BuildIndex assembles the master index for a collection.
func BuildIndex(collection *clause.Collection) Index {
	index := Index{
		Document:     documentName,
		FullTitle:    documentTitle,
		Edition:      documentEdn,
		ISBN:         documentISBN,
		TotalClauses: collection.Len(),
		Clauses:      []IndexEntry{},
	}
	for _, node := range collection.Nodes() {
		index.Clauses = append(index.Clauses, IndexEntry{
			ClauseID:      node.ClauseID,
			Title:         node.Title,
			Level:         node.Level,
			HasSubClauses: node.Metadata.HasSubClauses,
		})
	}
	return index
}

// ClauseFilename derives the deterministic, collision-free artifact name for
// a clause: dots become dashes, the identifier is zero-padded, and the title
// is lower-cased with spaces replaced by dashes.
func ClauseFilename(node *clause.Node) string {
	id := strings.ReplaceAll(node.ClauseID, ".", "-")
	if len(id) < 2 {
		id = strings.Repeat("0", 2-len(id)) + id
	}
	slug := strings.ReplaceAll(strings.ToLower(node.Title), " ", "-")
	return fmt.Sprintf("clause-%s-%s.json", id, slug)
}

// writeJSON marshals v with two-space indentation and no HTML escaping.
func (w *Writer) writeJSON(name string, v any) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	return os.WriteFile(filepath.Join(w.outputDir, name), buf.Bytes(), 0o644)
}
