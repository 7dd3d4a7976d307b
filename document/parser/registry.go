// Package parser provides document parsers for the formats the extract stage
// accepts: plain text and PDF.
package parser

import (
	"path/filepath"
	"strings"
	"sync"

	"github.com/c360studio/clausegraph/document"
)

// Parser defines the interface for document parsers.
type Parser interface {
	// Parse parses raw file content into a Document.
	Parse(filename string, content []byte) (*document.Document, error)

	// CanParse returns true if this parser handles the given MIME type.
	CanParse(mimeType string) bool

	// MimeType returns the primary MIME type for this parser.
	MimeType() string
}

// Registry manages document parsers keyed by primary MIME type.
type Registry struct {
	mu      sync.RWMutex
	parsers map[string]Parser
}

// DefaultRegistry is the global parser registry with default parsers.
var DefaultRegistry = NewRegistry()

// NewRegistry creates a registry with the text and PDF parsers registered.
func NewRegistry() *Registry {
	r := &Registry{parsers: make(map[string]Parser)}
	r.Register(NewTextParser())
	r.Register(NewPDFParser())
	return r
}

// Register adds a parser to the registry.
func (r *Registry) Register(p Parser) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.parsers[p.MimeType()] = p
}

// GetByMimeType returns a parser for the given MIME type, or nil.
func (r *Registry) GetByMimeType(mimeType string) Parser {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if p, ok := r.parsers[mimeType]; ok {
		return p
	}
	for _, p := range r.parsers {
		if p.CanParse(mimeType) {
			return p
		}
	}
	return nil
}

// GetByExtension returns a parser based on the file extension. Unknown
// extensions fall back to the plain-text parser.
func (r *Registry) GetByExtension(filename string) Parser {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return r.GetByMimeType("application/pdf")
	default:
		return r.GetByMimeType("text/plain")
	}
}
