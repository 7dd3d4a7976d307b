package parser

import (
	"fmt"
	"path/filepath"
	"unicode/utf8"

	"github.com/c360studio/clausegraph/document"
)

// TextParser parses UTF-8 plain-text documents.
type TextParser struct{}

// NewTextParser creates a new plain-text parser.
func NewTextParser() *TextParser {
	return &TextParser{}
}

// Parse validates the content as UTF-8 and wraps it in a Document.
func (p *TextParser) Parse(filename string, content []byte) (*document.Document, error) {
	if !utf8.Valid(content) {
		return nil, fmt.Errorf("parse text: %s is not valid UTF-8", filename)
	}

	return &document.Document{
		Path:     filename,
		Filename: filepath.Base(filename),
		Content:  string(content),
	}, nil
}

// CanParse returns true if this parser can handle the given MIME type.
func (p *TextParser) CanParse(mimeType string) bool {
	switch mimeType {
	case "text/plain", "text/markdown":
		return true
	default:
		return false
	}
}

// MimeType returns the primary MIME type for this parser.
func (p *TextParser) MimeType() string {
	return "text/plain"
}
