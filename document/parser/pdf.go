package parser

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/c360studio/clausegraph/document"
	"github.com/ledongthuc/pdf"
)

// PDFParser extracts plain text from PDF documents. It exists so the engine
// can consume contract PDFs without an external extraction step; the clause
// pipeline itself never touches binary formats.
type PDFParser struct{}

// NewPDFParser creates a new PDF parser.
func NewPDFParser() *PDFParser {
	return &PDFParser{}
}

// Parse extracts the text of every page, separated by blank-line page breaks.
func (p *PDFParser) Parse(filename string, content []byte) (*document.Document, error) {
	// The pdf library wants an io.ReaderAt, not a file path.
	reader, err := pdf.NewReader(newBytesReaderAt(content), int64(len(content)))
	if err != nil {
		return nil, fmt.Errorf("open PDF: %w", err)
	}

	var textBuilder strings.Builder

	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			// Some pages fail to parse; keep going with the rest.
			continue
		}

		if text != "" {
			if textBuilder.Len() > 0 {
				textBuilder.WriteString("\n\n---\n\n")
			}
			textBuilder.WriteString(text)
		}
	}

	extractedText := textBuilder.String()
	if extractedText == "" {
		// Likely an image-based scan with no text layer.
		extractedText = fmt.Sprintf("[PDF document with %d pages - no text content extracted]", numPages)
	}

	return &document.Document{
		Path:     filename,
		Filename: filepath.Base(filename),
		Content:  extractedText,
	}, nil
}

// CanParse returns true if this parser can handle the given MIME type.
func (p *PDFParser) CanParse(mimeType string) bool {
	return mimeType == "application/pdf"
}

// MimeType returns the primary MIME type for this parser.
func (p *PDFParser) MimeType() string {
	return "application/pdf"
}

// bytesReaderAt implements io.ReaderAt for a byte slice.
type bytesReaderAt struct {
	data []byte
}

func newBytesReaderAt(data []byte) *bytesReaderAt {
	return &bytesReaderAt{data: data}
}

func (r *bytesReaderAt) ReadAt(p []byte, off int64) (n int, err error) {
	if off < 0 {
		return 0, fmt.Errorf("negative offset")
	}
	if off >= int64(len(r.data)) {
		return 0, io.EOF
	}
	n = copy(p, r.data[off:])
	if n < len(p) {
		err = io.EOF
	}
	return n, err
}
