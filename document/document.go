// Package document provides the loaded source document and the fixed
// top-level clause lexicon of the FIDIC Red Book 1999 General Conditions.
package document

import (
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"
)

// Document is a loaded contract document: the full text held in memory as a
// single addressable string, with byte offsets used for positional slicing.
type Document struct {
	// Path is the source file path.
	Path string `json:"path"`

	// Filename is the base name of the source file.
	Filename string `json:"filename"`

	// Content is the full document text.
	Content string `json:"content"`
}

// Load reads a UTF-8 plain-text document into memory. The engine assumes the
// text already reflects an upstream extraction stage; no binary parsing
// happens here.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("read document: %s is not valid UTF-8 text", path)
	}

	return &Document{
		Path:     path,
		Filename: filepath.Base(path),
		Content:  string(data),
	}, nil
}

// Heading is one entry of the top-level clause lexicon.
type Heading struct {
	// Number is the clause number as it appears in the document.
	Number string

	// Title is the clause heading text.
	Title string
}

// GeneralConditions returns the ordered lexicon of the twenty top-level
// clauses of the General Conditions. Boundary detection walks this list in
// order, which fixes the document order of the output.
func GeneralConditions() []Heading {
	return []Heading{
		{"1", "General Provisions"},
		{"2", "The Employer"},
		{"3", "The Engineer"},
		{"4", "The Contractor"},
		{"5", "Nominated Subcontractors"},
		{"6", "Staff and Labour"},
		{"7", "Plant, Materials and Workmanship"},
		{"8", "Commencement, Delays and Suspension"},
		{"9", "Tests on Completion"},
		{"10", "Employer's Taking Over"},
		{"11", "Defects Liability"},
		{"12", "Measurement and Evaluation"},
		{"13", "Variations and Adjustments"},
		{"14", "Contract Price and Payment"},
		{"15", "Termination by Employer"},
		{"16", "Suspension and Termination by Contractor"},
		{"17", "Risk and Responsibility"},
		{"18", "Insurance"},
		{"19", "Force Majeure"},
		{"20", "Claims, Disputes and Arbitration"},
	}
}
