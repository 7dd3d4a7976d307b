package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_GetByExtension(t *testing.T) {
	r := NewRegistry()

	assert.Equal(t, "application/pdf", r.GetByExtension("contract.pdf").MimeType())
	assert.Equal(t, "application/pdf", r.GetByExtension("CONTRACT.PDF").MimeType())
	assert.Equal(t, "text/plain", r.GetByExtension("contract.txt").MimeType())
	assert.Equal(t, "text/plain", r.GetByExtension("contract").MimeType())
}

func TestRegistry_GetByMimeType(t *testing.T) {
	r := NewRegistry()

	assert.NotNil(t, r.GetByMimeType("text/plain"))
	assert.NotNil(t, r.GetByMimeType("text/markdown"))
	assert.NotNil(t, r.GetByMimeType("application/pdf"))
	assert.Nil(t, r.GetByMimeType("image/png"))
}

func TestTextParser_Parse(t *testing.T) {
	p := NewTextParser()

	doc, err := p.Parse("/docs/fidic.txt", []byte("Clause 1 General Provisions"))
	require.NoError(t, err)
	assert.Equal(t, "fidic.txt", doc.Filename)
	assert.Equal(t, "Clause 1 General Provisions", doc.Content)
}

func TestTextParser_RejectsInvalidUTF8(t *testing.T) {
	p := NewTextParser()

	_, err := p.Parse("bad.txt", []byte{0xff, 0xfe, 0xfd})
	assert.Error(t, err)
}
