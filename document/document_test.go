package document

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fidic.txt")
	require.NoError(t, os.WriteFile(path, []byte("Clause 1 General Provisions"), 0o644))

	doc, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "fidic.txt", doc.Filename)
	assert.Equal(t, "Clause 1 General Provisions", doc.Content)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.txt"))
	assert.Error(t, err)
}

func TestLoad_RejectsInvalidUTF8(t *testing.T) {
	path := filepath.Join(t.TempDir(), "binary.txt")
	require.NoError(t, os.WriteFile(path, []byte{0xff, 0xfe, 0xfd}, 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestGeneralConditions_Lexicon(t *testing.T) {
	lexicon := GeneralConditions()
	require.Len(t, lexicon, 20)
	assert.Equal(t, "1", lexicon[0].Number)
	assert.Equal(t, "General Provisions", lexicon[0].Title)
	assert.Equal(t, "20", lexicon[19].Number)
	assert.Equal(t, "Claims, Disputes and Arbitration", lexicon[19].Title)
}
