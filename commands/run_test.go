package commands

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunCommand_WritesArtifacts(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "fidic.txt")
	output := filepath.Join(dir, "out")

	content := "Clause 4 The Contractor\n\nThe Contractor shall commence the Works. " +
		strings.Repeat("General obligations apply to the Works. ", 4)
	require.NoError(t, os.WriteFile(input, []byte(content), 0o644))

	cmd := NewRunCommand(slog.New(slog.NewTextHandler(io.Discard, nil)))
	cmd.SetArgs([]string{input, output})
	require.NoError(t, cmd.Execute())

	assert.FileExists(t, filepath.Join(output, "clause-04-the-contractor.json"))
	assert.FileExists(t, filepath.Join(output, "fidic-red-book-index.json"))
}

func TestRunCommand_MissingInputFails(t *testing.T) {
	cmd := NewRunCommand(slog.New(slog.NewTextHandler(io.Discard, nil)))
	cmd.SetArgs([]string{filepath.Join(t.TempDir(), "absent.txt")})
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	assert.Error(t, cmd.Execute())
}

func TestRunCommand_RequiresInputArgument(t *testing.T) {
	cmd := NewRunCommand(slog.New(slog.NewTextHandler(io.Discard, nil)))
	cmd.SetArgs([]string{})
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	assert.Error(t, cmd.Execute())
}
