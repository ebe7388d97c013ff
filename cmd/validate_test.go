package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		validateContentDir = ""
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func TestValidateEmbedded(t *testing.T) {
	out, err := runCommand(t, "validate")
	require.NoError(t, err)
	assert.Contains(t, out, "en: 3 featured")
	assert.Contains(t, out, "pt: 3 featured")
	assert.Contains(t, out, "content ok")
}

func TestValidateRejectsBrokenDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "en"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "en", "personal.json"), []byte("{"), 0o600))

	out, err := runCommand(t, "validate", "--content-dir", dir)
	assert.Error(t, err)
	assert.NotContains(t, out, "content ok")
}
