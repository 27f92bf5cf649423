package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestOrganizeCommand(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.jpg", "b.txt", "c.xyz", "d.jpg"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(name), 0644))
	}

	out, err := execute(t, "organize", dir, "--no-log-file")
	require.NoError(t, err)

	assert.Contains(t, out, "Processed 4/4 files")
	assert.Contains(t, out, "Organization completed successfully")
	for _, path := range []string{"Images/a.jpg", "Images/d.jpg", "Documents/b.txt", "Others/c.xyz"} {
		_, err := os.Stat(filepath.Join(dir, path))
		assert.NoError(t, err, path)
	}
}

func TestOrganizeCommand_InvalidDirectory(t *testing.T) {
	out, err := execute(t, "organize", filepath.Join(t.TempDir(), "missing"), "--no-log-file")

	assert.Error(t, err)
	assert.Contains(t, out, "not a directory")
}

func TestOrganizeCommand_RequiresDirectory(t *testing.T) {
	_, err := execute(t, "organize")
	assert.Error(t, err)
}

func TestPathExists(t *testing.T) {
	assert.NoError(t, pathExists(t.TempDir()))
	assert.Error(t, pathExists(filepath.Join(t.TempDir(), "nope")))
}
