package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beardbaba/KuchTohHai/pkg/classifier"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	c, err := Load(writeConfig(t, "{}\n"))
	require.NoError(t, err)

	assert.Equal(t, []string{"console", "file"}, c.Logging.Sinks)
	assert.Equal(t, "file_organizer.log", c.Logging.File)
	assert.False(t, c.Logging.Verbose)
	assert.Equal(t, classifier.PresetDefault, c.Classify.Preset)
	assert.Equal(t, classifier.FallbackCategory, c.Classify.Fallback)
	assert.Empty(t, c.Organize.Exclude)
	assert.False(t, c.Organize.DryRun)
	assert.Same(t, Get(), Get())

	table, err := c.Table()
	require.NoError(t, err)
	assert.Equal(t, "Images", table.Classify("a.png"))
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
logging:
  sinks: [console]
  file: /tmp/organizer.log
  verbose: true
classify:
  fallback: Misc
  categories:
    - name: Books
      extensions: [epub, MOBI]
    - name: Images
      extensions: [png]
organize:
  exclude: ["*.part"]
  dry_run: true
`)

	c, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"console"}, c.Logging.Sinks)
	assert.Equal(t, "/tmp/organizer.log", c.Logging.File)
	assert.True(t, c.Logging.Verbose)
	assert.Equal(t, []string{"*.part"}, c.Organize.Exclude)
	assert.True(t, c.Organize.DryRun)

	table, err := c.Table()
	require.NoError(t, err)
	assert.Equal(t, "Books", table.Classify("novel.mobi"))
	assert.Equal(t, "Images", table.Classify("a.PNG"))
	assert.Equal(t, "Misc", table.Classify("a.jpg"))
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("FILE_ORGANIZER_LOGGING_VERBOSE", "true")
	t.Setenv("FILE_ORGANIZER_CLASSIFY_PRESET", "legacy")

	c, err := Load(writeConfig(t, "{}\n"))
	require.NoError(t, err)

	assert.True(t, c.Logging.Verbose)
	table, err := c.Table()
	require.NoError(t, err)
	assert.Equal(t, "word", table.Classify("cv.docx"))
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_BadYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "logging: [unclosed\n"))
	assert.Error(t, err)
}

func TestConfig_Table(t *testing.T) {
	t.Run("preset with custom fallback", func(t *testing.T) {
		c := &Config{}
		c.Classify.Preset = classifier.PresetLegacy
		c.Classify.Fallback = "misc"

		table, err := c.Table()
		require.NoError(t, err)
		assert.Equal(t, "misc", table.Classify("a.jpeg"))
		assert.Equal(t, "image", table.Classify("a.jpg"))
	})

	t.Run("unknown preset", func(t *testing.T) {
		c := &Config{}
		c.Classify.Preset = "shiny"

		_, err := c.Table()
		assert.True(t, errors.Is(err, classifier.ErrUnknownPreset))
	})

	t.Run("duplicate extension", func(t *testing.T) {
		c := &Config{}
		c.Classify.Fallback = "Others"
		c.Classify.Categories = []Category{
			{Name: "A", Extensions: []string{"x"}},
			{Name: "B", Extensions: []string{"X"}},
		}

		_, err := c.Table()
		assert.ErrorIs(t, err, classifier.ErrDuplicateExtension)
	})
}
