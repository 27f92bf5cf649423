package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beardbaba/KuchTohHai/config"
	"github.com/beardbaba/KuchTohHai/pkg/classifier"
	"github.com/beardbaba/KuchTohHai/pkg/organizer"
)

func testConfig(sinks ...string) *config.Config {
	c := &config.Config{}
	c.Logging.Sinks = sinks
	c.Logging.File = "file_organizer.log"
	c.Classify.Preset = classifier.PresetDefault
	c.Classify.Fallback = classifier.FallbackCategory
	return c
}

func TestRunOrganize_KeepsLogFileInPlace(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.jpg", "b.csv"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(name), 0644))
	}
	logFile := filepath.Join(dir, "file_organizer.log")

	result, err := RunOrganize(context.Background(), &OrganizeOptions{
		Directory: dir,
		Verbose:   true,
		LogFile:   logFile,
		Config:    testConfig("file"),
	})
	require.NoError(t, err)

	assert.Equal(t, 2, result.TotalFiles)
	assert.Equal(t, 2, result.MovedFiles)

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "File organizer started")
	assert.Contains(t, string(data), "Processed 2/2 files")
	assert.Contains(t, string(data), "Moved: a.jpg -> Images")

	_, err = os.Stat(filepath.Join(dir, "Others", "file_organizer.log"))
	assert.True(t, os.IsNotExist(err))
}

func TestRunOrganize_PresetAndDryRun(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/data/cv.docx", []byte("x"), 0644))
	require.NoError(t, afero.WriteFile(fs, "/data/tmp.part", []byte("x"), 0644))

	cfg := testConfig("console")
	result, err := RunOrganize(context.Background(), &OrganizeOptions{
		Directory: "/data",
		Preset:    classifier.PresetLegacy,
		DryRun:    true,
		NoLogFile: true,
		Exclude:   []string{"*.part"},
		Config:    cfg,
		Fs:        fs,
	})
	require.NoError(t, err)

	require.Len(t, result.Items, 1)
	assert.Equal(t, "word", result.Items[0].Category)
	assert.Equal(t, organizer.Planned, result.Items[0].Outcome)
	assert.Equal(t, classifier.PresetDefault, cfg.Classify.Preset, "caller config must not change")

	exists, err := afero.DirExists(fs, "/data/word")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestRunOrganize_Errors(t *testing.T) {
	t.Run("invalid directory", func(t *testing.T) {
		_, err := RunOrganize(context.Background(), &OrganizeOptions{
			Directory: "/definitely/not/here",
			Config:    testConfig(),
			Fs:        afero.NewMemMapFs(),
		})
		assert.ErrorIs(t, err, organizer.ErrNotADirectory)
	})

	t.Run("unknown preset", func(t *testing.T) {
		_, err := RunOrganize(context.Background(), &OrganizeOptions{
			Directory: "/",
			Preset:    "nope",
			Config:    testConfig(),
			Fs:        afero.NewMemMapFs(),
		})
		assert.ErrorIs(t, err, classifier.ErrUnknownPreset)
	})

	t.Run("unknown sink", func(t *testing.T) {
		_, err := RunOrganize(context.Background(), &OrganizeOptions{
			Directory: "/",
			Config:    testConfig("syslog"),
		})
		assert.Error(t, err)
	})
}

func TestLogFileInside(t *testing.T) {
	dir := t.TempDir()

	pattern, ok := logFileInside(dir, filepath.Join(dir, "run[1].log"))
	assert.True(t, ok)
	matched, err := filepath.Match(pattern, "run[1].log")
	require.NoError(t, err)
	assert.True(t, matched)

	_, ok = logFileInside(dir, filepath.Join(dir, "sub", "x.log"))
	assert.False(t, ok)
}
