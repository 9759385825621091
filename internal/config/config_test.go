package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, DefaultEmojiAPIURL, cfg.EmojiAPIURL)
	assert.Equal(t, DefaultChartURL, cfg.ChartURL)
	assert.NotEmpty(t, cfg.UserAgent)
	assert.Equal(t, "readme.md", cfg.OutputPath)
	assert.Equal(t, 2, cfg.Columns)
	assert.Equal(t, "Table of Contents", cfg.TOCTitle)
	assert.Equal(t, "go.mod", cfg.ManifestPath)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
output_path: docs/emoji.md
columns: 3
toc_title: Contents
log:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "docs/emoji.md", cfg.OutputPath)
	assert.Equal(t, 3, cfg.Columns)
	assert.Equal(t, "Contents", cfg.TOCTitle)
	assert.Equal(t, "debug", cfg.Log.Level)
	// Unset keys still fall back to defaults.
	assert.Equal(t, DefaultEmojiAPIURL, cfg.EmojiAPIURL)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("EMOJI_SHEET_OUTPUT_PATH", "/tmp/sheet.md")
	t.Setenv("EMOJI_SHEET_USER_AGENT", "env-agent")

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/sheet.md", cfg.OutputPath)
	assert.Equal(t, "env-agent", cfg.UserAgent)
}

func TestLoadConfigMissingExplicitFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
