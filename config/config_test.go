package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "archivist.yaml")

	contents := `
ai:
  embedding_host: http://ai.internal:11434/v1
  summarizer_model: llama3.2:3b
storage:
  path: /var/lib/archivist
feed:
  archive_url: https://archive.example/meetings
  rate_limit: 0.5
pipeline:
  pool_size: 4
  max_attempts: 5
`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "http://ai.internal:11434/v1", cfg.AI.EmbeddingHost)
	// Summarizer host falls back to the embedding host.
	assert.Equal(t, "http://ai.internal:11434/v1", cfg.AI.SummarizerHost)
	assert.Equal(t, "llama3.2:3b", cfg.AI.SummarizerModel)
	assert.Equal(t, "/var/lib/archivist", cfg.Storage.Path)
	assert.Equal(t, "https://archive.example/meetings", cfg.Feed.ArchiveURL)
	assert.Equal(t, 0.5, cfg.Feed.RateLimit)
	assert.Equal(t, 4, cfg.Pipeline.PoolSize)
	assert.Equal(t, 5, cfg.Pipeline.MaxAttempts)

	// Unset values get defaults.
	assert.Equal(t, "embeddinggemma", cfg.AI.EmbeddingModel)
	assert.Equal(t, "a.meeting-item", cfg.Feed.ItemSelector)
	assert.Equal(t, "data-date", cfg.Feed.DateAttr)
	assert.Equal(t, 1.0, cfg.Pipeline.FetchRate)
}

func TestLoadConfig_Defaults(t *testing.T) {
	// Run from a directory without an archivist.yaml so nothing is picked up.
	dir := t.TempDir()
	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(cwd) })
	t.Setenv("HOME", dir)

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:11434/v1", cfg.AI.EmbeddingHost)
	assert.Equal(t, cfg.AI.EmbeddingHost, cfg.AI.SummarizerHost)
	assert.Equal(t, "qwen2.5:3b", cfg.AI.SummarizerModel)
	assert.Equal(t, filepath.Join(dir, ".local/share/archivist"), cfg.Storage.Path)
	assert.Equal(t, 2.0, cfg.Feed.RateLimit)
	assert.Equal(t, 3, cfg.Pipeline.MaxAttempts)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "archivist.yaml")
	contents := `
ai:
  embedding_host: http://from-file:11434/v1
storage:
  path: /from/file
`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	t.Setenv("ARCHIVIST_AI_HOST", "http://from-env:8080/v1")
	t.Setenv("ARCHIVIST_STORAGE_PATH", "/from/env")
	t.Setenv("ARCHIVIST_ARCHIVE_URL", "https://env.example/archive")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "http://from-env:8080/v1", cfg.AI.EmbeddingHost)
	assert.Equal(t, "http://from-env:8080/v1", cfg.AI.SummarizerHost)
	assert.Equal(t, "/from/env", cfg.Storage.Path)
	assert.Equal(t, "https://env.example/archive", cfg.Feed.ArchiveURL)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig("/nonexistent/archivist.yaml")
	assert.Error(t, err)
}

func TestLoadConfig_MalformedYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "archivist.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ai: [not a mapping"), 0o644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}
