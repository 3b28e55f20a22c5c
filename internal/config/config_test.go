package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 800, cfg.PageWidth)
	assert.Equal(t, 600, cfg.PageHeight)
	assert.False(t, cfg.StrictVersions)
	assert.NotEmpty(t, cfg.RootDir)
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
root_dir: /tmp/books
log_level: debug
strict_versions: true
page_width: 1024
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/books", cfg.RootDir)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.StrictVersions)
	assert.Equal(t, 1024, cfg.PageWidth)

	// unset values keep their defaults
	assert.Equal(t, 600, cfg.PageHeight)
	assert.Equal(t, DefaultConfig().Listen, cfg.Listen)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = LoadConfig(writeConfig(t, "root_dir: [unclosed"))
	assert.Error(t, err)

	_, err = LoadConfig(writeConfig(t, "page_width: -1"))
	assert.Error(t, err)

	_, err = LoadConfig(writeConfig(t, "log_level: loud"))
	assert.Error(t, err)

	_, err = LoadConfig(writeConfig(t, `root_dir: ""`))
	assert.Error(t, err)
}

func TestLoadOptional(t *testing.T) {
	cfg, err := LoadOptional(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	cfg, err = LoadOptional(writeConfig(t, "listen: :9000"))
	require.NoError(t, err)
	assert.Equal(t, ":9000", cfg.Listen)
}
