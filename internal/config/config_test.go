package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/n2code/docstash/internal/document"
)

func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir()) //no user file interferes
	t.Setenv("HOME", t.TempDir())
	for _, key := range []string{"EXTENSION", "LOCAL_DOCUMENTS", "CLOUD_CONTAINER", "CLOUD_IDENTITY_FILE", "CACHE_DIR", "LOG_LEVEL", "LOG_DEV"} {
		t.Setenv(EnvPrefix+"_"+key, "")
		os.Unsetenv(EnvPrefix + "_" + key)
	}
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, document.DefaultExtension, cfg.ManagedExtension())
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.CloudContainer)
	assert.Equal(t, "Documents", filepath.Base(cfg.LocalDocuments))
}

func TestFileThenEnvironment(t *testing.T) {
	isolate(t)
	path := writeFile(t, `
extension: .md
local_documents: /srv/docs
cloud_container: /mnt/cloud
cache_dir: /var/cache/docstash
log_level: debug
`)
	t.Setenv("DOCSTASH_CLOUD_CONTAINER", "/mnt/other")
	t.Setenv("DOCSTASH_LOG_DEV", "true")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, document.Extension("md"), cfg.ManagedExtension())
	assert.Equal(t, "/srv/docs", cfg.LocalDocuments, "unset variables keep file values")
	assert.Equal(t, "/mnt/other", cfg.CloudContainer)
	assert.Equal(t, "/var/cache/docstash", cfg.CacheDir)
	assert.True(t, cfg.LogDevelopment)

	logCfg := cfg.Logging()
	assert.Equal(t, "debug", logCfg.Level)
	assert.True(t, logCfg.Development)
}

func TestLoadErrors(t *testing.T) {
	isolate(t)

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err, "explicit file must exist")

	_, err = Load(writeFile(t, "extension: [unclosed"))
	assert.Error(t, err)

	_, err = Load(writeFile(t, "extension: a/b"))
	assert.ErrorIs(t, err, document.ErrBadExtension)

	t.Setenv("DOCSTASH_LOG_LEVEL", "loud")
	_, err = Load("")
	assert.Error(t, err)
}

func TestOptionalDefaultFile(t *testing.T) {
	isolate(t)
	path := DefaultPath()
	require.NotEmpty(t, path)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o700))
	require.NoError(t, os.WriteFile(path, []byte("extension: org\n"), 0o600))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, document.Extension("org"), cfg.ManagedExtension())
}
