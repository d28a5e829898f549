package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.True(t, cfg.Development())

	assert.Equal(t, 3000, cfg.HTTP.Port)
	assert.Equal(t, "0.0.0.0", cfg.HTTP.Host)

	assert.Equal(t, 5, cfg.Upload.MaxFiles)
	assert.Equal(t, int64(10<<20), cfg.Upload.MaxFileSize)
	assert.Zero(t, cfg.Upload.Timeout)

	assert.Equal(t, 1920, cfg.Transcode.MaxWidth)
	assert.Equal(t, 1080, cfg.Transcode.MaxHeight)
	assert.Equal(t, 85, cfg.Transcode.Quality)

	assert.False(t, cfg.Storage.Configured())
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("IMAGERELAY_ENVIRONMENT", "production")
	t.Setenv("IMAGERELAY_STORAGE_ENDPOINT", "img.example.com")
	t.Setenv("IMAGERELAY_STORAGE_ACCESSKEY", "key")
	t.Setenv("IMAGERELAY_STORAGE_SECRETKEY", "secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Environment)
	assert.False(t, cfg.Development())
	assert.True(t, cfg.Storage.Configured())
}

func TestStorageConfigConfigured(t *testing.T) {
	assert.False(t, StorageConfig{}.Configured())
	assert.False(t, StorageConfig{Endpoint: "img.example.com"}.Configured())
	assert.True(t, StorageConfig{
		Endpoint:  "img.example.com",
		AccessKey: "key",
		SecretKey: "secret",
	}.Configured())
}
