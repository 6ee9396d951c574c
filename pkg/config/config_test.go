package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())
	for _, key := range []string{"PORT", "BUCKET_NAME", "BUCKET_PREFIX", "CACHE_TTL", "INCLUDE_SAMPLES", "APP_ENV"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, ":8080", cfg.ServerAddress())
	assert.Equal(t, "./public/gallery", cfg.GalleryDir)
	assert.Equal(t, "/gallery/", cfg.URLPrefix)
	assert.Equal(t, 5*time.Minute, cfg.CacheTTL)
	assert.True(t, cfg.IncludeSamples)
	assert.False(t, cfg.UseBucket())
	assert.Equal(t, "binx.productions", cfg.Domain)
}

func TestLoad_Overrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PORT", "9090")
	t.Setenv("BUCKET_NAME", "binx-photos")
	t.Setenv("BUCKET_PREFIX", "gallery/")
	t.Setenv("INCLUDE_SAMPLES", "false")
	t.Setenv("CACHE_TTL", "30s")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.True(t, cfg.UseBucket())
	assert.Equal(t, "gallery/", cfg.BucketPrefix)
	assert.False(t, cfg.IncludeSamples)
	assert.Equal(t, 30*time.Second, cfg.CacheTTL)
}

func TestLoad_DotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("DOMAIN", "")
	os.Unsetenv("DOMAIN")
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("DOMAIN=example.org\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("DOMAIN") })

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "example.org", cfg.Domain)
}

func TestValidate(t *testing.T) {
	base := Config{Port: "8080", CacheTTL: time.Minute}

	bad := base
	bad.Port = "http"
	assert.ErrorIs(t, bad.Validate(), ErrInvalidPort)

	bad = base
	bad.Port = "70000"
	assert.ErrorIs(t, bad.Validate(), ErrInvalidPort)

	bad = base
	bad.BucketPrefix = "gallery/"
	assert.ErrorIs(t, bad.Validate(), ErrBucketNameNotSet)

	bad = base
	bad.CacheTTL = 0
	assert.ErrorIs(t, bad.Validate(), ErrInvalidCacheTTL)

	assert.NoError(t, base.Validate())
}
