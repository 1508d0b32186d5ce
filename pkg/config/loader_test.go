package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formcascade/pkg/cascade"
	"github.com/dmitrymomot/formcascade/pkg/config"
)

type appConfig struct {
	Addr    string `env:"TEST_HTTP_ADDR" envDefault:":8080"`
	Cascade cascade.Config
}

type requiredConfig struct {
	Value string `env:"TEST_REQUIRED_VALUE,required"`
}

type fileConfig struct {
	Manifest string `env:"TEST_FORM_MANIFEST"`
}

func TestLoad_Defaults(t *testing.T) {
	config.ResetCache()
	os.Unsetenv("TEST_HTTP_ADDR")
	os.Unsetenv("CASCADE_POLICY")
	os.Unsetenv("CASCADE_CACHE_DEPENDENTS")

	var cfg appConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "fail_fast", cfg.Cascade.Policy)
	assert.False(t, cfg.Cascade.CacheDependents)
}

func TestLoad_FromEnvAndCache(t *testing.T) {
	config.ResetCache()
	t.Setenv("CASCADE_POLICY", "continue")
	t.Setenv("CASCADE_CACHE_DEPENDENTS", "true")

	var cfg appConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "continue", cfg.Cascade.Policy)
	assert.True(t, cfg.Cascade.CacheDependents)

	t.Setenv("CASCADE_POLICY", "fail_fast")
	var again appConfig
	require.NoError(t, config.Load(&again))
	assert.Equal(t, "continue", again.Cascade.Policy, "second load is served from cache")

	config.ResetCache()
	var fresh appConfig
	require.NoError(t, config.Load(&fresh))
	assert.Equal(t, "fail_fast", fresh.Cascade.Policy)
}

func TestLoad_Errors(t *testing.T) {
	config.ResetCache()
	os.Unsetenv("TEST_REQUIRED_VALUE")

	var cfg requiredConfig
	assert.ErrorIs(t, config.Load(&cfg), config.ErrParsingConfig)

	var nilCfg *requiredConfig
	assert.ErrorIs(t, config.Load(nilCfg), config.ErrNilPointer)

	assert.Panics(t, func() { config.MustLoad(&cfg) })
}

func TestLoadEnv(t *testing.T) {
	config.ResetCache()
	os.Unsetenv("TEST_FORM_MANIFEST")
	t.Cleanup(func() { os.Unsetenv("TEST_FORM_MANIFEST") })

	path := filepath.Join(t.TempDir(), ".env.test")
	require.NoError(t, os.WriteFile(path, []byte("TEST_FORM_MANIFEST=forms/booking.yaml\n"), 0o600))

	require.NoError(t, config.LoadEnv(path))

	var cfg fileConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "forms/booking.yaml", cfg.Manifest)

	assert.ErrorIs(t, config.LoadEnv(filepath.Join(t.TempDir(), "missing.env")), config.ErrLoadingEnvFile)
}
