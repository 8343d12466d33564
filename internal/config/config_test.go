package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_MergesOverDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
language: hindi
default_answer: 5
log:
  level: debug
`))
	require.NoError(t, err)

	assert.Equal(t, "hindi", cfg.Language)
	assert.Equal(t, 5, cfg.DefaultAnswer)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format, "unset keys keep their default")
	assert.True(t, cfg.History)
	assert.True(t, cfg.Welcome)
}

func TestLoad_ExplicitFalseBools(t *testing.T) {
	cfg, err := Load(writeConfig(t, "history: false\nwelcome: false\n"))
	require.NoError(t, err)
	assert.False(t, cfg.History)
	assert.False(t, cfg.Welcome)
}

func TestLoad_Malformed(t *testing.T) {
	_, err := Load(writeConfig(t, "language: [unterminated"))
	assert.ErrorContains(t, err, "parse config file")
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvDB, "/tmp/x.db")
	t.Setenv(EnvLanguage, "hindi")
	t.Setenv(EnvCatalog, "/tmp/cat.yaml")
	t.Setenv(EnvLogLevel, "warn")
	t.Setenv(EnvHistory, "false")

	cfg := Default()
	require.NoError(t, cfg.ApplyEnv())
	assert.Equal(t, "/tmp/x.db", cfg.DBPath)
	assert.Equal(t, "hindi", cfg.Language)
	assert.Equal(t, "/tmp/cat.yaml", cfg.CatalogPath)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.False(t, cfg.History)

	t.Setenv(EnvHistory, "maybe")
	assert.Error(t, Default().ApplyEnv())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"empty language", func(c *Config) { c.Language = "" }, "language"},
		{"default answer low", func(c *Config) { c.DefaultAnswer = 0 }, "default_answer"},
		{"default answer high", func(c *Config) { c.DefaultAnswer = 11 }, "default_answer"},
		{"negative keep", func(c *Config) { c.KeepResults = -1 }, "keep_results"},
		{"bad level", func(c *Config) { c.Log.Level = "loud" }, "log level"},
		{"bad format", func(c *Config) { c.Log.Format = "xml" }, "log.format"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.ErrorContains(t, cfg.Validate(), tt.want)
		})
	}
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	p, err := DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/xdg", "triage", "config.yaml"), p)
}
