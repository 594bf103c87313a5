package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, int64(0), cfg.Seed)
	assert.False(t, cfg.Plain)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Empty(t, cfg.Log.File)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "yacht.yaml")
	content := "seed: 1234\nplain: true\nlog:\n  level: debug\n  format: json\n  file: /tmp/yacht.log\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	v := viper.New()
	v.SetConfigFile(path)
	require.NoError(t, v.ReadInConfig())

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, int64(1234), cfg.Seed)
	assert.True(t, cfg.Plain)
	assert.Equal(t, LoggingConfig{Level: "debug", Format: "json", File: "/tmp/yacht.log"}, cfg.Log)
}

func TestLoadOverridesWin(t *testing.T) {
	v := viper.New()
	v.Set("seed", 7)
	v.Set("log.level", "error")

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, int64(7), cfg.Seed)
	assert.Equal(t, "error", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	v := viper.New()
	v.Set("log.level", "loud")
	_, err := Load(v)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")

	v = viper.New()
	v.Set("log.format", "xml")
	_, err = Load(v)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log format")
}
