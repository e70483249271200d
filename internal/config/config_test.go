package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/benbeisheim/checkers-backend/internal/console"
	"github.com/benbeisheim/checkers-backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnvDefaults(t *testing.T) {
	t.Setenv("CHECKERS_LOG_LEVEL", "")
	os.Unsetenv("CHECKERS_LOG_LEVEL")
	t.Setenv("CHECKERS_COLOR", "")
	os.Unsetenv("CHECKERS_COLOR")
	t.Setenv("CHECKERS_FIRST", "")
	os.Unsetenv("CHECKERS_FIRST")

	cfg, err := ParseEnv()
	require.NoError(t, err)
	assert.Equal(t, Config{LogLevel: "warn", Color: "auto", First: "black"}, cfg)
	settings, err := cfg.Settings()
	require.NoError(t, err)
	assert.Equal(t, Settings{Color: console.ColorAuto, First: model.Black}, settings)
}

func TestParseEnvOverrides(t *testing.T) {
	t.Setenv("CHECKERS_LOG_LEVEL", "debug")
	t.Setenv("CHECKERS_COLOR", "never")
	t.Setenv("CHECKERS_FIRST", "white")

	cfg, err := ParseEnv()
	require.NoError(t, err)
	assert.Equal(t, Config{LogLevel: "debug", Color: "never", First: "white"}, cfg)
}

func TestLoadDotenv(t *testing.T) {
	t.Setenv("CHECKERS_COLOR", "always")
	t.Setenv("CHECKERS_FIRST", "")
	os.Unsetenv("CHECKERS_FIRST")

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("CHECKERS_FIRST=white\nCHECKERS_COLOR=never\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("CHECKERS_FIRST") })

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "white", cfg.First)
	assert.Equal(t, "always", cfg.Color, "environment wins over the file")
}

func TestLoadMissingDotenv(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.NoError(t, err)
}

func TestSettings(t *testing.T) {
	settings, err := Config{LogLevel: "warn", Color: "never", First: "white"}.Settings()
	require.NoError(t, err)
	assert.Equal(t, Settings{Color: console.ColorNever, First: model.White}, settings)

	_, err = Config{LogLevel: "warn", Color: "rainbow", First: "black"}.Settings()
	assert.Error(t, err)
	_, err = Config{LogLevel: "warn", Color: "auto", First: "red"}.Settings()
	assert.Error(t, err)
}
