package ioconfig_test

import (
	"os"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/gnsyn/internal/ioconfig"
	"github.com/gnames/gnsyn/internal/iofs"
	"github.com/gnames/gnsyn/pkg/config"
	"github.com/gnames/gnsyn/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupHome(t *testing.T) string {
	home := t.TempDir()
	require.NoError(t, iofs.EnsureDirs(home))
	require.NoError(t, iofs.EnsureConfigFile(home))
	return home
}

func TestLoadDefaultFile(t *testing.T) {
	home := setupHome(t)

	opts, err := ioconfig.Options(home)
	require.NoError(t, err)

	cfg := config.New()
	cfg.Update(opts)
	def := config.New()
	assert.Equal(t, def.Input, cfg.Input)
	assert.Equal(t, def.Render, cfg.Render)
	assert.Equal(t, def.Log, cfg.Log)
	assert.Equal(t, home, cfg.HomeDir)
}

func TestLoadFile(t *testing.T) {
	home := setupHome(t)
	yml := `input:
  delimiter: ","
render:
  unmatched: fail
log:
  level: debug
`
	path := config.ConfigFilePath(home)
	require.NoError(t, os.WriteFile(path, []byte(yml), 0644))

	opts, err := ioconfig.Options(home)
	require.NoError(t, err)
	cfg := config.New()
	cfg.Update(opts)

	assert.Equal(t, ",", cfg.Input.Delimiter)
	assert.Equal(t, config.UnmatchedFail, cfg.Render.Unmatched)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoadEnv(t *testing.T) {
	home := setupHome(t)
	t.Setenv("GNSYN_RENDER_UNMATCHED", "skip")
	t.Setenv("GNSYN_LOG_DESTINATION", "stderr")
	t.Setenv("GNSYN_INPUT_DELIMITER", "semicolon")

	opts, err := ioconfig.Options(home)
	require.NoError(t, err)
	cfg := config.New()
	cfg.Update(opts)

	assert.Equal(t, config.UnmatchedSkip, cfg.Render.Unmatched)
	assert.Equal(t, "stderr", cfg.Log.Destination)
	assert.Equal(t, ";", cfg.Input.Delimiter)
}

func TestLoadMissing(t *testing.T) {
	_, err := ioconfig.Load(t.TempDir())
	require.Error(t, err)
	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.ReadFileError, gnErr.Code)
}
