package iologger_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/gnsyn/internal/iologger"
	"github.com/gnames/gnsyn/pkg/config"
	"github.com/gnames/gnsyn/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitFile(t *testing.T) {
	defer slog.SetDefault(slog.Default())
	dir := t.TempDir()
	cfg := config.LogConfig{Format: "text", Level: "debug", Destination: "file"}

	err := iologger.Init(dir, cfg)
	require.NoError(t, err)
	slog.Debug("synonym matched", "line", 2)

	content, err := os.ReadFile(filepath.Join(dir, iologger.LogFile))
	require.NoError(t, err)
	assert.Contains(t, string(content), "synonym matched")
	assert.Contains(t, string(content), "line=2")
}

func TestInitLevel(t *testing.T) {
	defer slog.SetDefault(slog.Default())
	dir := t.TempDir()
	cfg := config.LogConfig{Format: "json", Level: "warn", Destination: "file"}

	require.NoError(t, iologger.Init(dir, cfg))
	slog.Info("hidden")
	slog.Warn("shown")

	content, err := os.ReadFile(filepath.Join(dir, iologger.LogFile))
	require.NoError(t, err)
	assert.NotContains(t, string(content), "hidden")
	assert.Contains(t, string(content), `"msg":"shown"`)
}

func TestInitError(t *testing.T) {
	cfg := config.LogConfig{Destination: "file"}
	err := iologger.Init("/no/such/dir", cfg)
	require.Error(t, err)
	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.CreateLogFileError, gnErr.Code)
}

func TestLevel(t *testing.T) {
	tests := []struct {
		level string
		res   slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"trace", slog.LevelInfo},
	}
	for _, v := range tests {
		assert.Equal(t, v.res, iologger.Level(v.level), v.level)
	}
}

func TestReinit(t *testing.T) {
	defer slog.SetDefault(slog.Default())
	dir := t.TempDir()
	cfg := config.LogConfig{Format: "json", Level: "info", Destination: "file"}

	require.NoError(t, iologger.Init(dir, cfg))
	slog.Info("first")
	require.NoError(t, iologger.Init(dir, cfg))
	slog.Info("second")
	require.NoError(t, iologger.Close())

	content, err := os.ReadFile(filepath.Join(dir, iologger.LogFile))
	require.NoError(t, err)
	assert.NotContains(t, string(content), "first")
	assert.Contains(t, string(content), `"msg":"second"`)
	assert.Contains(t, string(content), `"version"`)

	assert.NoError(t, iologger.Close())
}
