package iofs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/gnsyn/pkg/errcode"
	"github.com/gnames/gnsyn/pkg/templates"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureDirs(t *testing.T) {
	tmpDir := t.TempDir()

	// repeated calls must succeed
	for range 2 {
		err := EnsureDirs(tmpDir)
		require.NoError(t, err)
	}

	for _, v := range []string{
		filepath.Join(tmpDir, ".config", "gnsyn"),
		filepath.Join(tmpDir, ".local", "share", "gnsyn", "logs"),
	} {
		info, err := os.Stat(v)
		require.NoError(t, err)
		assert.True(t, info.IsDir(), v)
	}
}

func TestEnsureConfigFile(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, EnsureDirs(tmpDir))

	err := EnsureConfigFile(tmpDir)
	require.NoError(t, err)

	configPath := filepath.Join(tmpDir, ".config", "gnsyn", "config.yaml")
	content, err := os.ReadFile(configPath)
	require.NoError(t, err)
	assert.Equal(t, templates.ConfigYAML, string(content))

	// existing file is not overwritten
	custom := "input:\n  delimiter: comma\n"
	require.NoError(t, os.WriteFile(configPath, []byte(custom), 0644))
	require.NoError(t, EnsureConfigFile(tmpDir))
	content, err = os.ReadFile(configPath)
	require.NoError(t, err)
	assert.Equal(t, custom, string(content))
}

func TestConfigYAMLEmbedded(t *testing.T) {
	for _, v := range []string{"input", "render", "unmatched", "log"} {
		assert.Contains(t, templates.ConfigYAML, v)
	}
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "ichthyosauria.tex")
	err := WriteFile(path, []byte(`\taxon{}`))
	require.NoError(t, err)
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `\taxon{}`, string(content))
}

func TestWriteFileError(t *testing.T) {
	dir := t.TempDir()
	// a directory cannot be overwritten by a file
	err := WriteFile(dir, []byte("x"))
	require.Error(t, err)
	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.WriteFileError, gnErr.Code)
}
