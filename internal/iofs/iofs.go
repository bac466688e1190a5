// Package iofs keeps configuration and log directories in place and
// writes output files.
package iofs

import (
	"os"
	"path/filepath"

	"github.com/gnames/gnsyn/pkg/config"
	"github.com/gnames/gnsyn/pkg/templates"
	"github.com/gnames/gnsys"
)

// EnsureDirs creates configuration and log directories if they are
// missing.
func EnsureDirs(homeDir string) error {
	dirs := []string{
		config.ConfigDir(homeDir),
		config.LogDir(homeDir),
	}
	for _, v := range dirs {
		if err := gnsys.MakeDir(v); err != nil {
			return CreateDirError(v, err)
		}
	}
	return nil
}

// EnsureConfigFile writes the default config.yaml unless it already
// exists.
func EnsureConfigFile(homeDir string) error {
	configPath := config.ConfigFilePath(homeDir)

	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	err := os.WriteFile(configPath, []byte(templates.ConfigYAML), 0644)
	if err != nil {
		return CopyFileError(configPath, err)
	}

	return nil
}

// WriteFile writes data to path, creating its directory when needed.
func WriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := gnsys.MakeDir(dir); err != nil {
		return CreateDirError(dir, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return WriteFileError(path, err)
	}
	return nil
}
