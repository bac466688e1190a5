package config

import (
	"path/filepath"
	"strings"
)

var (
	// AppName is used in generating file system paths.
	AppName = "gnsyn"
)

// ConfigDir returns the directory path for configuration files.
// Returns ~/.config/gnsyn by default.
func ConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config", AppName)
}

// LogDir returns the directory path for log files.
// Returns ~/.local/share/gnsyn/logs by default.
func LogDir(homeDir string) string {
	return filepath.Join(homeDir, ".local", "share", AppName, "logs")
}

// ConfigFilePath returns the full path to the config.yaml file.
// Returns ~/.config/gnsyn/config.yaml by default.
func ConfigFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "config.yaml")
}

// Extension returns the file extension used for a document format.
func Extension(format string) string {
	switch format {
	case FormatXML:
		return ".xml"
	case FormatJSON:
		return ".json"
	default:
		return ".tex"
	}
}

// OutputPath returns the file a document is written to. An explicit
// Document.OutputPath wins, otherwise the lowercased clade name (or
// "synonymy") with the format extension is used.
func (c *Config) OutputPath() string {
	if c.Document.OutputPath != "" {
		return c.Document.OutputPath
	}
	base := "synonymy"
	if c.Document.Clade != "" {
		base = strings.ToLower(c.Document.Clade)
		base = strings.ReplaceAll(base, " ", "_")
	}
	return base + Extension(c.Document.Format)
}
