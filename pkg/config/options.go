package config

import (
	"strings"
	"unicode/utf8"

	"github.com/gnames/gn"
)

// Option is a function that modifies a Config.
// Options validate inputs and reject invalid values with warnings.
type Option func(*Config)

// OptInputDelimiter sets the field delimiter of input files.
// Accepts a single character or one of the names "tab", "comma",
// "semicolon", "pipe". The literal two-character sequence `\t` is
// treated as a tab.
func OptInputDelimiter(s string) Option {
	switch strings.ToLower(strings.Trim(s, " ")) {
	case "tab", `\t`:
		s = "\t"
	case "comma":
		s = ","
	case "semicolon":
		s = ";"
	case "pipe":
		s = "|"
	}
	return func(c *Config) {
		if isValidDelimiter(s) {
			c.Input.Delimiter = s
		}
	}
}

// OptRenderLSIDBaseURL sets the URL prefix for LSID links.
func OptRenderLSIDBaseURL(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("LSID Base URL", s) {
			c.Render.LSIDBaseURL = s
		}
	}
}

// OptRenderUnmatched sets the policy for synonyms without a taxon.
// Valid values: "warn", "skip", "fail".
func OptRenderUnmatched(s string) Option {
	s = strings.ToLower(strings.TrimSpace(s))
	return func(c *Config) {
		if isValidEnum("Render.Unmatched", s) {
			c.Render.Unmatched = s
		}
	}
}

// OptRenderTemplatesFile sets a YAML file with LaTeX template overrides.
func OptRenderTemplatesFile(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Templates File", s) {
			c.Render.TemplatesFile = s
		}
	}
}

// OptDocumentFormat sets the output format.
// Valid values: "latex", "xml", "json".
// Runtime-only field - not in ToOptions().
func OptDocumentFormat(s string) Option {
	s = strings.ToLower(strings.TrimSpace(s))
	return func(c *Config) {
		if isValidEnum("Document.Format", s) {
			c.Document.Format = s
		}
	}
}

// OptDocumentClade limits the document to one clade.
// Runtime-only field - not in ToOptions().
func OptDocumentClade(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Clade", s) {
			c.Document.Clade = s
		}
	}
}

// OptDocumentOutputPath sets the output file.
// Runtime-only field - not in ToOptions().
func OptDocumentOutputPath(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Output Path", s) {
			c.Document.OutputPath = s
		}
	}
}

// OptDocumentBibPath sets the bibliography used to date references.
// Runtime-only field - not in ToOptions().
func OptDocumentBibPath(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Bibliography Path", s) {
			c.Document.BibPath = s
		}
	}
}

// OptDocumentWithProgress toggles the progress bar.
// Runtime-only field - not in ToOptions().
func OptDocumentWithProgress(b bool) Option {
	return func(c *Config) {
		c.Document.WithProgress = b
	}
}

// OptLogLevel sets the logging level.
// Valid values: "debug", "info", "warn", "error".
func OptLogLevel(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Level", s) {
			c.Log.Level = s
		}
	}
}

// OptLogFormat sets the log output format.
// Valid values: "json", "text".
func OptLogFormat(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Format", s) {
			c.Log.Format = s
		}
	}
}

// OptLogDestination sets where logs are written.
// Valid values: "file", "stderr", "stdout".
func OptLogDestination(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Destination", s) {
			c.Log.Destination = s
		}
	}
}

// OptHomeDir sets the home directory for config and log locations.
// Set once at startup from os.UserHomeDir().
// Runtime-only field - not in ToOptions().
func OptHomeDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Home Directory", s) {
			c.HomeDir = s
		}
	}
}

func isValidDelimiter(s string) bool {
	if utf8.RuneCountInString(s) == 1 && s != "\n" && s != "\r" && s != `"` {
		return true
	}
	gn.Warn("<em>Input Delimiter</em> must be a single character, ignoring '%s'", s)
	return false
}
