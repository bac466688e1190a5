// Package config provides configuration management for gnsyn.
//
// This package has no I/O dependencies (no file operations, no network calls).
// Validation functions may write user-facing warnings via gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > config.yaml > defaults
//
// # Design Principles
//
// - Default config (from New()) is always valid - no validation needed
// - All mutations go through Option functions - the only way to modify Config
// - Invalid options are rejected with gn.Warn() - config remains in valid state
// - ToOptions() converts persistent fields (those in config.yaml)
// - Environment variables match ToOptions() fields exactly
//
// # Persistent vs Runtime Fields
//
// Persistent fields (in ToOptions, config.yaml, and env vars):
//   - Input: delimiter
//   - Render: lsid_base_url, unmatched, templates_file
//   - Log: level, format, destination
//
// Runtime-only fields (CLI flags only):
//   - Document.Format, Clade, OutputPath, BibPath, WithProgress (per-command)
//   - HomeDir (set once at startup)
//
// # Environment Variables
//
// Use GNSYN_ prefix with underscores for nesting:
//
//	GNSYN_INPUT_DELIMITER=tab
//	GNSYN_RENDER_UNMATCHED=fail
//	GNSYN_LOG_LEVEL=debug
package config

// Format values for Document.Format.
const (
	FormatLaTeX = "latex"
	FormatXML   = "xml"
	FormatJSON  = "json"
)

// Policies for synonyms whose accepted name matches no taxon.
const (
	// UnmatchedWarn reports every unmatched synonym and continues.
	UnmatchedWarn = "warn"
	// UnmatchedSkip drops unmatched synonyms silently.
	UnmatchedSkip = "skip"
	// UnmatchedFail aborts the run if any synonym is unmatched.
	UnmatchedFail = "fail"
)

// Config represents the complete gnsyn configuration.
type Config struct {
	// Input contains settings for reading tabular files.
	Input InputConfig `mapstructure:"input" yaml:"input"`

	// Render contains settings shared by all document formats.
	Render RenderConfig `mapstructure:"render" yaml:"render"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// Document contains per-command settings of the document being built.
	Document DocumentConfig `mapstructure:"-" yaml:"-"`

	// HomeDir determines where config and logs directories reside.
	// It must be set by CLI during init, there is no default value for it.
	HomeDir string `mapstructure:"-" yaml:"-"`
}

// InputConfig describes the layout of taxa and synonymy files.
type InputConfig struct {
	// Delimiter separates fields of a row. Tab by default.
	Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
}

// RenderConfig contains settings for document formatting.
type RenderConfig struct {
	// LSIDBaseURL is prepended to LSIDs to create link targets.
	LSIDBaseURL string `mapstructure:"lsid_base_url" yaml:"lsid_base_url"`

	// Unmatched decides what happens with synonyms that point to
	// an accepted name absent from the taxa file.
	// Valid values: "warn", "skip", "fail".
	Unmatched string `mapstructure:"unmatched" yaml:"unmatched"`

	// TemplatesFile is an optional YAML file that overrides LaTeX templates.
	TemplatesFile string `mapstructure:"templates_file" yaml:"templates_file"`
}

// DocumentConfig holds runtime settings of one document build.
type DocumentConfig struct {
	// Format of the output: "latex", "xml" or "json".
	Format string

	// Clade limits output to taxa with this clade label. Empty means all.
	Clade string

	// OutputPath is the file the document is written to.
	// If empty, it is derived from Clade and Format.
	OutputPath string

	// BibPath is a BibTeX/BibLaTeX file used to date references.
	// If empty, synonyms keep their input order.
	BibPath string

	// WithProgress shows a progress bar while formatting taxa.
	WithProgress bool
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json' or 'text'.
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), STDERR or STDOUT
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	res := &Config{
		Input: InputConfig{
			Delimiter: "\t",
		},
		Render: RenderConfig{
			LSIDBaseURL: "https://zoobank.org/",
			Unmatched:   UnmatchedWarn,
		},
		Log: LogConfig{
			Format: "json",
			Level:  "info",
			// for now file is rewritten every time the log starts
			Destination: "file",
		},
		Document: DocumentConfig{
			Format: FormatLaTeX,
		},
	}

	return res
}
