package config_test

import (
	"path/filepath"
	"testing"

	"github.com/gnames/gnsyn/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirs(t *testing.T) {
	tempHome := t.TempDir()

	tests := []struct {
		msg string
		fn  func(string) string
		res string
	}{
		{
			msg: "config dir",
			fn:  config.ConfigDir,
			res: filepath.Join(tempHome, ".config", "gnsyn"),
		},
		{
			msg: "log dir",
			fn:  config.LogDir,
			res: filepath.Join(tempHome, ".local", "share", "gnsyn", "logs"),
		},
		{
			msg: "config file",
			fn:  config.ConfigFilePath,
			res: filepath.Join(tempHome, ".config", "gnsyn", "config.yaml"),
		},
	}

	for _, v := range tests {
		res := v.fn(tempHome)
		assert.Equal(t, v.res, res, v.msg)
	}
}

func TestNew(t *testing.T) {
	cfg := config.New()
	require.NotNil(t, cfg)

	assert.Equal(t, "\t", cfg.Input.Delimiter)
	assert.Equal(t, "https://zoobank.org/", cfg.Render.LSIDBaseURL)
	assert.Equal(t, config.UnmatchedWarn, cfg.Render.Unmatched)
	assert.Empty(t, cfg.Render.TemplatesFile)

	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "file", cfg.Log.Destination)

	assert.Equal(t, config.FormatLaTeX, cfg.Document.Format)
	assert.False(t, cfg.Document.WithProgress)
	assert.Empty(t, cfg.HomeDir)
}

func TestOptInputDelimiter(t *testing.T) {
	tests := []struct {
		msg, input, res string
	}{
		{"tab name", "tab", "\t"},
		{"escaped tab", `\t`, "\t"},
		{"comma name", "Comma", ","},
		{"semicolon", "semicolon", ";"},
		{"pipe", "pipe", "|"},
		{"literal", ":", ":"},
		{"too long", "ab", "\t"},
		{"quote", `"`, "\t"},
		{"empty", "", "\t"},
	}

	for _, v := range tests {
		cfg := config.New()
		cfg.Update([]config.Option{config.OptInputDelimiter(v.input)})
		assert.Equal(t, v.res, cfg.Input.Delimiter, v.msg)
	}
}

func TestEnumOptions(t *testing.T) {
	tests := []struct {
		msg string
		opt config.Option
		get func(*config.Config) string
		res string
	}{
		{
			msg: "unmatched fail",
			opt: config.OptRenderUnmatched(" FAIL "),
			get: func(c *config.Config) string { return c.Render.Unmatched },
			res: config.UnmatchedFail,
		},
		{
			msg: "unmatched bad",
			opt: config.OptRenderUnmatched("ignore"),
			get: func(c *config.Config) string { return c.Render.Unmatched },
			res: config.UnmatchedWarn,
		},
		{
			msg: "format xml",
			opt: config.OptDocumentFormat("XML"),
			get: func(c *config.Config) string { return c.Document.Format },
			res: config.FormatXML,
		},
		{
			msg: "format bad",
			opt: config.OptDocumentFormat("html"),
			get: func(c *config.Config) string { return c.Document.Format },
			res: config.FormatLaTeX,
		},
		{
			msg: "log level",
			opt: config.OptLogLevel("Debug"),
			get: func(c *config.Config) string { return c.Log.Level },
			res: "debug",
		},
		{
			msg: "log level bad",
			opt: config.OptLogLevel("trace"),
			get: func(c *config.Config) string { return c.Log.Level },
			res: "info",
		},
		{
			msg: "log format",
			opt: config.OptLogFormat("text"),
			get: func(c *config.Config) string { return c.Log.Format },
			res: "text",
		},
		{
			msg: "log destination",
			opt: config.OptLogDestination("stderr"),
			get: func(c *config.Config) string { return c.Log.Destination },
			res: "stderr",
		},
		{
			msg: "log destination bad",
			opt: config.OptLogDestination("syslog"),
			get: func(c *config.Config) string { return c.Log.Destination },
			res: "file",
		},
	}

	for _, v := range tests {
		cfg := config.New()
		cfg.Update([]config.Option{v.opt})
		assert.Equal(t, v.res, v.get(cfg), v.msg)
	}
}

func TestStringOptions(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptRenderLSIDBaseURL(" https://example.org/lsid/ "),
		config.OptRenderTemplatesFile("tmpl.yaml"),
		config.OptDocumentClade("Ichthyosauria"),
		config.OptDocumentBibPath("refs.bib"),
		config.OptDocumentWithProgress(true),
		config.OptHomeDir("/home/user"),
	})

	assert.Equal(t, "https://example.org/lsid/", cfg.Render.LSIDBaseURL)
	assert.Equal(t, "tmpl.yaml", cfg.Render.TemplatesFile)
	assert.Equal(t, "Ichthyosauria", cfg.Document.Clade)
	assert.Equal(t, "refs.bib", cfg.Document.BibPath)
	assert.True(t, cfg.Document.WithProgress)
	assert.Equal(t, "/home/user", cfg.HomeDir)

	cfg.Update([]config.Option{
		config.OptDocumentClade("  "),
		config.OptRenderLSIDBaseURL(""),
	})
	assert.Equal(t, "Ichthyosauria", cfg.Document.Clade)
	assert.Equal(t, "https://example.org/lsid/", cfg.Render.LSIDBaseURL)
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		msg  string
		opts []config.Option
		res  string
	}{
		{"default", nil, "synonymy.tex"},
		{
			"clade xml",
			[]config.Option{
				config.OptDocumentClade("Basal Ichthyosauria"),
				config.OptDocumentFormat(config.FormatXML),
			},
			"basal_ichthyosauria.xml",
		},
		{
			"json",
			[]config.Option{config.OptDocumentFormat(config.FormatJSON)},
			"synonymy.json",
		},
		{
			"explicit",
			[]config.Option{
				config.OptDocumentClade("Ichthyosauria"),
				config.OptDocumentOutputPath("out/doc.tex"),
			},
			"out/doc.tex",
		},
	}

	for _, v := range tests {
		cfg := config.New()
		cfg.Update(v.opts)
		assert.Equal(t, v.res, cfg.OutputPath(), v.msg)
	}
}

func TestToOptions(t *testing.T) {
	src := config.New()
	src.Update([]config.Option{
		config.OptInputDelimiter(","),
		config.OptRenderUnmatched(config.UnmatchedSkip),
		config.OptRenderTemplatesFile("tmpl.yaml"),
		config.OptLogLevel("warn"),
		config.OptDocumentClade("Ichthyosauria"),
		config.OptHomeDir("/home/user"),
	})

	cfg := config.New()
	cfg.Update(src.ToOptions())

	assert.Equal(t, src.Input, cfg.Input)
	assert.Equal(t, src.Render, cfg.Render)
	assert.Equal(t, src.Log, cfg.Log)

	// runtime fields are not persistent
	assert.Empty(t, cfg.Document.Clade)
	assert.Empty(t, cfg.HomeDir)
}
