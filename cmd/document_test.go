package cmd

import (
	"bytes"
	"testing"

	"github.com/gnames/gnsyn/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetDocumentCmd(t *testing.T) {
	tests := []struct {
		format       string
		hasTemplates bool
	}{
		{config.FormatLaTeX, true},
		{config.FormatXML, false},
		{config.FormatJSON, false},
	}

	for _, v := range tests {
		cmd := getDocumentCmd(v.format)
		assert.Equal(t, v.format, cmd.Name())
		assert.NotEmpty(t, cmd.Short, v.format)
		assert.Contains(t, cmd.Long, config.Extension(v.format), v.format)

		for _, f := range []string{"bib", "output", "delimiter", "unmatched", "quiet"} {
			assert.NotNil(t, cmd.Flags().Lookup(f), f)
		}
		assert.Equal(t, v.hasTemplates, cmd.Flags().Lookup("templates") != nil)
		assert.Equal(t, "b", cmd.Flags().Lookup("bib").Shorthand)
	}
}

func TestDocumentArgs(t *testing.T) {
	cmd := getDocumentCmd(config.FormatLaTeX)
	assert.Error(t, cmd.Args(cmd, []string{"taxa.tsv"}))
	assert.NoError(t, cmd.Args(cmd, []string{"taxa.tsv", "syn.tsv"}))
	assert.NoError(t, cmd.Args(cmd, []string{"taxa.tsv", "syn.tsv", "Ichthyosauria"}))
	assert.Error(t, cmd.Args(cmd, []string{"a", "b", "c", "d"}))
}

func TestDocumentOpts(t *testing.T) {
	cmd := getDocumentCmd(config.FormatXML)
	require.NoError(t, cmd.ParseFlags([]string{"-b", "refs.bib", "-d", "comma"}))

	opts := documentOpts(cmd, []string{"taxa.tsv", "syn.tsv", "Ichthyosauria"})
	c := config.New()
	c.Update(opts)

	assert.Equal(t, "refs.bib", c.Document.BibPath)
	assert.Equal(t, "Ichthyosauria", c.Document.Clade)
	assert.Equal(t, ",", c.Input.Delimiter)
	assert.Equal(t, "", c.Document.OutputPath)
	assert.Equal(t, "ichthyosauria.tex", c.OutputPath())
}

func TestGetArchiveCmd(t *testing.T) {
	cmd := getArchiveCmd()
	assert.Equal(t, "archive", cmd.Name())
	assert.Contains(t, cmd.Long, ".sqlite")
	assert.NotNil(t, cmd.Flags().Lookup("bib"))
	assert.Error(t, cmd.Args(cmd, []string{"taxa.tsv"}))
}

func TestGetMatrixCmd(t *testing.T) {
	cmd := getMatrixCmd()
	assert.Equal(t, "matrix", cmd.Name())
	assert.Error(t, cmd.Args(cmd, nil))
	assert.NoError(t, cmd.Args(cmd, []string{"a.csv", "b.csv"}))

	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"--help"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "--output-dir")
}
