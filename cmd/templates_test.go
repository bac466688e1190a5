package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/gnsyn/internal/iotemplates"
	"github.com/gnames/gnsyn/pkg/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetTemplatesCmd(t *testing.T) {
	cmd := getTemplatesCmd()
	assert.Equal(t, "templates", cmd.Name())
	assert.Error(t, cmd.Args(cmd, []string{"extra"}))
	assert.NotNil(t, cmd.Flags().Lookup("output"))
}

func TestWriteTemplates(t *testing.T) {
	var buf bytes.Buffer
	err := writeTemplates(&buf, "", "")
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "synonym_original:")

	path := filepath.Join(t.TempDir(), "out", "templates.yaml")
	err = writeTemplates(&buf, "", path)
	require.NoError(t, err)
	bs, err := os.ReadFile(path)
	require.NoError(t, err)

	// the written file loads back to the defaults
	res, err := iotemplates.Load(path)
	require.NoError(t, err)
	assert.Equal(t, render.Default(), res)
	assert.Equal(t, buf.Len(), len(bs))
}

func TestWriteTemplatesMissing(t *testing.T) {
	var buf bytes.Buffer
	err := writeTemplates(&buf, filepath.Join(t.TempDir(), "none.yaml"), "")
	assert.Error(t, err)
	assert.Zero(t, buf.Len())
}
