package iotable_test

import (
	"context"
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/gnsyn/internal/iotable"
	"github.com/gnames/gnsyn/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "data.tsv")
	err := os.WriteFile(path, []byte(content), 0644)
	require.NoError(t, err)
	return path
}

func TestLoad(t *testing.T) {
	assert := assert.New(t)
	path := writeFile(t, "\ufeffaccepted_name \tclade\n"+
		"Ichthyosaurus communis\tIchthyosauria\n"+
		"\n"+
		"Stenopterygius quadriscissus\tIchthyosauria\n")

	var names []string
	var lines []int
	for row, err := range iotable.Load(path, "\t") {
		require.NoError(t, err)
		names = append(names, row.Get("accepted_name"))
		lines = append(lines, row.Line)
		assert.Equal("Ichthyosauria", row.Get("clade"))
	}
	assert.Equal([]string{"Ichthyosaurus communis", "Stenopterygius quadriscissus"}, names)
	assert.Equal([]int{2, 4}, lines)
}

func TestLoadDelimiter(t *testing.T) {
	path := writeFile(t, "a;b\n1;2\n")
	for row, err := range iotable.Load(path, ";") {
		require.NoError(t, err)
		assert.Equal(t, "2", row.Get("b"))
	}
}

func TestLoadEmpty(t *testing.T) {
	path := writeFile(t, "")
	var count int
	for range iotable.Load(path, "\t") {
		count++
	}
	assert.Equal(t, 0, count)
}

func TestLoadEarlyStop(t *testing.T) {
	path := writeFile(t, "a\n1\n2\n3\n")
	var count int
	for _, err := range iotable.Load(path, "\t") {
		require.NoError(t, err)
		count++
		if count == 2 {
			break
		}
	}
	assert.Equal(t, 2, count)
}

func TestLoadFieldCount(t *testing.T) {
	assert := assert.New(t)
	path := writeFile(t, "a\tb\n1\t2\n3\n")

	var rows int
	var err error
	for _, e := range iotable.Load(path, "\t") {
		if e != nil {
			err = e
			break
		}
		rows++
	}
	assert.Equal(1, rows)
	require.Error(t, err)

	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(errcode.ParseRowError, gnErr.Code)
	require.Len(t, gnErr.Vars, 2)
	assert.Equal(path, gnErr.Vars[0])
	assert.Equal(3, gnErr.Vars[1])
	assert.True(errors.Is(gnErr.Err, csv.ErrFieldCount))
}

func TestLoadMissingFile(t *testing.T) {
	for _, err := range iotable.Load("/no/such/file.tsv", "\t") {
		require.Error(t, err)
		gnErr, ok := err.(*gn.Error)
		require.True(t, ok)
		assert.Equal(t, errcode.ReadFileError, gnErr.Code)
	}
}

func TestTaxaSynonyms(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	taxaPath := writeFile(t, "accepted_name\taccepted_status\n"+
		"Ichthyosaurus communis\t\n"+
		"Leptonectes tenuirostris\tncomb\n")
	taxa, err := iotable.Taxa(ctx, taxaPath, "\t")
	require.NoError(t, err)
	assert.Len(taxa, 2)
	assert.Equal("new", taxa[1].Status.String())

	synPath := filepath.Join(t.TempDir(), "syn.tsv")
	err = os.WriteFile(synPath, []byte(
		"identified_name\taccepted_name\treference\n"+
			"Ichthyosaurus communis\tIchthyosaurus communis\towen1840\n"+
			"Proteosaurus\tIchthyosaurus communis\thome1819\n"), 0644)
	require.NoError(t, err)
	syns, err := iotable.Synonyms(ctx, synPath, "\t")
	require.NoError(t, err)
	assert.Len(syns, 2)
	assert.Equal(1, syns[1].Index)
	assert.Equal(3, syns[1].Line)
}

func TestSynonymsRequired(t *testing.T) {
	path := writeFile(t, "identified_name\taccepted_name\treference\n"+
		"Proteosaurus\tIchthyosaurus communis\t\n")
	_, err := iotable.Synonyms(context.Background(), path, "\t")
	require.Error(t, err)
	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.RequiredFieldError, gnErr.Code)
}

func TestTaxaCanceled(t *testing.T) {
	path := writeFile(t, "accepted_name\nIchthyosaurus communis\n")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := iotable.Taxa(ctx, path, "\t")
	assert.ErrorIs(t, err, context.Canceled)
}
