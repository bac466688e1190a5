package matrix_test

import (
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/gnsyn/pkg/errcode"
	"github.com/gnames/gnsyn/pkg/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	assert := assert.New(t)
	cells := []matrix.Cell{
		{Line: 2, Taxon: "Stenopterygius", Number: 10, State: "1"},
		{Line: 3, Taxon: "Ichthyosaurus", Number: 2, State: "0"},
		{Line: 4, Taxon: "Ichthyosaurus", Number: 10, State: "?"},
		{Line: 5, Taxon: "Stenopterygius", Number: 1, State: "0&1"},
	}
	m, err := matrix.New(cells)
	require.NoError(t, err)
	assert.Equal([]string{"Ichthyosaurus", "Stenopterygius"}, m.Taxa)
	assert.Equal([]int{1, 2, 10}, m.Numbers)
	assert.Equal("?", m.State("Ichthyosaurus", 10))
	assert.Equal("", m.State("Ichthyosaurus", 1))

	assert.Equal([][]string{
		{"Taxon", "1", "2", "10"},
		{"Ichthyosaurus", "", "0", "?"},
		{"Stenopterygius", "0&1", "", "1"},
	}, m.Records())
}

func TestNewDuplicate(t *testing.T) {
	cells := []matrix.Cell{
		{Line: 2, Taxon: "Ichthyosaurus", Number: 1, State: "0"},
		{Line: 7, Taxon: "Ichthyosaurus", Number: 1, State: "1"},
	}
	_, err := matrix.New(cells)
	require.Error(t, err)
	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.MatrixError, gnErr.Code)
	assert.Equal(t, []any{"Ichthyosaurus", 1, 2, 7}, gnErr.Vars)
}

func TestEmpty(t *testing.T) {
	m, err := matrix.New(nil)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"Taxon"}}, m.Records())
}
