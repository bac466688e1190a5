package names_test

import (
	"context"
	"testing"

	"github.com/gnames/gnsyn/pkg/names"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	p := names.New()
	tests := []struct {
		msg, name, canonical string
		parsed               bool
		card                 int
	}{
		{"binomial", "Ichthyosaurus communis", "Ichthyosaurus communis", true, 2},
		{"with authorship", "Ichthyosaurus communis Conybeare, 1822",
			"Ichthyosaurus communis", true, 2},
		{"markdown", "*Ichthyosaurus* *communis*", "Ichthyosaurus communis", true, 2},
		{"uninomial", "Proteosaurus", "Proteosaurus", true, 1},
		{"empty", "", "", false, 0},
	}

	for _, v := range tests {
		res := p.Parse(v.name)
		assert.Equal(t, v.parsed, res.Parsed, v.msg)
		assert.Equal(t, v.canonical, res.Canonical, v.msg)
		assert.Equal(t, v.card, res.Cardinality, v.msg)
	}
}

func TestPlain(t *testing.T) {
	assert.Equal(t, "Ichthyosaurus sp.", names.Plain("*Ichthyosaurus*  sp."))
	assert.Equal(t, "Ichthyosaurus sp.", names.Plain("_Ichthyosaurus_ sp."))
}

func TestID(t *testing.T) {
	id1 := names.ID("Ichthyosaurus communis", "Conybeare1822")
	id2 := names.ID("Ichthyosaurus communis", "Conybeare1822")
	id3 := names.ID("Ichthyosaurus communis", "Owen1840")
	assert.Equal(t, id1, id2)
	assert.NotEqual(t, id1, id3)
	assert.Len(t, id1, 36)
}

func TestPool(t *testing.T) {
	p := names.NewPool(2)
	defer p.Close()

	list := []string{
		"Ichthyosaurus communis Conybeare, 1822",
		"*Proteosaurus*",
		"Ichthyosaurus communis Conybeare, 1822",
		"",
	}
	err := p.ParseAll(context.Background(), list)
	require.NoError(t, err)

	res := p.Parse(list[0])
	assert.True(t, res.Parsed)
	assert.Equal(t, "Ichthyosaurus communis", res.Canonical)
	assert.Equal(t, "Proteosaurus", p.Parse(list[1]).Canonical)
	assert.False(t, p.Parse("").Parsed)

	res = p.Parse("Stenopterygius quadriscissus")
	assert.Equal(t, 2, res.Cardinality)
}

func TestPoolCancel(t *testing.T) {
	p := names.NewPool(1)
	defer p.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := p.ParseAll(ctx, []string{"Proteosaurus"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPoolClosed(t *testing.T) {
	p := names.NewPool(1)
	err := p.ParseAll(context.Background(), []string{"Proteosaurus"})
	require.NoError(t, err)
	p.Close()
	p.Close()

	assert.Equal(t, "Proteosaurus", p.Parse("Proteosaurus").Canonical)

	res := p.Parse("*Ichthyosaurus* communis")
	assert.False(t, res.Parsed)
	assert.Equal(t, "Ichthyosaurus communis", res.Verbatim)
}
