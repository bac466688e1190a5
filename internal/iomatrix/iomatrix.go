// Package iomatrix implements Pivoter interface. It reads comma-separated
// character-state lists and writes them as taxon by character matrices.
package iomatrix

import (
	"bytes"
	"encoding/csv"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gnames/gn"
	"github.com/gnames/gnsyn/internal/iofs"
	"github.com/gnames/gnsyn/internal/iotable"
	"github.com/gnames/gnsyn/pkg/lifecycle"
	"github.com/gnames/gnsyn/pkg/matrix"
)

// Extension of matrix files.
const Extension = ".nex"

type pivoter struct {
	outDir string
}

// New creates a Pivoter that writes matrices to outDir. Empty outDir
// means the current directory.
func New(outDir string) lifecycle.Pivoter {
	return &pivoter{outDir: outDir}
}

// Pivot implements Pivoter.
func (p *pivoter) Pivot(paths ...string) ([]string, error) {
	var res []string
	for _, path := range paths {
		m, err := read(path)
		if err != nil {
			return res, err
		}

		out := p.outputPath(path)
		if err = write(out, m); err != nil {
			return res, err
		}
		slog.Info("Matrix written",
			"input", path,
			"output", out,
			"taxa", len(m.Taxa),
			"characters", len(m.Numbers),
		)
		gn.Info("Wrote <em>%s</em>: %d taxa, %d characters",
			out, len(m.Taxa), len(m.Numbers))
		res = append(res, out)
	}
	return res, nil
}

func (p *pivoter) outputPath(path string) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base)) + Extension
	return filepath.Join(p.outDir, base)
}

func read(path string) (*matrix.Matrix, error) {
	var cells []matrix.Cell
	for row, err := range iotable.Load(path, ",") {
		if err != nil {
			return nil, err
		}
		for _, v := range []string{matrix.TaxonField, matrix.NumberField, matrix.StateField} {
			if _, ok := row.Fields[v]; !ok {
				return nil, MissingColumnError(path, v)
			}
		}

		num := row.Get(matrix.NumberField)
		n, err := strconv.Atoi(num)
		if err != nil {
			return nil, NumberError(path, row.Line, num, err)
		}
		cells = append(cells, matrix.Cell{
			Line:   row.Line,
			Taxon:  row.Get(matrix.TaxonField),
			Number: n,
			State:  row.Get(matrix.StateField),
		})
	}
	return matrix.New(cells)
}

func write(path string, m *matrix.Matrix) error {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.WriteAll(m.Records()); err != nil {
		return iofs.WriteFileError(path, err)
	}
	return iofs.WriteFile(path, buf.Bytes())
}
