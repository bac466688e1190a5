// Package matrix pivots lists of character states into taxon by
// character matrices.
package matrix

import (
	"slices"
	"strconv"
)

// Column names of a character-state table.
const (
	TaxonField  = "Taxon"
	NumberField = "Number"
	StateField  = "State"
)

// Cell is a state of one character of one taxon.
type Cell struct {
	Line   int
	Taxon  string
	Number int
	State  string
}

// Matrix has taxa as rows and character numbers as columns.
type Matrix struct {
	// Taxa are sorted alphabetically.
	Taxa []string
	// Numbers are sorted in ascending order.
	Numbers []int

	states map[string]map[int]string
}

// New builds a matrix. A taxon may have only one state per character.
func New(cells []Cell) (*Matrix, error) {
	res := &Matrix{states: make(map[string]map[int]string)}
	lines := make(map[string]map[int]int)
	for _, c := range cells {
		if _, ok := res.states[c.Taxon]; !ok {
			res.states[c.Taxon] = make(map[int]string)
			lines[c.Taxon] = make(map[int]int)
			res.Taxa = append(res.Taxa, c.Taxon)
		}
		if line, ok := lines[c.Taxon][c.Number]; ok {
			return nil, DuplicateError(c.Taxon, c.Number, line, c.Line)
		}
		if !slices.Contains(res.Numbers, c.Number) {
			res.Numbers = append(res.Numbers, c.Number)
		}
		res.states[c.Taxon][c.Number] = c.State
		lines[c.Taxon][c.Number] = c.Line
	}
	slices.Sort(res.Taxa)
	slices.Sort(res.Numbers)
	return res, nil
}

// State returns the state of a character of a taxon, or an empty string.
func (m *Matrix) State(taxon string, number int) string {
	return m.states[taxon][number]
}

// Records returns the matrix as table rows. The header starts with the
// "Taxon" column followed by character numbers, missing states are empty.
func (m *Matrix) Records() [][]string {
	header := make([]string, 0, len(m.Numbers)+1)
	header = append(header, TaxonField)
	for _, v := range m.Numbers {
		header = append(header, strconv.Itoa(v))
	}

	res := [][]string{header}
	for _, t := range m.Taxa {
		row := make([]string, 0, len(header))
		row = append(row, t)
		for _, n := range m.Numbers {
			row = append(row, m.State(t, n))
		}
		res = append(res, row)
	}
	return res
}
