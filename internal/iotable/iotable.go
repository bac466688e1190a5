// Package iotable reads delimited text files that start with a header row.
package iotable

import (
	"context"
	"encoding/csv"
	"errors"
	"io"
	"iter"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/gnames/gnsyn/pkg/ent/record"
)

const bom = "\ufeff"

// Load returns a lazy sequence of rows of a delimited file. Column names
// come from the first row. A row with a different number of fields than
// the header stops the sequence with a ParseRowError. The file is closed
// when the sequence ends or the consumer stops early.
func Load(path, delim string) iter.Seq2[record.Row, error] {
	return func(yield func(record.Row, error) bool) {
		f, err := os.Open(path)
		if err != nil {
			yield(record.Row{}, ReadFileError(path, err))
			return
		}
		defer f.Close()

		r := csv.NewReader(f)
		r.Comma, _ = utf8.DecodeRuneInString(delim)
		r.LazyQuotes = true

		header, err := r.Read()
		if errors.Is(err, io.EOF) {
			return
		}
		if err != nil {
			yield(record.Row{}, ParseRowError(path, errLine(err, 1), err))
			return
		}
		header[0] = strings.TrimPrefix(header[0], bom)
		for i := range header {
			header[i] = strings.TrimSpace(header[i])
		}
		r.FieldsPerRecord = len(header)

		for {
			fields, err := r.Read()
			if errors.Is(err, io.EOF) {
				return
			}
			if err != nil {
				yield(record.Row{}, ParseRowError(path, errLine(err, 0), err))
				return
			}

			line, _ := r.FieldPos(0)
			row := record.Row{
				Line:   line,
				Fields: make(map[string]string, len(header)),
			}
			for i, v := range header {
				row.Fields[v] = fields[i]
			}
			if !yield(row, nil) {
				return
			}
		}
	}
}

// Taxa reads all taxa from a file.
func Taxa(ctx context.Context, path, delim string) ([]record.Taxon, error) {
	var res []record.Taxon
	for row, err := range Load(path, delim) {
		if err != nil {
			return nil, err
		}
		if err = ctx.Err(); err != nil {
			return nil, err
		}
		t, err := record.NewTaxon(row)
		if err != nil {
			return nil, err
		}
		res = append(res, t)
	}
	return res, nil
}

// Synonyms reads all synonymy records from a file. Records keep their
// position in the file as Index.
func Synonyms(ctx context.Context, path, delim string) ([]record.Synonym, error) {
	var res []record.Synonym
	for row, err := range Load(path, delim) {
		if err != nil {
			return nil, err
		}
		if err = ctx.Err(); err != nil {
			return nil, err
		}
		s, err := record.NewSynonym(row, len(res))
		if err != nil {
			return nil, err
		}
		res = append(res, s)
	}
	return res, nil
}

func errLine(err error, line int) int {
	var pe *csv.ParseError
	if errors.As(err, &pe) {
		return pe.Line
	}
	return line
}
