// Package iobib reads BibTeX and BibLaTeX files into a date index.
package iobib

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/gnames/gnsyn/pkg/bib"
	"github.com/nickng/bibtex"
)

// Load reads a bibliography file. An empty path gives an index that
// returns empty dates for every key.
func Load(path string) (bib.Index, error) {
	if path == "" {
		return bib.NullIndex{}, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, ReadFileError(path, err)
	}
	defer f.Close()

	res, err := Parse(f)
	if err != nil {
		return nil, BibParseError(path, err)
	}
	slog.Info("Loaded bibliography", "path", path, "entries", res.Len())
	return res, nil
}

// Parse reads entries from BibTeX source and keeps their dates.
func Parse(r io.Reader) (bib.MapIndex, error) {
	parsed, err := bibtex.Parse(r)
	if err != nil {
		return nil, err
	}

	res := make(bib.MapIndex, len(parsed.Entries))
	for _, e := range parsed.Entries {
		fields := make(map[string]string, len(e.Fields))
		for k, v := range e.Fields {
			if v == nil {
				continue
			}
			fields[strings.ToLower(k)] = strings.Trim(v.String(), `{}"`)
		}
		res[e.CiteName] = bib.EntryDate(fields)
	}
	return res, nil
}
