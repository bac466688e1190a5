// Package bib resolves citation keys of synonyms to publication dates.
//
// Dates are only used to order synonyms chronologically, they are never
// displayed. Parsing of bibliography files happens in internal/iobib.
package bib

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/gnames/gnsyn/pkg/ent/record"
)

var (
	// ErrNotFound means the bibliography has no entry for a key.
	ErrNotFound = errors.New("citation key not found")
	// ErrNoDate means the entry exists but has neither date nor year.
	ErrNoDate = errors.New("entry has no date")
)

// Index maps citation keys to publication dates.
type Index interface {
	// Date returns a sortable date (YYYY, YYYY-MM or YYYY-MM-DD) for a key.
	Date(key string) (string, error)

	// Len returns the number of entries in the index.
	Len() int
}

// MapIndex is an Index kept in memory. Values are dates, an empty value
// marks an entry without a date.
type MapIndex map[string]string

// Date implements Index.
func (m MapIndex) Date(key string) (string, error) {
	date, ok := m[key]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	if date == "" {
		return "", fmt.Errorf("%w: %s", ErrNoDate, key)
	}
	return date, nil
}

// Len implements Index.
func (m MapIndex) Len() int {
	return len(m)
}

// NullIndex is used when no bibliography is given. All dates are empty,
// therefore synonyms keep their input order.
type NullIndex struct{}

// Date implements Index.
func (NullIndex) Date(string) (string, error) {
	return "", nil
}

// Len implements Index.
func (NullIndex) Len() int {
	return 0
}

var citeRe = regexp.MustCompile(`^\\[A-Za-z]*cite[A-Za-z]*\*?(?:\[[^\]]*\])*\{([^}]*)\}`)

// CiteKey extracts the first citation key from a reference field. Keys may
// be bare ("Smith2001"), prefixed with "@", wrapped in a LaTeX citation
// command ("\cite{Smith2001}") or listed with commas.
func CiteKey(ref string) string {
	ref = strings.TrimSpace(ref)
	if m := citeRe.FindStringSubmatch(ref); m != nil {
		ref = m[1]
	}
	ref = strings.Trim(ref, "[]")
	if i := strings.IndexAny(ref, ",;"); i > -1 {
		ref = ref[:i]
	}
	ref = strings.TrimSpace(ref)
	return strings.TrimPrefix(ref, "@")
}

var months = map[string]int{
	"jan": 1, "feb": 2, "mar": 3, "apr": 4, "may": 5, "jun": 6,
	"jul": 7, "aug": 8, "sep": 9, "oct": 10, "nov": 11, "dec": 12,
}

// EntryDate returns a sortable date from fields of a bibliography entry.
// BibLaTeX "date" is used as is, otherwise "year" and optional "month" are
// combined into YYYY or YYYY-MM. Field names must be lowercase.
func EntryDate(fields map[string]string) string {
	if date := strings.TrimSpace(fields["date"]); date != "" {
		return date
	}
	year := strings.TrimSpace(fields["year"])
	if year == "" {
		return ""
	}
	month := strings.ToLower(strings.TrimSpace(fields["month"]))
	if month == "" {
		return year
	}
	m, err := strconv.Atoi(month)
	if err != nil {
		if len(month) >= 3 {
			m = months[month[:3]]
		}
	}
	if m < 1 || m > 12 {
		return year
	}
	return fmt.Sprintf("%s-%02d", year, m)
}

// DateSynonyms sets Date of every synonym from the index. It fails on the
// first reference that cannot be resolved.
func DateSynonyms(idx Index, syns []record.Synonym) error {
	for i := range syns {
		key := CiteKey(syns[i].Reference)
		date, err := idx.Date(key)
		if err != nil {
			return LookupError(syns[i].Line, key, err)
		}
		syns[i].Date = date
	}
	return nil
}
