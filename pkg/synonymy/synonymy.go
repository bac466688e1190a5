// Package synonymy joins taxa with their synonyms and assembles the
// document model that renderers turn into LaTeX, XML or JSON.
package synonymy

import (
	"cmp"
	"log/slog"
	"slices"
	"strings"

	"github.com/gnames/gn"
	"github.com/gnames/gnsyn/pkg/config"
	"github.com/gnames/gnsyn/pkg/ent/record"
)

// Entry is a taxon with its matched synonyms in chronological order.
type Entry struct {
	Taxon    record.Taxon
	Synonyms []record.Synonym
}

// Document is the assembled synonymy list.
type Document struct {
	// Clade is the clade used as a filter, empty if all taxa are included.
	Clade string

	// Entries follow the order of taxa in the input.
	Entries []Entry

	// Unmatched are synonyms whose accepted name is absent from the taxa.
	Unmatched []record.Synonym
}

// SynonymsNum returns the number of synonyms included in the document.
func (d Document) SynonymsNum() int {
	var res int
	for _, v := range d.Entries {
		res += len(v.Synonyms)
	}
	return res
}

// Match returns synonyms of the taxon with the given key, sorted by
// publication date. Synonyms with the same date keep their input order.
func Match(syns []record.Synonym, key string) []record.Synonym {
	key = record.Key(key)
	var res []record.Synonym
	for _, v := range syns {
		if v.Key() == key {
			res = append(res, v)
		}
	}
	slices.SortStableFunc(res, func(a, b record.Synonym) int {
		return cmp.Or(
			cmp.Compare(a.Date, b.Date),
			cmp.Compare(a.Index, b.Index),
		)
	})
	return res
}

// Assemble builds a Document from taxa and synonyms. If clade is not
// empty, only taxa of this clade (case-insensitive) are included.
// Synonyms that match no taxon at all are collected in Unmatched.
func Assemble(
	taxa []record.Taxon,
	syns []record.Synonym,
	clade string,
) Document {
	res := Document{Clade: clade}

	keys := make(map[string]struct{}, len(taxa))
	for _, t := range taxa {
		keys[t.Key()] = struct{}{}
		if clade != "" && !strings.EqualFold(t.Clade, clade) {
			continue
		}
		entry := Entry{Taxon: t, Synonyms: Match(syns, t.AcceptedName)}
		res.Entries = append(res.Entries, entry)
	}

	for _, v := range syns {
		if _, ok := keys[v.Key()]; !ok {
			res.Unmatched = append(res.Unmatched, v)
		}
	}
	return res
}

// CheckUnmatched applies the unmatched policy to a document. With "fail"
// it returns an error listing unmatched synonyms, with "warn" it reports
// each of them, with "skip" it does nothing.
func CheckUnmatched(doc Document, policy string) error {
	if len(doc.Unmatched) == 0 {
		return nil
	}

	switch policy {
	case config.UnmatchedSkip:
		return nil
	case config.UnmatchedFail:
		return UnmatchedSynonymError(doc.Unmatched)
	default:
		for _, v := range doc.Unmatched {
			slog.Warn("Synonym does not match any taxon",
				"line", v.Line,
				"identified_name", v.IdentifiedName,
				"accepted_name", v.AcceptedName,
			)
			gn.Warn(
				"Synonym <em>%s</em> at line %d: no taxon <em>%s</em>, skipping",
				v.IdentifiedName, v.Line, v.AcceptedName,
			)
		}
		return nil
	}
}
