package render

import (
	"github.com/gnames/gnfmt"
	"github.com/gnames/gnsyn/pkg/bib"
	"github.com/gnames/gnsyn/pkg/config"
	"github.com/gnames/gnsyn/pkg/ent/coord"
	"github.com/gnames/gnsyn/pkg/ent/locality"
	"github.com/gnames/gnsyn/pkg/ent/lsid"
	"github.com/gnames/gnsyn/pkg/ent/record"
	"github.com/gnames/gnsyn/pkg/synonymy"
)

type jsonRenderer struct {
	Options
}

// Document is the JSON view of a synonymy document.
type Document struct {
	Clade     string  `json:"clade,omitempty"`
	Taxa      []Taxon `json:"taxa"`
	Unmatched int     `json:"unmatchedSynonyms"`
}

// Taxon is the JSON view of an accepted taxon with its synonyms.
type Taxon struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Canonical   string     `json:"canonical,omitempty"`
	Cardinality int        `json:"cardinality,omitempty"`
	Authorship  string     `json:"nameAuthorship,omitempty"`
	Authority   string     `json:"authority,omitempty"`
	Combination string     `json:"combination"`
	Clade       string     `json:"clade,omitempty"`
	LSID        *lsid.LSID `json:"lsid,omitempty"`
	Synonyms    []Synonym  `json:"synonyms,omitempty"`
}

// Synonym is the JSON view of a synonymy record.
type Synonym struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Canonical   string        `json:"canonical,omitempty"`
	Cardinality int           `json:"cardinality,omitempty"`
	Authorship  string        `json:"nameAuthorship,omitempty"`
	Note        string        `json:"note,omitempty"`
	Combination string        `json:"combination"`
	Authority   string        `json:"authority,omitempty"`
	Reference   string        `json:"reference"`
	Page        string        `json:"page,omitempty"`
	Date        string        `json:"date,omitempty"`
	Confidence  string        `json:"confidence,omitempty"`
	Morphology  string        `json:"morphology,omitempty"`
	Strata      record.Strata `json:"strata"`
	Locality    string        `json:"locality,omitempty"`
	Country     string        `json:"country,omitempty"`
	UTM         string        `json:"utm,omitempty"`
	Coordinates *Coordinates  `json:"coordinates,omitempty"`
	LSIDs       []lsid.LSID   `json:"lsids,omitempty"`
	Comments    string        `json:"comments,omitempty"`
}

// Coordinates of a locality in WGS84.
type Coordinates struct {
	Latitude  string `json:"latitude"`
	Longitude string `json:"longitude"`
	OSMURL    string `json:"osmUrl"`
}

// Render implements Renderer.
func (j *jsonRenderer) Render(doc synonymy.Document) ([]byte, error) {
	res := Document{Clade: doc.Clade, Unmatched: len(doc.Unmatched)}
	for _, e := range doc.Entries {
		t := j.taxon(e.Taxon)
		for _, s := range e.Synonyms {
			syn, err := j.synonym(s)
			if err != nil {
				return nil, err
			}
			t.Synonyms = append(t.Synonyms, syn)
		}
		res.Taxa = append(res.Taxa, t)
		j.progress()
	}

	enc := gnfmt.GNjson{Pretty: true}
	bs, err := enc.Encode(res)
	if err != nil {
		return nil, EncodeError(config.FormatJSON, err)
	}
	return append(bs, '\n'), nil
}

func (j *jsonRenderer) taxon(t record.Taxon) Taxon {
	n := j.parse(t.AcceptedName)
	return Taxon{
		ID:          nameID(n.Canonical, t.AcceptedName),
		Name:        t.AcceptedName,
		Canonical:   n.Canonical,
		Cardinality: n.Cardinality,
		Authorship:  n.Authorship,
		Authority:   bib.CiteKey(t.AcceptedAuthority),
		Combination: t.Status.String(),
		Clade:       t.Clade,
		LSID:        lsid.New(t.LSID, j.LSIDBaseURL),
	}
}

func (j *jsonRenderer) synonym(s record.Synonym) (Synonym, error) {
	n := j.parse(s.IdentifiedName)
	ref := bib.CiteKey(s.Reference)
	res := Synonym{
		ID:          nameID(n.Canonical, s.IdentifiedName, ref, s.PageRef),
		Name:        s.IdentifiedName,
		Canonical:   n.Canonical,
		Cardinality: n.Cardinality,
		Authorship:  n.Authorship,
		Note:        s.IdentifiedNote,
		Combination: s.Status.String(),
		Authority:   bib.CiteKey(s.IdentifiedAuthority),
		Reference:   ref,
		Page:        s.PageRef,
		Date:        s.Date,
		Confidence:  s.Confidence,
		Morphology:  s.Morphology,
		Strata:      s.Strata,
		Locality: locality.Compose(
			locality.Litho(s.Strata), locality.Chrono(s.Strata), s.Location, "",
		),
		Country:  s.Country,
		UTM:      s.UTM,
		LSIDs:    j.lsids(s),
		Comments: s.Comments,
	}

	loc, err := coord.FromSynonym(s)
	if err != nil {
		return res, err
	}
	if loc != nil {
		res.Coordinates = &Coordinates{
			Latitude:  loc.Point.Lat(),
			Longitude: loc.Point.Lon(),
			OSMURL:    loc.Point.OSMURL(),
		}
	}
	return res, nil
}
