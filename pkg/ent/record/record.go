// Package record defines taxa and synonym records read from tabular files.
//
// Records are created once per input row and never modified afterwards,
// with the exception of the publication date that is attached to synonyms
// after the bibliography lookup.
package record

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Row is one line of a tabular file with its fields keyed by column name.
type Row struct {
	// Line is the 1-based line number in the source file.
	Line int
	// Fields maps column names to cell values.
	Fields map[string]string
}

// Get returns a trimmed value of a field, or an empty string if the column
// does not exist.
func (r Row) Get(field string) string {
	return strings.TrimSpace(r.Fields[field])
}

// Taxon is an accepted name with its bookkeeping.
type Taxon struct {
	// Line of the taxon in the taxa file.
	Line int
	// AcceptedName is the primary key of a taxon within a file.
	AcceptedName string
	// AcceptedAuthority is a citation key of the authority.
	AcceptedAuthority string
	// Status tells if the name is a new combination.
	Status Status
	// LSID is an optional ZooBank nomenclatural act identifier.
	LSID string
	// Clade is a label used to filter taxa.
	Clade string
	// Fields keep all the cells of the row for template substitution.
	Fields map[string]string
}

// Strata holds stratigraphic units of a locality.
type Strata struct {
	Bed       string `json:"bed,omitempty"`
	Member    string `json:"member,omitempty"`
	Formation string `json:"formation,omitempty"`
	Zone      string `json:"zone,omitempty"`
	Subzone   string `json:"subzone,omitempty"`
	Stage     string `json:"stage,omitempty"`
	Series    string `json:"series,omitempty"`
	System    string `json:"system,omitempty"`
}

// Synonym is a name previously used for a taxon, with its citation and
// locality.
type Synonym struct {
	// Line of the synonym in the synonymy file.
	Line int
	// Index is the 0-based position of the synonym in the input.
	Index int

	IdentifiedName      string
	IdentifiedAuthority string
	IdentifiedNote      string
	Status              Status

	// AcceptedName links the synonym to a Taxon.
	AcceptedName string

	// Reference is a citation key of the publication.
	Reference string
	PageRef   string

	Confidence string
	Morphology string

	Strata Strata

	Location  string
	Country   string
	UTM       string
	Latitude  string
	Longitude string

	Comments string
	LSIDAct  string
	LSIDPub  string

	// Date is the publication date of the Reference. It is used only for
	// sorting and stays empty when no bibliography is given.
	Date string

	// Fields keep all the cells of the row for template substitution.
	Fields map[string]string
}

// NewTaxon creates a Taxon from a row of the taxa file.
func NewTaxon(r Row) (Taxon, error) {
	res := Taxon{
		Line:              r.Line,
		AcceptedName:      r.Get("accepted_name"),
		AcceptedAuthority: r.Get("accepted_authority"),
		Status:            NewStatus(r.Get("accepted_status")),
		LSID:              r.Get("lsid_act"),
		Clade:             r.Get("clade"),
		Fields:            r.Fields,
	}
	if res.AcceptedName == "" {
		return res, RequiredFieldError(r.Line, "accepted_name")
	}
	return res, nil
}

// NewSynonym creates a Synonym from a row of the synonymy file. The index
// is the position of the row among synonyms.
func NewSynonym(r Row, index int) (Synonym, error) {
	res := Synonym{
		Line:                r.Line,
		Index:               index,
		IdentifiedName:      r.Get("identified_name"),
		IdentifiedAuthority: r.Get("identified_authority"),
		IdentifiedNote:      r.Get("identified_note"),
		Status:              NewStatus(r.Get("identified_status")),
		AcceptedName:        r.Get("accepted_name"),
		Reference:           r.Get("reference"),
		PageRef:             r.Get("pageref"),
		Confidence:          r.Get("assignment_confidence"),
		Morphology:          r.Get("morphological_information"),
		Strata: Strata{
			Bed:       r.Get("bed"),
			Member:    r.Get("member"),
			Formation: r.Get("formation"),
			Zone:      r.Get("zone"),
			Subzone:   r.Get("subzone"),
			Stage:     r.Get("stage"),
			Series:    r.Get("series"),
			System:    r.Get("system"),
		},
		Location:  r.Get("location"),
		Country:   r.Get("country"),
		UTM:       r.Get("utm_wgs84"),
		Latitude:  r.Get("latitude"),
		Longitude: r.Get("longitude"),
		Comments:  r.Get("comments"),
		LSIDAct:   r.Get("lsid_act"),
		LSIDPub:   r.Get("lsid_pub"),
		Fields:    r.Fields,
	}

	for _, v := range []struct{ field, val string }{
		{"identified_name", res.IdentifiedName},
		{"accepted_name", res.AcceptedName},
		{"reference", res.Reference},
	} {
		if v.val == "" {
			return res, RequiredFieldError(r.Line, v.field)
		}
	}
	return res, nil
}

// Key normalizes a name for joining taxa and synonyms.
func Key(name string) string {
	return norm.NFC.String(strings.TrimSpace(name))
}

// Key returns the join key of a taxon.
func (t Taxon) Key() string {
	return Key(t.AcceptedName)
}

// Key returns the join key of a synonym.
func (s Synonym) Key() string {
	return Key(s.AcceptedName)
}
