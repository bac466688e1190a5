package render

import (
	"strings"

	"github.com/gnames/gnsyn/pkg/ent/record"
	"github.com/gnames/gnsyn/pkg/tmpl"
)

// Default LaTeX templates. Templates are plain values, a record selects
// one of them by its status and never changes them.
const (
	headerOriginal = `\taxon{<<accepted_name>>}{<<authority>>} <<lsid>>`
	headerNew      = `\taxon{<<accepted_name>>}{(<<authority>>)} <<lsid>>`

	blockBegin = `\begin{synonymy}`
	blockEnd   = `\end{synonymy}`

	synonymOriginal = `\synonym{<<assignment_confidence>>}` +
		`{<<name>> <<note>> <<authority>>}` +
		`{<<citation>>. <<locality>> <<coordinates>>} <<lsid>>`
	synonymNew = `\synonym{<<assignment_confidence>>}` +
		`{<<name>> <<note>> (<<authority>>)}` +
		`{<<citation>>. <<locality>> <<coordinates>>} <<lsid>>`
)

// TaxonFields are placeholders available in header templates.
var TaxonFields = []string{
	"accepted_name", "accepted_authority", "accepted_status",
	"lsid_act", "clade",
	// computed
	"authority", "lsid",
}

// SynonymFields are placeholders available in synonym templates.
var SynonymFields = []string{
	"identified_name", "identified_authority", "identified_status",
	"identified_note", "accepted_name", "reference", "pageref",
	"assignment_confidence", "morphological_information",
	"bed", "member", "formation", "zone", "subzone",
	"stage", "series", "system",
	"location", "country", "utm_wgs84", "latitude", "longitude",
	"comments", "lsid_act", "lsid_pub",
	// computed
	"name", "note", "authority", "citation", "locality", "coordinates",
	"lsid", "date",
}

// Fields that must be non-empty before a template is used.
var (
	headerRequired  = []string{"accepted_name", "accepted_authority"}
	synonymRequired = []string{"identified_name", "identified_authority", "reference"}
)

// Templates for LaTeX output. Every taxon gets a header, taxa with
// synonyms also get a block of synonym lines.
type Templates struct {
	HeaderOriginal  string `yaml:"header_original"`
	HeaderNew       string `yaml:"header_new"`
	BlockBegin      string `yaml:"block_begin"`
	BlockEnd        string `yaml:"block_end"`
	SynonymOriginal string `yaml:"synonym_original"`
	SynonymNew      string `yaml:"synonym_new"`
}

// Default returns the built-in templates.
func Default() Templates {
	return Templates{
		HeaderOriginal:  headerOriginal,
		HeaderNew:       headerNew,
		BlockBegin:      blockBegin,
		BlockEnd:        blockEnd,
		SynonymOriginal: synonymOriginal,
		SynonymNew:      synonymNew,
	}
}

// Header selects the header template for a taxon status.
func (t Templates) Header(s record.Status) tmpl.Template {
	if s == record.NewCombination {
		return tmpl.New(t.HeaderNew)
	}
	return tmpl.New(t.HeaderOriginal)
}

// Synonym selects the synonym template for a synonym status.
func (t Templates) Synonym(s record.Status) tmpl.Template {
	if s == record.NewCombination {
		return tmpl.New(t.SynonymNew)
	}
	return tmpl.New(t.SynonymOriginal)
}

// Validate checks that templates only use known placeholders. Block
// templates take no placeholders.
func (t Templates) Validate() error {
	for _, v := range []string{t.HeaderOriginal, t.HeaderNew} {
		if err := tmpl.New(v).Validate(TaxonFields); err != nil {
			return err
		}
	}
	for _, v := range []string{t.SynonymOriginal, t.SynonymNew} {
		if err := tmpl.New(v).Validate(SynonymFields); err != nil {
			return err
		}
	}
	for _, v := range []string{t.BlockBegin, t.BlockEnd} {
		if err := tmpl.New(v).Validate(nil); err != nil {
			return err
		}
	}
	return nil
}

// slots creates the substitution map of a row. Known fields are always
// present, extra columns of the row are added as is.
func slots(fields map[string]string, known []string) map[string]string {
	res := make(map[string]string, len(fields)+len(known))
	for k, v := range fields {
		res[k] = v
	}
	for _, v := range known {
		if _, ok := res[v]; !ok {
			res[v] = ""
		}
	}
	for k, v := range res {
		res[k] = strings.TrimSpace(v)
	}
	return res
}
