package render

import (
	"bytes"
	"strings"

	"github.com/gnames/gnsyn/pkg/bib"
	"github.com/gnames/gnsyn/pkg/ent/coord"
	"github.com/gnames/gnsyn/pkg/ent/locality"
	"github.com/gnames/gnsyn/pkg/ent/lsid"
	"github.com/gnames/gnsyn/pkg/ent/record"
	"github.com/gnames/gnsyn/pkg/markup"
	"github.com/gnames/gnsyn/pkg/synonymy"
	"github.com/gnames/gnsyn/pkg/tmpl"
)

type latex struct {
	Options
}

// Render implements Renderer.
func (l *latex) Render(doc synonymy.Document) ([]byte, error) {
	var buf bytes.Buffer
	for _, e := range doc.Entries {
		header, err := l.header(e.Taxon)
		if err != nil {
			return nil, err
		}
		buf.WriteString(header + "\n")

		if len(e.Synonyms) > 0 {
			buf.WriteString(l.Templates.BlockBegin + "\n")
			for _, s := range e.Synonyms {
				line, err := l.synonym(s)
				if err != nil {
					return nil, err
				}
				buf.WriteString(line + "\n")
			}
			buf.WriteString(l.Templates.BlockEnd + "\n")
		}
		buf.WriteString("\n")
		l.progress()
	}
	return buf.Bytes(), nil
}

func (l *latex) header(t record.Taxon) (string, error) {
	ss := slots(t.Fields, TaxonFields)
	ss["accepted_name"] = t.AcceptedName
	if field := tmpl.Required(ss, headerRequired...); field != "" {
		return "", FormatError("taxon", t.Line, field)
	}

	authority := citeAuthority(ss["accepted_authority"])
	escapeSlots(ss)
	ss["accepted_name"] = texText(t.AcceptedName)
	ss["authority"] = authority
	ss["lsid"] = l.lsidLinks(t.LSID)

	res, err := l.Templates.Header(t.Status).Format(ss)
	if err != nil {
		return "", RowError("taxon", t.Line, err)
	}
	return res, nil
}

func (l *latex) synonym(s record.Synonym) (string, error) {
	ss := slots(s.Fields, SynonymFields)
	if field := tmpl.Required(ss, synonymRequired...); field != "" {
		return "", FormatError("synonym", s.Line, field)
	}

	loc, err := coord.FromSynonym(s)
	if err != nil {
		return "", err
	}

	escapeSlots(ss)
	ss["name"] = texName(s.IdentifiedName)
	ss["note"] = markup.ToLaTeX(s.IdentifiedNote)
	ss["authority"] = citeAuthority(s.IdentifiedAuthority)
	ss["citation"] = citation(s.Reference, s.PageRef)
	ss["locality"] = texLocality(s)
	ss["coordinates"] = texCoordinates(loc)
	ss["lsid"] = l.lsidLinks(s.LSIDAct, s.LSIDPub)
	ss["date"] = s.Date

	res, err := l.Templates.Synonym(s.Status).Format(ss)
	if err != nil {
		return "", RowError("synonym", s.Line, err)
	}
	return res, nil
}

func (l *latex) lsidLinks(values ...string) string {
	var res []string
	for _, v := range values {
		if id := lsid.New(v, l.LSIDBaseURL); id != nil {
			res = append(res,
				`\href{`+markup.EscapeURL(id.URL)+`}{\texttt{`+
					markup.EscapeLaTeX(id.Value)+`}}`)
		}
	}
	return strings.Join(res, " ")
}

func citeAuthority(ref string) string {
	key := bib.CiteKey(ref)
	if key == "" {
		return ""
	}
	return `\citeauthor{` + key + `}, \citeyear{` + key + `}`
}

func citation(ref, page string) string {
	key := bib.CiteKey(ref)
	if page == "" {
		return `\cite{` + key + `}`
	}
	return `\cite[` + markup.EscapeLaTeX(page) + `]{` + key + `}`
}

// escapeSlots escapes raw column values used by templates directly.
func escapeSlots(ss map[string]string) {
	for k, v := range ss {
		ss[k] = markup.EscapeLaTeX(v)
	}
}

// texName italicizes a name unless it carries its own emphasis markup.
func texName(name string) string {
	if markup.HasMarkup(name) {
		return markup.ToLaTeX(name)
	}
	return `\textit{` + markup.EscapeLaTeX(name) + `}`
}

// texLocality composes locality from stratigraphic and location values. Comments are LaTeX already and are kept verbatim.
func texLocality(s record.Synonym) string {
	esc := func(ss []string) []string {
		for i := range ss {
			ss[i] = texText(ss[i])
		}
		return ss
	}
	return locality.Compose(
		esc(locality.Litho(s.Strata)),
		esc(locality.Chrono(s.Strata)),
		texText(s.Location),
		s.Comments,
	)
}

// texText converts text with markup to LaTeX and escapes plain text.
func texText(s string) string {
	if markup.HasMarkup(s) {
		return markup.ToLaTeX(s)
	}
	return markup.EscapeLaTeX(s)
}

func texCoordinates(loc *coord.Location) string {
	if loc == nil {
		return ""
	}
	p := loc.Point
	link := `\href{` + markup.EscapeURL(p.OSMURL()) + `}{` +
		p.Lat() + `, ` + p.Lon() + `}`
	if loc.Grid != nil {
		return `(UTM ` + loc.Grid.String() + `; ` + link + `)`
	}
	return `(` + link + `)`
}
