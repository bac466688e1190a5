package render

import (
	"bytes"
	"encoding/xml"
	"strconv"

	"github.com/gnames/gnsyn/pkg/bib"
	"github.com/gnames/gnsyn/pkg/config"
	"github.com/gnames/gnsyn/pkg/ent/coord"
	"github.com/gnames/gnsyn/pkg/ent/lsid"
	"github.com/gnames/gnsyn/pkg/ent/record"
	"github.com/gnames/gnsyn/pkg/markup"
	"github.com/gnames/gnsyn/pkg/names"
	"github.com/gnames/gnsyn/pkg/synonymy"
)

type xmlRenderer struct {
	Options
}

type xmlDoc struct {
	XMLName xml.Name   `xml:"synonymy"`
	Clade   string     `xml:"clade,attr,omitempty"`
	Taxa    []xmlTaxon `xml:"taxon"`
}

type xmlTaxon struct {
	ID        string          `xml:"id,attr"`
	Clade     string          `xml:"clade,attr"`
	Name      xmlTaxonName    `xml:"taxon-name"`
	Authority *xmlRID         `xml:"authority,omitempty"`
	LSID      *xmlLSID        `xml:"lsid,omitempty"`
	Synonyms  *xmlSynonymList `xml:"synonym-list,omitempty"`
}

type xmlTaxonName struct {
	Combination string `xml:"combination,attr"`
	Canonical   string `xml:"canonical,attr,omitempty"`
	Cardinality int    `xml:"cardinality,attr,omitempty"`
	Authorship  string `xml:"authorship,attr,omitempty"`
	Value       string `xml:",chardata"`
}

type xmlRID struct {
	RID string `xml:"rid,attr"`
}

type xmlLSID struct {
	URL   string `xml:"url,attr"`
	Type  string `xml:"lsid-type,attr,omitempty"`
	Value string `xml:",chardata"`
}

type xmlSynonymList struct {
	Synonyms []xmlSynonym `xml:"synonym"`
}

type xmlSynonym struct {
	ID           string           `xml:"id,attr"`
	Morphology   string           `xml:"morphology,attr,omitempty"`
	Confidence   string           `xml:"confidence,attr,omitempty"`
	Name         markup.Node      `xml:"identified-name"`
	Authority    *xmlRID          `xml:"authority,omitempty"`
	Reference    xmlReference     `xml:"reference"`
	Location     *xmlLocation     `xml:"location,omitempty"`
	Stratigraphy *xmlStratigraphy `xml:"stratigraphy,omitempty"`
	LSIDs        []xmlLSID        `xml:"lsid"`
	Comments     *markup.Node     `xml:"comments,omitempty"`
}

type xmlReference struct {
	RID  string `xml:"rid,attr"`
	Page string `xml:"page,attr,omitempty"`
}

type xmlLocation struct {
	Locality    string          `xml:"locality,omitempty"`
	Country     string          `xml:"country-code,omitempty"`
	UTM         *xmlUTM         `xml:"utm,omitempty"`
	Coordinates *xmlCoordinates `xml:"coordinates,omitempty"`
}

type xmlUTM struct {
	Zone     string `xml:"zone"`
	Band     string `xml:"band"`
	Easting  string `xml:"easting"`
	Northing string `xml:"northing"`
}

type xmlCoordinates struct {
	OSMURL    string `xml:"osm-url,attr"`
	Latitude  string `xml:"latitude"`
	Longitude string `xml:"longitude"`
}

type xmlStratigraphy struct {
	Litho  *xmlLitho    `xml:"lithostratigraphy,omitempty"`
	Chrono *xmlChrono   `xml:"chronostratigraphy,omitempty"`
	Bio    *markup.Node `xml:"biostratigraphy,omitempty"`
}

type xmlLitho struct {
	Bed       string `xml:"bed,omitempty"`
	Member    string `xml:"member,omitempty"`
	Formation string `xml:"formation,omitempty"`
}

type xmlChrono struct {
	Stage  string `xml:"stage,omitempty"`
	Series string `xml:"series,omitempty"`
	System string `xml:"system,omitempty"`
}

// Render implements Renderer.
func (x *xmlRenderer) Render(doc synonymy.Document) ([]byte, error) {
	res := xmlDoc{Clade: doc.Clade}
	for _, e := range doc.Entries {
		t, err := x.taxon(e)
		if err != nil {
			return nil, err
		}
		res.Taxa = append(res.Taxa, t)
		x.progress()
	}

	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	enc := xml.NewEncoder(&buf)
	enc.Indent("", "\t")
	if err := enc.Encode(res); err != nil {
		return nil, EncodeError(config.FormatXML, err)
	}
	if err := enc.Close(); err != nil {
		return nil, EncodeError(config.FormatXML, err)
	}
	buf.WriteString("\n")
	return buf.Bytes(), nil
}

func (x *xmlRenderer) taxon(e synonymy.Entry) (xmlTaxon, error) {
	t := e.Taxon
	n := x.parse(t.AcceptedName)
	res := xmlTaxon{
		ID:    nameID(n.Canonical, t.AcceptedName),
		Clade: t.Clade,
		Name: xmlTaxonName{
			Combination: t.Status.String(),
			Canonical:   n.Canonical,
			Cardinality: n.Cardinality,
			Authorship:  n.Authorship,
			Value:       t.AcceptedName,
		},
		LSID: x.lsid(t.LSID),
	}
	if key := bib.CiteKey(t.AcceptedAuthority); key != "" {
		res.Authority = &xmlRID{RID: key}
	}

	if len(e.Synonyms) == 0 {
		return res, nil
	}

	res.Synonyms = &xmlSynonymList{}
	for _, s := range e.Synonyms {
		syn, err := x.synonym(s)
		if err != nil {
			return res, err
		}
		res.Synonyms.Synonyms = append(res.Synonyms.Synonyms, syn)
	}
	return res, nil
}

func (x *xmlRenderer) synonym(s record.Synonym) (xmlSynonym, error) {
	n := x.parse(s.IdentifiedName)
	ref := bib.CiteKey(s.Reference)
	res := xmlSynonym{
		ID:         nameID(n.Canonical, s.IdentifiedName, ref, s.PageRef),
		Morphology: s.Morphology,
		Confidence: s.Confidence,
		Name:       identifiedName(s, n),
		Reference:  xmlReference{RID: ref, Page: s.PageRef},
	}
	if key := bib.CiteKey(s.IdentifiedAuthority); key != "" {
		res.Authority = &xmlRID{RID: key}
	}

	loc, err := x.location(s)
	if err != nil {
		return res, err
	}
	res.Location = loc
	res.Stratigraphy = stratigraphy(s.Strata)

	for _, v := range x.lsids(s) {
		res.LSIDs = append(res.LSIDs, toXMLLSID(v))
	}

	if s.Comments != "" {
		res.Comments = &markup.Node{
			Name:     "comments",
			Children: markup.ToXML(s.Comments),
		}
	}
	return res, nil
}

func (x *xmlRenderer) lsid(value string) *xmlLSID {
	l := lsid.New(value, x.LSIDBaseURL)
	if l == nil {
		return nil
	}
	res := toXMLLSID(*l)
	return &res
}

func (x *xmlRenderer) location(s record.Synonym) (*xmlLocation, error) {
	if !nonEmpty(s.Location, s.Country, s.UTM, s.Latitude, s.Longitude) {
		return nil, nil
	}

	res := xmlLocation{Locality: s.Location, Country: s.Country}
	loc, err := coord.FromSynonym(s)
	if err != nil {
		return nil, err
	}
	if loc == nil {
		return &res, nil
	}

	if g := loc.Grid; g != nil {
		res.UTM = &xmlUTM{
			Zone:     g.Zone,
			Band:     g.Band,
			Easting:  g.Easting,
			Northing: g.Northing,
		}
	}
	res.Coordinates = &xmlCoordinates{
		OSMURL:    loc.Point.OSMURL(),
		Latitude:  loc.Point.Lat(),
		Longitude: loc.Point.Lon(),
	}
	return &res, nil
}

func toXMLLSID(l lsid.LSID) xmlLSID {
	return xmlLSID{URL: l.URL, Type: l.Kind, Value: l.Value}
}

func identifiedName(s record.Synonym, n names.Name) markup.Node {
	res := markup.Node{
		Name: "identified-name",
		Attrs: []xml.Attr{
			{Name: xml.Name{Local: "combination"}, Value: s.Status.String()},
		},
	}
	if n.Canonical != "" {
		res.Attrs = append(res.Attrs,
			xml.Attr{Name: xml.Name{Local: "canonical"}, Value: n.Canonical},
			xml.Attr{Name: xml.Name{Local: "cardinality"},
				Value: strconv.Itoa(n.Cardinality)},
		)
	}
	if n.Authorship != "" {
		res.Attrs = append(res.Attrs,
			xml.Attr{Name: xml.Name{Local: "authorship"}, Value: n.Authorship})
	}

	if markup.HasMarkup(s.IdentifiedName) {
		res.Children = markup.ToXML(s.IdentifiedName)
	} else {
		res.Children = []markup.Node{{
			Name:     "italic",
			Children: []markup.Node{{Text: s.IdentifiedName}},
		}}
	}

	if s.IdentifiedNote != "" {
		res.Children = append(res.Children, markup.Node{
			Name:     "note",
			Children: markup.ToXML(s.IdentifiedNote),
		})
	}
	return res
}

func stratigraphy(st record.Strata) *xmlStratigraphy {
	var res xmlStratigraphy
	if nonEmpty(st.Bed, st.Member, st.Formation) {
		res.Litho = &xmlLitho{
			Bed:       st.Bed,
			Member:    st.Member,
			Formation: st.Formation,
		}
	}
	if nonEmpty(st.Stage, st.Series, st.System) {
		res.Chrono = &xmlChrono{
			Stage:  st.Stage,
			Series: st.Series,
			System: st.System,
		}
	}

	bio := markup.Node{Name: "biostratigraphy"}
	for _, v := range []struct{ name, val string }{
		{"zone", st.Zone},
		{"subzone", st.Subzone},
	} {
		if v.val == "" {
			continue
		}
		bio.Children = append(bio.Children, markup.Node{
			Name:     v.name,
			Children: markup.ToXML(v.val),
		})
	}
	if len(bio.Children) > 0 {
		res.Bio = &bio
	}

	if res == (xmlStratigraphy{}) {
		return nil
	}
	return &res
}
