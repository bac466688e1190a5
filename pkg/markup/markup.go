// Package markup renders free-text fields written in lightweight markup
// (Markdown emphasis, code spans, links and Pandoc-style [@key] citations)
// to JATS-like XML elements or to LaTeX.
package markup

import (
	"encoding/xml"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

var md = goldmark.New()

var (
	bracketCiteRe = regexp.MustCompile(`\[(-?@[^\[\]]+)\]`)
	citeRe        = regexp.MustCompile(`(?:^|[^\w@])(-?@)([\w][\w:.#$%&+?<>~/-]*\w|\w)`)
)

// HasMarkup tells if a string contains characters that need markup
// processing.
func HasMarkup(s string) bool {
	return strings.ContainsAny(s, "*`@[_")
}

var texEscaper = strings.NewReplacer(
	`\`, `\textbackslash{}`,
	`{`, `\{`, `}`, `\}`,
	`&`, `\&`, `%`, `\%`, `$`, `\$`, `#`, `\#`, `_`, `\_`,
	`~`, `\textasciitilde{}`, `^`, `\textasciicircum{}`,
)

// EscapeLaTeX escapes characters that have a special meaning in LaTeX
// text.
func EscapeLaTeX(s string) string {
	return texEscaper.Replace(s)
}

var urlEscaper = strings.NewReplacer(`#`, `\#`, `%`, `\%`)

// EscapeURL escapes characters that break \href and \url arguments.
func EscapeURL(s string) string {
	return urlEscaper.Replace(s)
}

// Node is an XML element or a text node (when Name is empty).
type Node struct {
	Name     string
	Attrs    []xml.Attr
	Text     string
	Children []Node
}

// MarshalXML implements xml.Marshaler.
func (n Node) MarshalXML(e *xml.Encoder, _ xml.StartElement) error {
	if n.Name == "" {
		return e.EncodeToken(xml.CharData(n.Text))
	}
	start := xml.StartElement{Name: xml.Name{Local: n.Name}, Attr: n.Attrs}
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	for _, v := range n.Children {
		if err := v.MarshalXML(e, xml.StartElement{}); err != nil {
			return err
		}
	}
	return e.EncodeToken(start.End())
}

// Fragment is the content of an element rendered from markup.
type Fragment []Node

// MarshalXML implements xml.Marshaler. The fragment is wrapped into the
// start element given by the encoder.
func (f Fragment) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	for _, v := range f {
		if err := v.MarshalXML(e, xml.StartElement{}); err != nil {
			return err
		}
	}
	return e.EncodeToken(start.End())
}

// ToXML converts markup to a Fragment. Each paragraph becomes a <p>
// element.
func ToXML(s string) Fragment {
	src := []byte(s)
	doc := md.Parser().Parse(text.NewReader(src))
	var res Fragment
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		p := Node{Name: "p", Children: inlineXML(n, src)}
		res = append(res, p)
	}
	return res
}

// ToLaTeX converts markup to LaTeX. Emphasis becomes \textit or \textbf,
// code becomes \texttt, citations become \cite (bracketed) or \textcite
// (in text). Plain text is escaped. Paragraphs are separated by an empty
// line.
func ToLaTeX(s string) string {
	src := []byte(s)
	doc := md.Parser().Parse(text.NewReader(src))
	var paras []string
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		paras = append(paras, inlineLaTeX(n, src))
	}
	return strings.Join(paras, "\n\n")
}

func inlineXML(parent ast.Node, src []byte) []Node {
	var res []Node
	var pending strings.Builder
	flush := func() {
		if pending.Len() > 0 {
			res = append(res, citationsXML(pending.String())...)
			pending.Reset()
		}
	}

	for n := parent.FirstChild(); n != nil; n = n.NextSibling() {
		switch v := n.(type) {
		case *ast.Text:
			pending.WriteString(textValue(v, src))
		case *ast.String:
			pending.Write(v.Value)
		case *ast.Emphasis:
			flush()
			name := "italic"
			if v.Level > 1 {
				name = "bold"
			}
			res = append(res, Node{Name: name, Children: inlineXML(v, src)})
		case *ast.CodeSpan:
			flush()
			res = append(res, Node{
				Name:     "monospace",
				Children: []Node{{Text: plainText(v, src)}},
			})
		case *ast.Link:
			flush()
			res = append(res, Node{
				Name:     "uri",
				Attrs:    []xml.Attr{{Name: xml.Name{Local: "href"}, Value: string(v.Destination)}},
				Children: inlineXML(v, src),
			})
		case *ast.AutoLink:
			flush()
			url := string(v.URL(src))
			res = append(res, Node{
				Name:     "uri",
				Attrs:    []xml.Attr{{Name: xml.Name{Local: "href"}, Value: url}},
				Children: []Node{{Text: url}},
			})
		default:
			flush()
			res = append(res, inlineXML(v, src)...)
		}
	}
	flush()
	return res
}

func inlineLaTeX(parent ast.Node, src []byte) string {
	var res strings.Builder
	var pending strings.Builder
	flush := func() {
		if pending.Len() > 0 {
			res.WriteString(citationsLaTeX(pending.String()))
			pending.Reset()
		}
	}

	for n := parent.FirstChild(); n != nil; n = n.NextSibling() {
		switch v := n.(type) {
		case *ast.Text:
			pending.WriteString(textValue(v, src))
		case *ast.String:
			pending.Write(v.Value)
		case *ast.Emphasis:
			flush()
			cmd := `\textit{`
			if v.Level > 1 {
				cmd = `\textbf{`
			}
			res.WriteString(cmd + inlineLaTeX(v, src) + "}")
		case *ast.CodeSpan:
			flush()
			res.WriteString(`\texttt{` + EscapeLaTeX(plainText(v, src)) + "}")
		case *ast.Link:
			flush()
			res.WriteString(`\href{` + EscapeURL(string(v.Destination)) + "}{" +
				inlineLaTeX(v, src) + "}")
		case *ast.AutoLink:
			flush()
			res.WriteString(`\url{` + EscapeURL(string(v.URL(src))) + "}")
		default:
			flush()
			res.WriteString(inlineLaTeX(v, src))
		}
	}
	flush()
	return res.String()
}

func textValue(t *ast.Text, src []byte) string {
	res := string(t.Segment.Value(src))
	if t.SoftLineBreak() || t.HardLineBreak() {
		res += " "
	}
	return res
}

func plainText(n ast.Node, src []byte) string {
	var res strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			res.Write(t.Segment.Value(src))
			continue
		}
		res.WriteString(plainText(c, src))
	}
	return res.String()
}

// cite is a citation found in text.
type cite struct {
	key     string
	locator string
}

func parseCites(group string) []cite {
	var res []cite
	for _, part := range strings.Split(group, ";") {
		part = strings.TrimSpace(part)
		part = strings.TrimPrefix(part, "-")
		if !strings.HasPrefix(part, "@") {
			continue
		}
		key, loc, _ := strings.Cut(part[1:], ",")
		res = append(res, cite{
			key:     strings.TrimSpace(key),
			locator: strings.TrimSpace(loc),
		})
	}
	return res
}

func xref(c cite) Node {
	return Node{
		Name: "xref",
		Attrs: []xml.Attr{
			{Name: xml.Name{Local: "ref-type"}, Value: "bibr"},
			{Name: xml.Name{Local: "rid"}, Value: c.key},
		},
		Children: []Node{{Text: c.key}},
	}
}

func citationsXML(s string) []Node {
	var res []Node
	addText := func(t string) {
		if t != "" {
			res = append(res, inTextXML(t)...)
		}
	}

	last := 0
	for _, m := range bracketCiteRe.FindAllStringSubmatchIndex(s, -1) {
		addText(s[last:m[0]])
		cites := parseCites(s[m[2]:m[3]])
		res = append(res, Node{Text: "("})
		for i, c := range cites {
			if i > 0 {
				res = append(res, Node{Text: "; "})
			}
			res = append(res, xref(c))
			if c.locator != "" {
				res = append(res, Node{Text: ", " + c.locator})
			}
		}
		res = append(res, Node{Text: ")"})
		last = m[1]
	}
	addText(s[last:])
	return res
}

func inTextXML(s string) []Node {
	var res []Node
	last := 0
	for _, m := range citeRe.FindAllStringSubmatchIndex(s, -1) {
		// m[2] is the start of "@", text before it is kept
		if s[last:m[2]] != "" {
			res = append(res, Node{Text: s[last:m[2]]})
		}
		res = append(res, xref(cite{key: s[m[4]:m[5]]}))
		last = m[1]
	}
	if s[last:] != "" {
		res = append(res, Node{Text: s[last:]})
	}
	return res
}

func citationsLaTeX(s string) string {
	var res strings.Builder
	last := 0
	for _, m := range bracketCiteRe.FindAllStringSubmatchIndex(s, -1) {
		res.WriteString(inTextLaTeX(s[last:m[0]]))
		cites := parseCites(s[m[2]:m[3]])
		if len(cites) == 1 && cites[0].locator != "" {
			res.WriteString(`\cite[` + EscapeLaTeX(cites[0].locator) + "]{" +
				cites[0].key + "}")
		} else {
			var keys []string
			for _, c := range cites {
				keys = append(keys, c.key)
			}
			res.WriteString(`\cite{` + strings.Join(keys, ",") + "}")
		}
		last = m[1]
	}
	res.WriteString(inTextLaTeX(s[last:]))
	return res.String()
}

func inTextLaTeX(s string) string {
	var res strings.Builder
	last := 0
	for _, m := range citeRe.FindAllStringSubmatchIndex(s, -1) {
		res.WriteString(EscapeLaTeX(s[last:m[2]]))
		res.WriteString(`\textcite{` + s[m[4]:m[5]] + "}")
		last = m[1]
	}
	res.WriteString(EscapeLaTeX(s[last:]))
	return res.String()
}
