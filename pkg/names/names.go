// Package names parses scientific names with gnparser. Canonical forms are
// added to the XML and JSON output and used to build stable identifiers.
// This is a pure package - parsing is computation, not I/O.
package names

import (
	"strings"

	"github.com/gnames/gnlib/ent/nomcode"
	"github.com/gnames/gnparser"
	"github.com/gnames/gnparser/ent/parsed"
	"github.com/gnames/gnuuid"
)

// Name is the result of parsing a name-string.
type Name struct {
	// Verbatim is the name as given, without markup.
	Verbatim string
	// Parsed is false if gnparser could not parse the name.
	Parsed bool
	// Canonical is the simple canonical form, e.g. "Ichthyosaurus communis".
	Canonical string
	// Authorship is the normalized authorship if the name has one.
	Authorship string
	// Cardinality is 1 for uninomials, 2 for binomials, etc.
	Cardinality int
}

// Parser parses scientific names.
type Parser interface {
	// Parse parses a name-string. Markdown emphasis marks are ignored.
	Parse(name string) Name
}

type parser struct {
	gnp gnparser.GNparser
}

// New creates a Parser that follows the zoological code.
func New() Parser {
	return &parser{gnp: gnparser.New(parserConfig())}
}

func parserConfig() gnparser.Config {
	return gnparser.NewConfig(
		gnparser.OptCode(nomcode.Zoological),
	)
}

// Parse implements Parser.
func (p *parser) Parse(name string) Name {
	name = Plain(name)
	res := Name{Verbatim: name}
	if name == "" {
		return res
	}

	return convert(res, p.gnp.ParseName(name))
}

func convert(res Name, prs parsed.Parsed) Name {
	if !prs.Parsed || prs.Canonical == nil {
		return res
	}
	res.Parsed = true
	res.Canonical = prs.Canonical.Simple
	res.Cardinality = prs.Cardinality
	if prs.Authorship != nil {
		res.Authorship = prs.Authorship.Normalized
	}
	return res
}

// Plain removes markdown emphasis marks and extra spaces from a name.
func Plain(name string) string {
	name = strings.ReplaceAll(name, "*", "")
	name = strings.ReplaceAll(name, "_", " ")
	return strings.Join(strings.Fields(name), " ")
}

// ID creates a deterministic UUID v5 from parts.
func ID(parts ...string) string {
	return gnuuid.New(strings.Join(parts, "|")).String()
}
