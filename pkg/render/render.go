// Package render converts an assembled synonymy document to its output
// format. LaTeX output goes through field templates, XML and JSON output
// are built from typed trees.
package render

import (
	"strings"

	"github.com/gnames/gnsyn/pkg/config"
	"github.com/gnames/gnsyn/pkg/ent/lsid"
	"github.com/gnames/gnsyn/pkg/ent/record"
	"github.com/gnames/gnsyn/pkg/names"
	"github.com/gnames/gnsyn/pkg/synonymy"
)

// Renderer writes a document in one of the output formats.
type Renderer interface {
	// Render returns the content of the output file.
	Render(doc synonymy.Document) ([]byte, error)
}

// Options configure renderers.
type Options struct {
	// LSIDBaseURL is prepended to LSIDs to create links.
	LSIDBaseURL string

	// Templates are used by LaTeX renderer. If empty, default templates
	// are used.
	Templates Templates

	// Names parses scientific names for XML and JSON output. If nil,
	// canonical forms are not provided.
	Names names.Parser

	// OnEntry is called after every rendered taxon entry.
	OnEntry func()
}

// New creates a renderer for the given format.
func New(format string, opts Options) (Renderer, error) {
	if opts.Templates == (Templates{}) {
		opts.Templates = Default()
	}

	switch format {
	case config.FormatLaTeX:
		return &latex{Options: opts}, nil
	case config.FormatXML:
		return &xmlRenderer{Options: opts}, nil
	case config.FormatJSON:
		return &jsonRenderer{Options: opts}, nil
	default:
		return nil, UnknownFormatError(format)
	}
}

func (o Options) progress() {
	if o.OnEntry != nil {
		o.OnEntry()
	}
}

// parse returns the parsed name, or an empty result if Names is nil.
func (o Options) parse(name string) names.Name {
	if o.Names == nil {
		return names.Name{}
	}
	return o.Names.Parse(name)
}

// lsids returns LSIDs of a synonym, nomenclatural act first.
func (o Options) lsids(s record.Synonym) []lsid.LSID {
	var res []lsid.LSID
	for _, v := range []string{s.LSIDAct, s.LSIDPub} {
		if l := lsid.New(v, o.LSIDBaseURL); l != nil {
			res = append(res, *l)
		}
	}
	return res
}

// nameID creates a stable identifier from the canonical form of a name
// (or the name itself if it cannot be parsed) and extra parts.
func nameID(canonical, name string, parts ...string) string {
	if canonical == "" {
		canonical = names.Plain(name)
	}
	parts = append([]string{canonical}, parts...)
	return names.ID(parts...)
}

func nonEmpty(ss ...string) bool {
	for _, v := range ss {
		if strings.TrimSpace(v) != "" {
			return true
		}
	}
	return false
}
