// Package tmpl substitutes named placeholders in text templates.
//
// Placeholders look like <<field_name>>. All of them are replaced in a
// single pass, so a value that contains text similar to a placeholder is
// never substituted again. Templates are immutable: variants of a template
// are separate values, and a caller picks one of them for every record.
package tmpl

import (
	"regexp"
	"slices"
	"strings"
)

var placeholderRe = regexp.MustCompile(`<<([A-Za-z0-9_]+)>>`)

var (
	periodsRe    = regexp.MustCompile(`\.{2,}`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// Template is a text with <<field>> placeholders.
type Template struct {
	text   string
	fields []string
}

// New creates a Template from text.
func New(text string) Template {
	var fields []string
	for _, m := range placeholderRe.FindAllStringSubmatch(text, -1) {
		if !slices.Contains(fields, m[1]) {
			fields = append(fields, m[1])
		}
	}
	return Template{text: text, fields: fields}
}

// String returns the text of the template.
func (t Template) String() string {
	return t.text
}

// Fields returns unique placeholder names in order of appearance.
func (t Template) Fields() []string {
	return slices.Clone(t.fields)
}

// Validate checks that every placeholder is one of the known slots.
func (t Template) Validate(known []string) error {
	for _, v := range t.fields {
		if !slices.Contains(known, v) {
			return UnknownPlaceholderError(v)
		}
	}
	return nil
}

// Execute substitutes placeholders with values of slots. It returns an
// error if a placeholder has no slot. Empty values are allowed.
func (t Template) Execute(slots map[string]string) (string, error) {
	var missing string
	res := placeholderRe.ReplaceAllStringFunc(t.text, func(s string) string {
		name := s[2 : len(s)-2]
		val, ok := slots[name]
		if !ok {
			if missing == "" {
				missing = name
			}
			return s
		}
		return val
	})
	if missing != "" {
		return "", UnknownPlaceholderError(missing)
	}
	return res, nil
}

// Format executes the template and sanitizes the result.
func (t Template) Format(slots map[string]string) (string, error) {
	res, err := t.Execute(slots)
	if err != nil {
		return "", err
	}
	return Sanitize(res), nil
}

// Sanitize collapses runs of periods and of whitespace that appear when
// optional fields are empty.
func Sanitize(s string) string {
	s = periodsRe.ReplaceAllString(s, ".")
	s = whitespaceRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// Required returns the first of fields that is empty or absent in slots.
// It returns an empty string if all fields have values.
func Required(slots map[string]string, fields ...string) string {
	for _, v := range fields {
		if strings.TrimSpace(slots[v]) == "" {
			return v
		}
	}
	return ""
}
