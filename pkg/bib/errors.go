package bib

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gnsyn/pkg/errcode"
)

// LookupError is returned when a reference of a synonym cannot be dated.
func LookupError(line int, key string, err error) error {
	msg := `Cannot date reference <em>%s</em> of the synonym at line <em>%d</em>

<em>How to fix:</em>
  1. Add the entry to the bibliography file
  2. Make sure the entry has a 'date' or 'year' field`
	vars := []any{key, line}
	return &gn.Error{
		Code: errcode.LookupError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("line %d: cannot date reference %s: %w", line, key, err),
	}
}
