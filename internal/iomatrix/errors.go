package iomatrix

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gnsyn/pkg/errcode"
)

// MissingColumnError is returned when a character-state file lacks one
// of the required columns.
func MissingColumnError(path, column string) error {
	msg := `File <em>%s</em> has no <em>%s</em> column

<em>Required columns:</em> Taxon, Number, State`
	vars := []any{path, column}
	return &gn.Error{
		Code: errcode.MatrixError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("%s: missing column '%s'", path, column),
	}
}

// NumberError is returned when a character number is not an integer.
func NumberError(path string, line int, value string, err error) error {
	msg := "Character number <em>%s</em> at line <em>%d</em> of %s is not an integer"
	vars := []any{value, line, path}
	return &gn.Error{
		Code: errcode.MatrixError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("%s line %d: bad number '%s': %w", path, line, value, err),
	}
}
