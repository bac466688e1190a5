package iobib

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gnsyn/pkg/errcode"
)

// ReadFileError is returned when the bibliography cannot be opened.
func ReadFileError(path string, err error) error {
	msg := "Cannot read bibliography <em>%s</em>"
	vars := []any{path}
	return &gn.Error{
		Code: errcode.ReadFileError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot read %s: %w", path, err),
	}
}

// BibParseError is returned when the bibliography is not valid BibTeX.
func BibParseError(path string, err error) error {
	msg := "Cannot parse bibliography <em>%s</em>"
	vars := []any{path}
	return &gn.Error{
		Code: errcode.BibParseError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot parse %s: %w", path, err),
	}
}
