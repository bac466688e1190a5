package iotemplates

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gnsyn/pkg/errcode"
)

// ReadFileError is returned when a templates file cannot be read.
func ReadFileError(path string, err error) error {
	msg := "Cannot read templates file <em>%s</em>"
	vars := []any{path}
	return &gn.Error{
		Code: errcode.ReadFileError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot read %s: %w", path, err),
	}
}

// DecodeError is returned for a templates file that is not valid YAML.
func DecodeError(path string, err error) error {
	msg := `Cannot decode templates file <em>%s</em>

<em>Expected keys:</em> header_original, header_new, block_begin,
block_end, synonym_original, synonym_new`
	vars := []any{path}
	return &gn.Error{
		Code: errcode.TemplateError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot decode %s: %w", path, err),
	}
}
