package iotable

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gnsyn/pkg/errcode"
)

// ReadFileError is returned when an input file cannot be opened.
func ReadFileError(path string, err error) error {
	msg := "Cannot read <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ReadFileError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot read %s: %w", fn.Name(), path, err),
	}
}

// ParseRowError is returned when a row of a file cannot be parsed,
// usually because its number of fields differs from the header.
func ParseRowError(path string, line int, err error) error {
	msg := `Cannot parse <em>%s</em> at line <em>%d</em>

<em>How to fix:</em>
  1. Make sure every row has as many fields as the header
  2. Check the delimiter (<em>input.delimiter</em> in config)`
	vars := []any{path, line}
	return &gn.Error{
		Code: errcode.ParseRowError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("%s line %d: %w", path, line, err),
	}
}
