package render

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gnsyn/pkg/errcode"
)

// FormatError is returned when a row misses a field required by its
// template.
func FormatError(kind string, line int, field string) error {
	msg := "Cannot format %s at line <em>%d</em>: field <em>%s</em> is empty"
	vars := []any{kind, line, field}
	return &gn.Error{
		Code: errcode.FormatError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("%s line %d: required field '%s' is empty", kind, line, field),
	}
}

// RowError adds the row number to a formatting failure.
func RowError(kind string, line int, err error) error {
	msg := "Cannot format %s at line <em>%d</em>"
	vars := []any{kind, line}
	return &gn.Error{
		Code: errcode.FormatError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("%s line %d: %w", kind, line, err),
	}
}

// EncodeError is returned when a document cannot be encoded.
func EncodeError(format string, err error) error {
	msg := "Cannot encode <em>%s</em> document"
	vars := []any{format}
	return &gn.Error{
		Code: errcode.FormatError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("encode %s: %w", format, err),
	}
}

// UnknownFormatError is returned for an unsupported output format.
func UnknownFormatError(format string) error {
	msg := "Unknown output format <em>%s</em>"
	vars := []any{format}
	return &gn.Error{
		Code: errcode.UsageError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("unknown format '%s'", format),
	}
}
