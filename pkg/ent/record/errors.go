package record

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gnsyn/pkg/errcode"
)

// RequiredFieldError is returned when a mandatory field of a row is empty.
func RequiredFieldError(line int, field string) error {
	msg := "Row at line <em>%d</em> has empty required field <em>%s</em>"
	vars := []any{line, field}
	return &gn.Error{
		Code: errcode.RequiredFieldError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("line %d: field %s cannot be empty", line, field),
	}
}
