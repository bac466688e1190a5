package tmpl

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gnsyn/pkg/errcode"
)

// UnknownPlaceholderError is returned when a template refers to a field
// that does not exist.
func UnknownPlaceholderError(name string) error {
	msg := "Template refers to unknown field <em>%s</em>"
	vars := []any{name}
	return &gn.Error{
		Code: errcode.TemplateError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("unknown placeholder <<%s>>", name),
	}
}
