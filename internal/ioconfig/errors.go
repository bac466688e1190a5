package ioconfig

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gnsyn/pkg/errcode"
)

// ReadConfigError is returned when config.yaml cannot be read or
// decoded.
func ReadConfigError(path string, err error) error {
	msg := "Cannot read config file <em>%s</em>"
	vars := []any{path}
	return &gn.Error{
		Code: errcode.ReadFileError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot read config %s: %w", path, err),
	}
}
