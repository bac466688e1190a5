package ioarchive

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gnsyn/pkg/errcode"
)

// ArchiveError is returned when the SQLite archive cannot be written.
func ArchiveError(path string, err error) error {
	msg := "Cannot write archive <em>%s</em>"
	vars := []any{path}
	return &gn.Error{
		Code: errcode.ArchiveError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("archive %s: %w", path, err),
	}
}
