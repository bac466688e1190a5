package matrix

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gnsyn/pkg/errcode"
)

// DuplicateError is returned when a taxon has more than one state for a
// character.
func DuplicateError(taxon string, number, first, second int) error {
	msg := `Taxon <em>%s</em> has two states for character <em>%d</em>

<em>Lines:</em> %d, %d`
	vars := []any{taxon, number, first, second}
	return &gn.Error{
		Code: errcode.MatrixError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("duplicate state of character %d for '%s' at lines %d and %d",
			number, taxon, first, second),
	}
}
