package coord

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gnsyn/pkg/errcode"
)

// CoordinateError is returned when coordinates of a row cannot be parsed
// or converted.
func CoordinateError(line int, value string, err error) error {
	msg := `Cannot parse coordinates at line <em>%d</em>

<em>Value:</em> %s

<em>Expected formats:</em>
  - UTM: <em>30U 495000 5623000</em>
  - decimal latitude and longitude: <em>50.7245</em>, <em>-2.9386</em>`
	vars := []any{line, value}
	return &gn.Error{
		Code: errcode.CoordinateError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("line %d: cannot parse coordinates '%s': %w", line, value, err),
	}
}
