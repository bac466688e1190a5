// Package locality composes human-readable locality strings out of
// stratigraphic units, free-text location and comments.
package locality

import (
	"strings"

	"github.com/gnames/gnsyn/pkg/ent/record"
)

// Separator joins units of the same kind.
const Separator = ", "

// Litho returns non-empty lithostratigraphic units (bed, member, formation,
// zone) in this order.
func Litho(s record.Strata) []string {
	return nonEmpty(s.Bed, s.Member, s.Formation, s.Zone)
}

// Chrono returns non-empty chronostratigraphic units (stage, series,
// system) in this order.
func Chrono(s record.Strata) []string {
	return nonEmpty(s.Stage, s.Series, s.System)
}

// Strata combines litho- and chronostratigraphy. When both are present the
// result is "litho (chrono)", otherwise the one present is returned alone.
func Strata(litho, chrono []string) string {
	l := strings.Join(litho, Separator)
	c := strings.Join(chrono, Separator)
	switch {
	case l != "" && c != "":
		return l + " (" + c + ")"
	case l != "":
		return l
	default:
		return c
	}
}

// Compose builds the locality string "[<strata>; <location>.] <comments>".
// Parts that are empty are omitted, the brackets are omitted when both
// strata and location are empty. Comments are appended verbatim.
func Compose(litho, chrono []string, location, comments string) string {
	res := Strata(litho, chrono)
	location = strings.TrimSpace(location)
	switch {
	case res != "" && location != "":
		res += "; " + location
	case location != "":
		res = location
	}

	if res != "" {
		res = "[" + res + ".] "
	}
	return res + strings.TrimSpace(comments)
}

// FromSynonym composes the locality of a synonym record.
func FromSynonym(s record.Synonym) string {
	return Compose(Litho(s.Strata), Chrono(s.Strata), s.Location, s.Comments)
}

func nonEmpty(ss ...string) []string {
	var res []string
	for _, v := range ss {
		v = strings.TrimSpace(v)
		if v != "" {
			res = append(res, v)
		}
	}
	return res
}
