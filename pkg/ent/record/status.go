package record

import "strings"

// Status tells if a name is cited in its original combination or as a new
// combination.
type Status int

const (
	// OriginalCombination is the default status.
	OriginalCombination Status = iota
	// NewCombination marks a name moved to a different genus.
	NewCombination
)

// NewStatus converts a status flag from a table to Status.
// Recognizes "ncomb", "new combination", "new_combination", "comb. nov."
// and "n. comb." case-insensitively. Anything else is an original
// combination.
func NewStatus(s string) Status {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "ncomb", "new combination", "new_combination", "new",
		"comb. nov.", "comb. nov", "n. comb.", "n. comb":
		return NewCombination
	default:
		return OriginalCombination
	}
}

// String returns the value used for the "combination" attribute in XML.
func (s Status) String() string {
	if s == NewCombination {
		return "new"
	}
	return "original"
}
