package synonymy

import (
	"fmt"
	"strings"

	"github.com/gnames/gn"
	"github.com/gnames/gnsyn/pkg/ent/record"
	"github.com/gnames/gnsyn/pkg/errcode"
)

// UnmatchedSynonymError is returned when synonyms refer to accepted names
// that are not in the taxa file and the policy is "fail".
func UnmatchedSynonymError(syns []record.Synonym) error {
	var lines []string
	var nums []string
	for _, v := range syns {
		lines = append(lines,
			fmt.Sprintf("  - line %d: %s -> %s", v.Line, v.IdentifiedName, v.AcceptedName))
		nums = append(nums, fmt.Sprintf("%d", v.Line))
	}
	msg := `Synonyms refer to unknown accepted names

%s

<em>How to fix:</em>
  1. Fix accepted_name of the synonyms or add the taxa
  2. Use <em>--unmatched warn</em> to skip them`
	vars := []any{strings.Join(lines, "\n")}
	return &gn.Error{
		Code: errcode.UnmatchedSynonymError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("%d unmatched synonyms at lines %s",
			len(syns), strings.Join(nums, ", ")),
	}
}
