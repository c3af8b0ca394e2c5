package species

import (
	"fmt"
	"strings"

	"github.com/gnames/gn"
	"github.com/gnames/gngenes/pkg/errcode"
)

// UnknownSpeciesError creates an error for a species code that is
// not present in the registry.
func UnknownSpeciesError(code string, valid []string) error {
	msg := `Unrecognized species option '%s'

<em>Valid species codes:</em>
%s

<em>How to fix:</em>
  1. Run again with one of the codes above
  2. To add a species, edit species.yaml in the config directory`

	var lines []string
	for _, v := range valid {
		lines = append(lines, fmt.Sprintf("  * %s", v))
	}
	vars := []any{code, strings.Join(lines, "\n")}

	return &gn.Error{
		Code: errcode.UnknownSpeciesError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("unknown species code: %q", code),
	}
}
