package iospecies

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gngenes/pkg/errcode"
)

// SpeciesRegistryError creates an error for when species.yaml
// cannot be loaded.
func SpeciesRegistryError(path string, err error) error {
	msg := `Cannot load species registry

<em>Registry file:</em> %s

<em>Possible causes:</em>
  - File does not exist
  - Invalid YAML format
  - Permission denied

<em>How to fix:</em>
  1. Check if file exists: <em>ls -l %s</em>
  2. Validate YAML syntax
  3. Delete the file; a default registry is recreated on next run`

	vars := []any{path, path}

	return &gn.Error{
		Code: errcode.SpeciesRegistryError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("failed to load species registry: %w", err),
	}
}
