package world

import (
	"fmt"

	"github.com/pixil98/go-errors"
)

const (
	EnvironmentNormal = "normal"
	EnvironmentNether = "nether"
	EnvironmentEnd    = "the_end"
)

// Definition describes a world the directory manages.
type Definition struct {
	Environment string `json:"environment"`
	Generator   string `json:"generator,omitempty"`
	Seed        int64  `json:"seed,omitempty"`
}

// Validate satisfies storage.ValidatingSpec.
func (d *Definition) Validate() error {
	if d == nil {
		return fmt.Errorf("spec is required")
	}

	el := errors.NewErrorList()

	switch d.Environment {
	case EnvironmentNormal, EnvironmentNether, EnvironmentEnd:
		// valid
	case "":
		el.Add(fmt.Errorf("environment is required (must be %s, %s, or %s)",
			EnvironmentNormal, EnvironmentNether, EnvironmentEnd))
	default:
		el.Add(fmt.Errorf("invalid environment: %s (must be %s, %s, or %s)",
			d.Environment, EnvironmentNormal, EnvironmentNether, EnvironmentEnd))
	}

	return el.Err()
}
