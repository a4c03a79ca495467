// Package snake prompts for command flags the user left out.
package snake

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Validator checks a single answer before it is accepted.
type Validator func(string) error

// PromptFlags asks, in order, for every named flag that was not given on the
// command line and sets it from the answer. Flags the user did pass are left
// alone.
func PromptFlags(cmd *cobra.Command, names []string, validators map[string]Validator) error {
	for _, name := range names {
		f := cmd.Flags().Lookup(name)
		if f == nil {
			return fmt.Errorf("snake: unknown flag %q", name)
		}
		if f.Changed {
			continue
		}
		answer, err := PromptFlagString(cmd, f, validators[name])
		if err != nil {
			return err
		}
		if err := cmd.Flags().Set(name, answer); err != nil {
			return err
		}
	}
	return nil
}
