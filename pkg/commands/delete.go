package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/taskr/pkg/commands/options"
	"tableflip.dev/taskr/pkg/runner/remove"
)

func addDelete(topLevel *cobra.Command, so *options.ServiceOptions) {
	cmd := &cobra.Command{
		Use:               "delete <id>",
		Aliases:           []string{"rm", "remove"},
		Short:             "Delete a task.",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: taskCompletions(so, false),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newStore(so)
			if err != nil {
				return err
			}
			r := remove.Remove{
				Store:   s,
				ID:      args[0],
				Printer: printer(cmd),
			}
			return r.Do(cmd.Context())
		},
	}

	topLevel.AddCommand(cmd)
}
