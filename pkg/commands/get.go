package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/taskr/pkg/commands/options"
	"tableflip.dev/taskr/pkg/runner/get"
)

func addGet(topLevel *cobra.Command, so *options.ServiceOptions) {
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "get <id>...",
		Short: "Show tasks with their execution history.",
		Example: `
taskr get t1
taskr get t1 t2 --json
`,
		Args:              cobra.MinimumNArgs(1),
		ValidArgsFunction: taskCompletions(so, true),
		RunE: func(cmd *cobra.Command, args []string) error {
			oo.Out = cmd.OutOrStdout()
			s, err := newStore(so)
			if err != nil {
				return oo.HandleError(err)
			}
			g := get.Get{
				Store:   s,
				IDs:     args,
				JSON:    oo.JSON,
				Printer: printer(cmd),
			}
			return oo.HandleError(g.Do(cmd.Context()))
		},
	}

	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
