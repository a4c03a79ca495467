package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/taskr/pkg/commands/options"
	"tableflip.dev/taskr/pkg/runner/execute"
)

func addExec(topLevel *cobra.Command, so *options.ServiceOptions) {
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:     "exec <id>",
		Aliases: []string{"run", "execute"},
		Short:   "Run a task on the service and show its output.",
		Example: `
taskr exec t1
`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: taskCompletions(so, false),
		RunE: func(cmd *cobra.Command, args []string) error {
			oo.Out = cmd.OutOrStdout()
			s, err := newStore(so)
			if err != nil {
				return oo.HandleError(err)
			}
			x := execute.Execute{
				Store:   s,
				ID:      args[0],
				JSON:    oo.JSON,
				Printer: printer(cmd),
			}
			return oo.HandleError(x.Do(cmd.Context()))
		},
	}

	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
