package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/taskr/pkg/commands/options"
	"tableflip.dev/taskr/pkg/runner/history"
	"tableflip.dev/taskr/pkg/timeutil"
)

func addHistory(topLevel *cobra.Command, so *options.ServiceOptions) {
	oo := &options.OutputOptions{}
	h := &history.History{}
	var since string

	cmd := &cobra.Command{
		Use:   "history <id>",
		Short: "Show the executions of a task, oldest first.",
		Example: `
taskr history t1
taskr history t1 --last --output
taskr history t1 --since 1d12h
`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: taskCompletions(so, false),
		RunE: func(cmd *cobra.Command, args []string) error {
			oo.Out = cmd.OutOrStdout()
			window, err := timeutil.ParseWindow(since)
			if err != nil {
				return oo.HandleError(err)
			}
			s, err := newStore(so)
			if err != nil {
				return oo.HandleError(err)
			}
			h.Store = s
			h.ID = args[0]
			h.Since = window
			h.JSON = oo.JSON
			h.Printer = printer(cmd)
			return oo.HandleError(h.Do(cmd.Context()))
		},
	}

	cmd.Flags().BoolVar(&h.Last, "last", false, "Only show the newest execution.")
	cmd.Flags().StringVar(&since, "since", "", "Only show executions started within this window, e.g. 90m, 3d or 1w2d.")
	cmd.Flags().BoolVar(&h.Output, "output", false, "Show the full captured output of each execution.")
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
