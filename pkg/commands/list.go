package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/taskr/pkg/commands/options"
	"tableflip.dev/taskr/pkg/runner/list"
)

func addList(topLevel *cobra.Command, so *options.ServiceOptions) {
	oo := &options.OutputOptions{}
	var query string

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List every task with its run count and last run.",
		Example: `
taskr list
taskr list --search backup
taskr list --json
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			oo.Out = cmd.OutOrStdout()
			s, err := newStore(so)
			if err != nil {
				return oo.HandleError(err)
			}
			l := list.List{
				Store:   s,
				Query:   query,
				JSON:    oo.JSON,
				Printer: printer(cmd),
			}
			return oo.HandleError(l.Do(cmd.Context()))
		},
	}

	cmd.Flags().StringVar(&query, "search", "", "Only show tasks whose name contains this text.")
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}

func addSearch(topLevel *cobra.Command, so *options.ServiceOptions) {
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Find tasks by name.",
		Example: `
taskr search nightly backup
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			oo.Out = cmd.OutOrStdout()
			s, err := newStore(so)
			if err != nil {
				return oo.HandleError(err)
			}
			l := list.List{
				Store:   s,
				Query:   strings.Join(args, " "),
				JSON:    oo.JSON,
				Printer: printer(cmd),
			}
			return oo.HandleError(l.Do(cmd.Context()))
		},
	}

	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
