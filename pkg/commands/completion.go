package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/taskr/pkg/commands/options"
)

func addCompletions(topLevel *cobra.Command, so *options.ServiceOptions) {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish]",
		Short: "Generates shell completion scripts",
		Long: `To load completion run

. <(taskr completion)

To configure your bash shell to load completions for each session add to your bashrc

# ~/.bashrc or ~/.profile
. <(taskr completion)
`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"bash", "zsh", "fish"},
		RunE: func(cmd *cobra.Command, args []string) error {
			shell := "bash"
			if len(args) > 0 {
				shell = args[0]
			}
			out := cmd.OutOrStdout()
			switch shell {
			case "zsh":
				return topLevel.GenZshCompletion(out)
			case "fish":
				return topLevel.GenFishCompletion(out, true)
			default:
				return topLevel.GenBashCompletionV2(out, true)
			}
		},
	}

	topLevel.AddCommand(cmd)
}

// taskCompletions offers task ids, with names as descriptions. Unless many is
// set only the first argument is completed.
func taskCompletions(so *options.ServiceOptions, many bool) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) > 0 && !many {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		s, err := newStore(so)
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		if err := s.Load(ctx); err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
		var ids []string
		for _, t := range s.Tasks() {
			if strings.HasPrefix(t.ID, toComplete) {
				ids = append(ids, t.ID+"\t"+t.Name)
			}
		}
		return ids, cobra.ShellCompDirectiveNoFileComp
	}
}
