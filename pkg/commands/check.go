package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/taskr/pkg/runner/check"
)

func addCheck(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "check [command]",
		Short: "Check a command locally without saving it.",
		Long: `Check a command against the rules add and edit apply, without contacting
the service. With no command, print the rules.`,
		Example: `
taskr check "tar czf /tmp/b.tgz /srv"
taskr check
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := check.Check{
				Command: strings.Join(args, " "),
				Printer: printer(cmd),
			}
			return c.Do(cmd.Context())
		},
	}

	topLevel.AddCommand(cmd)
}
