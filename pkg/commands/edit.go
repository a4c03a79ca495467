package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/taskr/pkg/commands/options"
	"tableflip.dev/taskr/pkg/runner/edit"
	"tableflip.dev/taskr/pkg/snake"
)

func addEdit(topLevel *cobra.Command, so *options.ServiceOptions) {
	to := &options.TaskOptions{}
	i := &options.InteractiveOptions{}

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change the name, owner or command of a task.",
		Long: options.Wrap80(`Change the name, owner or command of a task. Fields that are not given
keep their current value and the execution history is kept.`),
		Example: `
taskr edit t1 --owner bob
taskr edit t1 -i
`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: taskCompletions(so, false),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newStore(so)
			if err != nil {
				return err
			}

			if i.Interactive {
				current, err := s.Get(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				// Offer the current values as prompt defaults.
				seed := map[string]string{"name": current.Name, "owner": current.Owner, "command": current.Command}
				for name, value := range seed {
					if f := cmd.Flags().Lookup(name); f != nil && !f.Changed {
						_ = f.Value.Set(value)
					}
				}
				if err := snake.PromptFlags(cmd, options.TaskFlags[1:], fieldValidators()); err != nil {
					return err
				}
			}

			e := edit.Edit{
				Store:   s,
				ID:      args[0],
				Printer: printer(cmd),
			}
			if cmd.Flags().Changed("name") {
				e.Name = &to.Name
			}
			if cmd.Flags().Changed("owner") {
				e.Owner = &to.Owner
			}
			if cmd.Flags().Changed("command") {
				e.Command = &to.Command
			}
			return e.Do(cmd.Context())
		},
	}

	options.AddTaskArgs(cmd, to)
	options.InteractiveArgs(cmd, i)

	topLevel.AddCommand(cmd)
}
