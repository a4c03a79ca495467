package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/taskr/pkg/commands/options"
	"tableflip.dev/taskr/pkg/guard"
	"tableflip.dev/taskr/pkg/runner/add"
	"tableflip.dev/taskr/pkg/snake"
	"tableflip.dev/taskr/pkg/task"
)

func addAdd(topLevel *cobra.Command, so *options.ServiceOptions) {
	to := &options.TaskOptions{}
	i := &options.InteractiveOptions{}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a task.",
		Long: options.Wrap80(`Create a task on the service. Commands that name a destructive program
(rm, del, format, fdisk, mkfs, dd, shutdown, reboot, halt) or chain commands
with &&, ||, ; or | are rejected before anything is sent.`),
		Example: `
taskr add --id t1 --name Backup --owner alice --command "tar czf /tmp/b.tgz /srv"
taskr add -i
`,
		Args: cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if i.Interactive {
				return snake.PromptFlags(cmd, options.TaskFlags, fieldValidators())
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newStore(so)
			if err != nil {
				return err
			}
			a := add.Add{
				Store: s,
				Request: task.SaveRequest{
					ID:      to.ID,
					Name:    to.Name,
					Owner:   to.Owner,
					Command: to.Command,
				},
				Printer: printer(cmd),
			}
			return a.Do(cmd.Context())
		},
	}

	options.AddTaskIDArg(cmd, to)
	options.AddTaskArgs(cmd, to)
	options.InteractiveArgs(cmd, i)

	topLevel.AddCommand(cmd)
}

// fieldValidators checks prompt answers with the same rules the store applies.
func fieldValidators() map[string]snake.Validator {
	v := map[string]snake.Validator{}
	for _, field := range options.TaskFlags {
		v[field] = func(value string) error {
			return task.CheckField(field, value)
		}
	}
	v["command"] = func(value string) error {
		if err := task.CheckField("command", value); err != nil {
			return err
		}
		return guard.Check(value)
	}
	return v
}
