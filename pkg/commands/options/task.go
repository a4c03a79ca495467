package options

import (
	"github.com/spf13/cobra"
)

// TaskOptions holds the task fields given as flags.
type TaskOptions struct {
	ID      string
	Name    string
	Owner   string
	Command string
}

// TaskFlags lists the field flags in prompt order.
var TaskFlags = []string{"id", "name", "owner", "command"}

func AddTaskIDArg(cmd *cobra.Command, o *TaskOptions) {
	cmd.Flags().StringVar(&o.ID, "id", "",
		"Identifier of the task, chosen by you.")
}

func AddTaskArgs(cmd *cobra.Command, o *TaskOptions) {
	cmd.Flags().StringVarP(&o.Name, "name", "n", "",
		"Name of the task, at least 2 characters.")
	cmd.Flags().StringVarP(&o.Owner, "owner", "o", "",
		"Owner of the task, at least 2 characters.")
	cmd.Flags().StringVarP(&o.Command, "command", "c", "",
		"Shell command the service runs, at least 3 characters.")
}
