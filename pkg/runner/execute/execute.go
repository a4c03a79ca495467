// Package execute provides the runner that triggers a remote run.
package execute

import (
	"context"
	"errors"

	"tableflip.dev/taskr/pkg/printers"
	"tableflip.dev/taskr/pkg/store"
	"tableflip.dev/taskr/pkg/task"
)

// Execute asks the service to run a task's command and prints the run it
// recorded. Nothing is executed locally.
type Execute struct {
	Store *store.Store
	ID    string
	JSON  bool

	Printer *printers.PrettyPrint
}

// Do triggers the run.
func (n *Execute) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not execute, no store")
	}
	pp := n.Printer
	if pp == nil {
		pp = &printers.PrettyPrint{}
	}

	ran, err := n.Store.Execute(ctx, n.ID)
	if err != nil && !errors.Is(err, store.ErrStaleView) {
		return err
	}

	if n.JSON {
		if jerr := pp.JSON(ran); jerr != nil {
			return jerr
		}
		return err
	}

	pp.Success("Task %s executed successfully!", ran.ID)
	if last, ok := ran.LastExecution(); ok {
		pp.NewLine()
		pp.ShowOutput = true
		pp.NumberedExecutions([]int{ran.ExecutionCount()}, []task.Execution{last})
	}
	if err != nil {
		pp.Warn("The task list could not be refreshed. Run \"taskr list\" to retry.")
	}
	return err
}
