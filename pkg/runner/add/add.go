// Package add provides the runner that creates a task.
package add

import (
	"context"
	"errors"

	"tableflip.dev/taskr/pkg/printers"
	"tableflip.dev/taskr/pkg/store"
	"tableflip.dev/taskr/pkg/task"
)

// Add submits a new task. Saving an id that already exists replaces that
// task; the service decides.
type Add struct {
	Store   *store.Store
	Request task.SaveRequest

	Printer *printers.PrettyPrint
}

// Do validates, saves and then shows the reloaded list.
func (n *Add) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not add, no store")
	}
	pp := n.Printer
	if pp == nil {
		pp = &printers.PrettyPrint{}
	}

	saved, err := n.Store.Create(ctx, n.Request)
	if err != nil && !errors.Is(err, store.ErrStaleView) {
		return err
	}
	pp.Success("Task %s created successfully!", saved.ID)
	if err != nil {
		pp.Warn("The task list could not be refreshed. Run \"taskr list\" to retry.")
		return err
	}

	snap := n.Store.Snapshot()
	pp.NewLine()
	pp.TitleWithCount("Tasks", len(snap.Tasks), "task")
	pp.Tasks(snap.Tasks...)
	return nil
}
