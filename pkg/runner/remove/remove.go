// Package remove provides the runner that deletes a task.
package remove

import (
	"context"
	"errors"

	"tableflip.dev/taskr/pkg/printers"
	"tableflip.dev/taskr/pkg/store"
)

// Remove deletes a task. There is no undo.
type Remove struct {
	Store *store.Store
	ID    string

	Printer *printers.PrettyPrint
}

// Do deletes the task and shows the reloaded list.
func (n *Remove) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not delete, no store")
	}
	pp := n.Printer
	if pp == nil {
		pp = &printers.PrettyPrint{}
	}

	deleted, err := n.Store.Delete(ctx, n.ID)
	if err != nil && !errors.Is(err, store.ErrStaleView) {
		return err
	}
	pp.Success("Task %s deleted successfully!", deleted.ID)
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
