// Package list provides the runner that shows all tasks or a search result.
package list

import (
	"context"
	"errors"

	"tableflip.dev/taskr/pkg/printers"
	"tableflip.dev/taskr/pkg/store"
)

// List loads the full task list, or the tasks matching Query, and prints it.
type List struct {
	Store *store.Store
	Query string
	JSON  bool

	Printer *printers.PrettyPrint
}

// Do runs the load or search against the service.
func (n *List) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not list, no store")
	}
	pp := n.Printer
	if pp == nil {
		pp = &printers.PrettyPrint{}
	}

	if n.Query != "" {
		if err := n.Store.Search(ctx, n.Query); err != nil {
			return err
		}
	} else if err := n.Store.Load(ctx); err != nil {
		return err
	}

	snap := n.Store.Snapshot()
	if n.JSON {
		return pp.JSON(snap.Tasks)
	}

	pp.NewLine()
	if snap.Searching() {
		pp.TitleWithCount("Tasks matching \""+snap.Query+"\"", len(snap.Tasks), "task")
	} else {
		pp.TitleWithCount("Tasks", len(snap.Tasks), "task")
	}
	pp.Tasks(snap.Tasks...)
	if snap.Searching() && len(snap.Tasks) == 0 {
		pp.Info("No tasks found matching your search")
	}
	return nil
}
