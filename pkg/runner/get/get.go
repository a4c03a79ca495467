// Package get provides the runner that shows task details.
package get

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"tableflip.dev/taskr/pkg/printers"
	"tableflip.dev/taskr/pkg/store"
	"tableflip.dev/taskr/pkg/task"
)

// maxInFlight bounds concurrent detail requests.
const maxInFlight = 4

// Get fetches one or more tasks by id and prints their details in the order
// the ids were given.
type Get struct {
	Store *store.Store
	IDs   []string
	JSON  bool

	Printer *printers.PrettyPrint
}

// Do fetches every id. Any failure aborts the whole request.
func (n *Get) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not get, no store")
	}
	if len(n.IDs) == 0 {
		return errors.New("can not get, no task id")
	}
	pp := n.Printer
	if pp == nil {
		pp = &printers.PrettyPrint{}
	}

	found := make([]task.Task, len(n.IDs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxInFlight)
	for i, id := range n.IDs {
		g.Go(func() error {
			t, err := n.Store.Get(gctx, id)
			if err != nil {
				return err
			}
			found[i] = t
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if n.JSON {
		if len(found) == 1 {
			return pp.JSON(found[0])
		}
		return pp.JSON(found)
	}
	for _, t := range found {
		pp.NewLine()
		pp.Task(t)
	}
	return nil
}
