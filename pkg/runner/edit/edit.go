// Package edit provides the runner that updates a task.
package edit

import (
	"context"
	"errors"

	"tableflip.dev/taskr/pkg/printers"
	"tableflip.dev/taskr/pkg/store"
	"tableflip.dev/taskr/pkg/task"
)

// Edit replaces the name, owner or command of an existing task. Nil fields
// keep their current value. Execution history is carried by the store.
type Edit struct {
	Store   *store.Store
	ID      string
	Name    *string
	Owner   *string
	Command *string

	Printer *printers.PrettyPrint
}

// Request merges the requested changes onto current.
func (n *Edit) Request(current task.Task) task.SaveRequest {
	req := task.SaveRequest{
		ID:      current.ID,
		Name:    current.Name,
		Owner:   current.Owner,
		Command: current.Command,
	}
	if n.Name != nil {
		req.Name = *n.Name
	}
	if n.Owner != nil {
		req.Owner = *n.Owner
	}
	if n.Command != nil {
		req.Command = *n.Command
	}
	return req
}

// Do fetches the task, applies the changes and saves it.
func (n *Edit) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not edit, no store")
	}
	if n.Name == nil && n.Owner == nil && n.Command == nil {
		return errors.New("nothing to change, set --name, --owner or --command")
	}
	pp := n.Printer
	if pp == nil {
		pp = &printers.PrettyPrint{}
	}

	current, err := n.Store.Get(ctx, n.ID)
	if err != nil {
		return err
	}

	saved, err := n.Store.Update(ctx, n.Request(current))
	if err != nil && !errors.Is(err, store.ErrStaleView) {
		return err
	}
	pp.Success("Task %s updated successfully!", saved.ID)
	if err != nil {
		pp.Warn("The task list could not be refreshed. Run \"taskr list\" to retry.")
		return err
	}

	pp.NewLine()
	pp.Task(saved)
	return nil
}
