// Package history provides the runner that lists a task's executions.
package history

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/taskr/pkg/printers"
	"tableflip.dev/taskr/pkg/store"
	"tableflip.dev/taskr/pkg/task"
	"tableflip.dev/taskr/pkg/timeutil"
)

// History prints the executions recorded for a task, oldest first.
type History struct {
	Store *store.Store
	ID    string
	// Last limits the output to the newest execution.
	Last bool
	// Since drops executions that started longer ago than this. Zero keeps all.
	Since time.Duration
	// Output prints full captured output instead of the first line.
	Output bool
	JSON   bool

	Printer *printers.PrettyPrint
}

// Do fetches the task and prints its history.
func (n *History) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not show history, no store")
	}
	pp := n.Printer
	if pp == nil {
		pp = &printers.PrettyPrint{}
	}

	t, err := n.Store.Get(ctx, n.ID)
	if err != nil {
		return err
	}

	var (
		nums  []int
		execs []task.Execution
	)
	now := time.Now()
	for i, e := range t.Executions {
		if timeutil.Since(e.StartTime.Time, n.Since, now) {
			nums = append(nums, i+1)
			execs = append(execs, e)
		}
	}
	if n.Last && len(execs) > 0 {
		nums = nums[len(nums)-1:]
		execs = execs[len(execs)-1:]
	}

	if n.JSON {
		if execs == nil {
			execs = []task.Execution{}
		}
		return pp.JSON(execs)
	}

	pp.NewLine()
	title := t.Name
	if n.Since > 0 {
		title = fmt.Sprintf("%s, last %s", t.Name, timeutil.FormatWindow(n.Since))
	}
	pp.TitleWithCount(title, len(execs), "run")
	if len(execs) != len(t.Executions) {
		pp.Info(" showing %d of %d", len(execs), len(t.Executions))
	}
	pp.ShowOutput = n.Output || n.Last
	pp.NumberedExecutions(nums, execs)
	return nil
}
