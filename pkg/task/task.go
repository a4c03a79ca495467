// Package task defines the task and execution records exchanged with the
// task service.
package task

import (
	"fmt"
	"time"
)

// Task is a named, owned shell command with its accumulated execution history.
// The service is authoritative for every field; the ID never changes once
// assigned.
type Task struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	Owner      string      `json:"owner"`
	Command    string      `json:"command"`
	Executions []Execution `json:"taskExecutions"`
}

// Execution is one completed run of a task command. Executions are produced by
// the service and are never created or edited by the client.
type Execution struct {
	StartTime Timestamp `json:"startTime"`
	EndTime   Timestamp `json:"endTime"`
	Output    string    `json:"output"`
}

// Duration reports how long the run took. Records whose end precedes their
// start report zero.
func (e Execution) Duration() time.Duration {
	d := e.EndTime.Sub(e.StartTime.Time)
	if d < 0 {
		return 0
	}
	return d
}

// ExecutionCount returns the number of recorded runs.
func (t *Task) ExecutionCount() int {
	return len(t.Executions)
}

// LastExecution returns the newest run, if any. Executions are kept oldest
// first, so this is the final element.
func (t *Task) LastExecution() (Execution, bool) {
	if len(t.Executions) == 0 {
		return Execution{}, false
	}
	return t.Executions[len(t.Executions)-1], true
}

// Request builds the upsert body for this task, carrying its history.
func (t *Task) Request() SaveRequest {
	return SaveRequest{
		ID:         t.ID,
		Name:       t.Name,
		Owner:      t.Owner,
		Command:    t.Command,
		Executions: cloneExecutions(t.Executions),
	}
}

func (t *Task) String() string {
	return fmt.Sprintf("%s (%s) %s", t.Name, t.ID, t.Command)
}

// Clone returns a deep copy.
func (t Task) Clone() Task {
	t.Executions = cloneExecutions(t.Executions)
	return t
}

// CloneAll deep copies a task list.
func CloneAll(tasks []Task) []Task {
	if tasks == nil {
		return nil
	}
	out := make([]Task, len(tasks))
	for i := range tasks {
		out[i] = tasks[i].Clone()
	}
	return out
}

func cloneExecutions(in []Execution) []Execution {
	if len(in) == 0 {
		return nil
	}
	out := make([]Execution, len(in))
	copy(out, in)
	return out
}
