// Package mcp exposes the task store over the Model Context Protocol.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"tableflip.dev/taskr/pkg/store"
	"tableflip.dev/taskr/pkg/task"
)

// Service adapts the task store to the shapes the MCP tools return. Every
// call goes through the store so validation and refresh-after-write apply.
type Service struct {
	Store *store.Store
}

// ErrNoStore is returned when the service was built without a store.
var ErrNoStore = errors.New("task store is not configured")

// SaveOptions captures the arguments of save_task.
type SaveOptions struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Owner   string `json:"owner"`
	Command string `json:"command"`
	Update  bool   `json:"update"`
}

// TaskDTO is a transport-friendly projection of a task.
type TaskDTO struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Owner      string         `json:"owner"`
	Command    string         `json:"command"`
	RunCount   int            `json:"runCount"`
	LastRun    string         `json:"lastRun,omitempty"`
	Executions []ExecutionDTO `json:"taskExecutions"`
}

// ExecutionDTO describes one run of a task.
type ExecutionDTO struct {
	Start    string  `json:"startTime,omitempty"`
	End      string  `json:"endTime,omitempty"`
	Duration float64 `json:"durationSeconds"`
	Output   string  `json:"output"`
}

// WriteResult reports the outcome of a mutation. Warning is set when the
// write succeeded but the follow-up refresh did not.
type WriteResult struct {
	Task    TaskDTO `json:"task"`
	Count   int     `json:"count"`
	Warning string  `json:"warning,omitempty"`
}

// NewService builds a service over s.
func NewService(s *store.Store) *Service {
	return &Service{Store: s}
}

// ListTasks reloads and returns the full task list.
func (s *Service) ListTasks(ctx context.Context) ([]TaskDTO, error) {
	if s.Store == nil {
		return nil, ErrNoStore
	}
	if err := s.Store.Load(ctx); err != nil {
		return nil, err
	}
	return toDTOs(s.Store.Tasks()), nil
}

// SearchTasks returns the tasks whose names match query.
func (s *Service) SearchTasks(ctx context.Context, query string) ([]TaskDTO, error) {
	if s.Store == nil {
		return nil, ErrNoStore
	}
	if err := s.Store.Search(ctx, query); err != nil {
		return nil, err
	}
	return toDTOs(s.Store.Tasks()), nil
}

// TaskByID fetches a single task.
func (s *Service) TaskByID(ctx context.Context, id string) (TaskDTO, error) {
	if s.Store == nil {
		return TaskDTO{}, ErrNoStore
	}
	t, err := s.Store.Get(ctx, id)
	if err != nil {
		return TaskDTO{}, err
	}
	return toDTO(t), nil
}

// SaveTask creates a task, or updates it when opts.Update is set.
func (s *Service) SaveTask(ctx context.Context, opts SaveOptions) (WriteResult, error) {
	if s.Store == nil {
		return WriteResult{}, ErrNoStore
	}
	req := task.SaveRequest{
		ID:      strings.TrimSpace(opts.ID),
		Name:    opts.Name,
		Owner:   opts.Owner,
		Command: opts.Command,
	}
	if opts.Update {
		return s.written(s.Store.Update(ctx, req))
	}
	return s.written(s.Store.Create(ctx, req))
}

// DeleteTask removes a task.
func (s *Service) DeleteTask(ctx context.Context, id string) (WriteResult, error) {
	if s.Store == nil {
		return WriteResult{}, ErrNoStore
	}
	return s.written(s.Store.Delete(ctx, id))
}

// ExecuteTask runs a task and returns it with the new execution.
func (s *Service) ExecuteTask(ctx context.Context, id string) (WriteResult, error) {
	if s.Store == nil {
		return WriteResult{}, ErrNoStore
	}
	return s.written(s.Store.Execute(ctx, id))
}

func (s *Service) written(t task.Task, err error) (WriteResult, error) {
	if err != nil && !errors.Is(err, store.ErrStaleView) {
		return WriteResult{}, err
	}
	res := WriteResult{Task: toDTO(t), Count: len(s.Store.Tasks())}
	if err != nil {
		res.Warning = fmt.Sprintf("change saved, but the task list could not be refreshed: %v", err)
	}
	return res, nil
}

func toDTOs(tasks []task.Task) []TaskDTO {
	out := make([]TaskDTO, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, toDTO(t))
	}
	return out
}

func toDTO(t task.Task) TaskDTO {
	dto := TaskDTO{
		ID:         t.ID,
		Name:       t.Name,
		Owner:      t.Owner,
		Command:    t.Command,
		RunCount:   t.ExecutionCount(),
		Executions: make([]ExecutionDTO, 0, len(t.Executions)),
	}
	if last, ok := t.LastExecution(); ok && !last.StartTime.IsZero() {
		dto.LastRun = task.FormatTime(last.StartTime.Time)
	}
	for _, e := range t.Executions {
		ex := ExecutionDTO{
			Duration: e.Duration().Seconds(),
			Output:   e.Output,
		}
		if !e.StartTime.IsZero() {
			ex.Start = task.FormatTime(e.StartTime.Time)
		}
		if !e.EndTime.IsZero() {
			ex.End = task.FormatTime(e.EndTime.Time)
		}
		dto.Executions = append(dto.Executions, ex)
	}
	return dto
}
