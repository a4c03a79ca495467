// Package store holds the client's view of the task collection and keeps it
// consistent with the task service.
//
// The service is the only source of truth. Every successful write is followed
// by a full reload of the list; the store never patches its list locally, so
// what it shows is never ahead of, or diverged from, the service for longer
// than one round trip.
package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"tableflip.dev/taskr/pkg/guard"
	"tableflip.dev/taskr/pkg/task"
)

//go:generate mockgen -destination=mock_taskapi_test.go -package=store . TaskAPI

// TaskAPI is the remote task service as seen by the store.
type TaskAPI interface {
	ListAll(ctx context.Context) ([]task.Task, error)
	GetByID(ctx context.Context, id string) (task.Task, error)
	Save(ctx context.Context, req task.SaveRequest) (task.Task, error)
	DeleteByID(ctx context.Context, id string) (task.Task, error)
	SearchByName(ctx context.Context, query string) ([]task.Task, error)
	ExecuteByID(ctx context.Context, id string) (task.Task, error)
}

// State is the store's activity.
type State int

const (
	// StateIdle means the list reflects the last successful load or search.
	StateIdle State = iota
	// StateLoading means a full list load is in flight.
	StateLoading
	// StateSearching means a filtered load is in flight.
	StateSearching
	// StateError means the last load failed; Retry reloads.
	StateError
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateSearching:
		return "searching"
	case StateError:
		return "error"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// ErrEmptyQuery is returned by Search for a blank query. No request is made.
var ErrEmptyQuery = fmt.Errorf("please enter a search term: %w", task.ErrValidation)

// ErrStaleView is matched when a write succeeded but the reload that should
// have followed it did not.
var ErrStaleView = errors.New("task list is out of date")

// StaleViewError reports a write that reached the service whose follow-up
// reload failed. The displayed list predates the write.
type StaleViewError struct {
	Op  string
	Err error
}

func (e *StaleViewError) Error() string {
	return fmt.Sprintf("%s succeeded but reloading tasks failed: %v", e.Op, e.Err)
}

func (e *StaleViewError) Unwrap() error { return e.Err }

func (e *StaleViewError) Is(target error) bool { return target == ErrStaleView }

// Snapshot is a copy of the store's state.
type Snapshot struct {
	Tasks []task.Task
	State State
	// Query is the active search, empty when the full list is shown.
	Query string
	// Err is the last load failure while State is StateError.
	Err error
	// Loaded is true once any load or search has succeeded.
	Loaded bool
}

// Searching reports whether the list holds search results.
func (s Snapshot) Searching() bool {
	return s.Query != ""
}

// Store owns the in-memory task list. Create one per session with New; it is
// safe for concurrent use, and operations run one at a time in issue order.
type Store struct {
	api TaskAPI
	log *slog.Logger

	// op serialises operations so a write and its reload are never
	// interleaved with another operation.
	op sync.Mutex

	mu     sync.RWMutex
	tasks  []task.Task
	state  State
	query  string
	err    error
	loaded bool

	subs   map[int]chan Event
	nextID int
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger for failed operations.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.log = l
		}
	}
}

// New returns an empty store backed by api.
func New(api TaskAPI, opts ...Option) *Store {
	s := &Store{
		api:  api,
		log:  slog.Default(),
		subs: make(map[int]chan Event),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{
		Tasks:  task.CloneAll(s.tasks),
		State:  s.state,
		Query:  s.query,
		Err:    s.err,
		Loaded: s.loaded,
	}
}

// Tasks returns a copy of the displayed list.
func (s *Store) Tasks() []task.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return task.CloneAll(s.tasks)
}

// Find looks up a task in the displayed list.
func (s *Store) Find(id string) (task.Task, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.tasks {
		if t.ID == id {
			return t.Clone(), true
		}
	}
	return task.Task{}, false
}

// Load replaces the list with the service's full list. On failure the store
// enters StateError and keeps whatever it was showing.
func (s *Store) Load(ctx context.Context) error {
	s.op.Lock()
	defer s.op.Unlock()
	return s.load(ctx)
}

// Retry is the user-initiated reload offered in StateError.
func (s *Store) Retry(ctx context.Context) error {
	return s.Load(ctx)
}

// Search replaces the list with the tasks whose names match query. Every
// search goes to the service; a blank query is rejected locally.
func (s *Store) Search(ctx context.Context, query string) error {
	query = strings.TrimSpace(query)
	if query == "" {
		return ErrEmptyQuery
	}

	s.op.Lock()
	defer s.op.Unlock()

	prev := s.setState(StateSearching)
	found, err := s.api.SearchByName(ctx, query)
	if err != nil {
		s.log.Error("search tasks failed", "query", query, "error", err)
		s.setState(prev)
		s.emit(Event{Type: EventFailed, State: prev, Err: err})
		return fmt.Errorf("search tasks: %w", err)
	}
	s.replace(found, query)
	return nil
}

// ClearSearch drops the active search and reloads the full list from the
// service. It does not restore any earlier copy.
func (s *Store) ClearSearch(ctx context.Context) error {
	return s.Load(ctx)
}

// Get fetches one task for a details view. The displayed list is unchanged.
func (s *Store) Get(ctx context.Context, id string) (task.Task, error) {
	if err := task.CheckField("id", id); err != nil {
		return task.Task{}, err
	}
	return s.api.GetByID(ctx, strings.TrimSpace(id))
}

// Create submits a new task. The request is checked locally first; nothing
// is sent when it fails the field constraints or the command guard.
func (s *Store) Create(ctx context.Context, req task.SaveRequest) (task.Task, error) {
	if err := checkRequest(req); err != nil {
		return task.Task{}, err
	}

	s.op.Lock()
	defer s.op.Unlock()

	saved, err := s.api.Save(ctx, req)
	if err != nil {
		s.log.Error("create task failed", "id", req.ID, "error", err)
		return task.Task{}, fmt.Errorf("create task: %w", err)
	}
	return saved, s.reload(ctx, "create task")
}

// Update replaces name, owner and command of an existing task. The save
// carries the task's current execution history as read from the service, so
// the replace never drops executions.
func (s *Store) Update(ctx context.Context, req task.SaveRequest) (task.Task, error) {
	if err := checkRequest(req); err != nil {
		return task.Task{}, err
	}

	s.op.Lock()
	defer s.op.Unlock()

	current, err := s.api.GetByID(ctx, req.ID)
	if err != nil {
		s.log.Error("update task failed", "id", req.ID, "error", err)
		return task.Task{}, fmt.Errorf("update task: %w", err)
	}
	req.Executions = current.Request().Executions

	saved, err := s.api.Save(ctx, req)
	if err != nil {
		s.log.Error("update task failed", "id", req.ID, "error", err)
		return task.Task{}, fmt.Errorf("update task: %w", err)
	}
	return saved, s.reload(ctx, "update task")
}

// Delete removes a task and returns the deleted representation.
func (s *Store) Delete(ctx context.Context, id string) (task.Task, error) {
	if err := task.CheckField("id", id); err != nil {
		return task.Task{}, err
	}

	s.op.Lock()
	defer s.op.Unlock()

	deleted, err := s.api.DeleteByID(ctx, id)
	if err != nil {
		s.log.Error("delete task failed", "id", id, "error", err)
		return task.Task{}, fmt.Errorf("delete task: %w", err)
	}
	return deleted, s.reload(ctx, "delete task")
}

// Execute asks the service to run a task and returns it with the new
// execution appended.
func (s *Store) Execute(ctx context.Context, id string) (task.Task, error) {
	if err := task.CheckField("id", id); err != nil {
		return task.Task{}, err
	}

	s.op.Lock()
	defer s.op.Unlock()

	ran, err := s.api.ExecuteByID(ctx, id)
	if err != nil {
		s.log.Error("execute task failed", "id", id, "error", err)
		return task.Task{}, fmt.Errorf("execute task: %w", err)
	}
	return ran, s.reload(ctx, "execute task")
}

// checkRequest applies the field constraints, then the command guard.
func checkRequest(req task.SaveRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	return guard.Check(req.Command)
}

// load must be called with op held.
func (s *Store) load(ctx context.Context) error {
	s.setState(StateLoading)
	all, err := s.api.ListAll(ctx)
	if err != nil {
		s.log.Error("load tasks failed", "error", err)
		s.fail(err)
		return fmt.Errorf("load tasks: %w", err)
	}
	s.replace(all, "")
	return nil
}

// reload follows a successful write. A failure here leaves the list stale.
func (s *Store) reload(ctx context.Context, op string) error {
	if err := s.load(ctx); err != nil {
		return &StaleViewError{Op: op, Err: errors.Unwrap(err)}
	}
	return nil
}

func (s *Store) setState(state State) State {
	s.mu.Lock()
	prev := s.state
	s.state = state
	s.mu.Unlock()
	if prev != state {
		s.emit(Event{Type: EventStateChanged, State: state})
	}
	return prev
}

func (s *Store) fail(err error) {
	s.mu.Lock()
	s.state = StateError
	s.err = err
	s.mu.Unlock()
	s.emit(Event{Type: EventFailed, State: StateError, Err: err})
}

func (s *Store) replace(tasks []task.Task, query string) {
	s.mu.Lock()
	s.tasks = task.CloneAll(tasks)
	if s.tasks == nil {
		s.tasks = []task.Task{}
	}
	s.query = query
	s.state = StateIdle
	s.err = nil
	s.loaded = true
	count := len(s.tasks)
	s.mu.Unlock()
	s.emit(Event{Type: EventLoaded, State: StateIdle, Count: count, Query: query})
}
