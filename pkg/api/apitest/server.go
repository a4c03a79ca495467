// Package apitest provides an in-memory task service for tests.
package apitest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"sync"
	"time"

	"tableflip.dev/taskr/pkg/task"
)

// Operation names used for call counting and failure injection.
const (
	OpList    = "list"
	OpGet     = "get"
	OpSave    = "save"
	OpDelete  = "delete"
	OpSearch  = "search"
	OpExecute = "execute"
)

// BasePath is where the task resource is mounted.
const BasePath = "/api"

// Server is a fake task service. Executions are simulated: nothing is run,
// the output echoes the command.
type Server struct {
	*httptest.Server

	mu    sync.Mutex
	tasks map[string]task.Task
	calls map[string]int
	fail  map[string]int
	order []string
	now   func() time.Time
}

// NewServer starts a fake service. Callers must Close it.
func NewServer(seed ...task.Task) *Server {
	s := &Server{
		tasks: make(map[string]task.Task),
		calls: make(map[string]int),
		fail:  make(map[string]int),
		now:   time.Now,
	}
	for _, t := range seed {
		s.tasks[t.ID] = t.Clone()
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET "+BasePath, s.handleList)
	mux.HandleFunc("GET "+BasePath+"/{id}", s.handleGet)
	mux.HandleFunc("POST "+BasePath+"/add", s.handleSave)
	mux.HandleFunc("DELETE "+BasePath+"/Delete/{id}", s.handleDelete)
	mux.HandleFunc("GET "+BasePath+"/Search/{name}", s.handleSearch)
	mux.HandleFunc("PUT "+BasePath+"/Execute/{id}", s.handleExecute)
	s.Server = httptest.NewServer(mux)
	return s
}

// BaseURL is the URL to hand to api.New.
func (s *Server) BaseURL() string {
	return s.URL + BasePath
}

// Calls reports how many requests were received for op.
func (s *Server) Calls(op string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[op]
}

// Order returns the operations received, in arrival order.
func (s *Server) Order() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.order...)
}

// FailNext makes the next request for op answer with status.
func (s *Server) FailNext(op string, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fail[op] = status
}

// Tasks returns the service's current list, sorted by id.
func (s *Server) Tasks() []task.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sortedLocked()
}

func (s *Server) sortedLocked() []task.Task {
	out := make([]task.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		out = append(out, t.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// begin records the call and reports whether an injected failure was served.
func (s *Server) begin(w http.ResponseWriter, op string) bool {
	s.calls[op]++
	s.order = append(s.order, op)
	if status, ok := s.fail[op]; ok {
		delete(s.fail, op)
		writeError(w, status, op+" failed")
		return true
	}
	return false
}

func (s *Server) handleList(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.begin(w, OpList) {
		return
	}
	writeJSON(w, http.StatusOK, s.sortedLocked())
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.begin(w, OpGet) {
		return
	}
	t, ok := s.tasks[r.PathValue("id")]
	if !ok {
		writeError(w, http.StatusNotFound, "task not found")
		return
	}
	writeJSON(w, http.StatusOK, t)
}

func (s *Server) handleSave(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.begin(w, OpSave) {
		return
	}
	var req task.SaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	// Full replace: history that the client does not send back is lost.
	t := task.Task{
		ID:         req.ID,
		Name:       req.Name,
		Owner:      req.Owner,
		Command:    req.Command,
		Executions: req.Executions,
	}
	if t.Executions == nil {
		t.Executions = []task.Execution{}
	}
	s.tasks[t.ID] = t
	writeJSON(w, http.StatusOK, t)
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.begin(w, OpDelete) {
		return
	}
	id := r.PathValue("id")
	t, ok := s.tasks[id]
	if !ok {
		writeError(w, http.StatusNotFound, "task not found")
		return
	}
	delete(s.tasks, id)
	writeJSON(w, http.StatusOK, t)
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.begin(w, OpSearch) {
		return
	}
	q := strings.ToLower(r.PathValue("name"))
	out := make([]task.Task, 0)
	for _, t := range s.sortedLocked() {
		if strings.Contains(strings.ToLower(t.Name), q) {
			out = append(out, t)
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleExecute(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.begin(w, OpExecute) {
		return
	}
	id := r.PathValue("id")
	t, ok := s.tasks[id]
	if !ok {
		writeError(w, http.StatusNotFound, "task not found")
		return
	}
	start := s.now().UTC()
	t.Executions = append(t.Executions, task.Execution{
		StartTime: task.Timestamp{Time: start},
		EndTime:   task.Timestamp{Time: start.Add(15 * time.Millisecond)},
		Output:    t.Command + "\n",
	})
	s.tasks[id] = t
	writeJSON(w, http.StatusOK, t)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"message": msg})
}
