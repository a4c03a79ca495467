package add

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/taskr/pkg/api"
	"tableflip.dev/taskr/pkg/api/apitest"
	"tableflip.dev/taskr/pkg/printers"
	"tableflip.dev/taskr/pkg/store"
	"tableflip.dev/taskr/pkg/task"
)

func newTestStore(t *testing.T, seed ...task.Task) (*store.Store, *apitest.Server) {
	t.Helper()
	srv := apitest.NewServer(seed...)
	t.Cleanup(srv.Close)
	c, err := api.New(srv.BaseURL())
	require.NoError(t, err)
	return store.New(c, store.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))), srv
}

func init() {
	color.NoColor = true
}

func TestAdd(t *testing.T) {
	s, srv := newTestStore(t)
	var buf bytes.Buffer

	a := Add{
		Store:   s,
		Request: task.SaveRequest{ID: "t1", Name: "Backup", Owner: "alice", Command: "echo hi"},
		Printer: &printers.PrettyPrint{Out: &buf},
	}
	require.NoError(t, a.Do(context.Background()))

	assert.Contains(t, buf.String(), "Task t1 created successfully!")
	assert.Contains(t, buf.String(), "Tasks - 1 task")
	assert.Len(t, srv.Tasks(), 1)
}

func TestAddRejectedLocally(t *testing.T) {
	s, srv := newTestStore(t)
	var buf bytes.Buffer

	a := Add{
		Store:   s,
		Request: task.SaveRequest{ID: "t1", Name: "Wipe", Owner: "alice", Command: "rm -rf /"},
		Printer: &printers.PrettyPrint{Out: &buf},
	}
	err := a.Do(context.Background())
	require.ErrorIs(t, err, task.ErrValidation)
	assert.Empty(t, buf.String())
	assert.Zero(t, srv.Calls(apitest.OpSave))
}

func TestAddStaleView(t *testing.T) {
	s, srv := newTestStore(t)
	srv.FailNext(apitest.OpList, 503)
	var buf bytes.Buffer

	a := Add{
		Store:   s,
		Request: task.SaveRequest{ID: "t1", Name: "Backup", Owner: "alice", Command: "echo hi"},
		Printer: &printers.PrettyPrint{Out: &buf},
	}
	err := a.Do(context.Background())
	require.ErrorIs(t, err, store.ErrStaleView)
	assert.Contains(t, buf.String(), "created successfully")
	assert.Contains(t, buf.String(), "could not be refreshed")
}
