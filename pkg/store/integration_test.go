package store

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/taskr/pkg/api"
	"tableflip.dev/taskr/pkg/api/apitest"
	"tableflip.dev/taskr/pkg/task"
)

func newServiceStore(t *testing.T, seed ...task.Task) (*Store, *apitest.Server) {
	t.Helper()
	srv := apitest.NewServer(seed...)
	t.Cleanup(srv.Close)
	c, err := api.New(srv.BaseURL())
	require.NoError(t, err)
	return New(c, WithLogger(quietLogger())), srv
}

func TestCreateThenExecute(t *testing.T) {
	s, srv := newServiceStore(t)
	ctx := context.Background()

	_, err := s.Create(ctx, task.SaveRequest{ID: "t1", Name: "Backup", Owner: "alice", Command: "echo hi"})
	require.NoError(t, err)

	ran, err := s.Execute(ctx, "t1")
	require.NoError(t, err)
	require.Len(t, ran.Executions, 1)
	e := ran.Executions[0]
	assert.False(t, e.EndTime.Before(e.StartTime.Time))

	assertSameTasks(t, srv.Tasks(), s.Tasks())
	assert.Equal(t, []string{
		apitest.OpSave, apitest.OpList,
		apitest.OpExecute, apitest.OpList,
	}, srv.Order())
}

func TestViewMatchesServiceAfterEveryWrite(t *testing.T) {
	s, srv := newServiceStore(t, task.Task{ID: "keep", Name: "Keep", Owner: "bob", Command: "echo keep"})
	ctx := context.Background()
	require.NoError(t, s.Load(ctx))

	steps := []func() error{
		func() error {
			_, err := s.Create(ctx, task.SaveRequest{ID: "t1", Name: "Backup", Owner: "alice", Command: "echo hi"})
			return err
		},
		func() error { _, err := s.Execute(ctx, "t1"); return err },
		func() error {
			_, err := s.Update(ctx, task.SaveRequest{ID: "t1", Name: "Nightly", Owner: "alice", Command: "echo bye"})
			return err
		},
		func() error { _, err := s.Execute(ctx, "keep"); return err },
		func() error { _, err := s.Delete(ctx, "keep"); return err },
	}
	for i, step := range steps {
		require.NoError(t, step(), "step %d", i)
		assertSameTasks(t, srv.Tasks(), s.Tasks(), "step %d", i)
	}
}

func TestHistorySurvivesEdit(t *testing.T) {
	s, _ := newServiceStore(t, task.Task{ID: "t1", Name: "Backup", Owner: "alice", Command: "echo hi"})
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := s.Execute(ctx, "t1")
		require.NoError(t, err)
	}

	saved, err := s.Update(ctx, task.SaveRequest{ID: "t1", Name: "Backup v2", Owner: "alice", Command: "echo hi"})
	require.NoError(t, err)
	assert.Len(t, saved.Executions, 3)

	got, err := s.Get(ctx, "t1")
	require.NoError(t, err)
	assert.Equal(t, "Backup v2", got.Name)
	assert.Len(t, got.Executions, 3)
}

func TestSaveIsUpsert(t *testing.T) {
	s, srv := newServiceStore(t)
	ctx := context.Background()

	_, err := s.Create(ctx, task.SaveRequest{ID: "t1", Name: "Backup", Owner: "alice", Command: "echo hi"})
	require.NoError(t, err)
	_, err = s.Create(ctx, task.SaveRequest{ID: "t1", Name: "Backup again", Owner: "alice", Command: "echo hi"})
	require.NoError(t, err)

	require.Len(t, srv.Tasks(), 1)
	assert.Equal(t, "Backup again", s.Tasks()[0].Name)
}

func TestStaleViewAgainstService(t *testing.T) {
	s, srv := newServiceStore(t, task.Task{ID: "t1", Name: "Backup", Owner: "alice", Command: "echo hi"})
	ctx := context.Background()
	require.NoError(t, s.Load(ctx))

	srv.FailNext(apitest.OpList, http.StatusServiceUnavailable)
	_, err := s.Delete(ctx, "t1")
	require.ErrorIs(t, err, ErrStaleView)
	assert.ErrorIs(t, err, api.ErrTransport)

	// the service has deleted the task; the view still shows it until a retry
	assert.Empty(t, srv.Tasks())
	assert.Len(t, s.Tasks(), 1)

	require.NoError(t, s.Retry(ctx))
	assert.Empty(t, s.Tasks())
}

func TestDeleteMissingTask(t *testing.T) {
	s, srv := newServiceStore(t)
	_, err := s.Delete(context.Background(), "nope")
	require.ErrorIs(t, err, api.ErrNotFound)
	assert.Zero(t, srv.Calls(apitest.OpList))
}

// assertSameTasks compares task lists by their wire encoding, which is what
// the client and the service agree on.
func assertSameTasks(t *testing.T, want, got []task.Task, msgAndArgs ...any) {
	t.Helper()
	w, err := json.Marshal(want)
	require.NoError(t, err)
	g, err := json.Marshal(got)
	require.NoError(t, err)
	assert.JSONEq(t, string(w), string(g), msgAndArgs...)
}
