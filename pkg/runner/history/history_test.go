package history

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

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

func TestHistory(t *testing.T) {
	s, _ := newTestStore(t, task.Task{ID: "t1", Name: "Backup", Owner: "alice", Command: "echo hi"})
	ctx := context.Background()
	for i := 0; i < 3; i++ {
		_, err := s.Execute(ctx, "t1")
		require.NoError(t, err)
	}
	var buf bytes.Buffer

	h := History{Store: s, ID: "t1", Printer: &printers.PrettyPrint{Out: &buf}}
	require.NoError(t, h.Do(ctx))
	out := buf.String()
	assert.Contains(t, out, "Backup - 3 runs")
	assert.Regexp(t, `\d+\.\d{2}s`, out)
}

func TestHistoryLast(t *testing.T) {
	s, _ := newTestStore(t, task.Task{ID: "t1", Name: "Backup", Owner: "alice", Command: "echo hi"})
	ctx := context.Background()
	for i := 0; i < 2; i++ {
		_, err := s.Execute(ctx, "t1")
		require.NoError(t, err)
	}
	var buf bytes.Buffer

	h := History{Store: s, ID: "t1", Last: true, Printer: &printers.PrettyPrint{Out: &buf}}
	require.NoError(t, h.Do(ctx))
	out := buf.String()
	assert.Contains(t, out, "Backup - 1 run")
	assert.Contains(t, out, "showing 1 of 2")
	assert.Contains(t, out, "#2 ")
	assert.NotContains(t, out, "#1 ")
}

func TestHistoryEmptyJSON(t *testing.T) {
	s, _ := newTestStore(t, task.Task{ID: "t1", Name: "Backup", Owner: "alice", Command: "echo hi"})
	var buf bytes.Buffer

	h := History{Store: s, ID: "t1", JSON: true, Printer: &printers.PrettyPrint{Out: &buf}}
	require.NoError(t, h.Do(context.Background()))
	assert.Equal(t, "[]\n", buf.String())
}

func TestHistorySince(t *testing.T) {
	now := time.Now().UTC()
	at := func(ago time.Duration, out string) task.Execution {
		start := now.Add(-ago)
		return task.Execution{
			StartTime: task.Timestamp{Time: start},
			EndTime:   task.Timestamp{Time: start.Add(time.Second)},
			Output:    out,
		}
	}
	s, _ := newTestStore(t, task.Task{
		ID: "t1", Name: "Backup", Owner: "alice", Command: "echo hi",
		Executions: []task.Execution{at(72*time.Hour, "old"), at(2*time.Hour, "recent"), at(time.Hour, "newest")},
	})
	var buf bytes.Buffer

	h := History{Store: s, ID: "t1", Since: 24 * time.Hour, JSON: true, Printer: &printers.PrettyPrint{Out: &buf}}
	require.NoError(t, h.Do(context.Background()))

	var got []task.Execution
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "recent", got[0].Output)
	assert.Equal(t, "newest", got[1].Output)
}

func TestHistorySinceKeepsRunNumbers(t *testing.T) {
	now := time.Now().UTC()
	at := func(ago time.Duration) task.Execution {
		start := now.Add(-ago)
		return task.Execution{
			StartTime: task.Timestamp{Time: start},
			EndTime:   task.Timestamp{Time: start.Add(time.Second)},
			Output:    "ok",
		}
	}
	s, _ := newTestStore(t, task.Task{
		ID: "t1", Name: "Backup", Owner: "alice", Command: "echo hi",
		Executions: []task.Execution{at(72 * time.Hour), at(48 * time.Hour), at(2 * time.Hour)},
	})
	var buf bytes.Buffer

	h := History{Store: s, ID: "t1", Since: 24 * time.Hour, Output: true, Printer: &printers.PrettyPrint{Out: &buf}}
	require.NoError(t, h.Do(context.Background()))

	out := buf.String()
	assert.Contains(t, out, "Backup, last 1d - 1 run")
	assert.Contains(t, out, "showing 1 of 3")
	assert.Contains(t, out, "#3 ")
	assert.NotContains(t, out, "#1 ")
}
