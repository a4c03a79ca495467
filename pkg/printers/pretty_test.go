package printers

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/taskr/pkg/task"
)

func init() {
	color.NoColor = true
}

func at(s string) task.Timestamp {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return task.Timestamp{Time: t}
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "0.00s", FormatDuration(0))
	assert.Equal(t, "1.50s", FormatDuration(1500*time.Millisecond))
	assert.Equal(t, "62.00s", FormatDuration(62*time.Second))
}

func TestTasksEmpty(t *testing.T) {
	var buf bytes.Buffer
	pp := PrettyPrint{Out: &buf}
	pp.Tasks()
	assert.Contains(t, buf.String(), "none")
}

func TestTasksTable(t *testing.T) {
	var buf bytes.Buffer
	pp := PrettyPrint{Out: &buf}
	pp.Tasks(
		task.Task{ID: "t1", Name: "Backup", Owner: "alice", Command: "echo hi", Executions: []task.Execution{
			{StartTime: at("2024-03-01T10:00:00Z"), EndTime: at("2024-03-01T10:00:01Z")},
		}},
		task.Task{ID: "t2", Name: "Report", Owner: "bob", Command: strings.Repeat("x", 80)},
	)
	out := buf.String()
	assert.Contains(t, out, "Backup")
	assert.Contains(t, out, "never")
	assert.Contains(t, out, "...")
	assert.NotContains(t, out, strings.Repeat("x", 80))
}

func TestTaskDetail(t *testing.T) {
	var buf bytes.Buffer
	pp := PrettyPrint{Out: &buf, ShowOutput: true}
	pp.Task(task.Task{ID: "t1", Name: "Backup", Owner: "alice", Command: "echo hi", Executions: []task.Execution{
		{StartTime: at("2024-03-01T10:00:00Z"), EndTime: at("2024-03-01T10:00:02Z"), Output: "hi\nthere\n"},
		{StartTime: at("2024-03-02T10:00:00Z"), EndTime: at("2024-03-02T10:00:00Z")},
	}})
	out := buf.String()
	assert.Contains(t, out, "Executions - 2 runs")
	assert.Contains(t, out, "2.00s")
	assert.Contains(t, out, "   there")
	assert.Contains(t, out, "(no output)")
}

func TestExecutionsEmpty(t *testing.T) {
	var buf bytes.Buffer
	pp := PrettyPrint{Out: &buf}
	pp.Executions()
	assert.Contains(t, buf.String(), "no executions yet")
}

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	pp := PrettyPrint{Out: &buf}
	require.NoError(t, pp.JSON(task.Task{ID: "t1"}))
	assert.Contains(t, buf.String(), `"id": "t1"`)
}

func TestPlural(t *testing.T) {
	assert.Equal(t, "task", Plural(1, "task"))
	assert.Equal(t, "tasks", Plural(0, "task"))
}
