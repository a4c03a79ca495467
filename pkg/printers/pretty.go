// Package printers renders tasks and their execution history for the
// terminal.
package printers

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/taskr/pkg/task"
)

// maxCommandWidth truncates long commands in the list view.
const maxCommandWidth = 48

type PrettyPrint struct {
	// Out defaults to color.Output.
	Out io.Writer
	// ShowOutput prints captured output under each execution.
	ShowOutput bool
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) Println(a ...any) {
	_, _ = fmt.Fprintln(pp.out(), a...)
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(pp.out(), title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int, noun string) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Fprint(pp.out(), title)
	_, _ = c.Fprintf(pp.out(), " - %d %s\n", count, Plural(count, noun))
}

// Tasks renders the list view: one row per task with its run count and the
// start of its newest run.
func (pp *PrettyPrint) Tasks(tasks ...task.Task) {
	if len(tasks) == 0 {
		pp.none()
		return
	}

	bold := color.New(color.Bold)
	id := color.New(color.FgHiYellow)
	faint := color.New(color.Faint)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("ID"), bold.Sprint("NAME"), bold.Sprint("OWNER"), bold.Sprint("COMMAND"), bold.Sprint("RUNS"), bold.Sprint("LAST RUN"))
	for _, t := range tasks {
		last := faint.Sprint("never")
		if e, ok := t.LastExecution(); ok {
			last = e.StartTime.String()
		}
		tbl.AddRow(id.Sprint(t.ID), t.Name, t.Owner, truncate(t.Command, maxCommandWidth), strconv.Itoa(t.ExecutionCount()), last)
	}
	tbl.RightAlign(4)
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()
}

// Task renders the details view for a single task, including its history.
func (pp *PrettyPrint) Task(t task.Task) {
	bold := color.New(color.Bold)

	pp.Title(t.Name)
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("ID"), t.ID)
	tbl.AddRow(bold.Sprint("Owner"), t.Owner)
	tbl.AddRow(bold.Sprint("Command"), t.Command)
	tbl.AddRow(bold.Sprint("Runs"), strconv.Itoa(t.ExecutionCount()))
	tbl.RightAlign(0)
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()

	pp.TitleWithCount("Executions", t.ExecutionCount(), "run")
	pp.Executions(t.Executions...)
}

// Executions renders runs oldest first, numbered from 1.
func (pp *PrettyPrint) Executions(execs ...task.Execution) {
	nums := make([]int, len(execs))
	for i := range nums {
		nums[i] = i + 1
	}
	pp.NumberedExecutions(nums, execs)
}

// NumberedExecutions renders runs with the given run numbers, so a filtered
// history keeps each run's position in the full history.
func (pp *PrettyPrint) NumberedExecutions(nums []int, execs []task.Execution) {
	if len(execs) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprint(pp.out(), " no executions yet\n\n")
		return
	}

	bold := color.New(color.Bold)
	faint := color.New(color.Faint)

	if !pp.ShowOutput {
		tbl := uitable.New()
		tbl.Separator = "  "
		tbl.AddRow(bold.Sprint("#"), bold.Sprint("STARTED"), bold.Sprint("FINISHED"), bold.Sprint("DURATION"), bold.Sprint("OUTPUT"))
		for i, e := range execs {
			tbl.AddRow(strconv.Itoa(nums[i]), e.StartTime.String(), e.EndTime.String(), FormatDuration(e.Duration()), truncate(firstLine(e.Output), maxCommandWidth))
		}
		tbl.RightAlign(0)
		tbl.RightAlign(3)
		_, _ = fmt.Fprintln(pp.out(), tbl)
		pp.NewLine()
		return
	}

	for i, e := range execs {
		_, _ = bold.Fprintf(pp.out(), "#%d ", nums[i])
		_, _ = faint.Fprintf(pp.out(), "%s -> %s (%s)\n", e.StartTime, e.EndTime, FormatDuration(e.Duration()))
		out := strings.TrimRight(e.Output, "\n")
		if out == "" {
			_, _ = faint.Fprintln(pp.out(), "   (no output)")
		} else {
			for _, line := range strings.Split(out, "\n") {
				_, _ = fmt.Fprintf(pp.out(), "   %s\n", line)
			}
		}
		pp.NewLine()
	}
}

func (pp *PrettyPrint) Success(format string, a ...any) {
	_, _ = color.New(color.FgGreen).Fprintf(pp.out(), format+"\n", a...)
}

func (pp *PrettyPrint) Info(format string, a ...any) {
	_, _ = color.New(color.Faint).Fprintf(pp.out(), format+"\n", a...)
}

func (pp *PrettyPrint) Warn(format string, a ...any) {
	_, _ = color.New(color.FgYellow).Fprintf(pp.out(), format+"\n", a...)
}

// JSON writes v indented.
func (pp *PrettyPrint) JSON(v any) error {
	enc := json.NewEncoder(pp.out())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (pp *PrettyPrint) none() {
	f := color.New(color.Faint, color.Italic)
	_, _ = f.Fprint(pp.out(), " none\n\n")
}

// FormatDuration renders seconds with two decimals, e.g. "1.50s".
func FormatDuration(d time.Duration) string {
	return fmt.Sprintf("%.2fs", d.Seconds())
}

func Plural(n int, noun string) string {
	if n == 1 {
		return noun
	}
	return noun + "s"
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i] + " ..."
	}
	return s
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
