// Package check runs the local command checks without contacting the service.
package check

import (
	"context"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/taskr/pkg/guard"
	"tableflip.dev/taskr/pkg/printers"
	"tableflip.dev/taskr/pkg/task"
)

// Check validates Command the way add and edit do. With no command it prints
// the rules instead.
type Check struct {
	Command string

	Printer *printers.PrettyPrint
}

// Do runs the check.
func (c *Check) Do(_ context.Context) error {
	pp := c.Printer
	if pp == nil {
		pp = &printers.PrettyPrint{}
	}

	if strings.TrimSpace(c.Command) == "" {
		c.Rules(pp)
		return nil
	}

	if err := task.CheckField("command", c.Command); err != nil {
		return err
	}
	if err := guard.Check(c.Command); err != nil {
		return err
	}
	pp.Success("Command accepted: %s", c.Command)
	return nil
}

// Rules renders the rejected terms and operators in the order they are
// checked.
func (c *Check) Rules(pp *printers.PrettyPrint) {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Rejected"), bold.Sprint("Matched as"))
	for _, term := range guard.DangerousTerms {
		tbl.AddRow(term, "substring, any case")
	}
	for _, op := range guard.ShellOperators {
		tbl.AddRow(op, "shell operator")
	}
	tbl.RightAlign(0)

	pp.NewLine()
	pp.Title("Command checks")
	pp.Println(tbl)
	pp.Info("Checks are advisory; the service is responsible for running commands safely.")
}
