package main

import (
	"errors"
	"fmt"
	"os"

	"tableflip.dev/taskr/pkg/commands"
	"tableflip.dev/taskr/pkg/commands/options"
	"tableflip.dev/taskr/pkg/task"
)

// Exit codes for different failure modes
const (
	ExitSuccess = 0
	ExitError   = 1 // service, transport or usage failure
	ExitInvalid = 2 // input rejected before anything was sent
)

func main() {
	os.Exit(run())
}

func run() int {
	err := commands.New().Execute()
	if err == nil {
		return ExitSuccess
	}

	var reported *options.ReportedError
	if !errors.As(err, &reported) {
		_, _ = fmt.Fprintln(os.Stderr, "Error:", err)
	}
	return exitCode(err)
}

func exitCode(err error) int {
	if errors.Is(err, task.ErrValidation) {
		return ExitInvalid
	}
	return ExitError
}
