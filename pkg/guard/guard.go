// Package guard screens task commands before they are submitted.
//
// The check is advisory. It is a best-effort denylist evaluated on the client
// and has no authority over what the service eventually runs; it is not a
// sandbox and must not be treated as a security boundary.
package guard

import (
	"errors"
	"fmt"
	"strings"

	"tableflip.dev/taskr/pkg/task"
)

// ErrRejected is matched by every rejection returned from Check.
var ErrRejected = errors.New("command rejected")

// DangerousTerms are matched as plain substrings of the lowercased command,
// so "del" also blocks "model". The over-block is intended.
var DangerousTerms = []string{
	"rm", "del", "format", "fdisk", "mkfs", "dd", "shutdown", "reboot", "halt",
}

// ShellOperators are the chaining and piping operators that are never
// accepted.
var ShellOperators = []string{"&&", "||", ";", "|"}

// DangerousOperationError reports the first denylisted term found.
type DangerousOperationError struct {
	Term string
}

func (e *DangerousOperationError) Error() string {
	return fmt.Sprintf("command contains potentially dangerous operation: %s", e.Term)
}

func (e *DangerousOperationError) Is(target error) bool {
	return target == ErrRejected || target == task.ErrValidation
}

// UnsafeShellOperatorError reports the first shell operator found.
type UnsafeShellOperatorError struct {
	Operator string
}

func (e *UnsafeShellOperatorError) Error() string {
	return fmt.Sprintf("command contains potentially unsafe shell operator: %s", e.Operator)
}

func (e *UnsafeShellOperatorError) Is(target error) bool {
	return target == ErrRejected || target == task.ErrValidation
}

// Check returns nil when command may be submitted. The command is lowercased
// for matching only; callers submit their original string.
func Check(command string) error {
	lower := strings.ToLower(command)
	for _, term := range DangerousTerms {
		if strings.Contains(lower, term) {
			return &DangerousOperationError{Term: term}
		}
	}
	for _, op := range ShellOperators {
		if strings.Contains(lower, op) {
			return &UnsafeShellOperatorError{Operator: op}
		}
	}
	return nil
}
