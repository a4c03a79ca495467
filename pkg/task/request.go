package task

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// ErrValidation is matched by every error that is raised locally before a
// request is sent: field constraints, command rejections and blank queries.
var ErrValidation = errors.New("validation failed")

// Minimum lengths, in runes, for the fields of a save request.
const (
	MinIDLength      = 1
	MinNameLength    = 2
	MinOwnerLength   = 2
	MinCommandLength = 3
)

// FieldError reports a field that does not meet its length constraint.
type FieldError struct {
	Field string
	Min   int
}

func (e *FieldError) Error() string {
	if e.Min <= 1 {
		return fmt.Sprintf("%s is required", e.Field)
	}
	return fmt.Sprintf("%s must be at least %d characters", e.Field, e.Min)
}

func (e *FieldError) Is(target error) bool {
	return target == ErrValidation
}

// SaveRequest is the upsert body. The service creates the task when the ID is
// new and replaces name, owner and command otherwise. Executions is only set
// by the edit path so that history survives the replace.
type SaveRequest struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	Owner      string      `json:"owner"`
	Command    string      `json:"command"`
	Executions []Execution `json:"taskExecutions,omitempty"`
}

// Validate checks the field constraints. It does not inspect the command
// contents; see package guard for that.
func (r SaveRequest) Validate() error {
	for _, f := range [][2]string{
		{"id", r.ID},
		{"name", r.Name},
		{"owner", r.Owner},
		{"command", r.Command},
	} {
		if err := CheckField(f[0], f[1]); err != nil {
			return err
		}
	}
	return nil
}

// CheckField validates a single named field.
func CheckField(field, value string) error {
	var min int
	switch field {
	case "id":
		min = MinIDLength
	case "name":
		min = MinNameLength
	case "owner":
		min = MinOwnerLength
	case "command":
		min = MinCommandLength
	default:
		return fmt.Errorf("unknown field %q", field)
	}
	if utf8.RuneCountInString(strings.TrimSpace(value)) < min {
		return &FieldError{Field: field, Min: min}
	}
	return nil
}
