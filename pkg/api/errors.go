package api

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrNotFound is returned when the service has no task with the given id.
	ErrNotFound = errors.New("task not found")

	// ErrTransport is matched by every network, HTTP or decoding failure.
	ErrTransport = errors.New("transport error")

	// ErrExecutionFailed is matched when the service reports that the remote
	// run itself failed.
	ErrExecutionFailed = errors.New("execution failed")
)

// TransportError describes a failure below the domain level: the request
// could not be made, the service answered with an unexpected status, or the
// body could not be decoded. Status is zero when no response was received.
type TransportError struct {
	Op     string
	Status int
	Err    error
}

func (e *TransportError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s: %d %s: %v", e.Op, e.Status, http.StatusText(e.Status), e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

func (e *TransportError) Is(target error) bool { return target == ErrTransport }

// ExecutionError is returned by ExecuteByID when the service accepted the
// request but the run did not complete.
type ExecutionError struct {
	ID      string
	Status  int
	Message string
}

func (e *ExecutionError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("execute %s: remote run failed (%d)", e.ID, e.Status)
	}
	return fmt.Sprintf("execute %s: remote run failed (%d): %s", e.ID, e.Status, e.Message)
}

func (e *ExecutionError) Is(target error) bool { return target == ErrExecutionFailed }

type notFoundError struct {
	op string
	id string
}

func (e *notFoundError) Error() string {
	if e.id == "" {
		return fmt.Sprintf("%s: %v", e.op, ErrNotFound)
	}
	return fmt.Sprintf("%s %s: %v", e.op, e.id, ErrNotFound)
}

func (e *notFoundError) Is(target error) bool { return target == ErrNotFound }
