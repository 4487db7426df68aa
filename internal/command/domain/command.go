package domain

import (
	"context"
	"io"
	"time"
)

// HandlerFunc is a built-in command implementation. It reads operator-supplied
// stdin text from stdin and writes its output to out. A non-nil error marks
// the run as failed and is shown to the operator.
type HandlerFunc func(ctx context.Context, args []string, stdin io.Reader, out io.Writer) error

// Descriptor describes one registered command the console can run.
// Exactly one of Handler and Shell is set: Handler for built-ins compiled
// into the server, Shell for catalog commands executed via the shell.
type Descriptor struct {
	// Name uniquely identifies the command in the dropdown and the audit log.
	Name string
	// Usage is the human-readable help line shown when the command is selected.
	Usage string
	// Category is the grouping label for the dropdown.
	Category string

	Handler HandlerFunc
	Shell   string
}

// Group is a category with its commands, as rendered by the dropdown.
type Group struct {
	Category string
	Commands []Descriptor
}

// RunRequest is a submitted execution request. Transient: built from the form,
// never persisted (the audit log records the outcome, not the request).
type RunRequest struct {
	Command string
	Args    []string
	Stdin   string
}

// Result captures what a single run produced.
type Result struct {
	Output   string
	Duration time.Duration
	Err      error
}

// OK reports whether the run succeeded.
func (r *Result) OK() bool {
	return r != nil && r.Err == nil
}
