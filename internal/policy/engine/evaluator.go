// Package engine decides whether an operator may run a command.
package engine

import (
	"context"

	commanddomain "admin-command-console/internal/command/domain"
	userdomain "admin-command-console/internal/user/domain"
)

// Decision is the outcome of a run-permission evaluation.
type Decision struct {
	Allow bool
}

// Evaluator decides whether user may run the command described by d.
type Evaluator interface {
	EvaluateRun(ctx context.Context, user *userdomain.User, d commanddomain.Descriptor) (Decision, error)
}
