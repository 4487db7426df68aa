// Package audit records immutable entries in the admin action log.
package audit

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"admin-command-console/internal/audit/domain"
	auditrepo "admin-command-console/internal/audit/repository"
)

// ActionRunCommand is the action recorded for command executions.
const ActionRunCommand = "run_command"

// IPExtractor returns the client IP for the request in ctx.
type IPExtractor func(context.Context) string

// ActionLogger writes a single action-log entry. Used by the command service
// and the mutation-audit middleware. Logging is best-effort: failures are
// logged and do not affect the caller.
type ActionLogger interface {
	LogAction(ctx context.Context, userID, action, objectRepr string, flag domain.Flag)
}

// Logger implements ActionLogger using the audit repository and an optional IP extractor.
type Logger struct {
	repo        auditrepo.Repository
	ipExtractor IPExtractor
}

// NewLogger returns an ActionLogger that persists to repo and uses ipExtractor for client IP.
// ipExtractor may be nil; then IP is recorded as "unknown".
func NewLogger(repo auditrepo.Repository, ipExtractor IPExtractor) *Logger {
	return &Logger{repo: repo, ipExtractor: ipExtractor}
}

// LogAction writes one action-log entry. Best-effort: errors are logged and not returned.
func (l *Logger) LogAction(ctx context.Context, userID, action, objectRepr string, flag domain.Flag) {
	if l.repo == nil {
		return
	}
	ip := "unknown"
	if l.ipExtractor != nil {
		ip = l.ipExtractor(ctx)
	}
	entry := &domain.Entry{
		ID:         uuid.New().String(),
		UserID:     userID,
		Action:     action,
		ObjectRepr: objectRepr,
		Flag:       flag,
		IP:         ip,
		CreatedAt:  time.Now().UTC(),
	}
	if err := l.repo.Create(ctx, entry); err != nil {
		log.Printf("audit: failed to log %s: %v", action, err)
	}
}

// LogRunOK records a successful command execution. The addition flag renders
// with the success marker in the history view.
func (l *Logger) LogRunOK(ctx context.Context, userID, commandName string, args []string) {
	msg := fmt.Sprintf("Successfully executed '%s' with args %v", commandName, args)
	l.LogAction(ctx, userID, ActionRunCommand, msg, domain.FlagAddition)
}

// LogRunError records a failed command execution with the deletion flag.
func (l *Logger) LogRunError(ctx context.Context, userID, commandName string, args []string) {
	msg := fmt.Sprintf("Error running '%s' with args %v", commandName, args)
	l.LogAction(ctx, userID, ActionRunCommand, msg, domain.FlagDeletion)
}
