// Package service orchestrates command runs: permission policy, execution,
// audit logging, and telemetry.
package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"admin-command-console/internal/command/domain"
	"admin-command-console/internal/command/runner"
	"admin-command-console/internal/policy/engine"
	userdomain "admin-command-console/internal/user/domain"
)

var (
	// ErrUnknownCommand means the requested command is not registered.
	ErrUnknownCommand = errors.New("unknown command")
	// ErrNotPermitted means the run policy denied the operator.
	ErrNotPermitted = errors.New("not permitted to run commands")
)

// CommandSource resolves command names to descriptors.
type CommandSource interface {
	Get(name string) (domain.Descriptor, bool)
}

// RunAuditor records run outcomes in the action log.
type RunAuditor interface {
	LogRunOK(ctx context.Context, userID, commandName string, args []string)
	LogRunError(ctx context.Context, userID, commandName string, args []string)
}

// Service runs registered commands on behalf of authenticated operators.
type Service struct {
	commands CommandSource
	runner   *runner.Runner
	policy   engine.Evaluator
	auditor  RunAuditor
	defaults []string

	tracer      trace.Tracer
	runCounter  metric.Int64Counter
	runDuration metric.Float64Histogram
}

// New wires a Service. defaults are appended to every run when absent from
// the submitted args.
func New(commands CommandSource, r *runner.Runner, policy engine.Evaluator, auditor RunAuditor, defaults []string) *Service {
	meter := otel.Meter("admin-command-console/command")
	runCounter, err := meter.Int64Counter("console.command.runs",
		metric.WithDescription("Command runs by name and status"))
	if err != nil {
		log.Printf("command: create run counter: %v", err)
	}
	runDuration, err := meter.Float64Histogram("console.command.duration",
		metric.WithDescription("Command run duration"), metric.WithUnit("s"))
	if err != nil {
		log.Printf("command: create duration histogram: %v", err)
	}
	return &Service{
		commands:    commands,
		runner:      r,
		policy:      policy,
		auditor:     auditor,
		defaults:    defaults,
		tracer:      otel.Tracer("admin-command-console/command"),
		runCounter:  runCounter,
		runDuration: runDuration,
	}
}

// Run executes req for user. Returns ErrNotPermitted when the policy denies,
// ErrUnknownCommand for unregistered names. A non-nil *Result is returned for
// every attempted execution, including failed ones, so the caller can show
// the captured output either way. The outcome is recorded in the action log
// with the operator-supplied args (appended defaults are not audited).
func (s *Service) Run(ctx context.Context, user *userdomain.User, req domain.RunRequest) (*domain.Result, error) {
	d, ok := s.commands.Get(req.Command)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCommand, req.Command)
	}

	dec, err := s.policy.EvaluateRun(ctx, user, d)
	if err != nil {
		return nil, err
	}
	if !dec.Allow {
		return nil, ErrNotPermitted
	}

	ctx, span := s.tracer.Start(ctx, "command.run", trace.WithAttributes(
		attribute.String("command.name", d.Name),
		attribute.String("command.category", d.Category),
		attribute.String("user.id", user.ID),
	))
	defer span.End()

	args := runner.AppendDefaults(append([]string(nil), req.Args...), s.defaults)
	res := s.runner.Run(ctx, d, args, req.Stdin)

	status := "ok"
	if res.OK() {
		s.auditor.LogRunOK(ctx, user.ID, d.Name, req.Args)
	} else {
		status = "error"
		span.RecordError(res.Err)
		s.auditor.LogRunError(ctx, user.ID, d.Name, req.Args)
	}

	attrs := metric.WithAttributes(
		attribute.String("command.name", d.Name),
		attribute.String("status", status),
	)
	if s.runCounter != nil {
		s.runCounter.Add(ctx, 1, attrs)
	}
	if s.runDuration != nil {
		s.runDuration.Record(ctx, res.Duration.Seconds(), attrs)
	}

	return res, nil
}
