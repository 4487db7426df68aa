package engine

import (
	"context"
	"fmt"
	"os"

	"github.com/open-policy-agent/opa/v1/rego"

	commanddomain "admin-command-console/internal/command/domain"
	userdomain "admin-command-console/internal/user/domain"
)

const policyQuery = "data.console.commands.allow"

// Default Rego policy: anyone holding run_commands may run anything.
// A POLICY_FILE override can restrict further, e.g. per category.
const defaultRegoPolicy = `package console.commands

default allow = false

allow if {
	input.user.permissions[_] == "run_commands"
}
`

// OPAEvaluator evaluates run permissions using OPA Rego. The policy is
// compiled once at construction; evaluation is per request.
type OPAEvaluator struct {
	query rego.PreparedEvalQuery
}

// NewOPAEvaluator compiles the built-in run policy.
func NewOPAEvaluator() (*OPAEvaluator, error) {
	return newWithPolicy(defaultRegoPolicy)
}

// NewOPAEvaluatorFromFile compiles an operator-supplied Rego policy. The
// policy must live in package console.commands and define allow; compile
// errors surface here so a bad policy stops the server at startup.
func NewOPAEvaluatorFromFile(path string) (*OPAEvaluator, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("policy: read %s: %w", path, err)
	}
	e, err := newWithPolicy(string(src))
	if err != nil {
		return nil, fmt.Errorf("policy: %s: %w", path, err)
	}
	return e, nil
}

func newWithPolicy(policy string) (*OPAEvaluator, error) {
	q, err := rego.New(
		rego.Query(policyQuery),
		rego.Module("console_commands.rego", policy),
	).PrepareForEval(context.Background())
	if err != nil {
		return nil, fmt.Errorf("compile run policy: %w", err)
	}
	return &OPAEvaluator{query: q}, nil
}

// EvaluateRun evaluates the policy for user and command. A missing or
// non-boolean result denies.
func (e *OPAEvaluator) EvaluateRun(ctx context.Context, user *userdomain.User, d commanddomain.Descriptor) (Decision, error) {
	perms := make([]string, 0, len(user.Permissions))
	for _, p := range user.Permissions {
		perms = append(perms, string(p))
	}
	input := map[string]interface{}{
		"user": map[string]interface{}{
			"id":          user.ID,
			"username":    user.Username,
			"permissions": perms,
		},
		"command": map[string]interface{}{
			"name":     d.Name,
			"category": d.Category,
		},
	}

	rs, err := e.query.Eval(ctx, rego.EvalInput(input))
	if err != nil {
		return Decision{}, fmt.Errorf("evaluate run policy: %w", err)
	}
	if len(rs) == 0 || len(rs[0].Expressions) == 0 {
		return Decision{Allow: false}, nil
	}
	allow, ok := rs[0].Expressions[0].Value.(bool)
	if !ok {
		return Decision{Allow: false}, nil
	}
	return Decision{Allow: allow}, nil
}
