package engine

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	commanddomain "admin-command-console/internal/command/domain"
	userdomain "admin-command-console/internal/user/domain"
)

func TestDefaultPolicy_AllowsRunCommands(t *testing.T) {
	e, err := NewOPAEvaluator()
	if err != nil {
		t.Fatalf("NewOPAEvaluator: %v", err)
	}

	u := &userdomain.User{ID: "u1", Username: "jdoe", Permissions: []userdomain.Permission{userdomain.PermRunCommands}}
	d := commanddomain.Descriptor{Name: "vacuum-db", Category: "database"}

	dec, err := e.EvaluateRun(context.Background(), u, d)
	if err != nil {
		t.Fatalf("EvaluateRun: %v", err)
	}
	if !dec.Allow {
		t.Error("user with run_commands should be allowed")
	}
}

func TestDefaultPolicy_DeniesWithoutPermission(t *testing.T) {
	e, err := NewOPAEvaluator()
	if err != nil {
		t.Fatalf("NewOPAEvaluator: %v", err)
	}

	u := &userdomain.User{ID: "u1", Username: "jdoe", Permissions: []userdomain.Permission{userdomain.PermViewHistory}}
	d := commanddomain.Descriptor{Name: "vacuum-db", Category: "database"}

	dec, err := e.EvaluateRun(context.Background(), u, d)
	if err != nil {
		t.Fatalf("EvaluateRun: %v", err)
	}
	if dec.Allow {
		t.Error("user without run_commands should be denied")
	}
}

func TestCustomPolicy_RestrictsCategory(t *testing.T) {
	policy := `package console.commands

default allow = false

allow if {
	input.user.permissions[_] == "run_commands"
	input.command.category != "database"
}
`
	path := filepath.Join(t.TempDir(), "policy.rego")
	if err := os.WriteFile(path, []byte(policy), 0o600); err != nil {
		t.Fatalf("write policy: %v", err)
	}

	e, err := NewOPAEvaluatorFromFile(path)
	if err != nil {
		t.Fatalf("NewOPAEvaluatorFromFile: %v", err)
	}

	u := &userdomain.User{ID: "u1", Permissions: []userdomain.Permission{userdomain.PermRunCommands}}

	dec, err := e.EvaluateRun(context.Background(), u, commanddomain.Descriptor{Name: "cleanup-tmp", Category: "cleanup"})
	if err != nil {
		t.Fatalf("EvaluateRun: %v", err)
	}
	if !dec.Allow {
		t.Error("cleanup category should be allowed by the custom policy")
	}

	dec, err = e.EvaluateRun(context.Background(), u, commanddomain.Descriptor{Name: "vacuum-db", Category: "database"})
	if err != nil {
		t.Fatalf("EvaluateRun: %v", err)
	}
	if dec.Allow {
		t.Error("database category should be denied by the custom policy")
	}
}

func TestCustomPolicy_CompileErrorSurfaces(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.rego")
	if err := os.WriteFile(path, []byte("this is not rego"), 0o600); err != nil {
		t.Fatalf("write policy: %v", err)
	}
	if _, err := NewOPAEvaluatorFromFile(path); err == nil {
		t.Error("broken policy should fail to compile")
	}
}

func TestCustomPolicy_MissingFile(t *testing.T) {
	if _, err := NewOPAEvaluatorFromFile(filepath.Join(t.TempDir(), "nope.rego")); err == nil {
		t.Error("missing policy file should fail")
	}
}
