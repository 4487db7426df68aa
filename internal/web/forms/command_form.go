// Package forms binds and validates the console's HTML forms.
package forms

import (
	"strings"

	"github.com/gin-gonic/gin"

	"admin-command-console/internal/command/domain"
	"admin-command-console/internal/command/runner"
)

// Field error messages shown inline next to the offending input.
const (
	msgRequired      = "This field is required."
	msgInvalidChoice = "Select a valid choice. That command is not available."
)

// CommandForm holds the run-command form fields and any validation errors.
// The raw field values are echoed back so a rejected submission re-renders
// with what the operator typed.
type CommandForm struct {
	Command string
	Args    string
	Stdin   string

	// Errors maps field name to message. Empty after a successful Validate.
	Errors map[string]string
}

// BindCommandForm reads the run-command form from the request.
func BindCommandForm(c *gin.Context) *CommandForm {
	return &CommandForm{
		Command: strings.TrimSpace(c.PostForm("command")),
		Args:    c.PostForm("args"),
		Stdin:   c.PostForm("stdin"),
		Errors:  map[string]string{},
	}
}

// Validate checks the form and builds the run request. registered reports
// whether a command name exists in the catalog. Returns ok=false with
// per-field errors when the form is invalid.
func (f *CommandForm) Validate(registered func(string) bool) (domain.RunRequest, bool) {
	if f.Errors == nil {
		f.Errors = map[string]string{}
	}
	if f.Command == "" {
		f.Errors["command"] = msgRequired
	} else if registered != nil && !registered(f.Command) {
		f.Errors["command"] = msgInvalidChoice
	}

	args, err := runner.SplitArgs(f.Args)
	if err != nil {
		f.Errors["args"] = err.Error()
	}

	if len(f.Errors) > 0 {
		return domain.RunRequest{}, false
	}
	return domain.RunRequest{Command: f.Command, Args: args, Stdin: f.Stdin}, true
}

// LoginForm holds the login form fields and validation errors.
type LoginForm struct {
	Username string
	Password string
	Errors   map[string]string
}

// BindLoginForm reads the login form from the request.
func BindLoginForm(c *gin.Context) *LoginForm {
	return &LoginForm{
		Username: strings.TrimSpace(c.PostForm("username")),
		Password: c.PostForm("password"),
		Errors:   map[string]string{},
	}
}

// Validate checks that both fields are present.
func (f *LoginForm) Validate() bool {
	if f.Errors == nil {
		f.Errors = map[string]string{}
	}
	if f.Username == "" {
		f.Errors["username"] = msgRequired
	}
	if f.Password == "" {
		f.Errors["password"] = msgRequired
	}
	return len(f.Errors) == 0
}
