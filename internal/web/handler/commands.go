package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	commanddomain "admin-command-console/internal/command/domain"
	"admin-command-console/internal/command/registry"
	"admin-command-console/internal/command/service"
	"admin-command-console/internal/platform/rbac"
	userdomain "admin-command-console/internal/user/domain"
	"admin-command-console/internal/web/forms"
	"admin-command-console/internal/web/middleware"
)

// CommandRunner executes a validated run request for a user.
type CommandRunner interface {
	Run(ctx context.Context, user *userdomain.User, req commanddomain.RunRequest) (*commanddomain.Result, error)
}

// Commands serves the run-command form and handles submissions.
type Commands struct {
	svc      CommandRunner
	registry *registry.Registry
	flash    middleware.FlashStore
}

// NewCommands returns the run-command handlers.
func NewCommands(svc CommandRunner, reg *registry.Registry, flash middleware.FlashStore) *Commands {
	return &Commands{svc: svc, registry: reg, flash: flash}
}

// Show renders the run-command form.
func (h *Commands) Show(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if err := rbac.RequirePermission(user, userdomain.PermRunCommands); err != nil {
		forbidden(c, h.flash, "run commands")
		return
	}
	h.render(c, http.StatusOK, &forms.CommandForm{})
}

// Run validates the submitted form and executes the command. Successful and
// failed runs both flash the captured output and redirect back to the form,
// so a refresh never re-runs the command.
func (h *Commands) Run(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if err := rbac.RequirePermission(user, userdomain.PermRunCommands); err != nil {
		forbidden(c, h.flash, "run commands")
		return
	}

	form := forms.BindCommandForm(c)
	req, ok := form.Validate(func(name string) bool {
		_, found := h.registry.Get(name)
		return found
	})
	if !ok {
		h.render(c, http.StatusOK, form)
		return
	}

	res, err := h.svc.Run(c.Request.Context(), user, req)
	switch {
	case errors.Is(err, service.ErrNotPermitted):
		forbidden(c, h.flash, "run commands")
		return
	case errors.Is(err, service.ErrUnknownCommand):
		form.Errors["command"] = "Select a valid choice. That command is not available."
		h.render(c, http.StatusOK, form)
		return
	case err != nil:
		h.flash.Add(c, middleware.FlashError, fmt.Sprintf("Error: %v", err))
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	if res.OK() {
		h.flash.Add(c, middleware.FlashInfo, "Command output:\n"+res.Output)
	} else {
		h.flash.Add(c, middleware.FlashError, fmt.Sprintf("Error: %v\n%s", res.Err, res.Output))
	}
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *Commands) render(c *gin.Context, status int, form *forms.CommandForm) {
	data := baseData(c, h.flash, "Run command")
	data["Groups"] = h.registry.Grouped()
	data["Form"] = form
	data["SelectedUsage"] = h.usageFor(form.Command)
	c.HTML(status, "run_command.html", data)
}

// usageFor returns the usage line for the selected command, so a rejected
// submission re-renders with the usage field already filled.
func (h *Commands) usageFor(name string) string {
	if name == "" {
		return ""
	}
	d, ok := h.registry.Get(name)
	if !ok {
		return ""
	}
	return d.Usage
}
