// Package handler holds the gin handlers for the console pages.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	userdomain "admin-command-console/internal/user/domain"
	"admin-command-console/internal/web/middleware"
)

// baseData builds the fields every page template expects. Pop drains queued
// flash messages, so call it once per rendered page.
func baseData(c *gin.Context, flash middleware.FlashStore, title string) gin.H {
	u := middleware.CurrentUser(c)
	return gin.H{
		"Title":          title,
		"User":           u,
		"CSRFToken":      middleware.CSRFToken(c),
		"Flashes":        flash.Pop(c),
		"CanViewHistory": u != nil && u.HasPermission(userdomain.PermViewHistory),
	}
}

// forbidden renders the permission-denied page with status 403.
func forbidden(c *gin.Context, flash middleware.FlashStore, verb string) {
	data := baseData(c, flash, "Permission denied")
	data["Verb"] = verb
	c.HTML(http.StatusForbidden, "forbidden.html", data)
}
