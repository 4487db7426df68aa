package handler

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	auditrepo "admin-command-console/internal/audit/repository"
	"admin-command-console/internal/platform/pagination"
	"admin-command-console/internal/platform/rbac"
	userdomain "admin-command-console/internal/user/domain"
	"admin-command-console/internal/web/middleware"
)

// History serves the paginated execution-history page.
type History struct {
	audits   auditrepo.Repository
	flash    middleware.FlashStore
	pageSize int
}

// NewHistory returns the history handler. pageSize is entries per page.
func NewHistory(audits auditrepo.Repository, flash middleware.FlashStore, pageSize int) *History {
	return &History{audits: audits, flash: flash, pageSize: pageSize}
}

// Show renders one page of the action log, newest first. The requested page
// comes from the p query parameter; out-of-range values clamp to the nearest
// valid page instead of erroring.
func (h *History) Show(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if err := rbac.RequirePermission(user, userdomain.PermViewHistory); err != nil {
		forbidden(c, h.flash, "view the execution history")
		return
	}

	ctx := c.Request.Context()
	count, err := h.audits.Count(ctx)
	if err != nil {
		log.Printf("history: count: %v", err)
		c.String(http.StatusInternalServerError, "failed to load history")
		return
	}

	pag := pagination.New(count, h.pageSize)
	requested, _ := strconv.Atoi(c.Query("p"))
	page := pag.Clamp(requested)

	rows, err := h.audits.ListPage(ctx, int32(h.pageSize), int32(pag.Offset(page)))
	if err != nil {
		log.Printf("history: list page %d: %v", page, err)
		c.String(http.StatusInternalServerError, "failed to load history")
		return
	}

	data := baseData(c, h.flash, "Execution history")
	data["Rows"] = rows
	data["Count"] = count
	data["Page"] = page
	data["PageItems"] = pag.ElidedRange(page)
	data["PaginationRequired"] = pag.Required()
	c.HTML(http.StatusOK, "history.html", data)
}
