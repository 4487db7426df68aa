package middleware

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"admin-command-console/internal/audit"
	auditdomain "admin-command-console/internal/audit/domain"
)

// MutationAudit records one action-log entry for each successful mutating
// request by an authenticated user. Routes in skip are not logged here; the
// command run is skipped because its service records a richer entry with the
// command and args.
func MutationAudit(logger audit.ActionLogger, skip ...string) gin.HandlerFunc {
	skipSet := make(map[string]struct{}, len(skip))
	for _, s := range skip {
		skipSet[s] = struct{}{}
	}
	return func(c *gin.Context) {
		c.Next()

		method := c.Request.Method
		switch method {
		case "POST", "PUT", "PATCH", "DELETE":
		default:
			return
		}
		route := method + " " + c.Request.URL.Path
		if _, ok := skipSet[route]; ok {
			return
		}
		if c.Writer.Status() >= 400 {
			return
		}

		// Login sets the user during the handler, so read it after c.Next.
		// Anonymous mutations are not audited: a failed login re-renders the
		// form with 200 and no user, and an entry without a user is noise.
		u := CurrentUser(c)
		if u == nil {
			return
		}
		ar := audit.ParseRoute(method, c.Request.URL.Path)
		repr := fmt.Sprintf("%s %s", ar.Action, ar.Resource)
		logger.LogAction(c.Request.Context(), u.ID, ar.Action, repr, auditdomain.FlagAddition)
	}
}
