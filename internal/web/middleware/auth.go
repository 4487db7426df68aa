// Package middleware holds the gin middleware chain for the console:
// session resolution, login enforcement, CSRF verification, flash messages,
// and mutation auditing.
package middleware

import (
	"context"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"admin-command-console/internal/user/domain"
)

// SessionCookie is the name of the signed session cookie.
const SessionCookie = "console_session"

const (
	ctxUserKey = "console.user"
	ctxCSRFKey = "console.csrf"
)

// SessionValidator verifies a session token and returns its bound identifiers.
type SessionValidator interface {
	Validate(token string) (userID, sessionID, csrfToken string, err error)
}

// UserLoader fetches an operator account by id.
type UserLoader interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

// Session resolves the session cookie into the current user. Best-effort:
// a missing or invalid cookie leaves the request anonymous, enforcement
// happens in RequireLogin. Inactive accounts stay anonymous too, so
// deactivation takes effect before the cookie expires.
func Session(sessions SessionValidator, users UserLoader) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookie)
		if err != nil || token == "" {
			c.Next()
			return
		}
		userID, _, csrfToken, err := sessions.Validate(token)
		if err != nil {
			c.Next()
			return
		}
		u, err := users.GetByID(c.Request.Context(), userID)
		if err != nil || u == nil || !u.Active {
			c.Next()
			return
		}
		c.Set(ctxUserKey, u)
		c.Set(ctxCSRFKey, csrfToken)
		c.Next()
	}
}

// RequireLogin redirects anonymous requests to the login page, carrying the
// original URL in the next parameter.
func RequireLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentUser(c) == nil {
			next := url.QueryEscape(c.Request.URL.RequestURI())
			c.Redirect(http.StatusSeeOther, "/login?next="+next)
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentUser returns the authenticated user for this request, or nil.
func CurrentUser(c *gin.Context) *domain.User {
	v, ok := c.Get(ctxUserKey)
	if !ok {
		return nil
	}
	u, _ := v.(*domain.User)
	return u
}

// SetCurrentUser attaches u to the request. Used by the login handler so the
// audit middleware can attribute the login itself.
func SetCurrentUser(c *gin.Context, u *domain.User) {
	c.Set(ctxUserKey, u)
}

// CSRFToken returns the CSRF token bound to the current session, or "".
func CSRFToken(c *gin.Context) string {
	v, ok := c.Get(ctxCSRFKey)
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}
