package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
)

// CSRFField is the form field carrying the CSRF token on mutating requests.
const CSRFField = "csrf_token"

// CSRF rejects mutating requests whose csrf_token form field does not match
// the token bound to the session. Must run after Session. Anonymous mutating
// requests (no session token) are rejected too, except for routes listed in
// exempt (the login form has no session yet).
func CSRF(exempt ...string) gin.HandlerFunc {
	exemptSet := make(map[string]struct{}, len(exempt))
	for _, p := range exempt {
		exemptSet[p] = struct{}{}
	}
	return func(c *gin.Context) {
		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			c.Next()
			return
		}
		if _, ok := exemptSet[c.Request.URL.Path]; ok {
			c.Next()
			return
		}
		want := CSRFToken(c)
		got := c.PostForm(CSRFField)
		if want == "" || got == "" ||
			subtle.ConstantTimeCompare([]byte(want), []byte(got)) != 1 {
			c.String(http.StatusForbidden, "CSRF verification failed.")
			c.Abort()
			return
		}
		c.Next()
	}
}
