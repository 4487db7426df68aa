package handler

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"admin-command-console/internal/security"
	userrepo "admin-command-console/internal/user/repository"
	"admin-command-console/internal/web/forms"
	"admin-command-console/internal/web/middleware"
)

const badCredentialsMsg = "Please enter a correct username and password."

// Auth serves login and logout.
type Auth struct {
	users         userrepo.Repository
	hasher        *security.Hasher
	sessions      *security.SessionProvider
	flash         middleware.FlashStore
	secureCookies bool
}

// NewAuth returns the auth handlers.
func NewAuth(users userrepo.Repository, hasher *security.Hasher, sessions *security.SessionProvider, flash middleware.FlashStore, secureCookies bool) *Auth {
	return &Auth{users: users, hasher: hasher, sessions: sessions, flash: flash, secureCookies: secureCookies}
}

// ShowLogin renders the login form. Already-authenticated users go home.
func (h *Auth) ShowLogin(c *gin.Context) {
	if middleware.CurrentUser(c) != nil {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}
	h.render(c, &forms.LoginForm{})
}

// Login checks credentials and establishes a session. Bad credentials
// re-render the form with a single generic error, never saying which field
// was wrong.
func (h *Auth) Login(c *gin.Context) {
	form := forms.BindLoginForm(c)
	if !form.Validate() {
		h.render(c, form)
		return
	}

	u, err := h.users.GetByUsername(c.Request.Context(), form.Username)
	if err != nil || u == nil || !u.Active ||
		h.hasher.Compare(u.PasswordHash, []byte(form.Password)) != nil {
		form.Errors["form"] = badCredentialsMsg
		h.render(c, form)
		return
	}

	token, _, _, _, err := h.sessions.Issue(u.ID)
	if err != nil {
		log.Printf("auth: issue session for %s: %v", u.Username, err)
		c.String(http.StatusInternalServerError, "failed to start session")
		return
	}

	maxAge := int(h.sessions.TTL().Seconds())
	c.SetCookie(middleware.SessionCookie, token, maxAge, "/", "", h.secureCookies, true)
	// Attach the user now so the mutation-audit middleware attributes the login.
	middleware.SetCurrentUser(c, u)
	c.Redirect(http.StatusSeeOther, safeNext(c.Query("next")))
}

// Logout clears the session cookie.
func (h *Auth) Logout(c *gin.Context) {
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", h.secureCookies, true)
	h.flash.Add(c, middleware.FlashInfo, "You are now logged out.")
	c.Redirect(http.StatusSeeOther, "/login")
}

func (h *Auth) render(c *gin.Context, form *forms.LoginForm) {
	data := baseData(c, h.flash, "Log in")
	data["Form"] = form
	data["Next"] = safeNextOrEmpty(c.Query("next"))
	c.HTML(http.StatusOK, "login.html", data)
}

// safeNext returns next when it is a local path, "/" otherwise. Protocol
// relative URLs ("//evil.example") would redirect off-site.
func safeNext(next string) string {
	if p := safeNextOrEmpty(next); p != "" {
		return p
	}
	return "/"
}

func safeNextOrEmpty(next string) string {
	if strings.HasPrefix(next, "/") && !strings.HasPrefix(next, "//") {
		return next
	}
	return ""
}
