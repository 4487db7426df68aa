// Package web assembles the gin engine and HTTP server for the console.
package web

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"admin-command-console/internal/audit"
	auditrepo "admin-command-console/internal/audit/repository"
	"admin-command-console/internal/command/registry"
	"admin-command-console/internal/security"
	userrepo "admin-command-console/internal/user/repository"
	"admin-command-console/internal/web/handler"
	"admin-command-console/internal/web/middleware"
	"admin-command-console/internal/web/templates"
)

// Deps holds everything the server needs wired in.
type Deps struct {
	Addr            string
	SecureCookies   bool
	HistoryPageSize int

	Users       userrepo.Repository
	Audits      auditrepo.Repository
	Sessions    *security.SessionProvider
	Hasher      *security.Hasher
	Commands    *registry.Registry
	Runner      handler.CommandRunner
	AuditLogger audit.ActionLogger
	DB          handler.Pinger
}

// Server is the console HTTP server.
type Server struct {
	engine *gin.Engine
	http   *http.Server
}

// New builds the engine, routes, and middleware chain.
func New(deps Deps) *Server {
	engine := gin.New()
	engine.Use(gin.Logger(), gin.Recovery())
	engine.SetHTMLTemplate(templates.Must())

	flash := middleware.FlashStore{Secure: deps.SecureCookies}

	engine.Use(func(c *gin.Context) {
		ctx := audit.WithClientIP(c.Request.Context(), c.ClientIP())
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	})
	engine.Use(middleware.Session(deps.Sessions, deps.Users))
	// The login form posts before any session exists.
	engine.Use(middleware.CSRF("/login"))
	// Command runs are audited by the command service with name and args.
	engine.Use(middleware.MutationAudit(deps.AuditLogger, "POST /"))

	health := handler.NewHealth(deps.DB)
	auth := handler.NewAuth(deps.Users, deps.Hasher, deps.Sessions, flash, deps.SecureCookies)
	commands := handler.NewCommands(deps.Runner, deps.Commands, flash)
	history := handler.NewHistory(deps.Audits, flash, deps.HistoryPageSize)

	engine.GET("/healthz", health.Check)
	engine.GET("/login", auth.ShowLogin)
	engine.POST("/login", auth.Login)
	engine.POST("/logout", auth.Logout)

	private := engine.Group("/", middleware.RequireLogin())
	private.GET("/", commands.Show)
	private.POST("/", commands.Run)
	private.GET("/history", history.Show)

	return &Server{
		engine: engine,
		http: &http.Server{
			Addr:              deps.Addr,
			Handler:           engine,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

// Handler exposes the engine for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Start serves until the listener fails or Shutdown is called.
func (s *Server) Start() error {
	err := s.http.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Shutdown drains in-flight requests and stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
