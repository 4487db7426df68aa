package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"admin-command-console/internal/audit"
	auditrepo "admin-command-console/internal/audit/repository"
	"admin-command-console/internal/command/builtin"
	"admin-command-console/internal/command/registry"
	"admin-command-console/internal/command/runner"
	"admin-command-console/internal/command/service"
	"admin-command-console/internal/config"
	"admin-command-console/internal/db"
	"admin-command-console/internal/policy/engine"
	"admin-command-console/internal/security"
	"admin-command-console/internal/telemetry/otel"
	userrepo "admin-command-console/internal/user/repository"
	"admin-command-console/internal/web"
)

const serviceName = "admin-command-console"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is not set; create a .env from .env.example or set DATABASE_URL")
	}

	ctx := context.Background()

	providers, err := otel.NewProviders(ctx, cfg.OTLPEndpoint, serviceName, cfg.OTLPInsecure)
	if err != nil {
		log.Fatalf("telemetry: %v", err)
	}
	providers.SetGlobal()
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := providers.Shutdown(shutdownCtx); err != nil {
			log.Printf("telemetry shutdown: %v", err)
		}
	}()

	conn, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	defer conn.Close()

	users := userrepo.NewPostgresRepository(conn)
	audits := auditrepo.NewPostgresRepository(conn)
	auditLogger := audit.NewLogger(audits, audit.ClientIPFromContext)

	commands := registry.New()
	for _, d := range builtin.Descriptors(conn) {
		if err := commands.Register(d); err != nil {
			log.Fatalf("commands: %v", err)
		}
	}
	if cfg.CommandsFile != "" {
		if err := commands.LoadCatalog(cfg.CommandsFile); err != nil {
			log.Fatalf("commands: %v", err)
		}
	}
	log.Printf("registered %d commands", commands.Len())

	var policy engine.Evaluator
	if cfg.PolicyFile != "" {
		policy, err = engine.NewOPAEvaluatorFromFile(cfg.PolicyFile)
	} else {
		policy, err = engine.NewOPAEvaluator()
	}
	if err != nil {
		log.Fatalf("policy: %v", err)
	}

	runSvc := service.New(
		commands,
		runner.New(cfg.CommandTimeoutDuration()),
		policy,
		auditLogger,
		cfg.DefaultArgs(),
	)

	sessions := security.NewSessionProvider(
		[]byte(cfg.SessionSecret), serviceName, serviceName, cfg.SessionTTLDuration())

	srv := web.New(web.Deps{
		Addr:            cfg.HTTPAddr,
		SecureCookies:   cfg.SecureCookies,
		HistoryPageSize: cfg.HistoryPageSize,
		Users:           users,
		Audits:          audits,
		Sessions:        sessions,
		Hasher:          security.NewHasher(cfg.BcryptCost),
		Commands:        commands,
		Runner:          runSvc,
		AuditLogger:     auditLogger,
		DB:              conn,
	})

	go func() {
		log.Printf("console listening on %s", cfg.HTTPAddr)
		if err := srv.Start(); err != nil {
			log.Fatalf("serve: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
	log.Println("server stopped")
}
