// Package builtin holds the commands compiled into the server binary, as
// opposed to shell-backed commands loaded from the catalog.
package builtin

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"runtime"
	"runtime/debug"
	"strings"
	"time"

	"admin-command-console/internal/command/domain"
)

// Descriptors returns the built-in command set. db may be nil; db-ping then
// reports the database as not configured.
func Descriptors(db *sql.DB) []domain.Descriptor {
	return []domain.Descriptor{
		{
			Name:     "echo",
			Usage:    "echo [args]  # prints args and stdin back, for smoke-testing the console",
			Category: "general",
			Handler:  echoHandler,
		},
		{
			Name:     "version",
			Usage:    "version  # prints the server build and runtime version",
			Category: "general",
			Handler:  versionHandler,
		},
		{
			Name:     "db-ping",
			Usage:    "db-ping  # checks database connectivity and reports round-trip time",
			Category: "database",
			Handler:  dbPingHandler(db),
		},
	}
}

func echoHandler(_ context.Context, args []string, stdin io.Reader, out io.Writer) error {
	if len(args) > 0 {
		fmt.Fprintln(out, strings.Join(args, " "))
	}
	if _, err := io.Copy(out, stdin); err != nil {
		return err
	}
	return nil
}

func versionHandler(_ context.Context, _ []string, _ io.Reader, out io.Writer) error {
	fmt.Fprintf(out, "go: %s\n", runtime.Version())
	if info, ok := debug.ReadBuildInfo(); ok {
		fmt.Fprintf(out, "module: %s\n", info.Main.Path)
		if info.Main.Version != "" {
			fmt.Fprintf(out, "version: %s\n", info.Main.Version)
		}
	}
	return nil
}

func dbPingHandler(db *sql.DB) domain.HandlerFunc {
	return func(ctx context.Context, _ []string, _ io.Reader, out io.Writer) error {
		if db == nil {
			return fmt.Errorf("no database configured")
		}
		start := time.Now()
		if err := db.PingContext(ctx); err != nil {
			return fmt.Errorf("ping: %w", err)
		}
		fmt.Fprintf(out, "database reachable in %s\n", time.Since(start).Round(time.Microsecond))
		return nil
	}
}
