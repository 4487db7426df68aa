package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	os.Clearenv()
	os.Setenv("HTTP_ADDR", ":8443")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg == nil {
		t.Fatal("Load returned nil config")
	}
	if cfg.HTTPAddr != ":8443" {
		t.Errorf("HTTPAddr = %q, want %q", cfg.HTTPAddr, ":8443")
	}
	if cfg.SessionTTL != "12h" {
		t.Errorf("SessionTTL = %q, want %q", cfg.SessionTTL, "12h")
	}
	if cfg.BcryptCost != 12 {
		t.Errorf("BcryptCost = %d, want 12", cfg.BcryptCost)
	}
	if cfg.CommandTimeout != "5m" {
		t.Errorf("CommandTimeout = %q, want %q", cfg.CommandTimeout, "5m")
	}
	if cfg.HistoryPageSize != 100 {
		t.Errorf("HistoryPageSize = %d, want 100", cfg.HistoryPageSize)
	}
	if cfg.SecureCookies {
		t.Error("SecureCookies should default to false")
	}
}

func TestLoad_EnvVarOverride(t *testing.T) {
	os.Clearenv()
	os.Setenv("HTTP_ADDR", ":9090")
	os.Setenv("BCRYPT_COST", "14")
	os.Setenv("HISTORY_PAGE_SIZE", "25")
	os.Setenv("DEFAULT_COMMAND_ARGS", "--no-color --verbose")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.HTTPAddr != ":9090" {
		t.Errorf("HTTPAddr = %q, want %q", cfg.HTTPAddr, ":9090")
	}
	if cfg.BcryptCost != 14 {
		t.Errorf("BcryptCost = %d, want 14", cfg.BcryptCost)
	}
	if cfg.HistoryPageSize != 25 {
		t.Errorf("HistoryPageSize = %d, want 25", cfg.HistoryPageSize)
	}
	args := cfg.DefaultArgs()
	if len(args) != 2 || args[0] != "--no-color" || args[1] != "--verbose" {
		t.Errorf("DefaultArgs = %v, want [--no-color --verbose]", args)
	}
}

func TestLoad_InvalidBcryptCost(t *testing.T) {
	os.Clearenv()
	os.Setenv("HTTP_ADDR", ":8443")
	os.Setenv("BCRYPT_COST", "50")

	if _, err := Load(); err == nil {
		t.Error("Load should reject BCRYPT_COST > 31")
	}
}

func TestLoad_InvalidHistoryPageSize(t *testing.T) {
	os.Clearenv()
	os.Setenv("HTTP_ADDR", ":8443")
	os.Setenv("HISTORY_PAGE_SIZE", "-1")

	if _, err := Load(); err == nil {
		t.Error("Load should reject non-positive HISTORY_PAGE_SIZE")
	}
}

func TestLoad_ProductionRequiresSecret(t *testing.T) {
	os.Clearenv()
	os.Setenv("HTTP_ADDR", ":8443")
	os.Setenv("APP_ENV", "production")
	os.Setenv("SESSION_SECRET", "too-short")

	if _, err := Load(); err == nil {
		t.Error("Load should reject short SESSION_SECRET in production")
	}

	os.Setenv("SESSION_SECRET", "0123456789abcdef0123456789abcdef")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.SecureCookies {
		t.Error("SecureCookies should be forced on in production")
	}
}

func TestDurations_FallBackOnInvalid(t *testing.T) {
	cfg := &Config{SessionTTL: "bogus", CommandTimeout: ""}
	if got := cfg.SessionTTLDuration(); got != 12*time.Hour {
		t.Errorf("SessionTTLDuration = %v, want 12h", got)
	}
	if got := cfg.CommandTimeoutDuration(); got != 5*time.Minute {
		t.Errorf("CommandTimeoutDuration = %v, want 5m", got)
	}
	cfg = &Config{SessionTTL: "30m", CommandTimeout: "90s"}
	if got := cfg.SessionTTLDuration(); got != 30*time.Minute {
		t.Errorf("SessionTTLDuration = %v, want 30m", got)
	}
	if got := cfg.CommandTimeoutDuration(); got != 90*time.Second {
		t.Errorf("CommandTimeoutDuration = %v, want 90s", got)
	}
}

func TestDefaultArgs_Empty(t *testing.T) {
	cfg := &Config{DefaultCommandArgs: "   "}
	if got := cfg.DefaultArgs(); got != nil {
		t.Errorf("DefaultArgs = %v, want nil", got)
	}
}
