package main

import (
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/frontdesk/frontdesk/internal/config"
	"github.com/frontdesk/frontdesk/internal/platform/auth"
)

func TestNewLogger_LevelFromConfig(t *testing.T) {
	cfg := &config.Config{Env: "production", LogLevel: "debug"}
	if got := newLogger(cfg).GetLevel(); got != zerolog.DebugLevel {
		t.Errorf("level = %s, want debug", got)
	}
}

func TestNewLogger_UnknownLevelFallsBackToInfo(t *testing.T) {
	cfg := &config.Config{Env: "production", LogLevel: "chatty"}
	if got := newLogger(cfg).GetLevel(); got != zerolog.InfoLevel {
		t.Errorf("level = %s, want info", got)
	}
}

func TestBuildDeps_SeedsFreshDataDir(t *testing.T) {
	cfg := &config.Config{DataDir: t.TempDir(), Env: "production", LogLevel: "info"}

	deps, err := buildDeps(cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("buildDeps: %v", err)
	}

	if got := len(deps.Doctors.List()); got != 20 {
		t.Errorf("expected 20 seeded doctors, got %d", got)
	}
	if got := len(deps.Staff.List()); got != 5 {
		t.Errorf("expected 5 seeded staff, got %d", got)
	}
	if !deps.Credentials.Verify("admin1", "admin123", auth.RoleAdmin) {
		t.Error("expected default admin account to be seeded")
	}
}

func TestSeedCommand_RefusesExistingWithoutForce(t *testing.T) {
	t.Setenv("DATA_DIR", t.TempDir())

	if err := seedCmd().Execute(); err != nil {
		t.Fatalf("first seed: %v", err)
	}

	err := seedCmd().Execute()
	if err == nil || !strings.Contains(err.Error(), "--force") {
		t.Fatalf("expected refusal pointing at --force, got %v", err)
	}

	forced := seedCmd()
	forced.SetArgs([]string{"--force"})
	if err := forced.Execute(); err != nil {
		t.Errorf("forced seed: %v", err)
	}
}
