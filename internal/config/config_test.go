package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	os.Unsetenv("DATA_DIR")
	os.Unsetenv("ENV")
	os.Unsetenv("LOG_LEVEL")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.DataDir != "./data" {
		t.Errorf("expected default data dir ./data, got %s", cfg.DataDir)
	}

	if cfg.Env != "development" {
		t.Errorf("expected default env development, got %s", cfg.Env)
	}

	if cfg.LogLevel != "info" {
		t.Errorf("expected default log level info, got %s", cfg.LogLevel)
	}
}

func TestLoad_FromEnvironment(t *testing.T) {
	os.Setenv("DATA_DIR", "/var/lib/frontdesk")
	os.Setenv("ENV", "production")
	defer os.Unsetenv("DATA_DIR")
	defer os.Unsetenv("ENV")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.DataDir != "/var/lib/frontdesk" {
		t.Errorf("expected DATA_DIR override, got %s", cfg.DataDir)
	}

	if cfg.IsDev() {
		t.Error("expected IsDev() to return false for production")
	}
}

func TestConfig_CollectionPath(t *testing.T) {
	c := &Config{DataDir: "/tmp/hospital"}
	got := c.CollectionPath(DoctorsFile)
	want := filepath.Join("/tmp/hospital", "doctors.json")
	if got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}

func TestConfig_IsDev(t *testing.T) {
	c := &Config{Env: "development"}
	if !c.IsDev() {
		t.Error("expected IsDev() to return true for development")
	}

	c.Env = "production"
	if c.IsDev() {
		t.Error("expected IsDev() to return false for production")
	}
}
