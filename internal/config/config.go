package config

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/viper"
)

// Collection file names inside DATA_DIR. The layout is fixed: one JSON
// array per entity type, rewritten wholesale after each mutation.
const (
	UsersFile        = "users.json"
	PatientsFile     = "patients.json"
	DoctorsFile      = "doctors.json"
	AppointmentsFile = "appointments.json"
	StaffFile        = "staff.json"
)

type Config struct {
	DataDir  string `mapstructure:"DATA_DIR"`
	Env      string `mapstructure:"ENV"`
	LogLevel string `mapstructure:"LOG_LEVEL"`
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("DATA_DIR", "./data")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")

	// Bind env vars explicitly so Unmarshal picks them up
	v.BindEnv("DATA_DIR")
	v.BindEnv("ENV")
	v.BindEnv("LOG_LEVEL")

	// Try reading .env file, but don't fail if missing
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	return cfg, nil
}

func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// CollectionPath returns the absolute location of a collection file
// inside the configured data directory.
func (c *Config) CollectionPath(name string) string {
	return filepath.Join(c.DataDir, name)
}
