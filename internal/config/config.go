package config

import "github.com/kelseyhightower/envconfig"

// Config holds every runtime setting, populated from the environment.
// A .env file may supply the variables in development (loaded in main).
type Config struct {
	Port          string `envconfig:"PORT" default:"3000"`
	DatabaseDSN   string `envconfig:"DATABASE_DSN" default:"database.sqlite"`
	SessionSecret string `envconfig:"SESSION_SECRET" default:"your_super_secret_key_change_in_prod"`
	Env           string `envconfig:"APP_ENV" default:"development"`

	// Seed account created on first run.
	AdminName     string `envconfig:"ADMIN_NAME" default:"System Admin"`
	AdminEmail    string `envconfig:"ADMIN_EMAIL" default:"admin@company.com"`
	AdminPassword string `envconfig:"ADMIN_PASSWORD" default:"adminpassword123"`

	CORSOrigins []string `envconfig:"CORS_ORIGINS" default:"http://localhost:5173"`
}

// Load reads the configuration from the environment.
func Load() (Config, error) {
	var c Config
	err := envconfig.Process("", &c)
	return c, err
}

// Production reports whether production hardening (secure cookies) applies.
func (c Config) Production() bool {
	return c.Env == "production"
}
