// Package config loads the runtime configuration from the environment,
// with optional .env support for local runs.
package config

import (
	"fmt"
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type DBConfig struct {
	Host     string `envconfig:"HOST" default:"localhost"`
	Port     int    `envconfig:"PORT" default:"5432"`
	Name     string `envconfig:"NAME" default:"finance"`
	User     string `envconfig:"USER" default:"postgres"`
	Password string `envconfig:"PASS"`
}

// DSN builds the Postgres connection string.
func (d DBConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d dbname=%s user=%s password=%s sslmode=disable",
		d.Host, d.Port, d.Name, d.User, d.Password)
}

type DashboardConfig struct {
	Port int `envconfig:"PORT" default:"12000"`

	// URL is the address sent to users by the /dashboard command.
	URL string `envconfig:"URL" default:"http://localhost:12000"`
}

type Config struct {
	// Token is the bot credential. The process refuses to start without it.
	Token string `envconfig:"TELEGRAM_TOKEN" required:"true"`

	IdempotencePath string `envconfig:"IDEMPOTENCE_PATH" default:"handled.db"`

	DB        DBConfig        `envconfig:"DB"`
	Dashboard DashboardConfig `envconfig:"DASHBOARD"`
}

func Load(log *slog.Logger) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Warn("no .env file found, using system environment variables")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}

	log.Info("config loaded",
		"db_host", cfg.DB.Host,
		"db_name", cfg.DB.Name,
		"dashboard_port", cfg.Dashboard.Port,
	)
	return &cfg, nil
}
