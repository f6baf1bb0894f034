package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App struct {
		Name    string `envconfig:"APP_NAME" default:"Back Office"`
		Port    int    `envconfig:"PORT" default:"8080"`
		GinMode string `envconfig:"GIN_MODE" default:"debug"`
	}

	DB struct {
		Host            string        `envconfig:"DB_HOST" default:"localhost"`
		Port            int           `envconfig:"DB_PORT" default:"5432"`
		User            string        `envconfig:"DB_USER" default:"postgres"`
		Password        string        `envconfig:"DB_PASSWORD" default:"postgres"`
		Name            string        `envconfig:"DB_NAME" default:"postgres"`
		SSLMode         string        `envconfig:"DB_SSLMODE" default:"disable"`
		MaxOpenConns    int           `envconfig:"DB_MAX_OPEN_CONNS" default:"25"`
		MaxIdleConns    int           `envconfig:"DB_MAX_IDLE_CONNS" default:"5"`
		ConnMaxLifetime time.Duration `envconfig:"DB_CONN_MAX_LIFETIME" default:"30m"`
	}

	Auth struct {
		JWTSecret string `envconfig:"JWT_SECRET"`
	}

	CORS struct {
		AllowOrigins []string `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:5173,http://127.0.0.1:5173"`
	}

	Invoice struct {
		PaymentTermsDays int `envconfig:"INVOICE_PAYMENT_TERMS_DAYS" default:"30"`
	}

	Jobs struct {
		OverdueSweepSpec string `envconfig:"OVERDUE_SWEEP_SPEC" default:"0 * * * *"`
	}
}

func (c *Config) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.DB.User, c.DB.Password, c.DB.Host, c.DB.Port, c.DB.Name, c.DB.SSLMode)
}

// JWTSecret returns the signing secret. Outside release mode an unset secret falls back to a
// development key; in release mode it is an error.
func (c *Config) JWTSecret() ([]byte, error) {
	if c.Auth.JWTSecret != "" {
		return []byte(c.Auth.JWTSecret), nil
	}
	if c.App.GinMode == "release" {
		return nil, fmt.Errorf("JWT_SECRET is required in release mode")
	}
	return []byte("default_super_secret_key"), nil
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	if cfg.Invoice.PaymentTermsDays <= 0 {
		return nil, fmt.Errorf("INVOICE_PAYMENT_TERMS_DAYS must be positive, got %d", cfg.Invoice.PaymentTermsDays)
	}

	return &cfg, nil
}
