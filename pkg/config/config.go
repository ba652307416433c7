package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	AppEnv       string `envconfig:"APP_ENV" default:"local"`
	Port         int    `envconfig:"PORT" default:"8080"`
	Debug        bool   `envconfig:"DEBUG" default:"false"`
	SentryDSN    string `envconfig:"SENTRY_DSN"`
	AllowOrigins string `envconfig:"ALLOW_ORIGINS"`

	DB struct {
		Host            string        `envconfig:"HOST" default:"localhost"`
		Port            int           `envconfig:"PORT" default:"5432"`
		User            string        `envconfig:"USER" default:"postgres"`
		Password        string        `envconfig:"PASSWORD" default:"postgres"`
		Name            string        `envconfig:"NAME" default:"enquiry"`
		SSLMode         string        `envconfig:"SSL_MODE" default:"disable"`
		MaxOpenConns    int           `envconfig:"MAX_OPEN_CONNS" default:"20"`
		MaxIdleConns    int           `envconfig:"MAX_IDLE_CONNS" default:"5"`
		ConnMaxLifetime time.Duration `envconfig:"CONN_MAX_LIFETIME" default:"30m"`
	} `envconfig:"DB"`

	Redis struct {
		Addr         string        `envconfig:"ADDR"`
		Password     string        `envconfig:"PASSWORD"`
		DB           int           `envconfig:"DB" default:"0"`
		CacheTTL     time.Duration `envconfig:"CACHE_TTL" default:"5m"`
		EventChannel string        `envconfig:"EVENT_CHANNEL" default:"customer.events"`
	} `envconfig:"REDIS"`

	NotificationHub struct {
		Endpoint string `envconfig:"ENDPOINT"`
		Token    string `envconfig:"TOKEN"`
	} `envconfig:"NOTIFICATION_HUB"`
}

// LoadConfig reads .env when present, then the environment.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("process env: %w", err)
	}

	return &cfg, nil
}

func (c *Config) IsLocal() bool {
	return c.AppEnv == "local"
}
