package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort   string `env:"HTTP_PORT" envDefault:"8080"`
	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBPort     string `env:"DB_PORT" envDefault:"5432"`
	DBUser     string `env:"DB_USER" envDefault:"postgres"`
	DBPassword string `env:"DB_PASSWORD"`
	DBName     string `env:"DB_NAME" envDefault:"shippinglabel"`
	DBSslMode  string `env:"DB_SSLMODE" envDefault:"disable"`

	StateIdleTTL               time.Duration `env:"STATE_IDLE_TTL" envDefault:"30m"`
	StateEvictionSchedule      string        `env:"STATE_EVICTION_SCHEDULE" envDefault:"0 */5 * * * *"`
	LabelStatusRefreshSchedule string        `env:"LABEL_STATUS_REFRESH_SCHEDULE" envDefault:"*/30 * * * * *"`
	LabelStatusRefreshBatch    int           `env:"LABEL_STATUS_REFRESH_BATCH" envDefault:"50"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// LoadConfig reads the configuration from the environment. Variables from
// envFile are loaded first when the file exists; variables already set in
// the environment win.
func LoadConfig(envFile string) (Config, error) {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load %s: %w", envFile, err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// DSN returns the postgres connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%v port=%v user=%v password=%v dbname=%v sslmode=%v",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// SlogLevel parses LogLevel. Unknown values fall back to info.
func (c Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}
