package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	GinMode         string `validate:"oneof=debug release test"`
	HTTPAddr        string `validate:"required"`
	LogLevel        string `validate:"oneof=debug info warn warning error"`
	TZ              string
	DBDriver        string `validate:"oneof=postgres sqlite"`
	DBHost          string `validate:"required_if=DBDriver postgres"`
	DBPort          string `validate:"required_if=DBDriver postgres"`
	DBUser          string
	DBPass          string
	DBName          string `validate:"required_if=DBDriver postgres"`
	DBSSLMode       string
	SQLitePath      string        `validate:"required_if=DBDriver sqlite"`
	ShutdownTimeout time.Duration `validate:"gt=0"`
}

// findEnvFile walks up from the working directory looking for name.
func findEnvFile(name string) (string, bool) {
	dir, err := os.Getwd()
	if err != nil {
		return "", false
	}

	for {
		candidate := filepath.Join(dir, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

func newViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("GIN_MODE", "debug")
	v.SetDefault("HTTP_ADDR", ":8080")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("TZ", "UTC")
	v.SetDefault("ENV_FILE", ".env.dev")
	v.SetDefault("DB_DRIVER", DriverPostgres)
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_NAME", "locallibrary")
	v.SetDefault("SQLITE_PATH", "locallibrary.db")
	v.SetDefault("SHUTDOWN_TIMEOUT", 10*time.Second)

	return v
}

// Load reads configuration from the environment. In debug mode a dotenv
// file found in the working directory or any parent is applied first;
// variables already set in the environment win.
func Load() (*Config, error) {
	v := newViper()

	if v.GetString("GIN_MODE") == "debug" {
		name := v.GetString("ENV_FILE")
		if path, ok := findEnvFile(name); ok {
			if err := godotenv.Load(path); err != nil {
				log.Warn().Err(err).Str("path", path).Msg("could not load env file")
			} else {
				log.Debug().Str("path", path).Msg("loaded env file")
			}
		}
	}

	cfg := &Config{
		GinMode:         v.GetString("GIN_MODE"),
		HTTPAddr:        v.GetString("HTTP_ADDR"),
		LogLevel:        v.GetString("LOG_LEVEL"),
		TZ:              v.GetString("TZ"),
		DBDriver:        v.GetString("DB_DRIVER"),
		DBHost:          v.GetString("DB_HOST"),
		DBPort:          v.GetString("DB_PORT"),
		DBUser:          v.GetString("DB_USER"),
		DBPass:          v.GetString("DB_PASS"),
		DBName:          v.GetString("DB_NAME"),
		DBSSLMode:       v.GetString("DB_SSLMODE"),
		SQLitePath:      v.GetString("SQLITE_PATH"),
		ShutdownTimeout: v.GetDuration("SHUTDOWN_TIMEOUT"),
	}

	if cfg.DBSSLMode == "" {
		if cfg.GinMode == "release" {
			cfg.DBSSLMode = "require"
		} else {
			cfg.DBSSLMode = "disable"
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	err := validator.New().Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return fmt.Errorf("invalid config: %s failed %q (value %v)", fe.Field(), fe.Tag(), fe.Value())
	}
	return fmt.Errorf("invalid config: %w", err)
}

func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		c.DBHost,
		c.DBUser,
		c.DBPass,
		c.DBName,
		c.DBPort,
		c.DBSSLMode,
		c.TZ,
	)
}
