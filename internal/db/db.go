package db

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/snnyvrz/locallibrary/internal/config"
	"github.com/snnyvrz/locallibrary/internal/model"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const (
	defaultMaxAttempts     = 10
	defaultDelayBetweenTry = 2 * time.Second
)

// Options returns the gorm configuration shared by every connection.
// References between collections are resolved by the catalog layer, so no
// foreign key constraints are created in the schema.
func Options(logLevel gormlogger.LogLevel) *gorm.Config {
	return &gorm.Config{
		TranslateError:                           true,
		DisableForeignKeyConstraintWhenMigrating: true,
		Logger: gormlogger.New(gormWriter{}, gormlogger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logLevel,
			IgnoreRecordNotFoundError: true,
		}),
	}
}

// gormWriter forwards gorm's own log lines to zerolog; gorm has already
// filtered them by its configured level.
type gormWriter struct{}

func (gormWriter) Printf(format string, args ...any) {
	log.Info().Str("component", "gorm").Msgf(format, args...)
}

func Open(cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case config.DriverPostgres:
		dialector = postgres.Open(cfg.DSN())
	case config.DriverSQLite:
		dialector = sqlite.Open(cfg.SQLitePath)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.DBDriver)
	}

	db, err := gorm.Open(dialector, Options(GormLogLevel(cfg.LogLevel)))
	if err != nil {
		return nil, err
	}

	if cfg.DBDriver == config.DriverSQLite {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
	}

	return db, nil
}

func ConnectWithRetry(cfg *config.Config) (*gorm.DB, error) {
	var db *gorm.DB
	var err error

	for attempt := 1; attempt <= defaultMaxAttempts; attempt++ {
		db, err = Open(cfg)
		if err == nil {
			sqlDB, err2 := db.DB()
			if err2 == nil {
				pingErr := sqlDB.Ping()
				if pingErr == nil {
					return db, nil
				}
				err = pingErr
			} else {
				err = err2
			}
		}

		log.Warn().
			Err(err).
			Int("attempt", attempt).
			Int("max_attempts", defaultMaxAttempts).
			Msg("db not ready")
		time.Sleep(defaultDelayBetweenTry)
	}

	return nil, fmt.Errorf("could not connect to db after %d attempts: %w", defaultMaxAttempts, err)
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Author{},
		&model.Genre{},
		&model.Book{},
		&model.BookInstance{},
		&model.HistoryEntry{},
	)
}

func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// GormLogLevel maps the application log level onto gorm's coarser scale.
func GormLogLevel(level string) gormlogger.LogLevel {
	switch level {
	case "debug":
		return gormlogger.Info
	case "info", "warn", "warning":
		return gormlogger.Warn
	case "error":
		return gormlogger.Error
	default:
		return gormlogger.Silent
	}
}
