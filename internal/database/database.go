package database

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"log/slog"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/thanquan654/mood-diary/internal/config"
	"github.com/thanquan654/mood-diary/internal/database/migrations"
)

// Open connects to postgres through the pgx stdlib driver, tunes the pool
// and wraps the connection in gorm. w receives gorm's query log.
func Open(ctx context.Context, cfg config.DatabaseConfig, w *log.Logger, level logger.LogLevel) (*gorm.DB, error) {
	sqlDB, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("sql open: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(pingCtx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping: %w", err)
	}

	db, err := openGorm(sqlDB, NewGormLogger(w, cfg.SlowThreshold, level))
	if err != nil {
		_ = sqlDB.Close()
		return nil, err
	}
	return db, nil
}

func openGorm(conn gorm.ConnPool, l logger.Interface) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.New(postgres.Config{Conn: conn}), &gorm.Config{
		Logger:         l,
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("gorm open: %w", err)
	}
	return db, nil
}

// NewGormLogger routes gorm's logs to w. Record-not-found is an expected
// outcome of login lookups and is never logged.
func NewGormLogger(w *log.Logger, slow time.Duration, level logger.LogLevel) logger.Interface {
	return logger.New(w, logger.Config{
		SlowThreshold:             slow,
		LogLevel:                  level,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// Migrate applies the embedded schema migrations.
func Migrate(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("db.DB(): %w", err)
	}

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}
	if err := gooseUpContext(ctx, sqlDB, "."); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

// Close releases the underlying connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("db.DB(): %w", err)
	}
	return sqlDB.Close()
}

// GormLogLevel maps the service log level onto gorm's. SQL statements are
// only traced at debug.
func GormLogLevel(level slog.Level) logger.LogLevel {
	switch {
	case level <= slog.LevelDebug:
		return logger.Info
	case level >= slog.LevelError:
		return logger.Error
	default:
		return logger.Warn
	}
}
