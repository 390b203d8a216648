package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/thanquan654/mood-diary/internal/api"
	"github.com/thanquan654/mood-diary/internal/auth"
	"github.com/thanquan654/mood-diary/internal/config"
	"github.com/thanquan654/mood-diary/internal/database"
	"github.com/thanquan654/mood-diary/internal/logging"
	"github.com/thanquan654/mood-diary/internal/users"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	sl, err := logging.NewSlog(os.Stdout, cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	logger := logging.NewSlogLogger(sl)
	level, _ := logging.ParseLevel(cfg.Log.Level)

	gin.SetMode(cfg.HTTP.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.Open(ctx, cfg.Database, logger.Std(slog.LevelWarn), database.GormLogLevel(level))
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer func() {
		if err := database.Close(db); err != nil {
			logger.Error(ctx, "close database", "error", err)
		}
	}()

	if cfg.Database.Migrate {
		if err := database.Migrate(ctx, db); err != nil {
			return fmt.Errorf("migrations failed: %w", err)
		}
	}

	if cfg.Auth.JWTSecret == "" {
		logger.Warn(ctx, "JWT_SECRET is empty; every protected route will answer 401")
	}

	passwords, err := auth.NewPasswordMatcher(cfg.Auth.PasswordScheme)
	if err != nil {
		return err
	}
	store := users.NewGormStore(db)
	handler := auth.NewHandler(auth.NewService(store, passwords), store)

	router := api.NewRouter(cfg, logger, handler)
	srv := api.NewServer(cfg.HTTP, router, logger, logger.Std(slog.LevelError))

	return srv.Run(ctx)
}
