// Command seed inserts one user record, standing in for the registration
// flow the service does not offer.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/thanquan654/mood-diary/internal/auth"
	"github.com/thanquan654/mood-diary/internal/config"
	"github.com/thanquan654/mood-diary/internal/database"
	"github.com/thanquan654/mood-diary/internal/logging"
	"github.com/thanquan654/mood-diary/internal/users"
)

const (
	defaultEmail    = "demo@mood-diary.local"
	defaultPassword = "demo1234"
	defaultFullname = "Demo User"
	seedTimeout     = 30 * time.Second
)

type seedUser struct {
	Email      string
	Password   string
	Fullname   string
	AvatarURL  string
	ProviderID string
}

func main() {
	su, err := parseArgs(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	// database and password settings come from .env and the environment
	cfg, err := config.Load(nil)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	sl, err := logging.NewSlog(os.Stderr, cfg.Log.Level, "text")
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	logger := logging.NewSlogLogger(sl)

	ctx, cancel := context.WithTimeout(context.Background(), seedTimeout)
	defer cancel()

	if err := seed(ctx, cfg, logger, su); err != nil {
		log.Fatalf("failed to seed user: %v", err)
	}
}

func parseArgs(args []string) (seedUser, error) {
	su := seedUser{
		Email:      envOr("SEED_EMAIL", defaultEmail),
		Password:   envOr("SEED_PASSWORD", defaultPassword),
		Fullname:   envOr("SEED_FULLNAME", defaultFullname),
		AvatarURL:  os.Getenv("SEED_AVATAR_URL"),
		ProviderID: os.Getenv("SEED_PROVIDER_ID"),
	}

	fs := flag.NewFlagSet("seed", flag.ContinueOnError)
	fs.StringVar(&su.Email, "email", su.Email, "user email")
	fs.StringVar(&su.Password, "password", su.Password, "password; empty creates a provider-only account")
	fs.StringVar(&su.Fullname, "fullname", su.Fullname, "display name")
	fs.StringVar(&su.AvatarURL, "avatar", su.AvatarURL, "avatar URL")
	fs.StringVar(&su.ProviderID, "provider", su.ProviderID, "external provider id")
	if err := fs.Parse(args); err != nil {
		return seedUser{}, err
	}

	if su.Email == "" || su.Fullname == "" {
		return seedUser{}, errors.New("email and fullname are required")
	}
	return su, nil
}

func envOr(key, def string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return def
}

func seed(ctx context.Context, cfg *config.Config, logger *logging.SlogLogger, su seedUser) error {
	db, err := database.Open(ctx, cfg.Database, logger.Std(slog.LevelWarn), database.GormLogLevel(slog.LevelWarn))
	if err != nil {
		return err
	}
	defer database.Close(db)

	if err := database.Migrate(ctx, db); err != nil {
		return err
	}

	passwords, err := auth.NewPasswordMatcher(cfg.Auth.PasswordScheme)
	if err != nil {
		return err
	}
	u, err := newUser(su, passwords)
	if err != nil {
		return err
	}

	err = users.NewGormStore(db).Create(ctx, u)
	if errors.Is(err, users.ErrAlreadyExists) {
		logger.Info(ctx, "user already exists, nothing to do", "email", su.Email)
		return nil
	}
	if err != nil {
		return err
	}

	logger.Info(ctx, "seed completed", "email", u.Email, "id", u.ID, "password_scheme", cfg.Auth.PasswordScheme)
	return nil
}

func newUser(su seedUser, passwords auth.PasswordMatcher) (*users.User, error) {
	u := &users.User{
		Email:      su.Email,
		Fullname:   su.Fullname,
		AvatarURL:  optional(su.AvatarURL),
		ProviderID: optional(su.ProviderID),
	}
	if su.Password != "" {
		stored, err := passwords.Hash(su.Password)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		u.Password = &stored
	}
	return u, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
