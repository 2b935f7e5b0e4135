package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/go-pg/pg/v10"
	"github.com/joho/godotenv"
	"github.com/namsral/flag"

	"github.com/daniilsolovey/hotel-portal/config"
	"github.com/daniilsolovey/hotel-portal/internal/app"
	"github.com/daniilsolovey/hotel-portal/internal/db"
)

var (
	flConfig = flag.String("config", "config.toml", "path to TOML configuration file")
	flDBURL  = flag.String("database-url", "", "postgres URL overriding [Database] (DATABASE_URL)")
	flDebug  = flag.Bool("debug", false, "enable debug mode")
	lg       *slog.Logger
)

func main() {
	// .env is optional; values from it are visible to flag parsing below
	_ = godotenv.Load()
	flag.Parse()

	lg = newLogger(*flDebug)

	if err := run(context.Background(), *flConfig, *flDBURL); err != nil {
		lg.Error("app failed", "error", err)
		os.Exit(1)
	}
}

// run serves until SIGINT or SIGTERM. Setup errors are returned after deferred cleanup.
func run(ctx context.Context, configPath, databaseURL string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if err := cfg.ApplyDatabaseURL(databaseURL); err != nil {
		return err
	}

	if cfg.Sentry.DSN != "" {
		err = sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.Sentry.DSN,
			Environment:      cfg.Sentry.Environment,
			AttachStacktrace: true,
		})
		if err != nil {
			return err
		}
		defer sentry.Flush(2 * time.Second)
	}

	if cfg.DB.Migrate {
		if err := db.RunMigrations(ctx, db.DSN(&cfg.Database)); err != nil {
			sentry.CaptureException(err)
			return err
		}
		lg.Info("migrations applied")
	}

	dbc := pg.Connect(&cfg.Database)
	defer dbc.Close()
	if err := dbc.Ping(ctx); err != nil {
		sentry.CaptureException(err)
		return err
	}

	if cfg.DB.LogQueries {
		dbc.AddQueryHook(db.NewQueryHook(lg))
	}

	service := app.New(cfg, dbc, lg)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		err := service.Run(ctx)
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			lg.Error("service run failed", "error", err)
			quit <- syscall.SIGTERM
		}
	}()

	<-quit
	lg.Info("service stopping")

	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err = service.GracefulShutdown(shutdownCtx)
	if err != nil {
		lg.Error("service graceful shutdown failed", "error", err)
	}

	return nil
}

func newLogger(debug bool) *slog.Logger {
	logLevel := slog.LevelInfo
	if debug {
		logLevel = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
}
