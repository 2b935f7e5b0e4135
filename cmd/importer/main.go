package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/go-pg/pg/v10"
	"github.com/joho/godotenv"
	"github.com/namsral/flag"

	"github.com/daniilsolovey/hotel-portal/config"
	"github.com/daniilsolovey/hotel-portal/internal/db"
	"github.com/daniilsolovey/hotel-portal/internal/i18n"
	"github.com/daniilsolovey/hotel-portal/internal/portal"
)

var (
	flConfig = flag.String("config", "config.toml", "path to TOML configuration file")
	flDBURL  = flag.String("database-url", "", "postgres URL overriding [Database] (DATABASE_URL)")
	flDir    = flag.String("dir", "messages", "directory with <locale>.json message catalogs")
	flDebug  = flag.Bool("debug", false, "enable debug mode")
	lg       *slog.Logger
)

func main() {
	_ = godotenv.Load()
	flag.Parse()

	logLevel := slog.LevelInfo
	if *flDebug {
		logLevel = slog.LevelDebug
	}
	lg = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel}))

	if err := run(context.Background(), *flConfig, *flDBURL, *flDir); err != nil {
		lg.Error("import failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, configPath, databaseURL, dir string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if err := cfg.ApplyDatabaseURL(databaseURL); err != nil {
		return err
	}

	dbc := pg.Connect(&cfg.Database)
	defer dbc.Close()
	if err := dbc.Ping(ctx); err != nil {
		return err
	}

	if cfg.DB.LogQueries {
		dbc.AddQueryHook(db.NewQueryHook(lg))
	}

	manager := portal.NewManager(db.New(dbc), portal.Config{}, lg)
	return importDir(ctx, manager, dir, lg)
}

// importDir imports <dir>/<locale>.json for every supported locale. Missing files are skipped.
func importDir(ctx context.Context, manager *portal.Manager, dir string, logger *slog.Logger) error {
	var total portal.ImportResult
	for _, locale := range i18n.Locales {
		path := filepath.Join(dir, locale+".json")

		messages, err := readMessages(path)
		if errors.Is(err, fs.ErrNotExist) {
			logger.Warn("message catalog not found", "locale", locale, "path", path)
			continue
		} else if err != nil {
			return err
		}

		res, err := manager.ImportMessages(ctx, locale, messages)
		if err != nil {
			return fmt.Errorf("import %s: %w", path, err)
		}

		logger.Info("messages imported",
			"locale", locale,
			"created", res.Created,
			"updated", res.Updated,
			"skipped", res.Skipped,
		)

		total.Created += res.Created
		total.Updated += res.Updated
		total.Skipped += res.Skipped
	}

	logger.Info("import finished", "created", total.Created, "updated", total.Updated, "skipped", total.Skipped)
	return nil
}

func readMessages(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var messages map[string]any
	if err := json.Unmarshal(data, &messages); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	return messages, nil
}
