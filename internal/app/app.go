package app

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"

	"github.com/daniilsolovey/hotel-portal/config"
	"github.com/daniilsolovey/hotel-portal/internal/db"
	"github.com/daniilsolovey/hotel-portal/internal/portal"
	"github.com/daniilsolovey/hotel-portal/internal/rest"
	"github.com/daniilsolovey/hotel-portal/internal/rpc"
	"github.com/daniilsolovey/hotel-portal/internal/storage"

	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/go-pg/pg/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	rpcPath     = "/v1/rpc/"
	metricsPath = "/metrics"
)

type App struct {
	DB      *db.Repository
	Manager *portal.Manager
	Logger  *slog.Logger
	Echo    *echo.Echo
	Config  config.Config
}

func New(cfg config.Config, dbc pg.DBI, logger *slog.Logger) *App {
	repo := db.New(dbc)
	manager := portal.NewManager(repo, portal.Config{
		Defaults: portal.Defaults{
			Author:   cfg.Content.Author,
			Category: cfg.Content.Category,
		},
		SettingsTTL: cfg.Settings.TTL.Duration,
	}, logger)
	uploader := storage.NewUploader(storage.NewLocal(cfg.Uploads.Dir, cfg.Uploads.BaseURL))

	a := &App{
		DB:      repo,
		Manager: manager,
		Logger:  logger,
		Echo:    echo.New(),
		Config:  cfg,
	}
	a.registerRoutes(uploader)

	return a
}

func (a *App) registerRoutes(uploader *storage.Uploader) {
	e := a.Echo
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(sentryecho.New(sentryecho.Options{Repanic: true}))

	rest.NewHandler(a.Manager, uploader, a.DB, a.Logger).RegisterRoutes(e)

	e.Any(rpcPath, echo.WrapHandler(rpc.New(a.Logger, a.Manager)))
	e.GET(metricsPath, echo.WrapHandler(promhttp.Handler()))

	// uploaded files are served by the app only when they live under a local path
	if base := a.Config.Uploads.BaseURL; strings.HasPrefix(base, "/") {
		e.Static(base, a.Config.Uploads.Dir)
	}
}

func (a *App) Run(ctx context.Context) error {
	addr := net.JoinHostPort(a.Config.App.Host, strconv.Itoa(a.Config.App.Port))
	a.Logger.InfoContext(ctx, "http server started", "addr", addr)

	return a.Echo.Start(addr)
}

func (a *App) GracefulShutdown(ctx context.Context) error {
	err := a.Echo.Shutdown(ctx)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}
