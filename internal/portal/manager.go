package portal

import (
	"context"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var contentWrites = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "hotel_portal",
	Name:      "content_writes_total",
	Help:      "Content writes by entity, operation and result.",
}, []string{"entity", "op", "result"})

type Config struct {
	Defaults    Defaults
	SettingsTTL time.Duration
}

type Manager struct {
	repo     Repository
	defaults Defaults
	settings *SettingsCache
	log      *slog.Logger
	now      func() time.Time
}

func NewManager(repo Repository, cfg Config, logger *slog.Logger) *Manager {
	defaults := cfg.Defaults
	if defaults.Author == "" {
		defaults.Author = DefaultContent.Author
	}
	if defaults.Category == "" {
		defaults.Category = DefaultContent.Category
	}

	return &Manager{
		repo:     repo,
		defaults: defaults,
		settings: NewSettingsCache(cfg.SettingsTTL, repo.Settings),
		log:      logger,
		now:      time.Now,
	}
}

func (m *Manager) warnMalformed(ctx context.Context, table, id string, columns []string) {
	if len(columns) == 0 {
		return
	}

	m.log.WarnContext(ctx, "malformed stored data replaced with empty value",
		"table", table,
		"id", id,
		"columns", columns,
	)
}

func countWrite(entity, op string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}

	contentWrites.WithLabelValues(entity, op, result).Inc()
}
