package portal

import (
	"context"
	"encoding/json"
	"sort"
	"strings"

	"github.com/daniilsolovey/hotel-portal/internal/db"
)

const entitySettings = "settings"

// Settings returns the raw key/value store. Values that are not valid JSON come back as nil.
func (m *Manager) Settings(ctx context.Context) (map[string]any, error) {
	rows, err := m.settings.Get(ctx)
	if err != nil {
		return nil, storageErr("get settings", err)
	}

	settings, malformed := newSettingsMap(rows)
	m.warnMalformed(ctx, db.Tables.SiteSetting.Name, "", malformed)

	return settings, nil
}

func (m *Manager) SiteInfo(ctx context.Context) (*SiteInfo, error) {
	rows, err := m.settings.Get(ctx)
	if err != nil {
		return nil, storageErr("get settings", err)
	}

	info, malformed := NewSiteInfo(rows)
	m.warnMalformed(ctx, db.Tables.SiteSetting.Name, "", malformed)

	return &info, nil
}

// SaveSettings upserts every key in one transaction and drops the cached settings.
func (m *Manager) SaveSettings(ctx context.Context, values map[string]json.RawMessage) error {
	if len(values) == 0 {
		return newValidationError("settings", "no settings given")
	}

	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	now := m.now()
	rows := make([]db.SiteSetting, 0, len(keys))
	for _, key := range keys {
		if strings.TrimSpace(key) == "" {
			return newValidationError("key", "setting key is required")
		}

		value := values[key]
		if len(value) == 0 || !json.Valid(value) {
			return newValidationError(key, "value must be valid JSON")
		}

		rows = append(rows, db.SiteSetting{
			Key:       key,
			Value:     db.JSON(value),
			UpdatedAt: now,
		})
	}

	err := m.repo.UpsertSettings(ctx, rows)
	countWrite(entitySettings, "upsert", err)
	m.settings.Invalidate()
	if err != nil {
		return storageErr("save settings", err)
	}

	return nil
}
