package portal

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/daniilsolovey/hotel-portal/internal/db"
	"github.com/daniilsolovey/hotel-portal/internal/i18n"

	"github.com/google/uuid"
)

const (
	entityTranslation = "translation"

	// DefaultCategory is used for keys whose first segment is not a known section.
	DefaultCategory = "general"
)

var categoryBySection = map[string]string{
	"navigation":  "navigation",
	"hero":        "home",
	"features":    "home",
	"home":        "home",
	"rooms":       "rooms",
	"blog":        "blog",
	"gallery":     "gallery",
	"about":       "about",
	"contact":     "contact",
	"reservation": "reservation",
	"common":      "common",
}

// CategoryForKey derives a category from the first segment of a dotted key.
func CategoryForKey(key string) string {
	section, _, _ := strings.Cut(strings.TrimSpace(key), ".")
	if category, ok := categoryBySection[section]; ok {
		return category
	}

	return DefaultCategory
}

// Translations returns translations ordered by category and key.
func (m *Manager) Translations(ctx context.Context, filter TranslationFilter) ([]Translation, error) {
	list, err := m.repo.Translations(ctx, db.TranslationSearch{
		Locale:    strings.TrimSpace(filter.Locale),
		Category:  strings.TrimSpace(filter.Category),
		KeyPrefix: strings.TrimSpace(filter.Key),
	})
	if err != nil {
		return nil, storageErr("get translations", err)
	}

	out := make([]Translation, len(list))
	for i := range list {
		out[i] = NewTranslation(&list[i])
	}

	return out, nil
}

func (m *Manager) TranslationByID(ctx context.Context, id string) (*Translation, error) {
	row, err := m.repo.TranslationByID(ctx, id)
	if err != nil {
		return nil, storageErr("get translation by id", err)
	} else if row == nil {
		return nil, ErrNotFound
	}

	tr := NewTranslation(row)
	return &tr, nil
}

func (m *Manager) CreateTranslation(ctx context.Context, in TranslationInput) (*Translation, error) {
	if in.Value == nil {
		return nil, newValidationError("value", "value is required")
	}

	now := m.now()
	tr := Translation{
		ID:        uuid.NewString(),
		Key:       strings.TrimSpace(deref(in.Key)),
		Locale:    strings.TrimSpace(deref(in.Locale)),
		Value:     *in.Value,
		Category:  strings.TrimSpace(deref(in.Category)),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if tr.Category == "" {
		tr.Category = CategoryForKey(tr.Key)
	}

	if err := m.validateTranslation(ctx, tr); err != nil {
		return nil, err
	}

	_, err := m.repo.AddTranslation(ctx, newDBTranslation(tr))
	countWrite(entityTranslation, "create", err)
	if db.IsUniqueViolation(err) {
		return nil, duplicateTranslation(tr)
	} else if err != nil {
		return nil, storageErr("create translation", err)
	}

	return &tr, nil
}

// UpdateTranslation replaces the fields present in the patch.
func (m *Manager) UpdateTranslation(ctx context.Context, id string, patch TranslationInput) (*Translation, error) {
	existing, err := m.TranslationByID(ctx, id)
	if err != nil {
		return nil, err
	}

	tr := *existing
	if patch.Key != nil {
		tr.Key = strings.TrimSpace(*patch.Key)
	}
	if patch.Locale != nil {
		tr.Locale = strings.TrimSpace(*patch.Locale)
	}
	if patch.Value != nil {
		tr.Value = *patch.Value
	}
	if patch.Category != nil {
		tr.Category = strings.TrimSpace(*patch.Category)
	}
	if tr.Category == "" {
		tr.Category = CategoryForKey(tr.Key)
	}
	tr.UpdatedAt = m.now()

	if err := m.validateTranslation(ctx, tr); err != nil {
		return nil, err
	}

	ok, err := m.repo.UpdateTranslation(ctx, newDBTranslation(tr))
	countWrite(entityTranslation, "update", err)
	if db.IsUniqueViolation(err) {
		return nil, duplicateTranslation(tr)
	} else if err != nil {
		return nil, storageErr("update translation", err)
	} else if !ok {
		return nil, ErrNotFound
	}

	return &tr, nil
}

func (m *Manager) DeleteTranslation(ctx context.Context, id string) error {
	ok, err := m.repo.DeleteTranslation(ctx, id)
	countWrite(entityTranslation, "delete", err)
	if err != nil {
		return storageErr("delete translation", err)
	} else if !ok {
		return ErrNotFound
	}

	return nil
}

// Translate looks key up for locale, then for the default locale. Unknown keys translate to themselves.
func (m *Manager) Translate(ctx context.Context, key, locale string) (string, error) {
	for _, l := range []string{i18n.Normalize(locale), i18n.DefaultLocale} {
		row, err := m.repo.TranslationByKey(ctx, key, l)
		if err != nil {
			return "", storageErr("translate", err)
		}
		if row != nil && strings.TrimSpace(row.Value) != "" {
			return row.Value, nil
		}
	}

	return key, nil
}

// Messages returns the flat key/value catalog for locale with default-locale values filling the gaps.
func (m *Manager) Messages(ctx context.Context, locale string) (map[string]string, error) {
	locale = i18n.Normalize(locale)
	list, err := m.repo.Translations(ctx, db.TranslationSearch{
		Locales: []string{i18n.DefaultLocale, locale},
	})
	if err != nil {
		return nil, storageErr("get messages", err)
	}

	out := make(map[string]string, len(list))
	for _, pass := range []string{i18n.DefaultLocale, locale} {
		for _, row := range list {
			if row.Locale == pass && strings.TrimSpace(row.Value) != "" {
				out[row.Key] = row.Value
			}
		}
	}

	return out, nil
}

// ImportMessages flattens a nested message catalog into dotted keys and stores every entry for locale.
// Existing entries are updated only when value or category changed.
func (m *Manager) ImportMessages(ctx context.Context, locale string, messages map[string]any) (ImportResult, error) {
	var res ImportResult
	if !i18n.IsSupported(locale) {
		return res, newValidationError("locale", fmt.Sprintf("unsupported locale %q", locale))
	}

	flat, skipped := FlattenMessages(messages)
	res.Skipped = skipped

	keys := make([]string, 0, len(flat))
	for key := range flat {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value, category := flat[key], CategoryForKey(key)

		existing, err := m.repo.TranslationByKey(ctx, key, locale)
		if err != nil {
			return res, storageErr("import messages", err)
		}

		now := m.now()
		switch {
		case existing == nil:
			_, err = m.repo.AddTranslation(ctx, &db.Translation{
				ID:        uuid.NewString(),
				Key:       key,
				Locale:    locale,
				Value:     value,
				Category:  category,
				CreatedAt: now,
				UpdatedAt: now,
			})
			countWrite(entityTranslation, "create", err)
			res.Created++
		case existing.Value != value || existing.Category != category:
			existing.Value, existing.Category, existing.UpdatedAt = value, category, now
			_, err = m.repo.UpdateTranslation(ctx, existing)
			countWrite(entityTranslation, "update", err)
			res.Updated++
		default:
			res.Skipped++
		}
		if err != nil {
			return res, storageErr("import messages", err)
		}
	}

	return res, nil
}

// FlattenMessages turns {"a":{"b":"x"}} into {"a.b":"x"}. Numbers and booleans are
// stringified; nulls and arrays are counted as skipped.
func FlattenMessages(messages map[string]any) (map[string]string, int) {
	out := make(map[string]string)
	skipped := flatten("", messages, out)

	return out, skipped
}

func flatten(prefix string, obj map[string]any, out map[string]string) int {
	skipped := 0
	for key, value := range obj {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch v := value.(type) {
		case map[string]any:
			skipped += flatten(fullKey, v, out)
		case string:
			out[fullKey] = v
		case float64:
			out[fullKey] = strconv.FormatFloat(v, 'f', -1, 64)
		case bool:
			out[fullKey] = strconv.FormatBool(v)
		default:
			skipped++
		}
	}

	return skipped
}

func (m *Manager) validateTranslation(ctx context.Context, tr Translation) error {
	if tr.Key == "" {
		return newValidationError("key", "key is required")
	}
	if !i18n.IsSupported(tr.Locale) {
		return newValidationError("locale", fmt.Sprintf("unsupported locale %q", tr.Locale))
	}

	existing, err := m.repo.TranslationByKey(ctx, tr.Key, tr.Locale)
	if err != nil {
		return storageErr("check translation", err)
	}
	if existing != nil && existing.ID != tr.ID {
		return duplicateTranslation(tr)
	}

	return nil
}

func duplicateTranslation(tr Translation) error {
	return newValidationError("key", fmt.Sprintf("translation %q already exists for locale %s", tr.Key, tr.Locale))
}
