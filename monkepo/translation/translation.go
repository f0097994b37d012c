// Package translation provides the bot's multi-language text catalog.
// Locale files are nested JSON embedded at build time; keys are addressed
// with dotted paths ("starter.welcome_title") and may carry {placeholder}
// slots filled at lookup.
package translation

import (
	"embed"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
)

//go:embed locales/*.json
var localeFS embed.FS

// DefaultLanguage is the fallback for missing languages and keys. The bot
// refuses to start without it.
const DefaultLanguage = "en"

var supportedLanguages = []string{"en", "es"}

// Manager resolves dotted translation keys per language. It is immutable
// after New and safe for concurrent use.
type Manager struct {
	catalogs map[string]map[string]string
}

// New loads every supported locale from the embedded files. A missing
// non-default locale is logged and skipped; a missing default is fatal.
func New() (*Manager, error) {
	m := &Manager{catalogs: make(map[string]map[string]string)}
	for _, lang := range supportedLanguages {
		data, err := localeFS.ReadFile("locales/" + lang + ".json")
		if err != nil {
			if lang == DefaultLanguage {
				return nil, fmt.Errorf("failed to load default locale: %w", err)
			}
			slog.Warn("Locale file missing, skipping",
				slog.String("type", "i18n"),
				slog.String("lang", lang))
			continue
		}

		var nested map[string]any
		if err := json.Unmarshal(data, &nested); err != nil {
			return nil, fmt.Errorf("failed to parse %s locale: %w", lang, err)
		}

		flat := make(map[string]string)
		flatten("", nested, flat)
		m.catalogs[lang] = flat

		slog.Info("Loaded locale",
			slog.String("type", "i18n"),
			slog.String("lang", lang),
			slog.Int("keys", len(flat)))
	}
	return m, nil
}

// flatten collapses nested JSON objects into dotted keys.
func flatten(prefix string, src map[string]any, dst map[string]string) {
	for k, v := range src {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch val := v.(type) {
		case string:
			dst[key] = val
		case map[string]any:
			flatten(key, val, dst)
		}
	}
}

// Supported reports whether lang has a loaded catalog.
func (m *Manager) Supported(lang string) bool {
	_, ok := m.catalogs[lang]
	return ok
}

// Get resolves key in lang, falling back to the default language and finally
// to the key itself so a missing entry is visible rather than blank.
func (m *Manager) Get(lang, key string) string {
	if catalog, ok := m.catalogs[lang]; ok {
		if text, ok := catalog[key]; ok {
			return text
		}
	}
	if lang != DefaultLanguage {
		if text, ok := m.catalogs[DefaultLanguage][key]; ok {
			return text
		}
	}
	return key
}

// Getf resolves key and substitutes {name} placeholders from args.
func (m *Manager) Getf(lang, key string, args map[string]string) string {
	text := m.Get(lang, key)
	if len(args) == 0 {
		return text
	}
	pairs := make([]string, 0, len(args)*2)
	for name, value := range args {
		pairs = append(pairs, "{"+name+"}", value)
	}
	return strings.NewReplacer(pairs...).Replace(text)
}
