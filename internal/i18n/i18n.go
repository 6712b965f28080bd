// Package i18n holds the console message catalogs and language negotiation.
// Supported languages: English (en) and Hindi (hi). English is the fallback.
package i18n

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/text/language"
)

// DefaultLanguage is used when nothing else matches.
const DefaultLanguage = "en"

// SupportedLanguages in matcher priority order; the first one is the fallback.
var SupportedLanguages = []language.Tag{
	language.English,
	language.Hindi,
}

var matcher = language.NewMatcher(SupportedLanguages)

// Bundle stores translations of every language. Loaded once at startup.
type Bundle struct {
	mu       sync.RWMutex
	catalogs map[string]map[string]string // lang -> key -> text
	logger   zerolog.Logger
}

// NewBundle creates an empty bundle.
func NewBundle(logger zerolog.Logger) *Bundle {
	return &Bundle{
		catalogs: make(map[string]map[string]string),
		logger:   logger,
	}
}

// LoadMessages loads a flat JSON catalog {"key": "text"} for lang.
func (b *Bundle) LoadMessages(lang string, data []byte) error {
	var messages map[string]string
	if err := json.Unmarshal(data, &messages); err != nil {
		return fmt.Errorf("i18n: parse catalog %s: %w", lang, err)
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.catalogs[lang] = messages

	b.logger.Debug().Str("lang", lang).Int("keys", len(messages)).Msg("i18n catalog loaded")
	return nil
}

// Translate returns the text of key in lang, falling back to English and then to the key itself.
func (b *Bundle) Translate(lang, key string) string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if catalog, ok := b.catalogs[lang]; ok {
		if msg, ok := catalog[key]; ok {
			return msg
		}
	}
	if lang != DefaultLanguage {
		if catalog, ok := b.catalogs[DefaultLanguage]; ok {
			if msg, ok := catalog[key]; ok {
				return msg
			}
		}
	}
	return key
}

// Languages returns the languages that have a catalog.
func (b *Bundle) Languages() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	langs := make([]string, 0, len(b.catalogs))
	for _, tag := range SupportedLanguages {
		base, _ := tag.Base()
		if _, ok := b.catalogs[base.String()]; ok {
			langs = append(langs, base.String())
		}
	}
	return langs
}

// Normalize returns the supported language code for s ("hi-IN" -> "hi"), or false when
// s is not a supported language.
func Normalize(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	tag, err := language.Parse(s)
	if err != nil {
		return "", false
	}
	base, _ := tag.Base()
	for _, supported := range SupportedLanguages {
		sb, _ := supported.Base()
		if sb == base {
			return base.String(), true
		}
	}
	return "", false
}

// MatchLanguage picks the best supported language for an Accept-Language header.
func MatchLanguage(acceptLanguage string) string {
	tag, _ := language.MatchStrings(matcher, acceptLanguage)
	base, _ := tag.Base()
	if lang, ok := Normalize(base.String()); ok {
		return lang
	}
	return DefaultLanguage
}
