package i18n

import (
	"embed"
	"fmt"
	"path"
	"strings"

	"github.com/rs/zerolog"
)

//go:embed locales/*.json
var localesFS embed.FS

// Load builds a bundle from the embedded catalogs.
func Load(logger zerolog.Logger) (*Bundle, error) {
	b := NewBundle(logger)

	entries, err := localesFS.ReadDir("locales")
	if err != nil {
		return nil, fmt.Errorf("i18n: read locales: %w", err)
	}
	for _, entry := range entries {
		if entry.IsDir() || path.Ext(entry.Name()) != ".json" {
			continue
		}
		data, err := localesFS.ReadFile("locales/" + entry.Name())
		if err != nil {
			return nil, fmt.Errorf("i18n: read %s: %w", entry.Name(), err)
		}
		if err := b.LoadMessages(strings.TrimSuffix(entry.Name(), ".json"), data); err != nil {
			return nil, err
		}
	}
	return b, nil
}
