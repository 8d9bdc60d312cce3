// Package catalog resolves curated UI phrases against static, per-locale
// translation catalogs. It is the fastest, zero-network path of the
// translation pipeline: a fixed phrase-to-key table maps known source
// phrases to catalog keys, and each supported locale has a flat JSON catalog
// of key-to-text entries loaded once at startup.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

const keysFile = "keys.json"

// Catalog holds the compiled phrase-to-key table and the per-locale
// catalogs. All maps are read-only after New returns.
type Catalog struct {
	keys         map[string]string
	translations map[string]map[string]string
	mu           sync.RWMutex
}

// New loads the catalog data from a directory. The directory must contain
// keys.json (source phrase -> catalog key) and one <locale>.json flat map
// per supported locale.
func New(path string) (*Catalog, error) {
	c := &Catalog{
		keys:         make(map[string]string),
		translations: make(map[string]map[string]string),
	}

	files, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog directory: %w", err)
	}

	for _, file := range files {
		if file.IsDir() || !strings.HasSuffix(file.Name(), ".json") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(path, file.Name()))
		if err != nil {
			return nil, fmt.Errorf("failed to read catalog file %s: %w", file.Name(), err)
		}

		if file.Name() == keysFile {
			if err := json.Unmarshal(data, &c.keys); err != nil {
				return nil, fmt.Errorf("failed to parse %s: %w", keysFile, err)
			}
			continue
		}

		lang := strings.TrimSuffix(file.Name(), ".json")
		var translations map[string]string
		if err := json.Unmarshal(data, &translations); err != nil {
			return nil, fmt.Errorf("failed to parse catalog file %s: %w", file.Name(), err)
		}
		c.translations[lang] = translations
	}

	return c, nil
}

// Lookup resolves a source phrase in the target locale. The first pass maps
// the phrase to a catalog key (exact table entry, or a heuristic key derived
// from the phrase) and resolves that key; the second pass tries the raw
// phrase itself as a key, which supports catalogs keyed directly by source
// text. Both passes missing means the phrase is not curated.
func (c *Catalog) Lookup(text, locale string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	catalog, ok := c.translations[locale]
	if !ok {
		return "", false
	}

	key := c.keyForPhrase(text)
	if value, ok := catalog[key]; ok && value != key {
		return value, true
	}

	if value, ok := catalog[text]; ok && value != text {
		return value, true
	}

	return "", false
}

// keyForPhrase returns the catalog key for a source phrase: the curated
// table entry when one exists, otherwise a slug derived from the phrase.
func (c *Catalog) keyForPhrase(text string) string {
	if key, ok := c.keys[text]; ok {
		return key
	}
	return slugify(text)
}

var slugReplacer = strings.NewReplacer(
	" ", "_",
	"ı", "i",
	"ğ", "g",
	"ü", "u",
	"ş", "s",
	"ö", "o",
	"ç", "c",
)

// slugify derives a catalog key from a phrase: lowercase, transliterate the
// Turkish special characters, replace whitespace with underscores.
func slugify(text string) string {
	return slugReplacer.Replace(strings.ToLower(text))
}
