// Package i18n provides the fixed UI/label strings for papyrus.
// Locale tables are embedded at build time; en-US is always bundled and
// serves as the universal fallback. Locale selection never affects a
// converted document's own text content, only marker and log strings.
package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"golang.org/x/text/language"

	"github.com/papyrus-labs/papyrus-cli/internal/core/domain"
)

//go:embed locales/*.json
var localeFS embed.FS

// FallbackTag is the locale every deployment must bundle.
const FallbackTag = "en-US"

// Bundle holds all embedded locale tables.
type Bundle struct {
	// tags in registration order, fallback first (matcher preference).
	tags    []language.Tag
	names   []string
	strings map[string]map[string]string
	matcher language.Matcher
}

// NewBundle loads the embedded locale tables.
// Returns an error if the en-US fallback table is missing, since every
// lookup path relies on it.
func NewBundle() (*Bundle, error) {
	entries, err := fs.ReadDir(localeFS, "locales")
	if err != nil {
		return nil, fmt.Errorf("reading embedded locales: %w", err)
	}

	b := &Bundle{strings: make(map[string]map[string]string)}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		name := strings.TrimSuffix(e.Name(), ".json")
		names = append(names, name)
	}
	// Fallback first so the matcher prefers it for unmatched tags.
	sort.Slice(names, func(i, j int) bool {
		if names[i] == FallbackTag {
			return true
		}
		if names[j] == FallbackTag {
			return false
		}
		return names[i] < names[j]
	})

	for _, name := range names {
		data, err := localeFS.ReadFile("locales/" + name + ".json")
		if err != nil {
			return nil, fmt.Errorf("reading locale %s: %w", name, err)
		}

		table := make(map[string]string)
		if err := json.Unmarshal(data, &table); err != nil {
			return nil, fmt.Errorf("parsing locale %s: %w", name, err)
		}

		tag, err := language.Parse(name)
		if err != nil {
			return nil, fmt.Errorf("invalid locale tag %s: %w", name, err)
		}

		b.tags = append(b.tags, tag)
		b.names = append(b.names, name)
		b.strings[name] = table
	}

	if _, ok := b.strings[FallbackTag]; !ok {
		return nil, fmt.Errorf("%w: %s table not bundled", domain.ErrUnsupportedLocale, FallbackTag)
	}

	b.matcher = language.NewMatcher(b.tags)
	return b, nil
}

// Locales returns the bundled locale tags, fallback first.
func (b *Bundle) Locales() []string {
	out := make([]string, len(b.names))
	copy(out, b.names)
	return out
}

// Printer returns the string table for the requested locale.
// Unknown or unparsable tags fall back to en-US; the error path exists
// only for a deployment with no fallback table, which NewBundle already
// rejects.
func (b *Bundle) Printer(locale string) (*Printer, error) {
	name := FallbackTag

	if locale != "" {
		if tag, err := language.Parse(locale); err == nil {
			_, idx, conf := b.matcher.Match(tag)
			if conf > language.No {
				name = b.names[idx]
			}
		}
	}

	table, ok := b.strings[name]
	if !ok {
		table, ok = b.strings[FallbackTag]
		if !ok {
			return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedLocale, locale)
		}
		name = FallbackTag
	}

	return &Printer{name: name, table: table, fallback: b.strings[FallbackTag]}, nil
}

// Printer resolves string keys for one locale.
type Printer struct {
	name     string
	table    map[string]string
	fallback map[string]string
}

// Locale returns the resolved locale tag.
func (p *Printer) Locale() string {
	return p.name
}

// T translates a key: locale table, then en-US, then the key itself.
func (p *Printer) T(key string) string {
	if v, ok := p.table[key]; ok {
		return v
	}
	if v, ok := p.fallback[key]; ok {
		return v
	}
	return key
}
