package i18n

import (
	"embed"
	"io/fs"
	"sort"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/mcosta-dev/portfolio/internal/locale"
)

//go:embed locales/*.yaml
var embeddedLocales embed.FS

// Bundle holds UI strings per locale.
type Bundle struct {
	dict     map[locale.Locale]map[string]string
	fallback locale.Locale
}

// LoadEmbedded loads the catalogs compiled into the binary.
func LoadEmbedded() (*Bundle, error) {
	sub, err := fs.Sub(embeddedLocales, "locales")
	if err != nil {
		return nil, errors.Wrap(err, "open embedded locales")
	}
	return Load(sub)
}

// Load reads <locale>.yaml for every supported locale. The default locale
// must be present; others may be missing and fall back to it.
func Load(fsys fs.FS) (*Bundle, error) {
	b := &Bundle{
		dict:     map[locale.Locale]map[string]string{},
		fallback: locale.Default,
	}
	for _, l := range locale.Supported() {
		name := l.String() + ".yaml"
		raw, err := fs.ReadFile(fsys, name)
		if err != nil {
			if l == b.fallback {
				return nil, errors.Wrapf(err, "load locale %s", l)
			}
			continue
		}
		var m map[string]string
		if err := yaml.Unmarshal(raw, &m); err != nil {
			return nil, errors.Wrapf(err, "unmarshal %s", name)
		}
		b.dict[l] = m
	}
	return b, nil
}

// Fallback returns the locale used when a key is missing.
func (b *Bundle) Fallback() locale.Locale { return b.fallback }

// T returns the translation of key in l, falling back to the default locale
// and finally to key itself.
func (b *Bundle) T(l locale.Locale, key string) string {
	if m, ok := b.dict[l]; ok {
		if v, ok := m[key]; ok {
			return v
		}
	}
	if m, ok := b.dict[b.fallback]; ok {
		if v, ok := m[key]; ok {
			return v
		}
	}
	return key
}

// Missing lists keys present in the fallback catalog but absent from l.
func (b *Bundle) Missing(l locale.Locale) []string {
	var out []string
	m := b.dict[l]
	for k := range b.dict[b.fallback] {
		if _, ok := m[k]; !ok {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}
