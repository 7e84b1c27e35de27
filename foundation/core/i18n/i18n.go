// File: i18n.go
// Title: Core Internationalization Implementation
// Description: Implements the i18n Manager for loading translations from TOML
//              and YAML language files, either from disk or from an fs.FS such
//              as an embedded file system, with template interpolation,
//              pluralization and fallback to the default locale.
// Author: msto63
// Version: v0.2.1
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2025-07-26 v0.1.1: Fixed template cache collision issue in pluralization,
//                       improved cache key uniqueness for plural forms
// - 2026-10-12 v0.2.0: Load from fs.FS, missing keys resolve to the key itself,
//                       ForLocale views, removed file watching
// - 2026-10-18 v0.2.1: Plural joins the Translator interface, dropped
//                       TWithFallback and HasTranslation

package i18n

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"
	"sync"
	"text/template"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/pcbuild/foundation/core/error"
)

// Format represents the language file format
type Format int

const (
	// FormatAuto accepts every supported extension (default)
	FormatAuto Format = iota

	// FormatTOML restricts loading to .toml files
	FormatTOML

	// FormatYAML restricts loading to .yaml and .yml files
	FormatYAML
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatAuto:
		return "auto"
	default:
		return "unknown"
	}
}

func (f Format) extensions() []string {
	switch f {
	case FormatTOML:
		return []string{".toml"}
	case FormatYAML:
		return []string{".yaml", ".yml"}
	default:
		return []string{".toml", ".yaml", ".yml"}
	}
}

// Options defines configuration options for the i18n manager
type Options struct {
	DefaultLocale   string // Default locale (e.g., "pt-BR")
	FS              fs.FS  // Source of language files; nil reads LocalesDir from disk
	LocalesDir      string // Directory containing language files
	Format          Format // File format filter (default: auto-detect)
	DisableFallback bool   // Do not fall back to the default locale
}

// Translator is the read side of a Manager that domain code depends on
type Translator interface {
	T(key string, data ...map[string]interface{}) string
	Plural(key string, count int, data map[string]interface{}) string
}

// Manager manages internationalization for an application
type Manager struct {
	mu            sync.RWMutex
	defaultLocale string
	currentLocale string
	fallback      bool
	translations  map[string]map[string]interface{} // locale -> translations, read-only after load
	templates     *templateCache
}

type templateCache struct {
	mu    sync.Mutex
	items map[string]*template.Template
}

// New creates a new i18n manager with the specified options
func New(options Options) (*Manager, error) {
	defaultLocale := NormalizeLocale(options.DefaultLocale)
	if defaultLocale == "" {
		return nil, mdwerror.New("default locale cannot be empty").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("i18n.New")
	}

	source := options.FS
	dir := strings.TrimSpace(options.LocalesDir)
	if source == nil {
		if dir == "" {
			dir = "./locales"
		}
		if _, err := os.Stat(dir); err != nil {
			return nil, mdwerror.New("locales directory not found").
				WithCode(mdwerror.CodeNotFound).
				WithOperation("i18n.New").
				WithDetail("directory", dir)
		}
		source = os.DirFS(dir)
		dir = "."
	} else if dir == "" {
		dir = "."
	}

	manager := &Manager{
		defaultLocale: defaultLocale,
		currentLocale: defaultLocale,
		fallback:      !options.DisableFallback,
		translations:  make(map[string]map[string]interface{}),
		templates:     &templateCache{items: make(map[string]*template.Template)},
	}

	if err := manager.loadAll(source, dir, options.Format); err != nil {
		return nil, mdwerror.Wrap(err, "failed to load locales").
			WithCode(mdwerror.CodeConfigError).
			WithOperation("i18n.loadAll")
	}

	return manager, nil
}

// loadAll loads every supported language file found in dir
func (m *Manager) loadAll(source fs.FS, dir string, format Format) error {
	entries, err := fs.ReadDir(source, dir)
	if err != nil {
		return fmt.Errorf("failed to read locales directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		ext := strings.ToLower(path.Ext(name))
		if !hasExtension(format.extensions(), ext) {
			continue
		}

		locale := ParseLocaleFromFilename(name)
		if locale == "" {
			continue
		}

		content, err := fs.ReadFile(source, path.Join(dir, name))
		if err != nil {
			return fmt.Errorf("failed to read locale file %s: %w", name, err)
		}

		data, err := parse(content, ext)
		if err != nil {
			return fmt.Errorf("failed to parse locale file %s: %w", name, err)
		}
		m.translations[locale] = data
	}

	if _, exists := m.translations[m.defaultLocale]; !exists {
		return fmt.Errorf("default locale '%s' not found", m.defaultLocale)
	}
	return nil
}

func hasExtension(supported []string, ext string) bool {
	for _, s := range supported {
		if s == ext {
			return true
		}
	}
	return false
}

func parse(content []byte, ext string) (map[string]interface{}, error) {
	data := make(map[string]interface{})
	switch ext {
	case ".toml":
		if err := toml.Unmarshal(content, &data); err != nil {
			return nil, err
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(content, &data); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported extension %s", ext)
	}
	return data, nil
}

// T translates a key with optional template data. Unknown keys resolve to
// the key itself.
func (m *Manager) T(key string, data ...map[string]interface{}) string {
	translation, _ := m.TryT(key, data...)
	return translation
}

// TryT translates a key and returns an error if translation fails. On
// failure the returned string is the key or the unrendered template.
func (m *Manager) TryT(key string, data ...map[string]interface{}) (string, error) {
	m.mu.RLock()
	translation := m.lookup(key, m.currentLocale)
	m.mu.RUnlock()

	if translation == "" {
		return key, mdwerror.New("translation not found").
			WithCode(mdwerror.CodeNotFound).
			WithOperation("i18n.TryT").
			WithDetail("key", key)
	}

	if len(data) > 0 && data[0] != nil {
		rendered, err := m.templates.render(translation, data[0])
		if err != nil {
			return translation, mdwerror.Wrap(err, "template rendering failed").
				WithCode(mdwerror.CodeInvalidFormat).
				WithOperation("i18n.render").
				WithDetail("key", key)
		}
		return rendered, nil
	}

	return translation, nil
}

// Plural returns the appropriate plural form based on count. Plural forms
// are stored as arrays: ["one part", "{{.count}} parts"].
func (m *Manager) Plural(key string, count int, data map[string]interface{}) string {
	m.mu.RLock()
	locale := m.currentLocale
	raw := m.lookupRaw(key, locale)
	if raw == nil && m.fallback {
		locale = m.defaultLocale
		raw = m.lookupRaw(key, locale)
	}
	m.mu.RUnlock()

	if raw == nil {
		return key
	}

	forms := pluralForms(raw)
	index := pluralIndex(count, locale)
	if index >= len(forms) {
		index = len(forms) - 1
	}
	selected := forms[index]

	values := map[string]interface{}{"count": count}
	for k, v := range data {
		values[k] = v
	}
	if rendered, err := m.templates.render(selected, values); err == nil {
		return rendered
	}
	return selected
}

// lookup retrieves a translation with fallback. Callers hold m.mu.
func (m *Manager) lookup(key, locale string) string {
	if value := nestedValue(m.translations[locale], key); value != "" {
		return value
	}
	if m.fallback && locale != m.defaultLocale {
		return nestedValue(m.translations[m.defaultLocale], key)
	}
	return ""
}

func (m *Manager) lookupRaw(key, locale string) interface{} {
	return nestedRaw(m.translations[locale], key)
}

// nestedValue resolves dot notation to a string; arrays yield their first form
func nestedValue(data map[string]interface{}, key string) string {
	value := nestedRaw(data, key)
	switch v := value.(type) {
	case nil:
		return ""
	case map[string]interface{}:
		return ""
	case []interface{}:
		if len(v) > 0 {
			return fmt.Sprintf("%v", v[0])
		}
		return ""
	default:
		return fmt.Sprintf("%v", v)
	}
}

func nestedRaw(data map[string]interface{}, key string) interface{} {
	if data == nil {
		return nil
	}
	keys := strings.Split(key, ".")
	current := data
	for i, k := range keys {
		value, ok := current[k]
		if !ok {
			return nil
		}
		if i == len(keys)-1 {
			return value
		}
		next, ok := value.(map[string]interface{})
		if !ok {
			return nil
		}
		current = next
	}
	return nil
}

func pluralForms(value interface{}) []string {
	if arr, ok := value.([]interface{}); ok && len(arr) > 0 {
		forms := make([]string, len(arr))
		for i, v := range arr {
			forms[i] = fmt.Sprintf("%v", v)
		}
		return forms
	}
	return []string{fmt.Sprintf("%v", value)}
}

// pluralIndex implements simplified CLDR rules for the shipped languages
func pluralIndex(count int, locale string) int {
	switch {
	case strings.HasPrefix(locale, "pt"), strings.HasPrefix(locale, "fr"):
		if count <= 1 && count >= -1 {
			return 0
		}
		return 1
	default:
		if count == 1 {
			return 0
		}
		return 1
	}
}

// render executes a translation template. Templates are cached by source
// text, so identical texts in different locales share one entry.
func (c *templateCache) render(source string, data map[string]interface{}) (string, error) {
	if !strings.Contains(source, "{{") {
		return source, nil
	}

	c.mu.Lock()
	tmpl, exists := c.items[source]
	if !exists {
		parsed, err := template.New("i18n").Option("missingkey=zero").Parse(source)
		if err != nil {
			c.mu.Unlock()
			return source, fmt.Errorf("template compilation failed: %w", err)
		}
		c.items[source] = parsed
		tmpl = parsed
	}
	c.mu.Unlock()

	var result strings.Builder
	if err := tmpl.Execute(&result, data); err != nil {
		return source, fmt.Errorf("template execution failed: %w", err)
	}
	return result.String(), nil
}

// SetLocale changes the current locale
func (m *Manager) SetLocale(locale string) error {
	normalized := NormalizeLocale(locale)

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.translations[normalized]; !exists {
		return mdwerror.New("locale not available").
			WithCode(mdwerror.CodeNotFound).
			WithOperation("i18n.SetLocale").
			WithDetail("locale", locale)
	}
	m.currentLocale = normalized
	return nil
}

// ForLocale returns a view of the manager bound to another locale. The view
// shares the loaded translations; changing its locale does not affect m.
func (m *Manager) ForLocale(locale string) (*Manager, error) {
	m.mu.RLock()
	clone := &Manager{
		defaultLocale: m.defaultLocale,
		currentLocale: m.currentLocale,
		fallback:      m.fallback,
		translations:  m.translations,
		templates:     m.templates,
	}
	m.mu.RUnlock()

	if err := clone.SetLocale(locale); err != nil {
		return nil, err
	}
	return clone, nil
}

// GetCurrentLocale returns the current active locale
func (m *Manager) GetCurrentLocale() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.currentLocale
}

// GetDefaultLocale returns the default locale
func (m *Manager) GetDefaultLocale() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.defaultLocale
}

// GetAvailableLocales returns all loaded locales, sorted
func (m *Manager) GetAvailableLocales() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	locales := make([]string, 0, len(m.translations))
	for locale := range m.translations {
		locales = append(locales, locale)
	}
	sort.Strings(locales)
	return locales
}

// HasLocale checks if a locale is available
func (m *Manager) HasLocale(locale string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, exists := m.translations[NormalizeLocale(locale)]
	return exists
}

// GetTranslationKeys returns all leaf keys of the current locale, sorted
func (m *Manager) GetTranslationKeys() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	translations := m.translations[m.currentLocale]
	if translations == nil {
		return nil
	}
	keys := collectKeys(translations, "")
	sort.Strings(keys)
	return keys
}

func collectKeys(data map[string]interface{}, prefix string) []string {
	var keys []string
	for key, value := range data {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}
		if nested, ok := value.(map[string]interface{}); ok {
			keys = append(keys, collectKeys(nested, fullKey)...)
			continue
		}
		keys = append(keys, fullKey)
	}
	return keys
}

// String provides a readable representation of the manager
func (m *Manager) String() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return fmt.Sprintf("i18n.Manager{defaultLocale: %s, currentLocale: %s, fallback: %t, locales: %d}",
		m.defaultLocale, m.currentLocale, m.fallback, len(m.translations))
}
