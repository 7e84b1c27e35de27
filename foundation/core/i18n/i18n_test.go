// File: i18n_test.go
// Title: Internationalization Module Tests
// Description: Tests loading from fs.FS and disk, TOML/YAML parsing,
//              fallback, templates, pluralization and locale helpers.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-12
//
// Change History:
// - 2025-01-25 v0.1.0: Initial test implementation
// - 2026-10-12 v0.2.0: Rewritten around fs.FS sources

package i18n

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"testing/fstest"

	mdwerror "github.com/msto63/pcbuild/foundation/core/error"
)

const ptBR = `
[build]
total = "Preço Total"
missing = "Faltando: {{.category}}"
parts = ["{{.count}} peça", "{{.count}} peças"]

[category]
case = "Gabinete"
`

const en = `
build:
  total: "Total Price"
  missing: "Missing: {{.category}}"
  parts:
    - "{{.count}} part"
    - "{{.count}} parts"
`

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"pt-BR.toml": {Data: []byte(ptBR)},
		"en.yaml":    {Data: []byte(en)},
		"README.md":  {Data: []byte("ignored")},
	}
}

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	m, err := New(Options{DefaultLocale: "pt-BR", FS: testFS()})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	return m
}

func TestNewFromFS(t *testing.T) {
	m := newTestManager(t)

	if got := m.GetDefaultLocale(); got != "pt-BR" {
		t.Errorf("default locale = %q", got)
	}
	locales := m.GetAvailableLocales()
	if len(locales) != 2 || locales[0] != "en" || locales[1] != "pt-BR" {
		t.Errorf("available locales = %v", locales)
	}
	if !m.HasLocale("pt_br") {
		t.Error("HasLocale should normalize its argument")
	}
}

func TestNewErrors(t *testing.T) {
	tests := []struct {
		name    string
		options Options
		code    mdwerror.Code
	}{
		{"empty default locale", Options{FS: testFS()}, mdwerror.CodeInvalidInput},
		{"missing default locale file", Options{DefaultLocale: "de", FS: testFS()}, mdwerror.CodeConfigError},
		{"missing directory", Options{DefaultLocale: "en", LocalesDir: filepath.Join(t.TempDir(), "nope")}, mdwerror.CodeNotFound},
		{"broken file", Options{DefaultLocale: "en", FS: fstest.MapFS{"en.toml": {Data: []byte("= broken")}}}, mdwerror.CodeConfigError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.options)
			if err == nil {
				t.Fatal("expected error")
			}
			if !mdwerror.HasCode(err, tt.code) {
				t.Errorf("expected code %s, got %v", tt.code, err)
			}
		})
	}
}

func TestNewFromDisk(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "en.yml"), []byte(en), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	m, err := New(Options{DefaultLocale: "en", LocalesDir: dir})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	if got := m.T("build.total"); got != "Total Price" {
		t.Errorf("T() = %q", got)
	}
}

func TestFormatFilter(t *testing.T) {
	_, err := New(Options{DefaultLocale: "en", FS: testFS(), Format: FormatTOML})
	if err == nil {
		t.Error("en.yaml must be skipped when only TOML is accepted")
	}
}

func TestTranslate(t *testing.T) {
	m := newTestManager(t)

	tests := []struct {
		key  string
		data map[string]interface{}
		want string
	}{
		{"build.total", nil, "Preço Total"},
		{"build.missing", map[string]interface{}{"category": "Gabinete"}, "Faltando: Gabinete"},
		{"category.case", nil, "Gabinete"},
		{"build.parts", nil, "{{.count}} peça"},
		{"no.such.key", nil, "no.such.key"},
		{"build", nil, "build"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := m.T(tt.key, tt.data); got != tt.want {
				t.Errorf("T(%q) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}

func TestTryTMissingKey(t *testing.T) {
	m := newTestManager(t)

	got, err := m.TryT("unknown")
	if err == nil {
		t.Fatal("expected error for missing key")
	}
	if got != "unknown" {
		t.Errorf("TryT returned %q, want the key", got)
	}
	if !mdwerror.HasCode(err, mdwerror.CodeNotFound) {
		t.Errorf("unexpected code: %v", err)
	}
}

func TestFallbackToDefaultLocale(t *testing.T) {
	m := newTestManager(t)
	if err := m.SetLocale("en"); err != nil {
		t.Fatalf("SetLocale: %v", err)
	}

	if got := m.T("build.total"); got != "Total Price" {
		t.Errorf("T(build.total) = %q", got)
	}
	if got := m.T("category.case"); got != "Gabinete" {
		t.Errorf("fallback T(category.case) = %q", got)
	}

	strict, err := New(Options{DefaultLocale: "pt-BR", FS: testFS(), DisableFallback: true})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := strict.SetLocale("en"); err != nil {
		t.Fatalf("SetLocale: %v", err)
	}
	if got := strict.T("category.case"); got != "category.case" {
		t.Errorf("without fallback T(category.case) = %q", got)
	}
}

func TestSetLocaleUnknown(t *testing.T) {
	m := newTestManager(t)
	if err := m.SetLocale("fr"); !mdwerror.HasCode(err, mdwerror.CodeNotFound) {
		t.Errorf("SetLocale(fr) = %v", err)
	}
	if m.GetCurrentLocale() != "pt-BR" {
		t.Error("failed SetLocale must not change the current locale")
	}
}

func TestForLocale(t *testing.T) {
	m := newTestManager(t)

	english, err := m.ForLocale("en")
	if err != nil {
		t.Fatalf("ForLocale: %v", err)
	}
	if english.T("build.total") != "Total Price" {
		t.Error("view should translate in English")
	}
	if m.T("build.total") != "Preço Total" {
		t.Error("original manager must keep its locale")
	}
	if _, err := m.ForLocale("xx"); err == nil {
		t.Error("expected error for unknown locale")
	}
}

func TestPlural(t *testing.T) {
	m := newTestManager(t)
	english, _ := m.ForLocale("en")

	tests := []struct {
		manager *Manager
		count   int
		want    string
	}{
		{m, 0, "0 peça"},
		{m, 1, "1 peça"},
		{m, 3, "3 peças"},
		{english, 0, "0 parts"},
		{english, 1, "1 part"},
		{english, 2, "2 parts"},
	}
	for _, tt := range tests {
		if got := tt.manager.Plural("build.parts", tt.count, nil); got != tt.want {
			t.Errorf("Plural(%s, %d) = %q, want %q", tt.manager.GetCurrentLocale(), tt.count, got, tt.want)
		}
	}

	if got := m.Plural("build.total", 5, nil); got != "Preço Total" {
		t.Errorf("single form plural = %q", got)
	}
	if got := m.Plural("nope", 5, nil); got != "nope" {
		t.Errorf("missing plural = %q", got)
	}
}

func TestTranslationKeys(t *testing.T) {
	m := newTestManager(t)
	keys := m.GetTranslationKeys()
	want := []string{"build.missing", "build.parts", "build.total", "category.case"}
	if len(keys) != len(want) {
		t.Fatalf("keys = %v", keys)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("keys[%d] = %q, want %q", i, keys[i], want[i])
		}
	}
}

func TestConcurrentTranslate(t *testing.T) {
	m := newTestManager(t)
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			m.T("build.missing", map[string]interface{}{"category": i})
			m.Plural("build.parts", i, nil)
		}(i)
	}
	wg.Wait()
}

func TestLocaleHelpers(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"pt_br", "pt-BR"},
		{"EN", "en"},
		{" en-us ", "en-US"},
		{"x", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := NormalizeLocale(tt.input); got != tt.want {
			t.Errorf("NormalizeLocale(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}

	if err := ValidateLocale("pt-BR"); err != nil {
		t.Errorf("ValidateLocale(pt-BR) = %v", err)
	}
	if err := ValidateLocale("toolonglanguage"); err == nil {
		t.Error("expected invalid locale error")
	}
	if err := ValidateLocale(" "); err == nil {
		t.Error("expected empty locale error")
	}
	if got := ParseLocaleFromFilename("locales/pt_BR.toml"); got != "pt-BR" {
		t.Errorf("ParseLocaleFromFilename = %q", got)
	}
	if got := GetLocaleDisplayName("pt-br"); got != "Português (Brasil)" {
		t.Errorf("display name = %q", got)
	}
	if got := GetLocaleDisplayName("it"); got != "it" {
		t.Errorf("unknown display name = %q", got)
	}
}
