// ============================================================================
// pcbuild - Computer build assembly and validation
// ============================================================================
//
// Package:     locales
// Description: Embedded message catalogs
// Author:      Mike Stoffels
// Created:     2025-12-07
// License:     MIT
// ============================================================================

// Package locales embeds the message catalogs shipped with pcbuild.
package locales

import (
	"embed"
	"io/fs"
	"sync"

	"github.com/msto63/pcbuild/foundation/core/i18n"
)

// Default is the locale used when none is configured
const Default = "pt-BR"

//go:embed pt-BR.toml en.yaml
var files embed.FS

var (
	catalogOnce sync.Once
	catalog     *i18n.Manager
	catalogErr  error

	sharedOnce sync.Once
	shared     *i18n.Manager
)

// FS returns the embedded locale files
func FS() fs.FS {
	return files
}

// base parses the embedded files once. Callers only ever see ForLocale views,
// so the base manager's locale never changes.
func base() *i18n.Manager {
	catalogOnce.Do(func() {
		catalog, catalogErr = i18n.New(i18n.Options{DefaultLocale: Default, FS: files})
	})
	if catalogErr != nil {
		// the catalogs are embedded, so this only happens with a broken build
		panic(catalogErr)
	}
	return catalog
}

// Supported returns the shipped locales, sorted
func Supported() []string {
	return base().GetAvailableLocales()
}

// Has reports whether locale is well formed and shipped
func Has(locale string) bool {
	if i18n.ValidateLocale(locale) != nil {
		return false
	}
	return base().HasLocale(locale)
}

// New returns a manager bound to locale. An empty locale means Default.
// Managers share the parsed catalogs; changing the locale of one does not
// affect the others.
func New(locale string) (*i18n.Manager, error) {
	if locale == "" {
		locale = Default
	}
	return base().ForLocale(locale)
}

// Shared returns a process-wide manager for the default locale. It is used
// when callers do not pass a translator; callers must not change its locale.
func Shared() i18n.Translator {
	sharedOnce.Do(func() {
		m, err := New(Default)
		if err != nil {
			panic(err)
		}
		shared = m
	})
	return shared
}

// Info describes one shipped catalog
type Info struct {
	Code    string   `json:"code" yaml:"code"`
	Name    string   `json:"name" yaml:"name"`
	Default bool     `json:"default" yaml:"default"`
	Keys    int      `json:"keys" yaml:"keys"`
	Missing []string `json:"missing,omitempty" yaml:"missing,omitempty"`
}

// Describe lists the shipped catalogs. Missing holds the keys of the default
// catalog that a locale does not translate itself.
func Describe() []Info {
	b := base()
	defaultLocale := b.GetDefaultLocale()
	reference := b.GetTranslationKeys()

	infos := make([]Info, 0, len(Supported()))
	for _, code := range Supported() {
		view, err := b.ForLocale(code)
		if err != nil {
			continue
		}
		keys := view.GetTranslationKeys()
		own := make(map[string]bool, len(keys))
		for _, k := range keys {
			own[k] = true
		}

		info := Info{
			Code:    code,
			Name:    i18n.GetLocaleDisplayName(code),
			Default: code == defaultLocale,
			Keys:    len(keys),
		}
		for _, k := range reference {
			if !own[k] {
				info.Missing = append(info.Missing, k)
			}
		}
		infos = append(infos, info)
	}
	return infos
}
