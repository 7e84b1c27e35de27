// File: doc.go
// Title: Internationalization (i18n) Package Documentation
// Description: Package i18n loads TOML and YAML language files and translates
//              dotted keys with template interpolation and pluralization.
// Author: msto63
// Version: v0.2.1
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2026-10-12 v0.2.0: fs.FS sources for embedded locale files
// - 2026-10-18 v0.2.1: Translator covers Plural

/*
Package i18n provides translations from TOML and YAML language files.

Language files are named after their locale ("pt-BR.toml", "en.yaml") and hold
nested tables that are addressed with dot notation:

	# pt-BR.toml
	[build]
	total = "Preço Total"
	missing = "Faltando: {{.category}}"

Files can be read from disk or from any fs.FS, which lets binaries embed them:

	//go:embed *.toml *.yaml
	var files embed.FS

	manager, err := i18n.New(i18n.Options{DefaultLocale: "pt-BR", FS: files})
	if err != nil {
		return err
	}
	manager.T("build.missing", map[string]interface{}{"category": "Gabinete"})

Lookup order is the current locale, then the default locale (unless
DisableFallback is set), then the key itself. T never fails; TryT reports
missing keys and template errors as *mdwerror.Error values.

Plural forms are arrays selected by count with simplified CLDR rules:

	parts = ["{{.count}} peça", "{{.count}} peças"]

Both T and Plural make up the Translator interface that domain code accepts.

ForLocale returns a view bound to another locale that shares the loaded
translations, so one Manager can serve several languages concurrently.
*/
package i18n
