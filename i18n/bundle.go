// Package i18n provides the translations used to render botopt errors and usage text.
//
// A Bundle holds one flat key/message table per language. The built-in tables (en, de, fr)
// are embedded and loaded by Default and NewBundle. Every non-default language must carry
// exactly the keys of the default language, so a partially translated table is rejected
// when it is added.
package i18n

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

//go:embed locales/*.json
var defaultLocales embed.FS

var (
	ErrInvalidLanguage                    = errors.New("invalid language in filename")
	ErrDefaultLanguageTranslationsMissing = errors.New("default language translations missing")
	ErrInvalidTranslations                = errors.New("invalid translations")
	ErrEmptyTranslations                  = errors.New("empty translations")
	ErrFailedToSetString                  = errors.New("failed to set string")
	ErrLanguageNotFound                   = errors.New("language not found")
	ErrExtraKey                           = errors.New("extra key")
	ErrMissingKey                         = errors.New("missing key")
)

// Bundle is a set of translations keyed by language
type Bundle struct {
	mu           sync.RWMutex
	defaultLang  language.Tag
	translations map[language.Tag]map[string]string
	catalog      *catalog.Builder
	printers     map[language.Tag]*message.Printer
	matcher      language.Matcher
}

var (
	defaultBundleOnce sync.Once
	defaultBundle     *Bundle
)

// Default returns the shared bundle holding the built-in translations
func Default() *Bundle {
	defaultBundleOnce.Do(func() {
		var err error
		defaultBundle, err = NewBundle()
		if err != nil {
			panic("failed to load embedded locales: " + err.Error())
		}
	})

	return defaultBundle
}

// NewBundle returns a new bundle loaded with the built-in translations. Unlike Default the
// result is private to the caller and may be extended with AddLanguage.
func NewBundle() (*Bundle, error) {
	return NewBundleWithFS(defaultLocales, "locales")
}

// NewEmptyBundle returns a bundle without translations whose default language is English
func NewEmptyBundle() *Bundle {
	return &Bundle{
		defaultLang:  language.English,
		translations: make(map[language.Tag]map[string]string),
		catalog:      catalog.NewBuilder(catalog.Fallback(language.English)),
		printers:     make(map[language.Tag]*message.Printer),
		matcher:      language.NewMatcher([]language.Tag{language.English}),
	}
}

// NewBundleWithFS loads every <lang>.json file found in dir. The default language (English)
// must be present.
func NewBundleWithFS(fsys fs.FS, dir string) (*Bundle, error) {
	b := NewEmptyBundle()
	if err := b.LoadFromFS(fsys, dir); err != nil {
		return nil, err
	}

	if !b.HasLanguage(b.defaultLang) {
		return nil, fmt.Errorf("%w: %s", ErrDefaultLanguageTranslationsMissing, b.defaultLang)
	}

	return b, nil
}

// T returns the translation for the given key in the default language
func (b *Bundle) T(key string, args ...interface{}) string {
	return b.TL(b.GetDefaultLanguage(), key, args...)
}

// TL returns the translation for the given language and key. Unknown languages fall back to the
// default language and unknown keys are returned unchanged.
func (b *Bundle) TL(lang language.Tag, key string, args ...interface{}) string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if msg, ok := b.lookup(lang, key); ok {
		if len(args) == 0 {
			return msg
		}
		return fmt.Sprintf(msg, args...)
	}

	if len(args) == 0 {
		return key
	}

	return fmt.Sprintf(key, args...)
}

// Message returns the raw, unformatted message for key in lang, falling back to the default
// language. The second return value is false when no language defines the key.
func (b *Bundle) Message(lang language.Tag, key string) (string, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return b.lookup(lang, key)
}

// AddLanguage adds a new language to the bundle or merges translations into an existing one
func (b *Bundle) AddLanguage(lang language.Tag, translations map[string]string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	existing := b.translations[lang]
	merged := make(map[string]string, len(existing)+len(translations))
	for k, v := range existing {
		merged[k] = v
	}
	for k, v := range translations {
		merged[k] = v
	}

	if problems := b.validateLanguage(lang, merged); len(problems) > 0 {
		return fmt.Errorf("%w: %s: %v", ErrInvalidTranslations, lang, errors.Join(problems...))
	}

	for key, value := range translations {
		if err := b.catalog.SetString(lang, key, value); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrFailedToSetString, key, err)
		}
	}

	b.translations[lang] = merged
	b.printers[lang] = message.NewPrinter(lang, message.Catalog(b.catalog))
	b.rebuildMatcher()

	return nil
}

// Printer returns a locale-aware printer for lang, or for the default language when lang is not
// part of the bundle
func (b *Bundle) Printer(lang language.Tag) *message.Printer {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if p, ok := b.printers[lang]; ok {
		return p
	}

	return b.printers[b.defaultLang]
}

// Match returns the best supported language for the requested tag and whether the match is
// meaningful (confidence above language.No)
func (b *Bundle) Match(lang language.Tag) (language.Tag, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	_, idx, confidence := b.matcher.Match(lang)
	supported := b.sortedLanguages()
	if confidence == language.No || idx >= len(supported) {
		return b.defaultLang, false
	}

	return supported[idx], true
}

// HasLanguage checks if a language is supported
func (b *Bundle) HasLanguage(lang language.Tag) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	_, exists := b.translations[lang]

	return exists
}

// Languages returns the supported languages sorted by tag
func (b *Bundle) Languages() []language.Tag {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return b.sortedLanguages()
}

// HasKey checks if a key exists in a language
func (b *Bundle) HasKey(lang language.Tag, key string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()

	_, exists := b.translations[lang][key]

	return exists
}

// SetDefaultLanguage sets the language used by T
func (b *Bundle) SetDefaultLanguage(lang language.Tag) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.defaultLang = lang
}

// GetDefaultLanguage returns the language used by T
func (b *Bundle) GetDefaultLanguage() language.Tag {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return b.defaultLang
}

// LoadFromFS loads every <lang>.json file in dir. The default language is loaded first so the
// other languages can be validated against it.
func (b *Bundle) LoadFromFS(fsys fs.FS, dir string) error {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return err
	}

	defaultLang := b.GetDefaultLanguage()
	deferred := make(map[language.Tag]string, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		lang, err := language.Parse(strings.TrimSuffix(entry.Name(), ".json"))
		if err != nil {
			return fmt.Errorf("%w: %s", ErrInvalidLanguage, entry.Name())
		}

		file := path.Join(dir, entry.Name())
		if lang != defaultLang {
			deferred[lang] = file
			continue
		}
		if err := b.loadFile(fsys, lang, file); err != nil {
			return err
		}
	}

	for lang, file := range deferred {
		if err := b.loadFile(fsys, lang, file); err != nil {
			return err
		}
	}

	return nil
}

func (b *Bundle) loadFile(fsys fs.FS, lang language.Tag, file string) error {
	data, err := fs.ReadFile(fsys, file)
	if err != nil {
		return err
	}

	var translations map[string]string
	if err := json.Unmarshal(data, &translations); err != nil {
		return fmt.Errorf("%s: %w", file, err)
	}

	return b.AddLanguage(lang, translations)
}

func (b *Bundle) lookup(lang language.Tag, key string) (string, bool) {
	if msg, ok := b.translations[lang][key]; ok {
		return msg, true
	}
	if msg, ok := b.translations[b.defaultLang][key]; ok {
		return msg, true
	}
	msg, ok := b.translations[language.English][key]

	return msg, ok
}

func (b *Bundle) validateLanguage(lang language.Tag, translations map[string]string) []error {
	if len(translations) == 0 {
		return []error{fmt.Errorf("%w: %s", ErrEmptyTranslations, lang)}
	}

	if lang == b.defaultLang {
		return nil
	}

	reference, exists := b.translations[b.defaultLang]
	if !exists {
		// nothing to validate against yet
		return nil
	}

	var problems []error
	for key := range reference {
		if _, ok := translations[key]; !ok {
			problems = append(problems, fmt.Errorf("%w: %s: %q", ErrMissingKey, lang, key))
		}
	}
	for key := range translations {
		if _, ok := reference[key]; !ok {
			problems = append(problems, fmt.Errorf("%w: %s: %q", ErrExtraKey, lang, key))
		}
	}

	return problems
}

func (b *Bundle) sortedLanguages() []language.Tag {
	langs := make([]language.Tag, 0, len(b.translations))
	for lang := range b.translations {
		langs = append(langs, lang)
	}
	sort.Slice(langs, func(i, j int) bool {
		return langs[i].String() < langs[j].String()
	})

	return langs
}

func (b *Bundle) rebuildMatcher() {
	b.matcher = language.NewMatcher(b.sortedLanguages())
}
