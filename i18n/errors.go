package i18n

import (
	"errors"
	"fmt"
	"sync"

	"golang.org/x/text/language"
)

// TranslatableError represents an error whose message is looked up by key
type TranslatableError interface {
	error
	Key() string
	Args() []interface{}
	Unwrap() error
	WithArgs(args ...interface{}) TranslatableError
	Wrap(err error) TranslatableError
	Is(target error) bool
	Translate(provider MessageProvider) string
}

// MessageProvider returns the message registered for a key, or the key itself when none is
type MessageProvider interface {
	GetMessage(key string) string
}

// BundleMessageProvider implements MessageProvider for one language of a bundle
type BundleMessageProvider struct {
	bundle *Bundle
	lang   *language.Tag
}

// NewBundleMessageProvider creates a provider which follows the bundle's default language
func NewBundleMessageProvider(bundle *Bundle) *BundleMessageProvider {
	return &BundleMessageProvider{bundle: bundle}
}

// NewLocalizedMessageProvider creates a provider pinned to lang
func NewLocalizedMessageProvider(bundle *Bundle, lang language.Tag) *BundleMessageProvider {
	return &BundleMessageProvider{bundle: bundle, lang: &lang}
}

// GetMessage returns the message for the given key from the bundle
func (p *BundleMessageProvider) GetMessage(key string) string {
	if p.bundle == nil {
		return key
	}

	lang := p.bundle.GetDefaultLanguage()
	if p.lang != nil {
		lang = *p.lang
	}
	if msg, ok := p.bundle.Message(lang, key); ok {
		return msg
	}

	return key
}

// TrError is a translatable error with optional formatting arguments and error wrapping.
// Copies made by WithArgs and Wrap keep the sentinel of the error they were derived from, so
// errors.Is matches them against the declared error value.
//
// Example usage:
//
//	var ErrParseInt = i18n.NewError("botopt.error.parse_int")
//	return ErrParseInt.WithArgs(raw)
type TrError struct {
	sentinel        error
	key             string
	args            []interface{}
	wrapped         error
	messageProvider MessageProvider
}

// NewError creates a new translatable error with a key
func NewError(key string) *TrError {
	return NewErrorWithProvider(key, getDefaultProvider())
}

// NewErrorWithProvider creates a new translatable error with a key and specific provider
func NewErrorWithProvider(key string, provider MessageProvider) *TrError {
	return &TrError{
		sentinel:        errors.New(provider.GetMessage(key)),
		key:             key,
		messageProvider: provider,
	}
}

// Error returns the message, formatted with args if provided
func (e *TrError) Error() string {
	return e.Translate(e.messageProvider)
}

// Translate renders the error with provider. Wrapped translatable errors are rendered with
// the same provider.
func (e *TrError) Translate(provider MessageProvider) string {
	msg := provider.GetMessage(e.key)
	if len(e.args) > 0 {
		msg = fmt.Sprintf(msg, e.args...)
	}

	if e.wrapped == nil {
		return msg
	}

	if te, ok := e.wrapped.(TranslatableError); ok {
		return msg + ": " + te.Translate(provider)
	}

	return fmt.Sprintf("%s: %v", msg, e.wrapped)
}

// WithArgs returns a copy of the error with format arguments
func (e *TrError) WithArgs(args ...interface{}) TranslatableError {
	return &TrError{
		sentinel:        e.sentinel,
		key:             e.key,
		args:            args,
		wrapped:         e.wrapped,
		messageProvider: e.messageProvider,
	}
}

// Wrap returns a copy of the error which wraps err
func (e *TrError) Wrap(err error) TranslatableError {
	return &TrError{
		sentinel:        e.sentinel,
		key:             e.key,
		args:            e.args,
		wrapped:         err,
		messageProvider: e.messageProvider,
	}
}

// Is implements errors.Is for comparison with the sentinel error
func (e *TrError) Is(target error) bool {
	if t, ok := target.(*TrError); ok {
		return e.sentinel == t.sentinel
	}

	return target == e.sentinel
}

// Key returns the translation key
func (e *TrError) Key() string {
	return e.key
}

// Args returns the format arguments
func (e *TrError) Args() []interface{} {
	return e.args
}

// Unwrap returns the wrapped error
func (e *TrError) Unwrap() error {
	return e.wrapped
}

// SetProvider replaces the provider used by Error
func (e *TrError) SetProvider(provider MessageProvider) {
	e.messageProvider = provider
}

var (
	defaultProvider    MessageProvider
	defaultProviderMux sync.Mutex
)

// SetDefaultMessageProvider sets the provider given to errors created by NewError from now on
func SetDefaultMessageProvider(p MessageProvider) {
	defaultProviderMux.Lock()
	defer defaultProviderMux.Unlock()
	defaultProvider = p
}

func getDefaultProvider() MessageProvider {
	defaultProviderMux.Lock()
	defer defaultProviderMux.Unlock()

	if defaultProvider == nil {
		defaultProvider = NewBundleMessageProvider(Default())
	}

	return defaultProvider
}
