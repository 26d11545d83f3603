package errs

import (
	"errors"

	"github.com/napalu/botopt/i18n"
)

// ErrWithProvider renders a TranslatableError with a specific MessageProvider without touching
// the provider of the underlying error
type ErrWithProvider struct {
	te       i18n.TranslatableError
	provider i18n.MessageProvider
}

// WithProvider wraps err so that it renders with provider. Errors which are not translatable
// are returned unchanged.
func WithProvider(err error, provider i18n.MessageProvider) error {
	if err == nil || provider == nil {
		return err
	}

	te, ok := err.(i18n.TranslatableError)
	if !ok {
		return err
	}

	return &ErrWithProvider{
		te:       te,
		provider: provider,
	}
}

func (e *ErrWithProvider) Error() string {
	return e.te.Translate(e.provider)
}

func (e *ErrWithProvider) Unwrap() error {
	return e.te
}

func (e *ErrWithProvider) Is(target error) bool {
	return errors.Is(e.te, target)
}
