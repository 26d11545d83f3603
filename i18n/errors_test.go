package i18n

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

type mapProvider map[string]string

func (m mapProvider) GetMessage(key string) string {
	if msg, ok := m[key]; ok {
		return msg
	}

	return key
}

func TestTrError_Error(t *testing.T) {
	provider := mapProvider{"e.parse": "%q is not a number", "e.arg": "invalid value for %s"}
	errParse := NewErrorWithProvider("e.parse", provider)
	errArg := NewErrorWithProvider("e.arg", provider)

	err := errArg.WithArgs("count").Wrap(errParse.WithArgs("ten"))
	assert.Equal(t, `invalid value for count: "ten" is not a number`, err.Error())
	assert.Equal(t, "e.arg", err.Key())
	assert.Equal(t, []interface{}{"count"}, err.Args())

	plain := errArg.WithArgs("x").Wrap(errors.New("boom"))
	assert.Equal(t, "invalid value for x: boom", plain.Error())
}

func TestTrError_Is(t *testing.T) {
	provider := mapProvider{}
	errA := NewErrorWithProvider("a", provider)
	errB := NewErrorWithProvider("b", provider)
	cause := errors.New("cause")

	err := errA.WithArgs(1).Wrap(errB.Wrap(cause))
	assert.True(t, errors.Is(err, errA))
	assert.True(t, errors.Is(err, errB))
	assert.True(t, errors.Is(err, cause))
	assert.False(t, errors.Is(errA, errB))

	wrapped := fmt.Errorf("context: %w", errA.WithArgs("x"))
	assert.True(t, errors.Is(wrapped, errA))

	var te TranslatableError
	require.True(t, errors.As(wrapped, &te))
	assert.Equal(t, "a", te.Key())
}

func TestTrError_CopiesDoNotMutateSentinel(t *testing.T) {
	provider := mapProvider{"k": "msg %v"}
	sentinel := NewErrorWithProvider("k", provider)

	_ = sentinel.WithArgs(1)
	_ = sentinel.Wrap(errors.New("x"))
	assert.Empty(t, sentinel.Args())
	assert.Nil(t, sentinel.Unwrap())
}

func TestTrError_Translate(t *testing.T) {
	b := Default()
	err := NewErrorWithProvider("botopt.error.parse.int", NewBundleMessageProvider(b)).WithArgs("zehn")

	assert.Equal(t, `"zehn" is not a valid integer`, err.Error())
	assert.Equal(t, `"zehn" ist keine gültige Ganzzahl`, err.Translate(NewLocalizedMessageProvider(b, language.German)))
	assert.Equal(t, `"zehn" n'est pas un entier valide`, err.Translate(NewLocalizedMessageProvider(b, language.French)))
}

func TestTrError_SetProvider(t *testing.T) {
	err := NewErrorWithProvider("k", mapProvider{"k": "first"})
	err.SetProvider(mapProvider{"k": "second"})

	assert.Equal(t, "second", err.Error())
}

func TestBundleMessageProvider_UnknownKey(t *testing.T) {
	assert.Equal(t, "no.such.key", NewBundleMessageProvider(Default()).GetMessage("no.such.key"))
	assert.Equal(t, "k", NewBundleMessageProvider(nil).GetMessage("k"))
}
