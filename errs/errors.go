package errs

import (
	"sync"

	"github.com/napalu/botopt/i18n"
)

// Call-site and schema errors
var (
	ErrInvalidArgument     = i18n.NewError(ErrInvalidArgumentKey)
	ErrEmptyInput          = i18n.NewError(ErrEmptyInputKey)
	ErrNilSchema           = i18n.NewError(ErrNilSchemaKey)
	ErrNilOptions          = i18n.NewError(ErrNilOptionsKey)
	ErrNilTable            = i18n.NewError(ErrNilTableKey)
	ErrRawArgumentCount    = i18n.NewError(ErrRawArgumentCountKey)
	ErrShellSplit          = i18n.NewError(ErrShellSplitKey)
	ErrInvalidSchema       = i18n.NewError(ErrInvalidSchemaKey)
	ErrEmptyArgumentName   = i18n.NewError(ErrEmptyArgumentNameKey)
	ErrDuplicateArgument   = i18n.NewError(ErrDuplicateArgumentKey)
	ErrInvalidShortFlag    = i18n.NewError(ErrInvalidShortFlagKey)
	ErrDuplicateShortFlag  = i18n.NewError(ErrDuplicateShortFlagKey)
	ErrEmptyArgumentType   = i18n.NewError(ErrEmptyArgumentTypeKey)
	ErrMisplacedRest       = i18n.NewError(ErrMisplacedRestKey)
	ErrRequiredWithDefault = i18n.NewError(ErrRequiredWithDefaultKey)
	ErrInvalidArgumentName = i18n.NewError(ErrInvalidArgumentNameKey)
	ErrFlagOnlyRest        = i18n.NewError(ErrFlagOnlyRestKey)
)

// Tokenizer and resolver errors
var (
	ErrUnknownResolverType = i18n.NewError(ErrUnknownResolverTypeKey)
	ErrArgumentCoercion    = i18n.NewError(ErrArgumentCoercionKey)
	ErrMissingArgument     = i18n.NewError(ErrMissingArgumentKey)
	ErrUnknownFlag         = i18n.NewError(ErrUnknownFlagKey)
	ErrDidYouMean          = i18n.NewError(ErrDidYouMeanKey)
	ErrUnexpectedArgument  = i18n.NewError(ErrUnexpectedArgumentKey)
)

// Command and definition errors
var (
	ErrCommandNotFound     = i18n.NewError(ErrCommandNotFoundKey)
	ErrDuplicateCommand    = i18n.NewError(ErrDuplicateCommandKey)
	ErrEmptyCommandName    = i18n.NewError(ErrEmptyCommandNameKey)
	ErrEmptyPrefix         = i18n.NewError(ErrEmptyPrefixKey)
	ErrNilCommand          = i18n.NewError(ErrNilCommandKey)
	ErrLanguageUnavailable = i18n.NewError(ErrLanguageUnavailableKey)
	ErrUnsupportedFormat   = i18n.NewError(ErrUnsupportedFormatKey)
	ErrInvalidDefinition   = i18n.NewError(ErrInvalidDefinitionKey)
	ErrInvalidQuoteStyle   = i18n.NewError(ErrInvalidQuoteStyleKey)
)

// Value parse errors
var (
	ErrParseInt      = i18n.NewError(ErrParseIntKey)
	ErrParseFloat    = i18n.NewError(ErrParseFloatKey)
	ErrParseBool     = i18n.NewError(ErrParseBoolKey)
	ErrParseMention  = i18n.NewError(ErrParseMentionKey)
	ErrParseID       = i18n.NewError(ErrParseIDKey)
	ErrParseDate     = i18n.NewError(ErrParseDateKey)
	ErrParseDuration = i18n.NewError(ErrParseDurationKey)
	ErrParseUUID     = i18n.NewError(ErrParseUUIDKey)
	ErrLookup        = i18n.NewError(ErrLookupKey)
)

type builtInErrors struct {
	mu  sync.Mutex
	All []*i18n.TrError
}

var sysErrors = &builtInErrors{
	All: []*i18n.TrError{
		ErrInvalidArgument,
		ErrEmptyInput,
		ErrNilSchema,
		ErrNilOptions,
		ErrNilTable,
		ErrRawArgumentCount,
		ErrShellSplit,
		ErrInvalidSchema,
		ErrEmptyArgumentName,
		ErrDuplicateArgument,
		ErrInvalidShortFlag,
		ErrDuplicateShortFlag,
		ErrEmptyArgumentType,
		ErrMisplacedRest,
		ErrRequiredWithDefault,
		ErrInvalidArgumentName,
		ErrFlagOnlyRest,
		ErrUnknownResolverType,
		ErrArgumentCoercion,
		ErrMissingArgument,
		ErrUnknownFlag,
		ErrDidYouMean,
		ErrUnexpectedArgument,
		ErrCommandNotFound,
		ErrDuplicateCommand,
		ErrEmptyCommandName,
		ErrEmptyPrefix,
		ErrNilCommand,
		ErrLanguageUnavailable,
		ErrUnsupportedFormat,
		ErrInvalidDefinition,
		ErrInvalidQuoteStyle,
		ErrParseInt,
		ErrParseFloat,
		ErrParseBool,
		ErrParseMention,
		ErrParseID,
		ErrParseDate,
		ErrParseDuration,
		ErrParseUUID,
		ErrLookup,
	},
}

// UpdateMessageProvider sets the provider used by every built-in error, and by errors
// created with i18n.NewError afterwards.
//
// Example:
//
//	bundle, _ := i18n.NewBundle()
//	errs.UpdateMessageProvider(i18n.NewLocalizedMessageProvider(bundle, language.German))
func UpdateMessageProvider(provider i18n.MessageProvider) {
	i18n.SetDefaultMessageProvider(provider)
	sysErrors.mu.Lock()
	for _, e := range sysErrors.All {
		e.SetProvider(provider)
	}
	sysErrors.mu.Unlock()
}
