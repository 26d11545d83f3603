// Package errs declares the errors returned by botopt. Each error is a translatable sentinel;
// this file holds the translation keys.
package errs

const (
	prefixKey = "botopt"
)

// Error prefixes
const (
	ErrorPrefixKey    = prefixKey + ".error"
	ParseErrorPathKey = ErrorPrefixKey + ".parse"
)

// Call-site and schema errors
const (
	ErrInvalidArgumentKey     = ErrorPrefixKey + ".invalid_argument"
	ErrEmptyInputKey          = ErrorPrefixKey + ".empty_input"
	ErrNilSchemaKey           = ErrorPrefixKey + ".nil_schema"
	ErrNilOptionsKey          = ErrorPrefixKey + ".nil_options"
	ErrNilTableKey            = ErrorPrefixKey + ".nil_table"
	ErrRawArgumentCountKey    = ErrorPrefixKey + ".raw_argument_count"
	ErrShellSplitKey          = ErrorPrefixKey + ".shell_split"
	ErrInvalidSchemaKey       = ErrorPrefixKey + ".invalid_schema"
	ErrEmptyArgumentNameKey   = ErrorPrefixKey + ".empty_argument_name"
	ErrDuplicateArgumentKey   = ErrorPrefixKey + ".duplicate_argument"
	ErrInvalidShortFlagKey    = ErrorPrefixKey + ".invalid_short_flag"
	ErrDuplicateShortFlagKey  = ErrorPrefixKey + ".duplicate_short_flag"
	ErrEmptyArgumentTypeKey   = ErrorPrefixKey + ".empty_argument_type"
	ErrMisplacedRestKey       = ErrorPrefixKey + ".misplaced_rest"
	ErrRequiredWithDefaultKey = ErrorPrefixKey + ".required_with_default"
	ErrInvalidArgumentNameKey = ErrorPrefixKey + ".invalid_argument_name"
	ErrFlagOnlyRestKey        = ErrorPrefixKey + ".flag_only_rest"
)

// Tokenizer and resolver errors
const (
	ErrUnknownResolverTypeKey = ErrorPrefixKey + ".unknown_resolver_type"
	ErrArgumentCoercionKey    = ErrorPrefixKey + ".argument_coercion"
	ErrMissingArgumentKey     = ErrorPrefixKey + ".missing_argument"
	ErrUnknownFlagKey         = ErrorPrefixKey + ".unknown_flag"
	ErrDidYouMeanKey          = ErrorPrefixKey + ".did_you_mean"
	ErrUnexpectedArgumentKey  = ErrorPrefixKey + ".unexpected_argument"
)

// Command and definition errors
const (
	ErrCommandNotFoundKey     = ErrorPrefixKey + ".command_not_found"
	ErrDuplicateCommandKey    = ErrorPrefixKey + ".duplicate_command"
	ErrEmptyCommandNameKey    = ErrorPrefixKey + ".empty_command_name"
	ErrEmptyPrefixKey         = ErrorPrefixKey + ".empty_prefix"
	ErrNilCommandKey          = ErrorPrefixKey + ".nil_command"
	ErrLanguageUnavailableKey = ErrorPrefixKey + ".language_unavailable"
	ErrUnsupportedFormatKey   = ErrorPrefixKey + ".unsupported_format"
	ErrInvalidDefinitionKey   = ErrorPrefixKey + ".invalid_definition"
	ErrInvalidQuoteStyleKey   = ErrorPrefixKey + ".invalid_quote_style"
)

// Value parse errors
const (
	ErrParseIntKey      = ParseErrorPathKey + ".int"
	ErrParseFloatKey    = ParseErrorPathKey + ".float"
	ErrParseBoolKey     = ParseErrorPathKey + ".bool"
	ErrParseMentionKey  = ParseErrorPathKey + ".mention"
	ErrParseIDKey       = ParseErrorPathKey + ".id"
	ErrParseDateKey     = ParseErrorPathKey + ".date"
	ErrParseDurationKey = ParseErrorPathKey + ".duration"
	ErrParseUUIDKey     = ParseErrorPathKey + ".uuid"
	ErrLookupKey        = ParseErrorPathKey + ".lookup"
)
