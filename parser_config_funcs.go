package botopt

import (
	"golang.org/x/text/language"

	"github.com/napalu/botopt/config"
	"github.com/napalu/botopt/resolve"
	"github.com/napalu/botopt/types"
)

// NewParserWith allows initialization of Parser using option functions. The caller should always test for error on
// return because Parser will be nil when an error occurs during initialization.
//
// Configuration example:
//
//	parser, err := NewParserWith(
//		WithPrefix("!", "?"),
//		WithCommand(NewCommand(
//			WithName("ban"),
//			WithAliases("b"),
//			WithArgument("target", NewArg(WithType(types.User))),
//			WithArgument("silent", NewArg(
//				WithType(types.Boolean),
//				WithShortFlag("s"),
//				SetRequired(false))),
//			WithArgument("reason", NewArg(
//				SetRequired(false),
//				WithRest(true))))))
func NewParserWith(configs ...ConfigureParserFunc) (*Parser, error) {
	parser := NewParser()

	var err error
	for _, config := range configs {
		config(parser, &err)
		if err != nil {
			return nil, err
		}
	}

	return parser, err
}

// WithPrefix replaces the command prefixes (defaults to "!")
func WithPrefix(prefixes ...string) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		*err = parser.SetPrefixes(prefixes...)
	}
}

// WithCommand is a wrapper for AddCommand
func WithCommand(command *Command) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		*err = parser.AddCommand(command)
	}
}

// WithResolverTable replaces the resolver table (defaults to resolve.DefaultTable)
func WithResolverTable(table resolve.Table) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		*err = parser.SetResolverTable(table)
	}
}

// WithResolver registers fn as the resolver of typeOf, replacing any built-in resolver
func WithResolver(typeOf types.ArgumentType, fn resolve.Func) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		parser.SetResolver(typeOf, fn)
	}
}

// WithQuoteStyle selects chat (default) or shell quoting
func WithQuoteStyle(style types.QuoteStyle) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		parser.SetQuoteStyle(style)
	}
}

// WithLanguage sets the language of error messages and usage text
func WithLanguage(lang language.Tag) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		*err = parser.SetLanguage(lang)
	}
}

// WithCaseSensitiveCommands makes command names and aliases match case-sensitively
func WithCaseSensitiveCommands(value bool) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		*err = parser.SetCaseSensitiveCommands(value)
	}
}

// WithRenderer replaces the usage renderer
func WithRenderer(renderer Renderer) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		parser.SetRenderer(renderer)
	}
}

// WithDefinitions is a wrapper for LoadDefinitions
func WithDefinitions(file *config.File) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		*err = parser.LoadDefinitions(file)
	}
}
