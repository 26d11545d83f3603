package botopt

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
	"golang.org/x/text/language"

	"github.com/napalu/botopt/i18n"
	"github.com/napalu/botopt/resolve"
	"github.com/napalu/botopt/schema"
	"github.com/napalu/botopt/types"
)

// DefaultPrefix is the command prefix used when none is configured
const DefaultPrefix = "!"

// ConfigureParserFunc is used when defining Parser options
type ConfigureParserFunc func(parser *Parser, err *error)

// ConfigureArgumentFunc is used when defining command arguments
type ConfigureArgumentFunc func(argument *Argument, err *error)

// ConfigureCommandFunc is used when defining Command options
type ConfigureCommandFunc func(command *Command)

// Parser matches chat messages against registered commands and resolves their arguments.
// Configure it before use; Parse, ParseArguments and Match may then be called concurrently.
type Parser struct {
	prefixes      []string
	commands      *orderedmap.OrderedMap[string, *Command]
	lookup        map[string]*Command
	schemas       map[*Command]*schema.Schema
	table         resolve.Table
	quoteStyle    types.QuoteStyle
	caseSensitive bool
	bundle        *i18n.Bundle
	lang          language.Tag
	renderer      Renderer
}

// Argument describes one argument of a Command
type Argument struct {
	Description  string
	TypeOf       types.ArgumentType
	Required     bool
	Short        string
	DefaultValue string
	// Rest collects every surplus positional token; only valid on the last string argument
	Rest bool
	// FlagOnly arguments are bound by --name or -s and are passed over by positional tokens
	FlagOnly bool
}

// Command is a chat command: a name, optional aliases and an ordered list of arguments.
// The argument schema is compiled when the command is added to a Parser; arguments added after
// registration are not seen by that Parser.
type Command struct {
	Name        string
	Aliases     []string
	Description string
	arguments   *orderedmap.OrderedMap[string, *Argument]
	schema      *schema.Schema
}

// Invocation is the result of a successful Parse
type Invocation struct {
	Command   *Command
	Prefix    string
	Arguments *resolve.Arguments
}

// Renderer renders usage text for commands and their arguments
type Renderer interface {
	ArgumentName(name string, a *Argument) string
	ArgumentUsage(name string, a *Argument) string
	CommandUsage(prefix string, c *Command) string
}
