// Copyright 2021-2024, Florent Heyworth. All rights reserved.
// Use of this source code is governed by the MIT licensee
// which can be found in the LICENSE file.

// Package botopt parses chat bot commands.
//
// A message such as
//
//	!ban <@80351110224678912> --silent spamming the channel
//
// is matched against the registered commands by its first token (prefix plus command name or
// alias). The remainder is split into tokens honouring "double", 'single' and `backtick` quotes,
// flags (--name, --name=value, -n, -n=value, grouped -abc) are bound to their arguments and the
// remaining tokens fill the other arguments in declaration order. Every raw value is then coerced
// by the resolver registered for the argument's type:
//
//	string	trimmed text
//	integer	int64
//	decimal	float64
//	boolean	exactly true or false
//	user, channel, role	a mention (<@id>, <#id>, <@&id>) or bare id, looked up in the Environment
//	id	the id of any mention
//	date	time.Time
//	duration	time.Duration
//	uuid	uuid.UUID
//
// Resolution is all-or-nothing: the first argument which fails aborts the call. Commands are not
// executed; Parse returns an Invocation for the caller to dispatch.
package botopt

import (
	"context"
	"fmt"
	"io"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
	"golang.org/x/text/language"

	"github.com/napalu/botopt/config"
	"github.com/napalu/botopt/errs"
	"github.com/napalu/botopt/i18n"
	"github.com/napalu/botopt/internal/messages"
	"github.com/napalu/botopt/parse"
	"github.com/napalu/botopt/resolve"
	"github.com/napalu/botopt/schema"
	"github.com/napalu/botopt/types"
)

// NewParser convenience initialization method. Use NewParserWith to
// configure Parser using option functions.
func NewParser() *Parser {
	return &Parser{
		prefixes:   []string{DefaultPrefix},
		commands:   orderedmap.New[string, *Command](),
		lookup:     map[string]*Command{},
		schemas:    map[*Command]*schema.Schema{},
		table:      resolve.DefaultTable(),
		quoteStyle: types.QuoteChat,
		bundle:     i18n.Default(),
		lang:       language.English,
	}
}

// AddCommand registers a command. The command's argument schema is compiled and validated, and
// its name and aliases must not clash with a registered command.
func (p *Parser) AddCommand(cmd *Command) error {
	return p.wrapError(p.addCommand(cmd))
}

// Commands returns the registered commands in registration order
func (p *Parser) Commands() []*Command {
	cmds := make([]*Command, 0, p.commands.Len())
	for pair := p.commands.Oldest(); pair != nil; pair = pair.Next() {
		cmds = append(cmds, pair.Value)
	}

	return cmds
}

// Command returns the command registered under name or alias
func (p *Parser) Command(name string) (*Command, bool) {
	cmd, ok := p.lookup[p.normalize(name)]

	return cmd, ok
}

// HasCommand reports whether name or alias is registered
func (p *Parser) HasCommand(name string) bool {
	_, ok := p.Command(name)

	return ok
}

// Match returns the command invoked by content. The first token of content must start with one of
// the prefixes and continue with a command name or alias.
func (p *Parser) Match(content string) (*Command, bool) {
	cmd, _, ok := p.match(content)

	return cmd, ok
}

// Parse matches content against the registered commands and resolves its arguments. env is handed
// to the resolvers of mention types and may be nil.
func (p *Parser) Parse(ctx context.Context, content string, env resolve.Environment) (*Invocation, error) {
	if strings.TrimSpace(content) == "" {
		return nil, p.wrapError(errs.ErrInvalidArgument.Wrap(errs.ErrEmptyInput))
	}

	cmd, prefix, ok := p.match(content)
	if !ok {
		return nil, p.wrapError(errs.ErrCommandNotFound.WithArgs(invocationToken(content)))
	}

	args, err := p.ParseArguments(ctx, content, p.schemas[cmd], env)
	if err != nil {
		return nil, err
	}

	return &Invocation{Command: cmd, Prefix: prefix, Arguments: args}, nil
}

// ParseArguments tokenizes content against s and resolves the result with the parser's resolver
// table. The first token of content is treated as the invocation and skipped; no command lookup
// takes place.
func (p *Parser) ParseArguments(ctx context.Context, content string, s *schema.Schema, env resolve.Environment) (*resolve.Arguments, error) {
	raw, err := parse.Tokenize(content, s, parse.WithQuoteStyle(p.quoteStyle))
	if err != nil {
		return nil, p.wrapError(err)
	}

	args, err := resolve.Resolve(ctx, &resolve.Options{
		Raw:    raw,
		Schema: s,
		Table:  p.table,
		Env:    env,
	})
	if err != nil {
		return nil, p.wrapError(err)
	}

	return args, nil
}

// LoadDefinitions applies a definition file: prefixes, language and quote style when set, then
// every command in file order. Loading stops at the first invalid command; commands registered
// before it are kept.
func (p *Parser) LoadDefinitions(file *config.File) error {
	return p.wrapError(p.loadDefinitions(file))
}

// SetPrefixes replaces the command prefixes. When several prefixes match, the longest wins.
func (p *Parser) SetPrefixes(prefixes ...string) error {
	return p.wrapError(p.setPrefixes(prefixes))
}

// Prefixes returns the command prefixes
func (p *Parser) Prefixes() []string {
	return append([]string(nil), p.prefixes...)
}

// SetResolverTable replaces the resolver table
func (p *Parser) SetResolverTable(table resolve.Table) error {
	if table == nil {
		return p.wrapError(errs.ErrInvalidArgument.Wrap(errs.ErrNilTable))
	}
	p.table = table

	return nil
}

// SetResolver registers fn as the resolver of typeOf
func (p *Parser) SetResolver(typeOf types.ArgumentType, fn resolve.Func) {
	p.table = p.table.With(typeOf, fn)
}

// ResolverTable returns the resolver table used by Parse
func (p *Parser) ResolverTable() resolve.Table {
	return p.table
}

// SetQuoteStyle selects the quoting rules applied to messages
func (p *Parser) SetQuoteStyle(style types.QuoteStyle) {
	p.quoteStyle = style
}

// QuoteStyle returns the quoting rules applied to messages
func (p *Parser) QuoteStyle() types.QuoteStyle {
	return p.quoteStyle
}

// SetLanguage sets the language of error messages and usage text. The closest language of the
// message bundle is used; a language without any match fails with errs.ErrLanguageUnavailable.
func (p *Parser) SetLanguage(lang language.Tag) error {
	return p.wrapError(p.setLanguage(lang))
}

// Language returns the language of error messages and usage text
func (p *Parser) Language() language.Tag {
	return p.lang
}

// SetCaseSensitiveCommands switches case-sensitive matching of command names and aliases. The
// setting is left unchanged when registered names would clash under the new rule.
func (p *Parser) SetCaseSensitiveCommands(value bool) error {
	previous := p.caseSensitive
	p.caseSensitive = value
	if err := p.rebuildLookup(); err != nil {
		p.caseSensitive = previous
		_ = p.rebuildLookup()
		return p.wrapError(err)
	}

	return nil
}

// SetRenderer replaces the usage renderer
func (p *Parser) SetRenderer(renderer Renderer) {
	p.renderer = renderer
}

// Renderer returns the usage renderer
func (p *Parser) Renderer() Renderer {
	if p.renderer == nil {
		p.renderer = NewRenderer(p)
	}

	return p.renderer
}

// Usage returns the usage line of cmd using the first prefix, such as
//
//	!ban <target> [reason...] [--silent|-s]
func (p *Parser) Usage(cmd *Command) string {
	return p.Renderer().CommandUsage(p.prefixes[0], cmd)
}

// PrintCommandUsage writes the usage line of cmd, its description and one line per argument
func (p *Parser) PrintCommandUsage(writer io.Writer, cmd *Command) {
	r := p.Renderer()
	_, _ = fmt.Fprintf(writer, "%s: %s\n", p.bundle.TL(p.lang, messages.MsgUsageKey), r.CommandUsage(p.prefixes[0], cmd))
	if cmd.Description != "" {
		_, _ = fmt.Fprintf(writer, "  %s\n", cmd.Description)
	}
	for _, name := range cmd.ArgumentNames() {
		arg, _ := cmd.Argument(name)
		_, _ = fmt.Fprintf(writer, "  %s\n", r.ArgumentUsage(name, arg))
	}
}

// PrintUsage writes the usage line of every registered command
func (p *Parser) PrintUsage(writer io.Writer) {
	r := p.Renderer()
	for _, cmd := range p.Commands() {
		line := r.CommandUsage(p.prefixes[0], cmd)
		if cmd.Description != "" {
			line += " \"" + cmd.Description + "\""
		}
		_, _ = fmt.Fprintln(writer, line)
	}
}

// Translate renders err in the parser's language. Errors which are not translatable are rendered
// with their Error method.
func (p *Parser) Translate(err error) string {
	if err == nil {
		return ""
	}

	return p.wrapError(err).Error()
}
