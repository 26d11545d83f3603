package botopt

import (
	"strings"
	"unicode"

	"golang.org/x/text/language"

	"github.com/napalu/botopt/config"
	"github.com/napalu/botopt/errs"
	"github.com/napalu/botopt/i18n"
	"github.com/napalu/botopt/internal/util"
	"github.com/napalu/botopt/types"
)

func (p *Parser) addCommand(cmd *Command) error {
	if cmd == nil {
		return errs.ErrNilCommand
	}
	if strings.TrimSpace(cmd.Name) == "" {
		return errs.ErrEmptyCommandName
	}
	s, err := cmd.Schema()
	if err != nil {
		return err
	}

	keys, err := p.commandKeys(cmd, p.lookup)
	if err != nil {
		return err
	}
	for _, key := range keys {
		p.lookup[key] = cmd
	}
	p.commands.Set(cmd.Name, cmd)
	p.schemas[cmd] = s

	return nil
}

// commandKeys returns the lookup keys of cmd's name and aliases, failing when a key is empty,
// contains whitespace or is already taken
func (p *Parser) commandKeys(cmd *Command, taken map[string]*Command) ([]string, error) {
	names := cmd.Names()
	keys := make([]string, 0, len(names))
	for _, name := range names {
		if name == "" || strings.IndexFunc(name, unicode.IsSpace) >= 0 {
			return nil, errs.ErrEmptyCommandName
		}
		key := p.normalize(name)
		if _, exists := taken[key]; exists || util.Contains(keys, key) {
			return nil, errs.ErrDuplicateCommand.WithArgs(name)
		}
		keys = append(keys, key)
	}

	return keys, nil
}

func (p *Parser) rebuildLookup() error {
	lookup := make(map[string]*Command, len(p.lookup))
	for pair := p.commands.Oldest(); pair != nil; pair = pair.Next() {
		keys, err := p.commandKeys(pair.Value, lookup)
		if err != nil {
			return err
		}
		for _, key := range keys {
			lookup[key] = pair.Value
		}
	}
	p.lookup = lookup

	return nil
}

func (p *Parser) normalize(name string) string {
	if p.caseSensitive {
		return name
	}

	return strings.ToLower(name)
}

// match splits the invocation token of content into prefix and command name
func (p *Parser) match(content string) (*Command, string, bool) {
	token := invocationToken(content)
	prefix := p.matchPrefix(token)
	if prefix == "" {
		return nil, "", false
	}

	cmd, ok := p.lookup[p.normalize(token[len(prefix):])]
	if !ok {
		return nil, "", false
	}

	return cmd, prefix, true
}

func (p *Parser) matchPrefix(token string) string {
	best := ""
	for _, prefix := range p.prefixes {
		if len(prefix) > len(best) && len(token) > len(prefix) && strings.HasPrefix(token, prefix) {
			best = prefix
		}
	}

	return best
}

func (p *Parser) setPrefixes(prefixes []string) error {
	if len(prefixes) == 0 {
		return errs.ErrEmptyPrefix
	}
	for _, prefix := range prefixes {
		if prefix == "" || strings.IndexFunc(prefix, unicode.IsSpace) >= 0 {
			return errs.ErrEmptyPrefix
		}
	}
	p.prefixes = append([]string(nil), prefixes...)

	return nil
}

func (p *Parser) setLanguage(lang language.Tag) error {
	matched, ok := p.bundle.Match(lang)
	if !ok {
		return errs.ErrLanguageUnavailable.WithArgs(lang.String())
	}
	p.lang = matched

	return nil
}

func (p *Parser) loadDefinitions(file *config.File) error {
	if file == nil {
		return errs.ErrInvalidArgument
	}

	if len(file.Prefixes) > 0 {
		if err := p.setPrefixes(file.Prefixes); err != nil {
			return err
		}
	}
	if file.Language != "" {
		lang, err := language.Parse(file.Language)
		if err != nil {
			return errs.ErrLanguageUnavailable.WithArgs(file.Language)
		}
		if err := p.setLanguage(lang); err != nil {
			return err
		}
	}
	if file.QuoteStyle != "" {
		style, ok := types.ParseQuoteStyle(file.QuoteStyle)
		if !ok {
			return errs.ErrInvalidQuoteStyle.WithArgs(file.QuoteStyle)
		}
		p.quoteStyle = style
	}

	for _, def := range file.Commands {
		cmd, err := commandFromDefinition(def)
		if err == nil {
			err = p.addCommand(cmd)
		}
		if err != nil {
			return errs.ErrInvalidDefinition.WithArgs(def.Name).Wrap(err)
		}
	}

	return nil
}

func commandFromDefinition(def config.CommandDef) (*Command, error) {
	cmd := NewCommand(
		WithName(def.Name),
		WithAliases(def.Aliases...),
		WithCommandDescription(def.Description))

	for _, a := range def.Arguments {
		if _, exists := cmd.Argument(a.Name); exists {
			return nil, errs.ErrInvalidSchema.Wrap(errs.ErrDuplicateArgument.WithArgs(a.Name))
		}
		cmd.AddArgument(a.Name, &Argument{
			Description:  a.Description,
			TypeOf:       types.ArgumentType(a.Type),
			Required:     a.IsRequired(),
			Short:        a.Short,
			DefaultValue: a.Default,
			Rest:         a.Rest,
			FlagOnly:     a.FlagOnly,
		})
	}

	return cmd, nil
}

func (p *Parser) wrapError(err error) error {
	if err == nil {
		return nil
	}

	return errs.WithProvider(err, i18n.NewLocalizedMessageProvider(p.bundle, p.lang))
}

// invocationToken returns the first whitespace-delimited segment of content
func invocationToken(content string) string {
	content = strings.TrimSpace(content)
	if i := strings.IndexFunc(content, unicode.IsSpace); i >= 0 {
		return content[:i]
	}

	return content
}
