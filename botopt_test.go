package botopt

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/napalu/botopt/config"
	"github.com/napalu/botopt/errs"
	"github.com/napalu/botopt/resolve"
	"github.com/napalu/botopt/schema"
	"github.com/napalu/botopt/types"
)

func banCommand() *Command {
	return NewCommand(
		WithName("ban"),
		WithAliases("b"),
		WithCommandDescription("ban a member"),
		WithArgument("target", NewArg(WithType(types.User), WithDescription("member to ban"))),
		WithArgument("silent", NewArg(WithType(types.Boolean), WithShortFlag("s"), SetRequired(false), WithFlagOnly(true))),
		WithArgument("reason", NewArg(SetRequired(false), WithRest(true))))
}

func newBanParser(t *testing.T, configs ...ConfigureParserFunc) *Parser {
	t.Helper()
	p, err := NewParserWith(append([]ConfigureParserFunc{WithCommand(banCommand())}, configs...)...)
	require.NoError(t, err)

	return p
}

func TestParser_Parse(t *testing.T) {
	p := newBanParser(t)
	env := resolve.NewMapEnvironment().Add(types.MentionUser, "80351110224678912", "alice")

	inv, err := p.Parse(context.Background(), "!ban <@80351110224678912> -s spamming the channel", env)
	require.NoError(t, err)

	assert.Equal(t, "ban", inv.Command.Name)
	assert.Equal(t, "!", inv.Prefix)
	assert.Equal(t, "alice", inv.Arguments.String("target"))
	assert.True(t, inv.Arguments.Bool("silent"))
	assert.Equal(t, types.SourceShortFlag, inv.Arguments.Source("silent"))
	assert.Equal(t, "spamming the channel", inv.Arguments.String("reason"))
	assert.Equal(t, types.SourcePositional, inv.Arguments.Source("reason"))
	assert.Equal(t, []string{"target", "silent", "reason"}, inv.Arguments.Names())
}

func TestParser_ParseFollowsUsage(t *testing.T) {
	p := newBanParser(t)
	cmd, _ := p.Command("ban")
	assert.Equal(t, "!ban <target> [reason...] [--silent|-s]", p.Usage(cmd))

	inv, err := p.Parse(context.Background(), "!ban 80351110224678912 spamming the channel", nil)
	require.NoError(t, err)
	assert.False(t, inv.Arguments.Has("silent"), "positional tokens pass over a flag-only argument")
	assert.Equal(t, "spamming the channel", inv.Arguments.String("reason"))
}

func TestParser_PositionalBoolean(t *testing.T) {
	p, err := NewParserWith(WithCommand(NewCommand(
		WithName("lock"),
		WithArgument("channel", NewArg(WithType(types.Channel))),
		WithArgument("announce", NewArg(WithType(types.Boolean), SetRequired(false))))))
	require.NoError(t, err)
	cmd, _ := p.Command("lock")
	assert.Equal(t, "!lock <channel> [announce]", p.Usage(cmd))

	inv, err := p.Parse(context.Background(), "!lock 222079895583457280 false", nil)
	require.NoError(t, err)
	assert.False(t, inv.Arguments.Bool("announce"))
	assert.Equal(t, types.SourcePositional, inv.Arguments.Source("announce"))
}

func TestParser_SchemaFixedAtRegistration(t *testing.T) {
	cmd := NewCommand(WithName("ping"))
	p, err := NewParserWith(WithCommand(cmd))
	require.NoError(t, err)

	cmd.AddArgument("target", NewArg())
	cmd.AddArgument("target ", NewArg())

	inv, err := p.Parse(context.Background(), "!ping", nil)
	require.NoError(t, err, "arguments added after registration are not parsed")
	assert.Equal(t, 0, inv.Arguments.Len())

	_, err = p.Parse(context.Background(), "!ping pong", nil)
	assert.True(t, errors.Is(err, errs.ErrUnexpectedArgument))
}

func TestParser_ParseAliasAndCase(t *testing.T) {
	p := newBanParser(t)

	inv, err := p.Parse(context.Background(), "!B 80351110224678912 --silent", nil)
	require.NoError(t, err)
	assert.Equal(t, "ban", inv.Command.Name)
	assert.True(t, inv.Arguments.Bool("silent"))
	assert.False(t, inv.Arguments.Has("reason"))

	v, ok := inv.Arguments.Get("target")
	assert.True(t, ok)
	assert.Nil(t, v, "no environment resolves mentions to nil")
}

func TestParser_CaseSensitive(t *testing.T) {
	p := newBanParser(t, WithCaseSensitiveCommands(true))

	_, ok := p.Match("!BAN x")
	assert.False(t, ok)
	_, ok = p.Match("!ban x")
	assert.True(t, ok)

	require.NoError(t, p.SetCaseSensitiveCommands(false))
	_, ok = p.Match("!BAN x")
	assert.True(t, ok)
}

func TestParser_CaseSensitiveClash(t *testing.T) {
	p := NewParser()
	require.NoError(t, p.SetCaseSensitiveCommands(true))
	require.NoError(t, p.AddCommand(NewCommand(WithName("Ping"))))
	require.NoError(t, p.AddCommand(NewCommand(WithName("ping"))))

	err := p.SetCaseSensitiveCommands(false)
	assert.True(t, errors.Is(err, errs.ErrDuplicateCommand))
	assert.True(t, p.HasCommand("Ping"), "the previous lookup is restored")
	assert.True(t, p.HasCommand("ping"))
	_, ok := p.Match("!PING")
	assert.False(t, ok)
}

func TestParser_CommandNotFound(t *testing.T) {
	p := newBanParser(t)

	for _, content := range []string{"!kick alice", "ban alice", "! ban", "!"} {
		_, err := p.Parse(context.Background(), content, nil)
		assert.True(t, errors.Is(err, errs.ErrCommandNotFound), content)
	}

	_, err := p.Parse(context.Background(), "   ", nil)
	assert.True(t, errors.Is(err, errs.ErrInvalidArgument))
}

func TestParser_Prefixes(t *testing.T) {
	p := newBanParser(t, WithPrefix("!", "!!", "<@42>"))

	inv, err := p.Parse(context.Background(), "!!ban 80351110224678912", nil)
	require.NoError(t, err)
	assert.Equal(t, "!!", inv.Prefix, "the longest prefix wins")

	inv, err = p.Parse(context.Background(), "<@42>ban 80351110224678912", nil)
	require.NoError(t, err)
	assert.Equal(t, "<@42>", inv.Prefix)

	assert.Equal(t, []string{"!", "!!", "<@42>"}, p.Prefixes())

	assert.True(t, errors.Is(p.SetPrefixes(), errs.ErrEmptyPrefix))
	assert.True(t, errors.Is(p.SetPrefixes("!", ""), errs.ErrEmptyPrefix))
	assert.True(t, errors.Is(p.SetPrefixes("a b"), errs.ErrEmptyPrefix))
}

func TestParser_ResolutionErrors(t *testing.T) {
	p := newBanParser(t)

	_, err := p.Parse(context.Background(), "!ban", nil)
	assert.True(t, errors.Is(err, errs.ErrMissingArgument))
	assert.Contains(t, err.Error(), "target")

	_, err = p.Parse(context.Background(), "!ban alice", nil)
	assert.True(t, errors.Is(err, errs.ErrArgumentCoercion))
	assert.True(t, errors.Is(err, errs.ErrParseMention))

	_, err = p.Parse(context.Background(), "!ban 80351110224678912 --silent=yes", nil)
	assert.True(t, errors.Is(err, errs.ErrParseBool))

	_, err = p.Parse(context.Background(), "!ban 80351110224678912 --slient", nil)
	assert.True(t, errors.Is(err, errs.ErrUnknownFlag))
	assert.Contains(t, err.Error(), "--silent")
}

func TestParser_Language(t *testing.T) {
	p := newBanParser(t, WithLanguage(language.German))
	assert.Equal(t, language.German, p.Language())

	_, err := p.Parse(context.Background(), "!ban 80351110224678912 --silent=ja", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"ja" ist kein gültiger Wahrheitswert`)
	assert.True(t, errors.Is(err, errs.ErrParseBool), "translated errors still match their sentinel")

	_, err = NewParserWith(WithLanguage(language.Japanese))
	assert.True(t, errors.Is(err, errs.ErrLanguageUnavailable))

	require.NoError(t, p.SetLanguage(language.MustParse("fr-CA")))
	assert.Equal(t, language.French, p.Language())
}

func TestParser_Translate(t *testing.T) {
	p := newBanParser(t, WithLanguage(language.French))

	assert.Equal(t, "", p.Translate(nil))
	assert.Equal(t, "le schéma ne doit pas être nil", p.Translate(errs.ErrNilSchema))
	assert.Equal(t, "plain", p.Translate(errors.New("plain")))
}

func TestParser_CustomResolver(t *testing.T) {
	colour := func(_ context.Context, raw string, _ resolve.Environment) (any, error) {
		switch raw {
		case "red", "green", "blue":
			return strings.ToUpper(raw), nil
		}
		return nil, errors.New("unknown colour")
	}

	p, err := NewParserWith(
		WithResolver("colour", colour),
		WithCommand(NewCommand(
			WithName("paint"),
			WithArgument("colour", NewArg(WithType("colour"))))))
	require.NoError(t, err)

	inv, err := p.Parse(context.Background(), "!paint red", nil)
	require.NoError(t, err)
	assert.Equal(t, "RED", inv.Arguments.String("colour"))

	_, err = p.Parse(context.Background(), "!paint mauve", nil)
	assert.True(t, errors.Is(err, errs.ErrArgumentCoercion))
	assert.Contains(t, err.Error(), "unknown colour")
}

func TestParser_UnknownResolverType(t *testing.T) {
	p, err := NewParserWith(WithCommand(NewCommand(
		WithName("paint"),
		WithArgument("colour", NewArg(WithType("colour"))))))
	require.NoError(t, err)

	_, err = p.Parse(context.Background(), "!paint red", nil)
	assert.True(t, errors.Is(err, errs.ErrUnknownResolverType))
}

func TestParser_ResolverTable(t *testing.T) {
	p := NewParser()
	assert.True(t, errors.Is(p.SetResolverTable(nil), errs.ErrInvalidArgument))

	table := resolve.Table{types.String: resolve.String}
	require.NoError(t, p.SetResolverTable(table))
	assert.Len(t, p.ResolverTable(), 1)
}

func TestParser_ParseArguments(t *testing.T) {
	p := NewParser()
	s := schema.MustNew(
		schema.Entry{Name: "first", Type: types.Integer},
		schema.Entry{Name: "second", Type: types.Integer},
	)

	args, err := p.ParseArguments(context.Background(), "[prefix] 100 -- -13", s, nil)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"first": int64(100), "second": int64(-13)}, args.Map())

	_, err = p.ParseArguments(context.Background(), "[prefix] 1", nil, nil)
	assert.True(t, errors.Is(err, errs.ErrInvalidArgument))
}

func TestParser_ShellQuoteStyle(t *testing.T) {
	p := NewParser()
	p.SetQuoteStyle(types.QuoteShell)
	assert.Equal(t, types.QuoteShell, p.QuoteStyle())

	s := schema.MustNew(schema.Entry{Name: "text", Type: types.String})
	args, err := p.ParseArguments(context.Background(), `!say 'don'\''t'`, s, nil)
	require.NoError(t, err)
	assert.Equal(t, "don't", args.String("text"))
}

func TestParser_Cancelled(t *testing.T) {
	p := newBanParser(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.Parse(ctx, "!ban 80351110224678912", nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestParser_AddCommandErrors(t *testing.T) {
	p := newBanParser(t)

	assert.True(t, errors.Is(p.AddCommand(nil), errs.ErrNilCommand))
	assert.True(t, errors.Is(p.AddCommand(NewCommand()), errs.ErrEmptyCommandName))
	assert.True(t, errors.Is(p.AddCommand(NewCommand(WithName("two words"))), errs.ErrEmptyCommandName))
	assert.True(t, errors.Is(p.AddCommand(NewCommand(WithName("BAN"))), errs.ErrDuplicateCommand))
	assert.True(t, errors.Is(p.AddCommand(NewCommand(WithName("kick"), WithAliases("b"))), errs.ErrDuplicateCommand))
	assert.True(t, errors.Is(p.AddCommand(NewCommand(WithName("kick"), WithAliases("k", "K"))), errs.ErrDuplicateCommand))
	assert.False(t, p.HasCommand("kick"), "a rejected command registers none of its names")

	err := p.AddCommand(NewCommand(
		WithName("flags"),
		WithArgument("--verbose", NewArg(WithType(types.Boolean), SetRequired(false)))))
	assert.True(t, errors.Is(err, errs.ErrInvalidArgumentName))

	err = p.AddCommand(NewCommand(
		WithName("bad"),
		WithArgument("a", NewArg(WithShortFlag("x"), SetRequired(false))),
		WithArgument("b", NewArg(WithShortFlag("x"), SetRequired(false)))))
	assert.True(t, errors.Is(err, errs.ErrDuplicateShortFlag))
}

func TestParser_Commands(t *testing.T) {
	p := newBanParser(t)
	require.NoError(t, p.AddCommand(NewCommand(WithName("kick"))))

	names := make([]string, 0)
	for _, cmd := range p.Commands() {
		names = append(names, cmd.Name)
	}
	assert.Equal(t, []string{"ban", "kick"}, names)

	cmd, ok := p.Command("B")
	require.True(t, ok)
	assert.Equal(t, "ban", cmd.Name)
}

func TestParser_LoadDefinitions(t *testing.T) {
	f, err := config.Parse([]byte(`
prefixes: ["?"]
language: de
quoteStyle: shell
commands:
  - name: remind
    aliases: [r]
    arguments:
      - name: in
        type: duration
      - name: what
        type: string
        required: false
        rest: true
  - name: roll
    arguments:
      - name: sides
        type: integer
        default: "6"
`), config.FormatYAML)
	require.NoError(t, err)

	p := NewParser()
	require.NoError(t, p.LoadDefinitions(f))
	assert.Equal(t, []string{"?"}, p.Prefixes())
	assert.Equal(t, language.German, p.Language())
	assert.Equal(t, types.QuoteShell, p.QuoteStyle())

	inv, err := p.Parse(context.Background(), `?r 90m "stretch your legs"`, nil)
	require.NoError(t, err)
	assert.Equal(t, 90*time.Minute, inv.Arguments.Duration("in"))
	assert.Equal(t, "stretch your legs", inv.Arguments.String("what"))

	inv, err = p.Parse(context.Background(), "?roll", nil)
	require.NoError(t, err)
	assert.Equal(t, int64(6), inv.Arguments.Int("sides"))
}

func TestParser_LoadDefinitionsErrors(t *testing.T) {
	tests := []struct {
		name string
		file *config.File
		want error
	}{
		{name: "nil file", file: nil, want: errs.ErrInvalidArgument},
		{name: "unknown language", file: &config.File{Language: "!!"}, want: errs.ErrLanguageUnavailable},
		{name: "unsupported language", file: &config.File{Language: "ja"}, want: errs.ErrLanguageUnavailable},
		{name: "quote style", file: &config.File{QuoteStyle: "fancy"}, want: errs.ErrInvalidQuoteStyle},
		{name: "empty prefix", file: &config.File{Prefixes: []string{""}}, want: errs.ErrEmptyPrefix},
		{
			name: "duplicate argument",
			file: &config.File{Commands: []config.CommandDef{{
				Name:      "x",
				Arguments: []config.ArgumentDef{{Name: "a", Type: "string"}, {Name: "a", Type: "string"}},
			}}},
			want: errs.ErrDuplicateArgument,
		},
		{
			name: "duplicate command",
			file: &config.File{Commands: []config.CommandDef{{Name: "x"}, {Name: "X"}}},
			want: errs.ErrDuplicateCommand,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewParser().LoadDefinitions(tt.file)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}

	err := NewParser().LoadDefinitions(&config.File{Commands: []config.CommandDef{{Name: "x"}, {Name: "X"}}})
	assert.True(t, errors.Is(err, errs.ErrInvalidDefinition))
	assert.Contains(t, err.Error(), `"X"`)
}

func TestParser_PrintUsage(t *testing.T) {
	p := newBanParser(t)
	require.NoError(t, p.AddCommand(NewCommand(WithName("ping"))))

	var buf bytes.Buffer
	p.PrintUsage(&buf)
	assert.Equal(t, "!ban <target> [reason...] [--silent|-s] \"ban a member\"\n!ping\n", buf.String())
}

func TestParser_PrintCommandUsage(t *testing.T) {
	p := newBanParser(t, WithLanguage(language.German))
	cmd, _ := p.Command("ban")

	var buf bytes.Buffer
	p.PrintCommandUsage(&buf, cmd)
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "Verwendung: !ban <target> [reason...] [--silent|-s]", lines[0])
	assert.Equal(t, "  ban a member", lines[1])
	assert.Equal(t, `  --target "member to ban" (erforderlich)`, lines[2])
	assert.Equal(t, `  --silent oder -s (optional)`, lines[3])
	assert.Equal(t, `  --reason (optional)`, lines[4])
}

func TestParser_Concurrent(t *testing.T) {
	p := newBanParser(t)
	done := make(chan error, 16)
	for i := 0; i < cap(done); i++ {
		go func() {
			_, err := p.Parse(context.Background(), "!ban 80351110224678912 -s be nice", nil)
			done <- err
		}()
	}
	for i := 0; i < cap(done); i++ {
		assert.NoError(t, <-done)
	}
}
