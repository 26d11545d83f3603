package parse

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/ef-ds/deque"
	"github.com/napalu/botopt/errs"
	"github.com/napalu/botopt/internal/util"
	"github.com/napalu/botopt/schema"
	"github.com/napalu/botopt/types"
)

// endOfFlags ends flag parsing: every later token is positional
const endOfFlags = "--"

// maxSuggestionDistance bounds the edit distance of "did you mean" suggestions
const maxSuggestionDistance = 2

// RawArgument is the raw value bound to one schema slot
type RawArgument struct {
	Value  string
	Set    bool
	Source types.Source
}

// RawArguments is aligned to schema indices and ends at the last slot which received a value
type RawArguments []RawArgument

// Values returns the bound values in schema order
func (r RawArguments) Values() []string {
	out := make([]string, 0, len(r))
	for _, a := range r {
		if a.Set {
			out = append(out, a.Value)
		}
	}

	return out
}

// At returns the raw argument for schema index i
func (r RawArguments) At(i int) (RawArgument, bool) {
	if i < 0 || i >= len(r) || !r[i].Set {
		return RawArgument{}, false
	}

	return r[i], true
}

// Option configures Tokenize
type Option func(*options)

type options struct {
	style types.QuoteStyle
}

// WithQuoteStyle selects the quoting rules (QuoteChat by default)
func WithQuoteStyle(style types.QuoteStyle) Option {
	return func(o *options) {
		o.style = style
	}
}

// Tokenize splits commandString into raw arguments aligned to s. The first whitespace-delimited
// segment (the invocation prefix) is dropped. Flags (--name, --name=value, -n, -n=value and
// grouped boolean shorts such as -abc) are bound first; a flag without a value binds "true" and a
// repeated flag keeps its last value. Remaining tokens then fill the unbound slots in schema
// order, passing over FlagOnly entries. Once every slot is bound, surplus tokens are joined into
// a trailing Rest entry filled by position, or rejected. The join uses a single space, so runs of
// whitespace between the collected tokens are not preserved.
func Tokenize(commandString string, s *schema.Schema, opts ...Option) (RawArguments, error) {
	if s == nil {
		return nil, errs.ErrInvalidArgument.Wrap(errs.ErrNilSchema)
	}

	trimmed := strings.TrimSpace(commandString)
	if trimmed == "" {
		return nil, errs.ErrInvalidArgument.Wrap(errs.ErrEmptyInput)
	}

	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	tokens, err := Split(stripPrefix(trimmed), o.style)
	if err != nil {
		return nil, err
	}

	b := newBinder(s)
	state := NewState(tokens)
	flagsDone := false
	for state.Advance() {
		tok := state.CurrentToken()
		if !flagsDone && !tok.Quoted {
			if tok.Text == endOfFlags {
				flagsDone = true
				continue
			}
			if isFlag(tok.Text) {
				if err := b.bindFlag(state, tok.Text); err != nil {
					return nil, err
				}
				continue
			}
		}
		b.pending.PushBack(tok.Text)
	}

	return b.fill()
}

// stripPrefix drops the first whitespace-delimited segment of an already trimmed string
func stripPrefix(s string) string {
	i := strings.IndexFunc(s, unicode.IsSpace)
	if i < 0 {
		return ""
	}

	return s[i:]
}

func isFlag(text string) bool {
	return len(text) > 1 && text[0] == '-'
}

type binder struct {
	schema  *schema.Schema
	slots   []RawArgument
	pending *deque.Deque
}

func newBinder(s *schema.Schema) *binder {
	return &binder{
		schema:  s,
		slots:   make([]RawArgument, s.Len()),
		pending: deque.New(),
	}
}

func (b *binder) bindFlag(state *State, text string) error {
	if strings.HasPrefix(text, "--") {
		name, value, hasValue := strings.Cut(text[2:], "=")
		idx, ok := b.schema.IndexOfLong(name)
		if !ok {
			return b.unknownFlag("--" + name)
		}
		b.bind(idx, flagValue(value, hasValue), types.SourceLongFlag)
		return nil
	}

	name, value, hasValue := strings.Cut(text[1:], "=")
	if utf8.RuneCountInString(name) == 1 {
		r, _ := utf8.DecodeRuneInString(name)
		idx, ok := b.schema.IndexOfShort(r)
		if !ok {
			return b.unknownFlag("-" + name)
		}
		b.bind(idx, flagValue(value, hasValue), types.SourceShortFlag)
		return nil
	}

	if !hasValue && b.groupable(name) {
		expanded := make([]Token, 0, len(name))
		for _, r := range name {
			expanded = append(expanded, Token{Text: "-" + string(r)})
		}
		state.InsertTokensAt(state.Pos()+1, expanded...)
		return nil
	}

	return b.unknownFlag("-" + name)
}

// groupable reports whether every rune of name is the short alias of a boolean entry
func (b *binder) groupable(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		idx, ok := b.schema.IndexOfShort(r)
		if !ok || b.schema.At(idx).Type != types.Boolean {
			return false
		}
	}

	return true
}

func (b *binder) bind(idx int, value string, source types.Source) {
	b.slots[idx] = RawArgument{Value: value, Set: true, Source: source}
}

func (b *binder) fill() (RawArguments, error) {
	rest := -1
	if n := b.schema.Len(); n > 0 && b.schema.At(n-1).Rest {
		rest = n - 1
	}

	next := 0
	for b.pending.Len() > 0 {
		v, _ := b.pending.PopFront()
		text := v.(string)

		for next < len(b.slots) && (b.slots[next].Set || b.schema.At(next).FlagOnly) {
			next++
		}
		if next < len(b.slots) {
			b.bind(next, text, types.SourcePositional)
			continue
		}

		if rest >= 0 && b.slots[rest].Source == types.SourcePositional {
			b.slots[rest].Value += " " + text
			continue
		}

		return nil, errs.ErrUnexpectedArgument.WithArgs(text)
	}

	last := -1
	for i, slot := range b.slots {
		if slot.Set {
			last = i
		}
	}

	return RawArguments(b.slots[:last+1]), nil
}

func (b *binder) unknownFlag(flag string) error {
	candidates := make([]string, b.schema.Len())
	for i, name := range b.schema.Names() {
		candidates[i] = "--" + name
	}

	if suggestion, ok := util.Suggest(flag, candidates, maxSuggestionDistance); ok {
		return errs.ErrUnknownFlag.WithArgs(flag).Wrap(errs.ErrDidYouMean.WithArgs(suggestion))
	}

	return errs.ErrUnknownFlag.WithArgs(flag)
}

func flagValue(value string, hasValue bool) string {
	if !hasValue {
		return "true"
	}

	return value
}
