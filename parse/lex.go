package parse

import (
	"strings"
	"unicode"

	"github.com/google/shlex"
	"github.com/napalu/botopt/errs"
	"github.com/napalu/botopt/types"
)

// Token is one unit of a command string after quote-aware splitting. Quoted is true when the
// whole token came from a quoted span; quoted tokens are never treated as flags.
type Token struct {
	Text   string
	Quoted bool
}

// Split splits input into tokens according to style
func Split(input string, style types.QuoteStyle) ([]Token, error) {
	if style == types.QuoteShell {
		return splitShell(input)
	}

	return splitChat(input), nil
}

// Texts returns the text of every token
func Texts(tokens []Token) []string {
	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[i] = t.Text
	}

	return out
}

func splitShell(input string) ([]Token, error) {
	words, err := shlex.Split(input)
	if err != nil {
		return nil, errs.ErrInvalidArgument.Wrap(errs.ErrShellSplit.Wrap(err))
	}

	tokens := make([]Token, len(words))
	for i, w := range words {
		tokens[i] = Token{Text: w}
	}

	return tokens, nil
}

// splitChat splits on whitespace outside quoted spans. '"', '\'' and '`' are balanced
// independently: a span opened by one of them ends at the next occurrence of the same
// character. A span only opens at the start of a token, or directly after the first '=' of a
// flag token (--reason="some text"). A quote without a closing partner is literal text.
func splitChat(input string) []Token {
	var (
		tokens  []Token
		buf     strings.Builder
		inToken bool
		runes   = []rune(input)
	)

	emit := func() {
		tokens = append(tokens, Token{Text: buf.String()})
		buf.Reset()
		inToken = false
	}

	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if unicode.IsSpace(r) {
			if inToken {
				emit()
			}
			continue
		}

		if isQuote(r) && (!inToken || opensFlagValue(buf.String())) {
			if end := indexRune(runes, i+1, r); end >= 0 {
				span := string(runes[i+1 : end])
				if inToken {
					buf.WriteString(span)
					emit()
				} else {
					tokens = append(tokens, Token{Text: span, Quoted: true})
				}
				i = end
				continue
			}
		}

		buf.WriteRune(r)
		inToken = true
	}

	if inToken {
		emit()
	}

	return tokens
}

func isQuote(r rune) bool {
	return r == '"' || r == '\'' || r == '`'
}

// opensFlagValue reports whether s is a flag token whose only '=' is its last character
func opensFlagValue(s string) bool {
	return strings.HasPrefix(s, "-") && strings.IndexByte(s, '=') == len(s)-1
}

func indexRune(runes []rune, from int, r rune) int {
	for j := from; j < len(runes); j++ {
		if runes[j] == r {
			return j
		}
	}

	return -1
}
