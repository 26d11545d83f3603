package parse

import "slices"

// State walks the tokens of a command string. Grouped short flags are expanded in place by
// splicing their single-flag tokens in after the current position.
type State struct {
	pos    int
	tokens []Token
}

// NewState returns a State positioned before the first token
func NewState(tokens []Token) *State {
	return &State{pos: -1, tokens: tokens}
}

// Pos returns the index of the current token, -1 before the first Advance
func (s *State) Pos() int {
	return s.pos
}

// Advance moves to the next token and reports whether there was one
func (s *State) Advance() bool {
	if s.pos+1 >= len(s.tokens) {
		return false
	}
	s.pos++

	return true
}

// CurrentToken returns the current token, or the zero Token outside the token list
func (s *State) CurrentToken() Token {
	if s.pos < 0 || s.pos >= len(s.tokens) {
		return Token{}
	}

	return s.tokens[s.pos]
}

// InsertTokensAt splices tokens in at pos, clamped to the token list
func (s *State) InsertTokensAt(pos int, tokens ...Token) {
	pos = min(max(pos, 0), len(s.tokens))
	s.tokens = slices.Insert(s.tokens, pos, tokens...)
}
