// Package schema describes the arguments a command expects. A Schema is validated once, when it
// is built, and is immutable afterwards so it can be shared by concurrent parses.
package schema

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/iancoleman/strcase"
	"github.com/napalu/botopt/errs"
	"github.com/napalu/botopt/types"
)

// Entry describes one expected argument. The zero value of Optional makes an entry required.
type Entry struct {
	Name        string
	Type        types.ArgumentType
	Optional    bool
	Short       string
	Default     string
	Rest        bool // the last entry collects surplus positional tokens
	FlagOnly    bool // bound by --name or its short alias only, never by position
	Description string
}

// Required reports whether the absence of a value is an error
func (e Entry) Required() bool {
	return !e.Optional
}

// ShortRune returns the short flag alias as a rune, or utf8.RuneError when the entry has none
func (e Entry) ShortRune() rune {
	if e.Short == "" {
		return utf8.RuneError
	}
	r, _ := utf8.DecodeRuneInString(e.Short)

	return r
}

// Schema is an ordered, validated list of entries
type Schema struct {
	entries []Entry
	byName  map[string]int
	byCamel map[string]int
	byShort map[rune]int
}

// New validates entries and returns the resulting Schema. Names must be non-empty and unique
// (also after kebab/camel normalisation) and usable as a long flag: no leading '-', no '=' and no
// whitespace. Short aliases must be a single rune which is not a digit, '-', '=' or whitespace
// and unique, every entry needs a type, only the last entry may be Rest and then only of type
// string and not FlagOnly, and a required entry cannot carry a default.
func New(entries ...Entry) (*Schema, error) {
	s := &Schema{
		entries: make([]Entry, len(entries)),
		byName:  make(map[string]int, len(entries)),
		byCamel: make(map[string]int, len(entries)),
		byShort: make(map[rune]int),
	}
	copy(s.entries, entries)

	for i, e := range s.entries {
		if err := s.add(i, e); err != nil {
			return nil, errs.ErrInvalidSchema.Wrap(err)
		}
	}

	return s, nil
}

// MustNew is like New but panics when the entries are invalid
func MustNew(entries ...Entry) *Schema {
	s, err := New(entries...)
	if err != nil {
		panic(err)
	}

	return s
}

// Len returns the number of entries
func (s *Schema) Len() int {
	return len(s.entries)
}

// At returns the entry at index i
func (s *Schema) At(i int) Entry {
	return s.entries[i]
}

// Entries returns a copy of the entries in declaration order
func (s *Schema) Entries() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)

	return out
}

// IndexOf returns the index of the entry called name
func (s *Schema) IndexOf(name string) (int, bool) {
	i, ok := s.byName[name]

	return i, ok
}

// IndexOfLong returns the index of the entry matched by a long flag name. An exact match wins;
// otherwise names are compared in lower camel case so that --dry-run and --dry_run bind dryRun.
func (s *Schema) IndexOfLong(flag string) (int, bool) {
	if i, ok := s.byName[flag]; ok {
		return i, true
	}
	if flag == "" {
		return 0, false
	}
	i, ok := s.byCamel[strcase.ToLowerCamel(flag)]

	return i, ok
}

// IndexOfShort returns the index of the entry whose short alias is r
func (s *Schema) IndexOfShort(r rune) (int, bool) {
	i, ok := s.byShort[r]

	return i, ok
}

// Names returns the entry names in declaration order
func (s *Schema) Names() []string {
	names := make([]string, len(s.entries))
	for i, e := range s.entries {
		names[i] = e.Name
	}

	return names
}

func (s *Schema) add(i int, e Entry) error {
	if e.Name == "" {
		return errs.ErrEmptyArgumentName.WithArgs(i)
	}
	if !validName(e.Name) {
		return errs.ErrInvalidArgumentName.WithArgs(e.Name)
	}
	if _, exists := s.byName[e.Name]; exists {
		return errs.ErrDuplicateArgument.WithArgs(e.Name)
	}
	camel := strcase.ToLowerCamel(e.Name)
	if _, exists := s.byCamel[camel]; exists {
		return errs.ErrDuplicateArgument.WithArgs(e.Name)
	}
	if e.Type == "" {
		return errs.ErrEmptyArgumentType.WithArgs(e.Name)
	}
	if e.Rest && (i != len(s.entries)-1 || e.Type != types.String) {
		return errs.ErrMisplacedRest.WithArgs(e.Name)
	}
	if e.Rest && e.FlagOnly {
		return errs.ErrFlagOnlyRest.WithArgs(e.Name)
	}
	if e.Required() && e.Default != "" {
		return errs.ErrRequiredWithDefault.WithArgs(e.Name)
	}

	if e.Short != "" {
		if !validShort(e.Short) {
			return errs.ErrInvalidShortFlag.WithArgs(e.Name, e.Short)
		}
		r := e.ShortRune()
		if other, exists := s.byShort[r]; exists {
			return errs.ErrDuplicateShortFlag.WithArgs(e.Short, s.entries[other].Name, e.Name)
		}
		s.byShort[r] = i
	}

	s.byName[e.Name] = i
	s.byCamel[camel] = i

	return nil
}

func validName(name string) bool {
	return name[0] != '-' && strings.IndexFunc(name, func(r rune) bool {
		return r == '=' || unicode.IsSpace(r)
	}) < 0
}

func validShort(short string) bool {
	if utf8.RuneCountInString(short) != 1 {
		return false
	}
	r, _ := utf8.DecodeRuneInString(short)

	return r != utf8.RuneError && r != '-' && r != '=' && !unicode.IsDigit(r) && !unicode.IsSpace(r)
}
