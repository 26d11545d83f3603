package botopt

import (
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/napalu/botopt/errs"
	"github.com/napalu/botopt/schema"
)

// AddArgument appends an argument to the command. Adding a name twice replaces the argument but
// keeps its original position.
func (c *Command) AddArgument(name string, argument *Argument) {
	c.ensureInit()
	c.arguments.Set(name, argument)
	c.schema = nil
}

// Argument returns the argument registered under name
func (c *Command) Argument(name string) (*Argument, bool) {
	if c.arguments == nil {
		return nil, false
	}

	return c.arguments.Get(name)
}

// ArgumentNames returns the argument names in declaration order
func (c *Command) ArgumentNames() []string {
	if c.arguments == nil {
		return nil
	}
	names := make([]string, 0, c.arguments.Len())
	for pair := c.arguments.Oldest(); pair != nil; pair = pair.Next() {
		names = append(names, pair.Key)
	}

	return names
}

// Names returns the command name followed by its aliases
func (c *Command) Names() []string {
	return append([]string{c.Name}, c.Aliases...)
}

// Schema compiles the command's arguments into a schema. The result is cached until the
// arguments change.
func (c *Command) Schema() (*schema.Schema, error) {
	if c.schema != nil {
		return c.schema, nil
	}

	c.ensureInit()
	entries := make([]schema.Entry, 0, c.arguments.Len())
	for pair := c.arguments.Oldest(); pair != nil; pair = pair.Next() {
		if pair.Value == nil {
			return nil, errs.ErrInvalidSchema.Wrap(errs.ErrEmptyArgumentType.WithArgs(pair.Key))
		}
		entries = append(entries, pair.Value.entry(pair.Key))
	}

	s, err := schema.New(entries...)
	if err != nil {
		return nil, err
	}
	c.schema = s

	return s, nil
}

// String returns the command name and its aliases
func (c *Command) String() string {
	if len(c.Aliases) == 0 {
		return c.Name
	}

	return c.Name + " (" + strings.Join(c.Aliases, ", ") + ")"
}

func (c *Command) ensureInit() {
	if c.arguments == nil {
		c.arguments = orderedmap.New[string, *Argument]()
	}
}
