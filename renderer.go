package botopt

import (
	"fmt"
	"strings"

	"github.com/napalu/botopt/internal/messages"
	"github.com/napalu/botopt/types"
)

type DefaultRenderer struct {
	parser *Parser
}

func NewRenderer(parser *Parser) *DefaultRenderer {
	return &DefaultRenderer{parser: parser}
}

// ArgumentName returns the name of the argument to display in usage messages
func (r *DefaultRenderer) ArgumentName(name string, a *Argument) string {
	return name
}

// ArgumentUsage generates a usage string for a given argument.
// The usage string includes the flag name, short name (if available), description,
// default value (if any), and whether the argument is required or optional.
func (r *DefaultRenderer) ArgumentUsage(name string, a *Argument) string {
	usage := "--" + r.ArgumentName(name, a)
	if a.Short != "" {
		usage += " " + r.t(messages.MsgOrKey) + " -" + a.Short
	}

	if a.Description != "" {
		usage += " \"" + a.Description + "\""
	}

	if a.DefaultValue != "" {
		usage += fmt.Sprintf(" (%s: %s)", r.t(messages.MsgDefaultsToKey), a.DefaultValue)
	}

	requiredOrOptional := r.t(messages.MsgOptionalKey)
	if a.Required {
		requiredOrOptional = r.t(messages.MsgRequiredKey)
	}

	return usage + " (" + requiredOrOptional + ")"
}

// CommandUsage generates the usage line of a command: positional arguments in declaration order
// (<required>, [optional], trailing ... for a rest argument) followed by flag-only arguments.
// A flag-only argument which is not a boolean shows the type of its value: [--days|-d=<integer>].
func (r *DefaultRenderer) CommandUsage(prefix string, c *Command) string {
	parts := []string{prefix + c.Name}
	var flags []string
	for _, name := range c.ArgumentNames() {
		a, _ := c.Argument(name)
		if a == nil {
			continue
		}

		label := r.ArgumentName(name, a)
		if a.isFlag() {
			label = "--" + label
			if a.Short != "" {
				label += "|-" + a.Short
			}
			if a.TypeOf != types.Boolean {
				label += "=<" + a.TypeOf.String() + ">"
			}
			if !a.Required {
				label = "[" + label + "]"
			}
			flags = append(flags, label)
			continue
		}

		if a.Rest {
			label += "..."
		}
		if a.Required {
			label = "<" + label + ">"
		} else {
			label = "[" + label + "]"
		}
		parts = append(parts, label)
	}

	return strings.Join(append(parts, flags...), " ")
}

func (r *DefaultRenderer) t(key string) string {
	return r.parser.bundle.TL(r.parser.lang, key)
}
