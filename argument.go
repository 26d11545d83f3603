package botopt

import (
	"fmt"
	"strings"

	"github.com/napalu/botopt/schema"
	"github.com/napalu/botopt/types"
)

// NewArgument convenience initialization method to describe arguments. Alternatively, use NewArg to
// configure Argument using option functions.
func NewArgument(shortFlag string, description string, typeOf types.ArgumentType, required bool, defaultValue string) *Argument {
	return &Argument{
		Description:  description,
		TypeOf:       typeOf,
		Required:     required,
		Short:        shortFlag,
		DefaultValue: defaultValue,
	}
}

// String returns a string representation of the Argument instance
func (a *Argument) String() string {
	return strings.TrimLeft(fmt.Sprintf("%s %s %s", a.short(), a.description(), a.required()), " ")
}

func (a *Argument) ensureInit() {
	if a.TypeOf == "" {
		a.TypeOf = types.String
	}
}

func (a *Argument) entry(name string) schema.Entry {
	return schema.Entry{
		Name:        name,
		Type:        a.TypeOf,
		Optional:    !a.Required,
		Short:       a.Short,
		Default:     a.DefaultValue,
		Rest:        a.Rest,
		FlagOnly:    a.FlagOnly,
		Description: a.Description,
	}
}

func (a *Argument) isFlag() bool {
	return a.FlagOnly
}

func (a *Argument) short() string {
	if a.Short == "" {
		return ""
	}

	return "or -" + a.Short
}

func (a *Argument) required() string {
	if a.Required {
		return "(required)"
	}

	return "(optional)"
}

func (a *Argument) description() string {
	if a.DefaultValue != "" {
		return fmt.Sprintf("%q (defaults to: %s)", a.Description, a.DefaultValue)
	}

	return fmt.Sprintf("%q", a.Description)
}
