package botopt

import (
	"github.com/napalu/botopt/errs"
	"github.com/napalu/botopt/types"
)

// NewArg convenience initialization method to configure arguments. An argument is a required
// string unless configured otherwise. Configuration errors are reported when the owning command
// is added to a Parser; use Set to observe them immediately.
func NewArg(configs ...ConfigureArgumentFunc) *Argument {
	argument := &Argument{
		TypeOf:   types.String,
		Required: true,
	}
	var err error
	for _, config := range configs {
		config(argument, &err)
	}

	return argument
}

// Set configures the Argument instance with the provided ConfigureArgumentFunc(s),
// and returns an error if a configuration results in an error.
//
// Usage example:
//
//	arg := &Argument{}
//	err := arg.Set(
//	    WithDescription("how long the ban lasts"),
//	    WithType(types.Duration),
//	    SetRequired(false),
//	)
//	if err != nil {
//	    // handle error
//	}
func (a *Argument) Set(configs ...ConfigureArgumentFunc) error {
	a.ensureInit()
	var err error
	for _, config := range configs {
		config(a, &err)
		if err != nil {
			return err
		}
	}

	return nil
}

// WithShortFlag sets the single character alias which binds the argument with -c or -c=value.
// Boolean arguments with a short flag may be grouped POSIX-style: -abc.
func WithShortFlag(shortFlag string) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.Short = shortFlag
	}
}

// WithDescription the description will be used in usage output presented to the user
func WithDescription(description string) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.Description = description
	}
}

// WithType sets the type which selects the resolver of the argument. Built-in types are listed in
// package types; any other name must be registered with WithResolver.
func WithType(typeOf types.ArgumentType) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		if typeOf == "" {
			*err = errs.ErrEmptyArgumentType.WithArgs("")
			return
		}
		argument.TypeOf = typeOf
	}
}

// SetRequired when true, the argument must be supplied in the message
func SetRequired(required bool) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.Required = required
	}
}

// WithDefaultValue sets the value resolved when an optional argument is not supplied. Setting a
// default also makes the argument optional.
func WithDefaultValue(defaultValue string) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.DefaultValue = defaultValue
		if defaultValue != "" {
			argument.Required = false
		}
	}
}

// WithRest makes the argument collect every surplus positional token, joined with a space
func WithRest(rest bool) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.Rest = rest
	}
}

// WithFlagOnly makes the argument reachable only as --name or -s. Positional tokens pass over it,
// so `!ban alice spam` leaves a flag-only --silent unset instead of binding "spam" to it.
func WithFlagOnly(flagOnly bool) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.FlagOnly = flagOnly
	}
}
