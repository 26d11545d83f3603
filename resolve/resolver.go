// Package resolve turns the raw tokens produced by package parse into typed values.
//
// Resolution is a pure function of its Options: the resolver table is supplied by the caller,
// arguments are resolved strictly in schema order, and the first failure aborts the call
// without a partial result.
package resolve

import (
	"context"

	"github.com/napalu/botopt/errs"
	"github.com/napalu/botopt/parse"
	"github.com/napalu/botopt/schema"
	"github.com/napalu/botopt/types"
)

// Options bundles the inputs of Resolve. Env is passed through to resolvers and may be nil.
type Options struct {
	Raw    parse.RawArguments
	Schema *schema.Schema
	Table  Table
	Env    Environment
}

// Resolve coerces opts.Raw into typed values.
//
// An entry with a raw value is resolved with the table's Func for its type. A required entry
// without one fails with errs.ErrMissingArgument; an optional entry resolves its Default when
// it has one and is omitted otherwise. Every schema type must be present in the table, which is
// checked before any resolver runs.
func Resolve(ctx context.Context, opts *Options) (*Arguments, error) {
	if err := validate(opts); err != nil {
		return nil, err
	}
	if ctx == nil {
		ctx = context.Background()
	}

	n := opts.Schema.Len()
	funcs := make([]Func, n)
	for i := 0; i < n; i++ {
		e := opts.Schema.At(i)
		fn, ok := opts.Table.Lookup(e.Type)
		if !ok {
			return nil, errs.ErrUnknownResolverType.WithArgs(string(e.Type))
		}
		funcs[i] = fn
	}

	args := newArguments()
	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		e := opts.Schema.At(i)
		raw, source, ok := rawValue(opts.Raw, i, e)
		if !ok {
			if e.Required() {
				return nil, errs.ErrMissingArgument.WithArgs(e.Name)
			}
			continue
		}

		v, err := funcs[i](ctx, raw, opts.Env)
		if err != nil {
			return nil, errs.ErrArgumentCoercion.WithArgs(raw, e.Name).Wrap(err)
		}
		args.set(e.Name, v, source)
	}

	return args, nil
}

func validate(opts *Options) error {
	if opts == nil {
		return errs.ErrInvalidArgument.Wrap(errs.ErrNilOptions)
	}
	if opts.Schema == nil {
		return errs.ErrInvalidArgument.Wrap(errs.ErrNilSchema)
	}
	if opts.Table == nil {
		return errs.ErrInvalidArgument.Wrap(errs.ErrNilTable)
	}
	if len(opts.Raw) > opts.Schema.Len() {
		return errs.ErrInvalidArgument.Wrap(errs.ErrRawArgumentCount.WithArgs(len(opts.Raw), opts.Schema.Len()))
	}

	return nil
}

func rawValue(raw parse.RawArguments, i int, e schema.Entry) (string, types.Source, bool) {
	if r, ok := raw.At(i); ok {
		source := r.Source
		if source == types.SourceNone {
			source = types.SourcePositional
		}
		return r.Value, source, true
	}
	if e.Optional && e.Default != "" {
		return e.Default, types.SourceDefault, true
	}

	return "", types.SourceNone, false
}

// Strings wraps plain values as positional raw arguments, for callers which tokenize themselves
func Strings(values ...string) parse.RawArguments {
	raw := make(parse.RawArguments, len(values))
	for i, v := range values {
		raw[i] = parse.RawArgument{Value: v, Set: true, Source: types.SourcePositional}
	}

	return raw
}
