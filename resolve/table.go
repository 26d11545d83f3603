package resolve

import (
	"context"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/google/uuid"
	"github.com/napalu/botopt/errs"
	"github.com/napalu/botopt/types"
)

// Func coerces one raw token into a typed value. env may be nil.
type Func func(ctx context.Context, raw string, env Environment) (any, error)

// Table maps an argument type to the Func that resolves it. Tables are plain values built by the
// caller; there is no package-level registry.
type Table map[types.ArgumentType]Func

var decimalLiteral = regexp.MustCompile(`^[+-]?(?:[0-9]+(?:\.[0-9]*)?|\.[0-9]+)(?:[eE][+-]?[0-9]+)?$`)

// DefaultTable returns a new table holding the built-in resolvers
func DefaultTable() Table {
	return Table{
		types.String:   String,
		types.Integer:  Integer,
		types.Decimal:  Decimal,
		types.Boolean:  Boolean,
		types.User:     Mention(types.MentionUser),
		types.Channel:  Mention(types.MentionChannel),
		types.Role:     Mention(types.MentionRole),
		types.ID:       ID,
		types.Date:     Date,
		types.Duration: Duration,
		types.UUID:     UUID,
	}
}

// With returns a copy of t in which typ resolves with fn
func (t Table) With(typ types.ArgumentType, fn Func) Table {
	out := make(Table, len(t)+1)
	for k, v := range t {
		out[k] = v
	}
	out[typ] = fn

	return out
}

// Lookup returns the resolver for typ
func (t Table) Lookup(typ types.ArgumentType) (Func, bool) {
	fn, ok := t[typ]

	return fn, ok && fn != nil
}

// String returns the trimmed token
func String(_ context.Context, raw string, _ Environment) (any, error) {
	return strings.TrimSpace(raw), nil
}

// Integer parses a base-10 int64
func Integer(_ context.Context, raw string, _ Environment) (any, error) {
	raw = strings.TrimSpace(raw)
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, errs.ErrParseInt.WithArgs(raw)
	}

	return n, nil
}

// Decimal parses a finite decimal literal into a float64. Hexadecimal floats, infinities and NaN
// are rejected.
func Decimal(_ context.Context, raw string, _ Environment) (any, error) {
	raw = strings.TrimSpace(raw)
	if !decimalLiteral.MatchString(raw) {
		return nil, errs.ErrParseFloat.WithArgs(raw)
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsInf(f, 0) {
		return nil, errs.ErrParseFloat.WithArgs(raw)
	}

	return f, nil
}

// Boolean maps exactly "true" and "false"
func Boolean(_ context.Context, raw string, _ Environment) (any, error) {
	switch strings.TrimSpace(raw) {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}

	return nil, errs.ErrParseBool.WithArgs(raw)
}

// Mention returns a resolver which validates a mention of kind and looks it up in the
// environment. The value is nil when the entity is unknown or no environment is given.
func Mention(kind types.MentionKind) Func {
	return func(ctx context.Context, raw string, env Environment) (any, error) {
		raw = strings.TrimSpace(raw)
		id, ok := MentionID(kind, raw)
		if !ok {
			return nil, errs.ErrParseMention.WithArgs(raw, string(kind))
		}
		if env == nil {
			return nil, nil
		}

		v, found, err := env.Lookup(ctx, kind, id)
		if err != nil {
			return nil, errs.ErrLookup.WithArgs(string(kind), id).Wrap(err)
		}
		if !found {
			return nil, nil
		}

		return v, nil
	}
}

// ID returns the id carried by any mention form or a bare snowflake
func ID(_ context.Context, raw string, _ Environment) (any, error) {
	raw = strings.TrimSpace(raw)
	id, ok := AnyMentionID(raw)
	if !ok {
		return nil, errs.ErrParseID.WithArgs(raw)
	}

	return id, nil
}

// Date parses free-form dates and timestamps; values without a zone are read as UTC
func Date(_ context.Context, raw string, _ Environment) (any, error) {
	raw = strings.TrimSpace(raw)
	t, err := dateparse.ParseIn(raw, time.UTC)
	if err != nil {
		return nil, errs.ErrParseDate.WithArgs(raw)
	}

	return t, nil
}

// Duration parses Go duration literals such as 90s or 1h30m
func Duration(_ context.Context, raw string, _ Environment) (any, error) {
	raw = strings.TrimSpace(raw)
	d, err := time.ParseDuration(raw)
	if err != nil {
		return nil, errs.ErrParseDuration.WithArgs(raw)
	}

	return d, nil
}

// UUID parses an RFC 4122 identifier
func UUID(_ context.Context, raw string, _ Environment) (any, error) {
	raw = strings.TrimSpace(raw)
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, errs.ErrParseUUID.WithArgs(raw)
	}

	return id, nil
}
