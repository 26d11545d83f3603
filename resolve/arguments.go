package resolve

import (
	"time"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/napalu/botopt/types"
)

type resolvedValue struct {
	value  any
	source types.Source
}

// Arguments maps argument names to resolved values in schema order. It is read-only once
// returned by Resolve.
type Arguments struct {
	values *orderedmap.OrderedMap[string, resolvedValue]
}

func newArguments() *Arguments {
	return &Arguments{values: orderedmap.New[string, resolvedValue]()}
}

func (a *Arguments) set(name string, value any, source types.Source) {
	a.values.Set(name, resolvedValue{value: value, source: source})
}

// Len returns the number of resolved arguments
func (a *Arguments) Len() int {
	if a == nil {
		return 0
	}

	return a.values.Len()
}

// Has reports whether name was resolved. A mention which matched nothing is resolved to nil
// and still reported.
func (a *Arguments) Has(name string) bool {
	_, ok := a.Get(name)

	return ok
}

// Get returns the value resolved for name
func (a *Arguments) Get(name string) (any, bool) {
	if a == nil {
		return nil, false
	}
	v, ok := a.values.Get(name)

	return v.value, ok
}

// Source returns how the value for name was supplied
func (a *Arguments) Source(name string) types.Source {
	if a == nil {
		return types.SourceNone
	}
	v, ok := a.values.Get(name)
	if !ok {
		return types.SourceNone
	}

	return v.source
}

// Names returns the resolved argument names in schema order
func (a *Arguments) Names() []string {
	names := make([]string, 0, a.Len())
	a.Each(func(name string, _ any) bool {
		names = append(names, name)
		return true
	})

	return names
}

// Each calls fn for every resolved argument in schema order until fn returns false
func (a *Arguments) Each(fn func(name string, value any) bool) {
	if a == nil {
		return
	}
	for pair := a.values.Oldest(); pair != nil; pair = pair.Next() {
		if !fn(pair.Key, pair.Value.value) {
			return
		}
	}
}

// Map returns a copy of the arguments as a plain map
func (a *Arguments) Map() map[string]any {
	out := make(map[string]any, a.Len())
	a.Each(func(name string, value any) bool {
		out[name] = value
		return true
	})

	return out
}

// String returns the string value of name, or "" when absent or of another type
func (a *Arguments) String(name string) string {
	v, _ := Value[string](a, name)

	return v
}

// Int returns the integer value of name, or 0 when absent or of another type
func (a *Arguments) Int(name string) int64 {
	v, _ := Value[int64](a, name)

	return v
}

// Float returns the decimal value of name, or 0 when absent or of another type
func (a *Arguments) Float(name string) float64 {
	v, _ := Value[float64](a, name)

	return v
}

// Bool returns the boolean value of name, or false when absent or of another type
func (a *Arguments) Bool(name string) bool {
	v, _ := Value[bool](a, name)

	return v
}

// Time returns the date value of name, or the zero time when absent or of another type
func (a *Arguments) Time(name string) time.Time {
	v, _ := Value[time.Time](a, name)

	return v
}

// Duration returns the duration value of name, or 0 when absent or of another type
func (a *Arguments) Duration(name string) time.Duration {
	v, _ := Value[time.Duration](a, name)

	return v
}

// Value returns the value of name as T. ok is false when name is absent or holds another type.
func Value[T any](a *Arguments, name string) (T, bool) {
	var zero T
	v, found := a.Get(name)
	if !found {
		return zero, false
	}
	t, ok := v.(T)
	if !ok {
		return zero, false
	}

	return t, true
}
