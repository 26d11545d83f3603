package resolve

import (
	"context"
	"regexp"
	"sync"

	"github.com/napalu/botopt/types"
)

var (
	userMention    = regexp.MustCompile(`^<@!?([0-9]+)>$`)
	channelMention = regexp.MustCompile(`^<#([0-9]+)>$`)
	roleMention    = regexp.MustCompile(`^<@&([0-9]+)>$`)
	snowflake      = regexp.MustCompile(`^[0-9]{15,21}$`)
)

// Environment looks up the entity a mention refers to. found is false when the id is unknown;
// a non-nil error aborts resolution.
type Environment interface {
	Lookup(ctx context.Context, kind types.MentionKind, id string) (value any, found bool, err error)
}

// MentionID extracts the id from a mention of the given kind (<@id>, <@!id>, <#id>, <@&id>) or
// from a bare snowflake id
func MentionID(kind types.MentionKind, raw string) (string, bool) {
	var pattern *regexp.Regexp
	switch kind {
	case types.MentionUser:
		pattern = userMention
	case types.MentionChannel:
		pattern = channelMention
	case types.MentionRole:
		pattern = roleMention
	default:
		return "", false
	}

	if m := pattern.FindStringSubmatch(raw); m != nil {
		return m[1], true
	}
	if snowflake.MatchString(raw) {
		return raw, true
	}

	return "", false
}

// AnyMentionID extracts the id from any mention form or a bare snowflake id
func AnyMentionID(raw string) (string, bool) {
	for _, pattern := range []*regexp.Regexp{roleMention, userMention, channelMention} {
		if m := pattern.FindStringSubmatch(raw); m != nil {
			return m[1], true
		}
	}
	if snowflake.MatchString(raw) {
		return raw, true
	}

	return "", false
}

// MapEnvironment is an in-memory Environment, safe for concurrent use
type MapEnvironment struct {
	mu      sync.RWMutex
	entries map[types.MentionKind]map[string]any
}

// NewMapEnvironment returns an empty MapEnvironment
func NewMapEnvironment() *MapEnvironment {
	return &MapEnvironment{entries: make(map[types.MentionKind]map[string]any)}
}

// Add registers value under kind and id and returns the environment for chaining
func (m *MapEnvironment) Add(kind types.MentionKind, id string, value any) *MapEnvironment {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.entries[kind] == nil {
		m.entries[kind] = make(map[string]any)
	}
	m.entries[kind][id] = value

	return m
}

// Lookup implements Environment
func (m *MapEnvironment) Lookup(_ context.Context, kind types.MentionKind, id string) (any, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.entries[kind][id]

	return v, ok, nil
}

// Len returns the number of registered entities of kind
func (m *MapEnvironment) Len(kind types.MentionKind) int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.entries[kind])
}
