package fuzzmap

import (
	"fmt"
	"sort"
)

// Mapping is the minimal view of one level of a nested structure. The
// resolver depends only on these two capabilities plus the AsMapping
// predicate, not on any specific nested-data representation.
//
// Keys must return a stable order: resolution tie-breaks on the first key
// reaching the maximum similarity score, so the order defines which of two
// equally-scored keys wins.
type Mapping interface {
	// Keys returns the keys present at this level, in canonical order.
	Keys() []string

	// Value returns the value for a key and whether the key exists.
	Value(key string) (any, bool)
}

// AsMapping reports whether v can be traversed as a mapping, returning an
// adapter when it can. Plain Go maps (map[string]any, map[any]any) and
// values already implementing Mapping are traversable; everything else,
// including slices and scalars, is not.
func AsMapping(v any) (Mapping, bool) {
	switch m := v.(type) {
	case Mapping:
		return m, true
	case map[string]any:
		return stringMap(m), true
	case map[any]any:
		return newAnyMap(m), true
	default:
		return nil, false
	}
}

// stringMap adapts map[string]any. Go maps have no insertion order, so keys
// are iterated in sorted order; that sorted order is the deterministic
// tie-break order for plain maps.
type stringMap map[string]any

func (m stringMap) Keys() []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (m stringMap) Value(key string) (any, bool) {
	v, ok := m[key]
	return v, ok
}

// anyMap adapts map[any]any, the shape some decoders produce. Non-string
// keys are rendered with fmt.Sprint so they can participate in matching;
// when two keys render identically, which value wins is unspecified.
type anyMap map[string]any

func newAnyMap(m map[any]any) anyMap {
	byKey := make(map[string]any, len(m))
	for k, v := range m {
		byKey[fmt.Sprint(k)] = v
	}
	return anyMap(byKey)
}

func (m anyMap) Keys() []string {
	return stringMap(m).Keys()
}

func (m anyMap) Value(key string) (any, bool) {
	v, ok := m[key]
	return v, ok
}
