// Package catalog holds the static option catalogs the prompt assembler
// draws from: camera bodies, lenses, lighting setups, composition styles,
// quality presets, color grades, moods, aspect ratios, textures, realism
// anchors and presets. Everything is versioned in code, loaded once at init
// and never mutated afterwards.
package catalog

import "math/rand"

// Option is a single entry of a flat catalog: a stable key plus the prose
// that ends up in the generated prompt.
type Option struct {
	Key         string `json:"key"`
	Description string `json:"description"`
}

// Set is an ordered, read-only catalog of options. Iteration order is the
// definition order; combined output text depends on it staying stable.
type Set struct {
	name        string
	fallbackKey string
	items       []Option
	index       map[string]int
}

func newSet(name, fallbackKey string, items []Option) Set {
	index := make(map[string]int, len(items))
	for i, item := range items {
		index[item.Key] = i
	}
	return Set{name: name, fallbackKey: fallbackKey, items: items, index: index}
}

// Name returns the catalog name used in API paths and logs.
func (s Set) Name() string { return s.name }

// Len reports the number of options.
func (s Set) Len() int { return len(s.items) }

// Keys returns all option keys in definition order.
func (s Set) Keys() []string {
	keys := make([]string, len(s.items))
	for i, item := range s.items {
		keys[i] = item.Key
	}
	return keys
}

// Options returns a copy of all options in definition order.
func (s Set) Options() []Option {
	out := make([]Option, len(s.items))
	copy(out, s.items)
	return out
}

// Contains reports whether key is a known option.
func (s Set) Contains(key string) bool {
	_, ok := s.index[key]
	return ok
}

// Describe resolves key to its description. Unknown keys fall back to the
// catalog's designated default entry so prompt assembly never emits empty
// text for a bad key.
func (s Set) Describe(key string) string {
	if i, ok := s.index[key]; ok {
		return s.items[i].Description
	}
	return s.items[s.index[s.fallbackKey]].Description
}

// FallbackKey returns the key used when a lookup misses.
func (s Set) FallbackKey() string { return s.fallbackKey }

// RandomKey picks an option key uniformly using the supplied source.
func (s Set) RandomKey(r *rand.Rand) string {
	return s.items[r.Intn(len(s.items))].Key
}
