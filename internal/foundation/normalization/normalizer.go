// Package normalization maps loosely written strings onto closed value sets.
package normalization

import (
	"fmt"
	"sort"
	"strings"
)

// Normalizer converts raw strings to values of an enum-like type. Keys are
// compared after trimming and lowercasing.
type Normalizer[T comparable] struct {
	values    map[string]T
	fallback  T
	validKeys []string
}

// NewNormalizer creates a normalizer over values; fallback is returned by
// Normalize for unknown input.
func NewNormalizer[T comparable](values map[string]T, fallback T) *Normalizer[T] {
	n := &Normalizer[T]{
		values:    make(map[string]T, len(values)),
		fallback:  fallback,
		validKeys: make([]string, 0, len(values)),
	}
	for k, v := range values {
		key := clean(k)
		n.values[key] = v
		n.validKeys = append(n.validKeys, key)
	}
	sort.Strings(n.validKeys)
	return n
}

// Normalize returns the value for raw, or the fallback.
func (n *Normalizer[T]) Normalize(raw string) T {
	if v, ok := n.values[clean(raw)]; ok {
		return v
	}
	return n.fallback
}

// Lookup reports whether raw names a known value.
func (n *Normalizer[T]) Lookup(raw string) (T, bool) {
	v, ok := n.values[clean(raw)]
	return v, ok
}

// NormalizeWithError is Lookup with a descriptive error for unknown input.
func (n *Normalizer[T]) NormalizeWithError(raw string) (T, error) {
	if v, ok := n.Lookup(raw); ok {
		return v, nil
	}
	var zero T
	return zero, fmt.Errorf("invalid value %q, valid options: %s", raw, strings.Join(n.validKeys, ", "))
}

// ValidKeys returns the accepted spellings in sorted order.
func (n *Normalizer[T]) ValidKeys() []string {
	return append([]string(nil), n.validKeys...)
}

func clean(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
