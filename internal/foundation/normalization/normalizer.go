// Package normalization maps loosely-typed user tokens (flags, config values,
// environment variables) onto closed enum types.
package normalization

import (
	"sort"
	"strings"
)

// Normalizer provides type-safe string-to-enum normalization.
type Normalizer[T comparable] struct {
	validValues  map[string]T
	defaultValue T
	validKeys    []string
}

// NewNormalizer creates a normalizer with a map of valid string->value pairs.
// Several aliases may map to the same value.
func NewNormalizer[T comparable](values map[string]T, defaultValue T) *Normalizer[T] {
	normalized := make(map[string]T, len(values))
	validKeys := make([]string, 0, len(values))

	for k, v := range values {
		key := clean(k)
		normalized[key] = v
		validKeys = append(validKeys, key)
	}
	sort.Strings(validKeys)

	return &Normalizer[T]{
		validValues:  normalized,
		defaultValue: defaultValue,
		validKeys:    validKeys,
	}
}

// Lookup converts raw to the enum type and reports whether it was recognized.
// An empty (or all-whitespace) token resolves to the default and counts as recognized.
func (n *Normalizer[T]) Lookup(raw string) (T, bool) {
	cleaned := clean(raw)
	if cleaned == "" {
		return n.defaultValue, true
	}
	value, ok := n.validValues[cleaned]
	return value, ok
}

// Normalize converts raw to the enum type, returning the default when unrecognized.
func (n *Normalizer[T]) Normalize(raw string) T {
	if value, ok := n.Lookup(raw); ok {
		return value
	}
	return n.defaultValue
}

// Default returns the value used for empty or unrecognized input.
func (n *Normalizer[T]) Default() T {
	return n.defaultValue
}

// ValidKeys returns all accepted tokens, sorted.
func (n *Normalizer[T]) ValidKeys() []string {
	result := make([]string, len(n.validKeys))
	copy(result, n.validKeys)
	return result
}

func clean(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
