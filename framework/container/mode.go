package container

import (
	"fmt"
	"strings"
)

// Mode is the instantiation strategy of a binding.
type Mode string

const (
	// Instance calls the provider on every resolution. This is the default.
	Instance Mode = "instance"

	// CacheInstance calls the provider on first resolution and returns the
	// same instance for the lifetime of the container.
	CacheInstance Mode = "cache_instance"

	// FactoryFunction calls the provider as a plain function on every
	// resolution; its return value is the result.
	FactoryFunction Mode = "factory_function"

	// Value returns the provider itself. Dependencies and locals are ignored.
	Value Mode = "value"
)

// String implements fmt.Stringer.
func (m Mode) String() string { return string(m) }

// Valid reports whether m is one of the four known modes.
func (m Mode) Valid() bool {
	switch m {
	case Instance, CacheInstance, FactoryFunction, Value:
		return true
	}
	return false
}

// ParseMode converts a textual mode ("instance", "cache_instance",
// "factory_function", "value") into a Mode. Matching is case-insensitive
// and an empty string yields Instance.
func ParseMode(s string) (Mode, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return Instance, nil
	}
	m := Mode(s)
	if !m.Valid() {
		return "", fmt.Errorf("container: unknown mode %q", s)
	}
	return m, nil
}
