package container

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownKey matches any *UnknownKeyError via errors.Is.
	ErrUnknownKey = errors.New("container: unknown key")

	// ErrCyclicDependency matches any *CyclicDependencyError via errors.Is.
	ErrCyclicDependency = errors.New("container: cyclic dependency")

	// ErrInvalidProvider matches any *InvalidProviderError via errors.Is.
	ErrInvalidProvider = errors.New("container: invalid provider")
)

// UnknownKeyError is returned when a key with no binding is resolved.
type UnknownKeyError struct {
	Key string
}

func (e *UnknownKeyError) Error() string {
	return fmt.Sprintf("container: no binding registered for [%s]", e.Key)
}

func (e *UnknownKeyError) Is(target error) bool { return target == ErrUnknownKey }

// CyclicDependencyError is returned when a key is reached again while it is
// still on the active resolution path.
//
// Keychain holds that path with the most deeply nested key first, e.g. for
// a -> b -> c -> a it is [c b a].
type CyclicDependencyError struct {
	Key      string
	Keychain []string
}

func (e *CyclicDependencyError) Error() string {
	return fmt.Sprintf("container: cyclic dependency detected for [%s] in keychain [%s]",
		e.Key, strings.Join(e.Keychain, ", "))
}

func (e *CyclicDependencyError) Is(target error) bool { return target == ErrCyclicDependency }

// InvalidProviderError is returned when a provider cannot be invoked in the
// mode it was registered with. Providers are only checked at resolution.
type InvalidProviderError struct {
	Key    string
	Mode   Mode
	Reason string
}

func (e *InvalidProviderError) Error() string {
	return fmt.Sprintf("container: invalid %s provider for [%s]: %s", e.Mode, e.Key, e.Reason)
}

func (e *InvalidProviderError) Is(target error) bool { return target == ErrInvalidProvider }

// TypeMismatchError is returned by Resolve when the resolved instance is not
// of the requested type.
type TypeMismatchError struct {
	Key      string
	Expected string
	Got      string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("container: [%s] resolved to %s, expected %s", e.Key, e.Got, e.Expected)
}
