package container

import (
	"fmt"
	"reflect"
	"slices"
	"sort"
	"sync"

	"go.uber.org/zap"
)

// ResolvedFunc is called after a key has been resolved, including cache hits.
type ResolvedFunc func(key string, mode Mode, instance any)

// ── Container ─────────────────────────────────────────────────────────────────

// Container maps keys to providers and resolves object graphs on demand.
//
// Registration and lookup are guarded by one RWMutex. The lock is not held
// while providers run, so a provider may itself call back into the container.
type Container struct {
	mu sync.RWMutex

	// key → binding
	bindings map[string]*binding

	afterResolving []ResolvedFunc

	logger *zap.Logger
}

// Option configures a Container.
type Option func(*Container)

// WithLogger sets the logger used for registration and resolution events.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Container) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New creates an empty container.
func New(opts ...Option) *Container {
	c := &Container{
		bindings: make(map[string]*binding),
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ── Registration ──────────────────────────────────────────────────────────────

// Register inserts or replaces the binding for b.Key. A replaced binding is
// discarded entirely, including any cached instance.
//
// Mode defaults to Instance. The provider is not inspected here; a provider
// that cannot be invoked fails with *InvalidProviderError on resolution.
//
//	c.Register(container.Binding{Key: "moo", Provider: NewMoo, Locals: []any{"moo"}})
//	c.Register(container.Binding{Key: "bar", Provider: container.Inject(NewBar, "moo"), Mode: container.CacheInstance})
func (c *Container) Register(b Binding) {
	nb := newBinding(b)

	c.mu.Lock()
	_, replaced := c.bindings[nb.key]
	c.bindings[nb.key] = nb
	c.mu.Unlock()

	c.logger.Debug("binding registered",
		zap.String("key", nb.key),
		zap.Stringer("mode", nb.mode),
		zap.Bool("replaced", replaced),
	)
}

// Has reports whether key currently has a binding.
func (c *Container) Has(key string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.bindings[key]
	return ok
}

// Mode returns the mode key was registered with.
func (c *Container) Mode(key string) (Mode, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if b, ok := c.bindings[key]; ok {
		return b.mode, true
	}
	return "", false
}

// Keys returns the registered keys in sorted order.
func (c *Container) Keys() []string {
	c.mu.RLock()
	out := make([]string, 0, len(c.bindings))
	for k := range c.bindings {
		out = append(out, k)
	}
	c.mu.RUnlock()
	sort.Strings(out)
	return out
}

// AfterResolving registers a callback fired after every successful
// resolution, nested dependencies included.
func (c *Container) AfterResolving(fn ResolvedFunc) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.afterResolving = append(c.afterResolving, fn)
}

// ── Resolution ────────────────────────────────────────────────────────────────

// Get resolves key into a fully wired instance.
//
// It fails with *UnknownKeyError if key (or any dependency) has no binding,
// and with *CyclicDependencyError if a key is reached again while it is
// still being resolved. Errors returned by providers are passed through
// unchanged.
func (c *Container) Get(key string) (any, error) {
	return c.get(key, nil)
}

// Start resolves key and hands the instance to callback. The callback is
// not invoked when resolution fails.
func (c *Container) Start(key string, callback func(instance any)) error {
	instance, err := c.Get(key)
	if err != nil {
		return err
	}
	callback(instance)
	return nil
}

// get resolves key with keychain holding the active path, deepest first.
// keychain is never modified; each level works on its own copy.
func (c *Container) get(key string, keychain []string) (any, error) {
	c.mu.RLock()
	b, ok := c.bindings[key]
	c.mu.RUnlock()
	if !ok {
		return nil, &UnknownKeyError{Key: key}
	}

	if slices.Contains(keychain, key) {
		c.logger.Debug("cyclic dependency", zap.String("key", key), zap.Strings("keychain", keychain))
		return nil, &CyclicDependencyError{Key: key, Keychain: slices.Clone(keychain)}
	}
	chain := make([]string, 0, len(keychain)+1)
	chain = append(chain, key)
	chain = append(chain, keychain...)

	if b.mode == CacheInstance {
		if instance, ok := b.load(); ok {
			c.fireAfterResolving(b, instance)
			return instance, nil
		}
	}

	instance, err := c.createInstance(b, chain)
	if err != nil {
		return nil, err
	}
	if b.mode == CacheInstance {
		instance = b.store(instance)
	}

	c.logger.Debug("resolved", zap.String("key", key), zap.Stringer("mode", b.mode), zap.Int("depth", len(keychain)))
	c.fireAfterResolving(b, instance)
	return instance, nil
}

// createInstance resolves b's dependencies along keychain and builds the
// result for b's mode.
func (c *Container) createInstance(b *binding, keychain []string) (any, error) {
	switch b.mode {
	case Value:
		return unwrap(b.provider), nil
	case Instance, CacheInstance, FactoryFunction:
	default:
		return nil, b.invalid("unknown mode")
	}

	deps := b.dependencies()
	args := make([]any, 0, len(deps)+len(b.locals))
	for _, dep := range deps {
		instance, err := c.get(dep, keychain)
		if err != nil {
			return nil, err
		}
		args = append(args, instance)
	}
	args = append(args, b.locals...)

	if b.mode == FactoryFunction {
		return b.call(args)
	}
	return b.construct(args)
}

func (c *Container) fireAfterResolving(b *binding, instance any) {
	c.mu.RLock()
	cbs := c.afterResolving
	c.mu.RUnlock()
	for _, cb := range cbs {
		cb(b.key, b.mode, instance)
	}
}

// ── Reflect helpers ───────────────────────────────────────────────────────────

// TypeKey returns the package-qualified type name of v, useful as a stable
// key when a type is the natural identity of a binding.
//
//	key := container.TypeKey((*Foo)(nil))  // "github.com/acme/app.Foo"
//	c.Register(container.Binding{Key: key, Provider: NewFoo})
func TypeKey(v any) string {
	t := reflect.TypeOf(v)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.PkgPath() + "." + t.Name()
}

// ── Generics helper ───────────────────────────────────────────────────────────

// Resolve calls Get and type-asserts the result. A nil instance yields the
// zero value of T.
//
//	foo, err := container.Resolve[*Foo](c, "foo")
func Resolve[T any](c *Container, key string) (T, error) {
	var zero T
	instance, err := c.Get(key)
	if err != nil {
		return zero, err
	}
	if instance == nil {
		return zero, nil
	}
	typed, ok := instance.(T)
	if !ok {
		return zero, &TypeMismatchError{
			Key:      key,
			Expected: reflect.TypeOf((*T)(nil)).Elem().String(),
			Got:      fmt.Sprintf("%T", instance),
		}
	}
	return typed, nil
}

// MustResolve is like Resolve but panics on error. Meant for composition
// roots where a missing binding is a programming error.
func MustResolve[T any](c *Container, key string) T {
	typed, err := Resolve[T](c, key)
	if err != nil {
		panic(err)
	}
	return typed
}
