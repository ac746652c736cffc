package container

import (
	"fmt"
	"reflect"
	"sync"
)

// Binding is the registration input for one key.
//
// Provider is interpreted according to Mode:
//   - Instance, CacheInstance: a constructor function, or a struct
//     reflect.Type whose exported fields are filled positionally
//   - FactoryFunction: any function
//   - Value: anything; returned as-is
//
// Dependencies, when non-nil, takes precedence over a declaration carried
// by the provider (see Injectable). An empty non-nil slice means "none".
type Binding struct {
	Key          string
	Provider     any
	Mode         Mode
	Locals       []any
	Dependencies []string
}

// binding is the stored, immutable form of a Binding plus the write-once
// cache slot used by CacheInstance.
type binding struct {
	key      string
	provider any
	mode     Mode
	locals   []any
	deps     []string

	mu       sync.Mutex
	cached   bool
	instance any
}

func newBinding(b Binding) *binding {
	mode := b.Mode
	if mode == "" {
		mode = Instance
	}
	nb := &binding{
		key:      b.Key,
		provider: b.Provider,
		mode:     mode,
		locals:   append([]any(nil), b.Locals...),
	}
	if b.Dependencies != nil {
		nb.deps = make([]string, len(b.Dependencies))
		copy(nb.deps, b.Dependencies)
	}
	return nb
}

// dependencies returns the declared dependency keys in declaration order.
func (b *binding) dependencies() []string {
	if b.deps != nil {
		return b.deps
	}
	if inj, ok := b.provider.(Injectable); ok {
		return inj.Injectables()
	}
	return nil
}

func (b *binding) load() (any, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.instance, b.cached
}

// store caches instance unless another resolution got there first, and
// returns whichever instance is now cached.
func (b *binding) store(instance any) any {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.cached {
		b.instance = instance
		b.cached = true
	}
	return b.instance
}

func (b *binding) invalid(format string, args ...any) error {
	return &InvalidProviderError{Key: b.key, Mode: b.mode, Reason: fmt.Sprintf(format, args...)}
}

// ── Invocation ────────────────────────────────────────────────────────────────

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// construct builds an Instance or CacheInstance result.
func (b *binding) construct(args []any) (any, error) {
	if t, ok := unwrap(b.provider).(reflect.Type); ok {
		return b.instantiate(t, args)
	}
	return b.call(args)
}

// instantiate allocates a new *T and assigns args to T's exported fields in
// declaration order.
func (b *binding) instantiate(t reflect.Type, args []any) (any, error) {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil, b.invalid("type %s is not a struct", t)
	}

	ptr := reflect.New(t)
	v := ptr.Elem()

	fields := make([]int, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		if t.Field(i).IsExported() {
			fields = append(fields, i)
		}
	}
	if len(args) > len(fields) {
		return nil, b.invalid("type %s has %d exported fields, got %d arguments", t, len(fields), len(args))
	}

	for i, arg := range args {
		if arg == nil {
			continue
		}
		f := v.Field(fields[i])
		av := reflect.ValueOf(arg)
		if !av.Type().AssignableTo(f.Type()) {
			return nil, b.invalid("argument %d: %s is not assignable to field %s.%s (%s)",
				i, av.Type(), t.Name(), t.Field(fields[i]).Name, f.Type())
		}
		f.Set(av)
	}
	return ptr.Interface(), nil
}

// call invokes a function provider with args. A provider may return
// (T) or (T, error); a non-nil error is returned unchanged.
func (b *binding) call(args []any) (any, error) {
	provider := unwrap(b.provider)
	fn := reflect.ValueOf(provider)
	if fn.Kind() != reflect.Func {
		return nil, b.invalid("%T is not a function", provider)
	}
	if fn.IsNil() {
		return nil, b.invalid("nil function")
	}

	ft := fn.Type()
	switch {
	case ft.NumOut() == 1:
	case ft.NumOut() == 2 && ft.Out(1) == errorType:
	default:
		return nil, b.invalid("%s must return (T) or (T, error)", ft)
	}

	in, err := b.arguments(ft, args)
	if err != nil {
		return nil, err
	}

	out := fn.Call(in)
	if len(out) == 2 && !out[1].IsNil() {
		return nil, out[1].Interface().(error)
	}
	return out[0].Interface(), nil
}

func (b *binding) arguments(ft reflect.Type, args []any) ([]reflect.Value, error) {
	n := ft.NumIn()
	if ft.IsVariadic() {
		if len(args) < n-1 {
			return nil, b.invalid("%s takes at least %d arguments, got %d", ft, n-1, len(args))
		}
	} else if len(args) != n {
		return nil, b.invalid("%s takes %d arguments, got %d", ft, n, len(args))
	}

	in := make([]reflect.Value, len(args))
	for i, arg := range args {
		var pt reflect.Type
		if ft.IsVariadic() && i >= n-1 {
			pt = ft.In(n - 1).Elem()
		} else {
			pt = ft.In(i)
		}

		if arg == nil {
			in[i] = reflect.Zero(pt)
			continue
		}
		av := reflect.ValueOf(arg)
		if !av.Type().AssignableTo(pt) {
			return nil, b.invalid("argument %d: %s is not assignable to %s", i, av.Type(), pt)
		}
		in[i] = av
	}
	return in, nil
}
