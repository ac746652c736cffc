package container

// Injectable is implemented by providers that declare their own
// dependencies. The keys are resolved in order and passed to the provider
// positionally, ahead of any locals.
type Injectable interface {
	Injectables() []string
}

type injected struct {
	provider any
	keys     []string
}

func (i injected) Injectables() []string { return i.keys }

// Inject attaches a dependency declaration to provider.
//
//	c.Register(container.Binding{
//	    Key:      "foo",
//	    Provider: container.Inject(NewFoo, "bar"), // NewFoo(bar *Bar) *Foo
//	})
//
// The container unwraps the result before invoking or returning it, so a
// Value binding registered with Inject(v) still resolves to v.
func Inject(provider any, keys ...string) Injectable {
	return injected{provider: provider, keys: append([]string(nil), keys...)}
}

func unwrap(provider any) any {
	if i, ok := provider.(injected); ok {
		return i.provider
	}
	return provider
}
