// Package container provides a small IoC (Inversion of Control) container:
// a registry mapping string keys to providers, resolving fully wired object
// graphs on demand and reporting circular dependencies instead of
// recursing forever.
//
// # Modes
//
//	container.Instance         // call the provider on every Get (default)
//	container.CacheInstance    // call it once, reuse the instance afterwards
//	container.FactoryFunction  // call a plain function on every Get
//	container.Value            // return the provider itself
//
// # Bindings
//
//	c := container.New()
//
//	// Constructor with a fixed trailing argument (a "local")
//	c.Register(container.Binding{Key: "moo", Provider: NewMoo, Locals: []any{"moo!"}})
//
//	// Dependencies declared on the provider, resolved positionally
//	c.Register(container.Binding{Key: "bar", Provider: container.Inject(NewBar, "moo")})
//
//	// ... or on the binding itself
//	c.Register(container.Binding{Key: "foo", Provider: NewFoo, Dependencies: []string{"bar"}})
//
//	// Struct type: exported fields are filled in declaration order
//	c.Register(container.Binding{Key: "pair", Provider: reflect.TypeFor[Pair](), Dependencies: []string{"foo", "bar"}})
//
//	// Pre-built value
//	c.Register(container.Binding{Key: "config", Provider: cfg, Mode: container.Value})
//
// # Resolving
//
//	raw, err := c.Get("foo")
//	foo, err := container.Resolve[*Foo](c, "foo")
//	err = c.Start("foo", func(v any) { v.(*Foo).Run() })
//
// # Cycles
//
// Each resolution carries the chain of keys currently being resolved. A key
// found on its own chain fails with *CyclicDependencyError listing the chain
// deepest-first (a -> b -> c -> a reports "c, b, a"). Shared dependencies
// reached through different branches (a diamond) are not cycles.
//
// # Service Providers
//
//	registry := container.NewProviderRegistry(c)
//	registry.Register(&AppServiceProvider{})
//	err := registry.Boot()
package container
