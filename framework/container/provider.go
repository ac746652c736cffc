package container

import "fmt"

// ── ServiceProvider interface ─────────────────────────────────────────────────

// ServiceProvider groups related bindings.
//
// Register binds services into the container and must not resolve
// anything. Boot runs after all providers have been registered, so it may
// resolve any binding.
//
//	type AppServiceProvider struct{ container.BaseProvider }
//
//	func (p *AppServiceProvider) Register(c *container.Container) {
//	    c.Register(container.Binding{Key: "clock", Provider: NewClock, Mode: container.CacheInstance})
//	}
type ServiceProvider interface {
	Register(c *Container)
	Boot(c *Container) error
}

// ── BaseProvider ──────────────────────────────────────────────────────────────

// BaseProvider is an embeddable no-op Boot. Embed it and implement Register.
type BaseProvider struct{}

func (p *BaseProvider) Boot(_ *Container) error { return nil }

// ── ProviderRegistry ──────────────────────────────────────────────────────────

// ProviderRegistry registers and boots ServiceProviders against one container.
type ProviderRegistry struct {
	c          *Container
	providers  []ServiceProvider
	registered map[ServiceProvider]bool
	booted     bool
}

// NewProviderRegistry creates a registry bound to c.
func NewProviderRegistry(c *Container) *ProviderRegistry {
	return &ProviderRegistry{
		c:          c,
		registered: make(map[ServiceProvider]bool),
	}
}

// Register calls provider.Register. Registering the same provider twice is
// a no-op. If the registry has already booted, the provider is booted
// immediately and its Boot error is returned.
func (r *ProviderRegistry) Register(provider ServiceProvider) error {
	if r.registered[provider] {
		return nil
	}
	r.registered[provider] = true

	provider.Register(r.c)
	r.providers = append(r.providers, provider)

	if r.booted {
		return boot(r.c, provider)
	}
	return nil
}

// Boot calls Boot on every registered provider in registration order and
// stops at the first error. Subsequent calls are no-ops.
func (r *ProviderRegistry) Boot() error {
	if r.booted {
		return nil
	}
	r.booted = true
	for _, provider := range r.providers {
		if err := boot(r.c, provider); err != nil {
			return err
		}
	}
	return nil
}

// Booted returns true if Boot() has been called.
func (r *ProviderRegistry) Booted() bool { return r.booted }

// Providers returns all registered providers.
func (r *ProviderRegistry) Providers() []ServiceProvider { return r.providers }

func boot(c *Container, provider ServiceProvider) error {
	if err := provider.Boot(c); err != nil {
		return fmt.Errorf("container: boot %T: %w", provider, err)
	}
	return nil
}
