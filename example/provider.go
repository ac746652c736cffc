package example

import (
	"github.com/km-arc/go-injector/framework/config"
	"github.com/km-arc/go-injector/framework/container"
	"github.com/km-arc/go-injector/framework/metrics"
	"github.com/km-arc/go-injector/framework/providers"
	"github.com/km-arc/go-injector/framework/routing"
)

// Provider registers Moo, Bar and Foo. Moo and Foo are Instance bindings;
// BarMode selects how Bar is bound. On boot it adds the example routes to
// the "router" binding, if there is one.
type Provider struct {
	MooSound string
	BarMode  container.Mode
}

// NewProvider builds a Provider from the example section of cfg.
func NewProvider(cfg *config.Config) (*Provider, error) {
	mode, err := cfg.BarMode()
	if err != nil {
		return nil, err
	}
	return &Provider{MooSound: cfg.Example.MooSound, BarMode: mode}, nil
}

func (p *Provider) Register(c *container.Container) {
	sound := p.MooSound
	if sound == "" {
		sound = config.DefaultMooSound
	}
	c.Register(container.Binding{Key: MooKey, Provider: NewMoo, Mode: container.Instance, Locals: []any{sound}})
	c.Register(container.Binding{Key: BarKey, Provider: container.Inject(NewBar, MooKey), Mode: p.BarMode})
	c.Register(container.Binding{Key: FooKey, Provider: container.Inject(NewFoo, BarKey), Mode: container.Instance})
}

func (p *Provider) Boot(c *container.Container) error {
	if !c.Has(providers.RouterKey) {
		return nil
	}
	router, err := container.Resolve[*routing.Router](c, providers.RouterKey)
	if err != nil {
		return err
	}
	var collector *metrics.Collector
	if c.Has(providers.MetricsKey) {
		if collector, err = container.Resolve[*metrics.Collector](c, providers.MetricsKey); err != nil {
			return err
		}
	}
	Routes(router, c, collector)
	return nil
}
