package container_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/km-arc/go-injector/framework/container"
)

// ── stub providers ────────────────────────────────────────────────────────────

type eagerProvider struct {
	container.BaseProvider
	registerCalls int
	bootCalls     int
}

func (p *eagerProvider) Register(c *container.Container) {
	p.registerCalls++
	c.Register(container.Binding{Key: "eager-svc", Provider: "eager", Mode: container.Value})
}

func (p *eagerProvider) Boot(c *container.Container) error {
	p.bootCalls++
	return nil
}

// greeterProvider resolves a binding owned by another provider in Boot.
type greeterProvider struct {
	container.BaseProvider
	greeting string
}

func (p *greeterProvider) Register(c *container.Container) {
	c.Register(container.Binding{
		Key:      "greeter",
		Provider: container.Inject(func(name string) string { return "hello " + name }, "eager-svc"),
		Mode:     container.CacheInstance,
	})
}

func (p *greeterProvider) Boot(c *container.Container) error {
	g, err := container.Resolve[string](c, "greeter")
	p.greeting = g
	return err
}

type failingProvider struct {
	container.BaseProvider
}

func (p *failingProvider) Register(*container.Container) {}

func (p *failingProvider) Boot(*container.Container) error { return errors.New("no database") }

// multiProvider registers multiple keys and relies on BaseProvider.Boot.
type multiProvider struct {
	container.BaseProvider
}

func (p *multiProvider) Register(c *container.Container) {
	c.Register(container.Binding{Key: "alpha", Provider: "α", Mode: container.Value})
	c.Register(container.Binding{Key: "beta", Provider: "β", Mode: container.Value})
}

// ── ProviderRegistry ──────────────────────────────────────────────────────────

func TestRegistry_RegisterCalledImmediately(t *testing.T) {
	c := container.New()
	reg := container.NewProviderRegistry(c)

	p := &eagerProvider{}
	require.NoError(t, reg.Register(p))

	assert.Equal(t, 1, p.registerCalls)
	assert.True(t, c.Has("eager-svc"))
}

func TestRegistry_BootCalledAfterBoot(t *testing.T) {
	c := container.New()
	reg := container.NewProviderRegistry(c)

	p := &eagerProvider{}
	require.NoError(t, reg.Register(p))
	assert.Zero(t, p.bootCalls, "Boot() should not run before registry.Boot()")
	assert.False(t, reg.Booted())

	require.NoError(t, reg.Boot())
	assert.Equal(t, 1, p.bootCalls)
	assert.True(t, reg.Booted())

	require.NoError(t, reg.Boot())
	assert.Equal(t, 1, p.bootCalls, "second Boot() should be a no-op")
}

func TestRegistry_DuplicateRegisterIgnored(t *testing.T) {
	c := container.New()
	reg := container.NewProviderRegistry(c)

	p := &eagerProvider{}
	require.NoError(t, reg.Register(p))
	require.NoError(t, reg.Register(p))

	assert.Equal(t, 1, p.registerCalls)
	assert.Len(t, reg.Providers(), 1)
}

func TestRegistry_BootResolvesAcrossProviders(t *testing.T) {
	c := container.New()
	reg := container.NewProviderRegistry(c)

	g := &greeterProvider{}
	require.NoError(t, reg.Register(g))
	require.NoError(t, reg.Register(&eagerProvider{}))
	require.NoError(t, reg.Boot())

	assert.Equal(t, "hello eager", g.greeting)
}

func TestRegistry_BootErrorStopsAndWraps(t *testing.T) {
	c := container.New()
	reg := container.NewProviderRegistry(c)

	after := &eagerProvider{}
	require.NoError(t, reg.Register(&failingProvider{}))
	require.NoError(t, reg.Register(after))

	err := reg.Boot()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failingProvider")
	assert.Contains(t, err.Error(), "no database")
	assert.Zero(t, after.bootCalls)
}

func TestRegistry_RegisterAfterBoot_BootsImmediately(t *testing.T) {
	c := container.New()
	reg := container.NewProviderRegistry(c)
	require.NoError(t, reg.Boot())

	p := &eagerProvider{}
	require.NoError(t, reg.Register(p))
	assert.Equal(t, 1, p.bootCalls)

	assert.Error(t, reg.Register(&failingProvider{}))
}

func TestRegistry_MultipleProviders_AllResolvable(t *testing.T) {
	c := container.New()
	reg := container.NewProviderRegistry(c)
	require.NoError(t, reg.Register(&multiProvider{}))
	require.NoError(t, reg.Register(&eagerProvider{}))
	require.NoError(t, reg.Boot())

	for key, want := range map[string]string{"alpha": "α", "beta": "β", "eager-svc": "eager"} {
		got, err := container.Resolve[string](c, key)
		require.NoError(t, err, key)
		assert.Equal(t, want, got, key)
	}
}

// ── BaseProvider defaults ─────────────────────────────────────────────────────

func TestBaseProvider_BootIsNoop(t *testing.T) {
	var p container.BaseProvider
	assert.NoError(t, p.Boot(container.New()))
}
