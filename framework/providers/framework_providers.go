package providers

import (
	"go.uber.org/zap"

	"github.com/km-arc/go-injector/framework/config"
	"github.com/km-arc/go-injector/framework/container"
	"github.com/km-arc/go-injector/framework/metrics"
	"github.com/km-arc/go-injector/framework/routing"
)

// Keys under which the framework providers bind their services.
const (
	ConfigKey  = "config"
	LoggerKey  = "logger"
	MetricsKey = "metrics"
	RouterKey  = "router"
)

// ── ConfigServiceProvider ─────────────────────────────────────────────────────

// ConfigServiceProvider binds an already loaded configuration.
//
// Bound keys:
//   - "config"  → *config.Config (Value)
type ConfigServiceProvider struct {
	container.BaseProvider
	Config *config.Config
}

func (p *ConfigServiceProvider) Register(c *container.Container) {
	c.Register(container.Binding{Key: ConfigKey, Provider: p.Config, Mode: container.Value})
}

// ── LoggingServiceProvider ────────────────────────────────────────────────────

// LoggingServiceProvider binds the application logger.
//
// Bound keys:
//   - "logger"  → *zap.Logger (Value)
type LoggingServiceProvider struct {
	container.BaseProvider
	Logger *zap.Logger
}

func (p *LoggingServiceProvider) Register(c *container.Container) {
	logger := p.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	c.Register(container.Binding{Key: LoggerKey, Provider: logger, Mode: container.Value})
}

// ── MetricsServiceProvider ────────────────────────────────────────────────────

// MetricsServiceProvider registers the Prometheus collector and, on boot,
// starts counting every resolution the container performs.
//
// Bound keys:
//   - "metrics" → *metrics.Collector (CacheInstance)
type MetricsServiceProvider struct{}

func (p *MetricsServiceProvider) Register(c *container.Container) {
	c.Register(container.Binding{Key: MetricsKey, Provider: metrics.NewCollector, Mode: container.CacheInstance})
}

func (p *MetricsServiceProvider) Boot(c *container.Container) error {
	collector, err := container.Resolve[*metrics.Collector](c, MetricsKey)
	if err != nil {
		return err
	}
	collector.Instrument(c)
	return nil
}

// ── RoutingServiceProvider ────────────────────────────────────────────────────

// RoutingServiceProvider registers the HTTP router, built with the "logger"
// binding. On boot it mounts /metrics when a collector is bound.
//
// Bound keys:
//   - "router"  → *routing.Router (CacheInstance, depends on "logger")
type RoutingServiceProvider struct{}

func (p *RoutingServiceProvider) Register(c *container.Container) {
	c.Register(container.Binding{
		Key:      RouterKey,
		Provider: container.Inject(routing.New, LoggerKey),
		Mode:     container.CacheInstance,
	})
}

func (p *RoutingServiceProvider) Boot(c *container.Container) error {
	router, err := container.Resolve[*routing.Router](c, RouterKey)
	if err != nil {
		return err
	}
	if !c.Has(MetricsKey) {
		return nil
	}
	collector, err := container.Resolve[*metrics.Collector](c, MetricsKey)
	if err != nil {
		return err
	}
	router.Mount("/metrics", collector.Handler())
	return nil
}
