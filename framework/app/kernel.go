package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/km-arc/go-injector/framework/config"
	"github.com/km-arc/go-injector/framework/container"
	"github.com/km-arc/go-injector/framework/logging"
	"github.com/km-arc/go-injector/framework/metrics"
	"github.com/km-arc/go-injector/framework/providers"
	"github.com/km-arc/go-injector/framework/routing"
)

// ShutdownTimeout bounds how long Run waits for in-flight requests.
const ShutdownTimeout = 10 * time.Second

// Application is the top-level application container.
// It embeds the Container and a ProviderRegistry so user code can call
// app.Register, app.Get and app.RegisterProvider directly.
type Application struct {
	*container.Container
	Providers *container.ProviderRegistry
}

// New loads and validates configuration from envFiles, builds the logger and
// registers the framework providers (config, logger, metrics, router).
func New(envFiles ...string) (*Application, error) {
	cfg := config.Load(envFiles...)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logger, err := logging.New(cfg.Log.Level, cfg.App.Env)
	if err != nil {
		return nil, err
	}
	return NewWith(cfg, logger)
}

// NewWith builds an Application from an already loaded configuration.
func NewWith(cfg *config.Config, logger *zap.Logger) (*Application, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	c := container.New(container.WithLogger(logger))
	registry := container.NewProviderRegistry(c)

	app := &Application{
		Container: c,
		Providers: registry,
	}

	for _, p := range []container.ServiceProvider{
		&providers.ConfigServiceProvider{Config: cfg},
		&providers.LoggingServiceProvider{Logger: logger},
		&providers.MetricsServiceProvider{},
		&providers.RoutingServiceProvider{},
	} {
		if err := registry.Register(p); err != nil {
			return nil, err
		}
	}
	return app, nil
}

// RegisterProvider adds a ServiceProvider to the application.
func (a *Application) RegisterProvider(provider container.ServiceProvider) error {
	return a.Providers.Register(provider)
}

// Boot runs the Boot phase on all providers.
func (a *Application) Boot() error {
	return a.Providers.Boot()
}

// Config resolves *config.Config from the container.
func (a *Application) Config() *config.Config {
	return container.MustResolve[*config.Config](a.Container, providers.ConfigKey)
}

// Logger resolves *zap.Logger from the container.
func (a *Application) Logger() *zap.Logger {
	return container.MustResolve[*zap.Logger](a.Container, providers.LoggerKey)
}

// Metrics resolves *metrics.Collector from the container.
func (a *Application) Metrics() *metrics.Collector {
	return container.MustResolve[*metrics.Collector](a.Container, providers.MetricsKey)
}

// Router resolves *routing.Router from the container.
func (a *Application) Router() *routing.Router {
	return container.MustResolve[*routing.Router](a.Container, providers.RouterKey)
}

// Run boots the application (if needed) and serves HTTP on APP_PORT until
// ctx is cancelled, then shuts the server down gracefully.
func (a *Application) Run(ctx context.Context) error {
	if !a.Providers.Booted() {
		if err := a.Boot(); err != nil {
			return err
		}
	}
	cfg := a.Config()
	logger := a.Logger()

	srv := &http.Server{
		Addr:              ":" + cfg.App.Port,
		Handler:           a.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server started",
			zap.String("app", cfg.App.Name),
			zap.String("addr", srv.Addr),
			zap.String("env", cfg.App.Env),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("app: serve: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("app: shutdown: %w", err)
	}
	_ = logger.Sync()
	return nil
}

// Environment returns APP_ENV value.
func (a *Application) Environment() string { return a.Config().App.Env }
func (a *Application) IsLocal() bool       { return a.Environment() == "local" }
func (a *Application) IsProduction() bool  { return a.Config().IsProduction() }
func (a *Application) IsTesting() bool     { return a.Environment() == "testing" }
func (a *Application) IsDebug() bool       { return a.Config().App.Debug }
