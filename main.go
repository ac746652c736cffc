package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/km-arc/go-injector/example"
	"github.com/km-arc/go-injector/framework/app"
)

func main() {
	application, err := app.New() // loads .env automatically
	if err != nil {
		fmt.Fprintf(os.Stderr, "bootstrap: %v\n", err)
		os.Exit(1)
	}
	logger := application.Logger()

	provider, err := example.NewProvider(application.Config())
	if err != nil {
		logger.Fatal("example provider", zap.Error(err))
	}
	if err := application.RegisterProvider(provider); err != nil {
		logger.Fatal("register provider", zap.Error(err))
	}

	// Resolve the graph once up front, the way the original demo did.
	if err := application.Start(example.FooKey, func(instance any) {
		logger.Info(instance.(*example.Foo).Lala())
	}); err != nil {
		logger.Fatal("start", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := application.Run(ctx); err != nil {
		logger.Fatal("server error", zap.Error(err))
	}
}
