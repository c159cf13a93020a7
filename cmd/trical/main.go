package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"trical/internal/cli"
	appLog "trical/internal/log"
)

func main() {
	// A .env file is optional; it may set TRICAL_CONFIG and TRICAL_LOG_LEVEL.
	_ = godotenv.Load()

	// Root context with cancellation on SIGINT/SIGTERM.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigCh
		appLog.Info("signal received, shutting down", "signal", sig.String())
		cancel()
	}()

	if err := cli.NewRootCommand(cli.Env{}).ExecuteContext(ctx); err != nil {
		appLog.Error("trical failed", err)
		os.Exit(1)
	}
}
