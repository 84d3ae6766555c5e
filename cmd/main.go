package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/shoply/admin-backend/internal/app"
)

func main() {
	if err := run(); err != nil {
		fmt.Printf("server exited: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	a, err := app.New()
	if err != nil {
		return fmt.Errorf("initialize app: %w", err)
	}
	defer a.Close()

	a.Start()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return a.Run(ctx, ":"+a.Cfg.Port)
}
