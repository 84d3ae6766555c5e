package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/shoply/admin-backend/internal/app"
	"github.com/shoply/admin-backend/internal/seed"
)

func main() {
	if err := run(); err != nil {
		fmt.Printf("seed failed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var fixturePath string
	flag.StringVar(&fixturePath, "fixture", "scripts/seed.yaml", "path to the seed fixture file")
	flag.Parse()

	fixture, err := seed.Load(fixturePath)
	if err != nil {
		return err
	}

	a, err := app.New()
	if err != nil {
		return fmt.Errorf("initialize app: %w", err)
	}
	defer a.Close()

	if err := seed.Apply(context.Background(), a.DB, a.Log, fixture); err != nil {
		return err
	}
	fmt.Printf("seeded %d store(s) for %s\n", len(fixture.Stores), fixture.Admin.Email)
	return nil
}
