package main

import (
	"context"
	"fmt"
	"os"

	"timesheet-manager/internal/api"
	"timesheet-manager/internal/auth"
	"timesheet-manager/internal/cli"
	"timesheet-manager/internal/config"
	"timesheet-manager/internal/jobs"
	"timesheet-manager/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	factory := NewRepositoryFactory(getEnvironment(), cfg)
	repo, err := factory.CreateRepository()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating repository: %v\n", err)
		os.Exit(1)
	}
	defer repo.Close()

	catalog := jobs.NewCatalog(repo)
	gate := auth.NewGate(repo)
	timesheetStore := store.New(repo, catalog, cfg)
	apiInstance := api.New(gate, timesheetStore, catalog)

	app := cli.NewApp(apiInstance)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.GetApplicationTimeout())
	defer cancel()

	if err := app.Run(ctx, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
