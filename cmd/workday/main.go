package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"workday/internal/cli"
	"workday/internal/config"
	"workday/internal/logging"
	"workday/internal/services"
)

func main() {
	// Optional .env file for local overrides; absence is fine.
	_ = godotenv.Load()

	cfg, err := config.NewLoader().Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	repo, err := config.CreateRepository(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating repository: %v\n", err)
		os.Exit(1)
	}
	defer repo.Close()

	container := services.NewServiceContainer(repo)

	// Back-fill durations for labels saved before derivation existed.
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Application.Timeout)
	repaired, err := container.Labels.RepairDurations(ctx)
	cancel()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error repairing label durations: %v\n", err)
		os.Exit(1)
	}
	if repaired > 0 {
		logging.Debugf("repaired %d label durations at startup\n", repaired)
	}

	app := cli.NewApp(container, cfg)
	root := cli.NewRootCommand(app, cfg)

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
