package cli

import (
	"fmt"

	"workday/internal/config"
	"workday/internal/services"
)

// App bundles the service container and configuration for command handlers.
type App struct {
	services *services.ServiceContainer
	config   *config.Config
}

// NewApp creates a new CLI application instance with dependency injection
func NewApp(container *services.ServiceContainer, cfg *config.Config) *App {
	return &App{
		services: container,
		config:   cfg,
	}
}

// NewAppWithDefaultRepository creates an application backed by the configured
// SQLite database. This is the production entry point.
func NewAppWithDefaultRepository(cfg *config.Config) (*App, error) {
	repo, err := config.CreateRepository(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize repository: %w", err)
	}

	return NewApp(services.NewServiceContainer(repo), cfg), nil
}
