package cli

import (
	"context"
	"fmt"

	"workday/internal/services"
)

// SettingsOverrides carries the flag values of settings set. Nil fields were
// not given on the command line and keep their stored value.
type SettingsOverrides struct {
	HourlyRate         *float64
	TransportFee       *float64
	WeeklyLimitHours   *float64
	WeeklyLimitEnabled *bool
	CopyHeader         *string
	CopyFooter         *string
}

// SettingsShowCommand handles the settings show command
type SettingsShowCommand struct {
	settings     services.SettingsService
	errorHandler *ErrorHandler
}

// NewSettingsShowCommand creates a new settings show command handler
func NewSettingsShowCommand(app *App) *SettingsShowCommand {
	return &SettingsShowCommand{
		settings:     app.services.Settings,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the settings show command
func (c *SettingsShowCommand) Execute(ctx context.Context, args []string) error {
	cfg, err := c.settings.Load(ctx)
	if err != nil {
		return c.errorHandler.Handle("show settings", err)
	}

	fmt.Printf("Hourly rate:        %g\n", cfg.HourlyRate)
	fmt.Printf("Transport fee:      %g\n", cfg.TransportFee)
	fmt.Printf("Weekly limit:       %gh\n", cfg.WeeklyLimitHours)
	fmt.Printf("Weekly limit on:    %t\n", cfg.WeeklyLimitEnabled)
	fmt.Printf("Copy header:        %s\n", cfg.CopyHeader)
	fmt.Printf("Copy footer:        %s\n", cfg.CopyFooter)
	return nil
}

// SettingsSetCommand handles the settings set command
type SettingsSetCommand struct {
	settings     services.SettingsService
	errorHandler *ErrorHandler
}

// NewSettingsSetCommand creates a new settings set command handler
func NewSettingsSetCommand(app *App) *SettingsSetCommand {
	return &SettingsSetCommand{
		settings:     app.services.Settings,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the settings set command, merging the given flags over the
// stored record.
func (c *SettingsSetCommand) Execute(ctx context.Context, overrides SettingsOverrides) error {
	cfg, err := c.settings.Load(ctx)
	if err != nil {
		return c.errorHandler.Handle("update settings", err)
	}

	if overrides.HourlyRate != nil {
		cfg.HourlyRate = *overrides.HourlyRate
	}
	if overrides.TransportFee != nil {
		cfg.TransportFee = *overrides.TransportFee
	}
	if overrides.WeeklyLimitHours != nil {
		cfg.WeeklyLimitHours = *overrides.WeeklyLimitHours
	}
	if overrides.WeeklyLimitEnabled != nil {
		cfg.WeeklyLimitEnabled = *overrides.WeeklyLimitEnabled
	}
	if overrides.CopyHeader != nil {
		cfg.CopyHeader = *overrides.CopyHeader
	}
	if overrides.CopyFooter != nil {
		cfg.CopyFooter = *overrides.CopyFooter
	}

	if err := c.settings.Save(ctx, *cfg); err != nil {
		return c.errorHandler.Handle("update settings", err)
	}

	fmt.Println("Settings updated")
	return nil
}
