package cli

import (
	"context"
	"fmt"

	"workday/internal/services"
)

// AssignCommand handles the assign command
type AssignCommand struct {
	schedule     services.ScheduleService
	errorHandler *ErrorHandler
}

// NewAssignCommand creates a new assign command handler
func NewAssignCommand(app *App) *AssignCommand {
	return &AssignCommand{
		schedule:     app.services.Schedule,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the assign command
func (c *AssignCommand) Execute(ctx context.Context, dateArg, idArg string) error {
	id, err := parseLabelID(idArg)
	if err != nil {
		return c.errorHandler.HandleSimple(err)
	}

	if err := c.schedule.Assign(ctx, dateArg, id); err != nil {
		return c.errorHandler.Handle("assign label", err)
	}

	fmt.Printf("Assigned label %d to %s\n", id, dateArg)
	return nil
}

// UnassignCommand handles the unassign command
type UnassignCommand struct {
	schedule     services.ScheduleService
	errorHandler *ErrorHandler
}

// NewUnassignCommand creates a new unassign command handler
func NewUnassignCommand(app *App) *UnassignCommand {
	return &UnassignCommand{
		schedule:     app.services.Schedule,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the unassign command
func (c *UnassignCommand) Execute(ctx context.Context, dateArg, idArg string) error {
	id, err := parseLabelID(idArg)
	if err != nil {
		return c.errorHandler.HandleSimple(err)
	}

	if err := c.schedule.Unassign(ctx, dateArg, id); err != nil {
		return c.errorHandler.Handle("unassign label", err)
	}

	fmt.Printf("Removed label %d from %s\n", id, dateArg)
	return nil
}

// ClearCommand handles the clear command
type ClearCommand struct {
	schedule     services.ScheduleService
	errorHandler *ErrorHandler
}

// NewClearCommand creates a new clear command handler
func NewClearCommand(app *App) *ClearCommand {
	return &ClearCommand{
		schedule:     app.services.Schedule,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the clear command
func (c *ClearCommand) Execute(ctx context.Context, args []string) error {
	if err := c.schedule.ClearAll(ctx); err != nil {
		return c.errorHandler.Handle("clear assignments", err)
	}

	fmt.Println("All assignments cleared")
	return nil
}

// ShowCommand handles the show command, listing one date's assignments.
type ShowCommand struct {
	schedule     services.ScheduleService
	errorHandler *ErrorHandler
}

// NewShowCommand creates a new show command handler
func NewShowCommand(app *App) *ShowCommand {
	return &ShowCommand{
		schedule:     app.services.Schedule,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the show command
func (c *ShowCommand) Execute(ctx context.Context, dateArg string) error {
	labels, err := c.schedule.AssignmentsForDate(ctx, dateArg)
	if err != nil {
		return c.errorHandler.Handle("show assignments", err)
	}

	if len(labels) == 0 {
		fmt.Printf("No assignments on %s\n", dateArg)
		return nil
	}

	for _, label := range labels {
		fmt.Printf("%d  %s (%sh)\n", label.ID, label.DisplayName(), formatHours(label.Duration))
	}
	return nil
}
