package cli

import (
	"context"
	"fmt"
	"strconv"

	"workday/internal/domain"
	"workday/internal/errors"
	"workday/internal/services"
)

// LabelOptions carries the flag values shared by label add and label edit.
type LabelOptions struct {
	Name      string
	Color     string
	Duration  float64
	StartTime string
	EndTime   string
}

// toLabel converts the options to a domain label.
func (o LabelOptions) toLabel() domain.Label {
	return domain.Label{
		Name:      o.Name,
		Color:     o.Color,
		Duration:  o.Duration,
		StartTime: o.StartTime,
		EndTime:   o.EndTime,
	}
}

// LabelAddCommand handles the label add command
type LabelAddCommand struct {
	labels       services.LabelService
	errorHandler *ErrorHandler
}

// NewLabelAddCommand creates a new label add command handler
func NewLabelAddCommand(app *App) *LabelAddCommand {
	return &LabelAddCommand{
		labels:       app.services.Labels,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the label add command
func (c *LabelAddCommand) Execute(ctx context.Context, opts LabelOptions) error {
	label, err := c.labels.CreateLabel(ctx, opts.toLabel())
	if err != nil {
		return c.errorHandler.Handle("add label", err)
	}

	fmt.Printf("Added label %d: %s\n", label.ID, label.DisplayName())
	return nil
}

// LabelListCommand handles the label list command
type LabelListCommand struct {
	labels       services.LabelService
	errorHandler *ErrorHandler
}

// NewLabelListCommand creates a new label list command handler
func NewLabelListCommand(app *App) *LabelListCommand {
	return &LabelListCommand{
		labels:       app.services.Labels,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the label list command
func (c *LabelListCommand) Execute(ctx context.Context, args []string) error {
	labels, err := c.labels.ListLabels(ctx)
	if err != nil {
		return c.errorHandler.Handle("list labels", err)
	}

	if len(labels) == 0 {
		fmt.Println("No labels defined")
		return nil
	}

	fmt.Printf("%-5s %-30s %-8s %-8s %s\n", "ID", "Name", "Color", "Hours", "Range")
	for _, label := range labels {
		rangeText := ""
		if label.HasClockTimes() {
			rangeText = label.StartTime + " - " + label.EndTime
		}
		fmt.Printf("%-5d %-30s %-8s %-8s %s\n",
			label.ID, label.Name, label.Color, formatHours(label.Duration), rangeText)
	}
	return nil
}

// LabelEditCommand handles the label edit command
type LabelEditCommand struct {
	labels       services.LabelService
	errorHandler *ErrorHandler
}

// NewLabelEditCommand creates a new label edit command handler
func NewLabelEditCommand(app *App) *LabelEditCommand {
	return &LabelEditCommand{
		labels:       app.services.Labels,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the label edit command
func (c *LabelEditCommand) Execute(ctx context.Context, idArg string, opts LabelOptions) error {
	id, err := parseLabelID(idArg)
	if err != nil {
		return c.errorHandler.HandleSimple(err)
	}

	label, err := c.labels.UpdateLabel(ctx, id, opts.toLabel())
	if err != nil {
		return c.errorHandler.Handle("edit label", err)
	}

	fmt.Printf("Updated label %d: %s\n", label.ID, label.DisplayName())
	return nil
}

// LabelDeleteCommand handles the label delete command
type LabelDeleteCommand struct {
	labels       services.LabelService
	errorHandler *ErrorHandler
}

// NewLabelDeleteCommand creates a new label delete command handler
func NewLabelDeleteCommand(app *App) *LabelDeleteCommand {
	return &LabelDeleteCommand{
		labels:       app.services.Labels,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the label delete command. The deletion cascades through every
// date assignment referencing the label.
func (c *LabelDeleteCommand) Execute(ctx context.Context, idArg string) error {
	id, err := parseLabelID(idArg)
	if err != nil {
		return c.errorHandler.HandleSimple(err)
	}

	if err := c.labels.DeleteLabelWithAssignments(ctx, id); err != nil {
		return c.errorHandler.Handle("delete label", err)
	}

	fmt.Printf("Deleted label %d and its assignments\n", id)
	return nil
}

// LabelResetCommand handles the label reset command
type LabelResetCommand struct {
	labels       services.LabelService
	errorHandler *ErrorHandler
}

// NewLabelResetCommand creates a new label reset command handler
func NewLabelResetCommand(app *App) *LabelResetCommand {
	return &LabelResetCommand{
		labels:       app.services.Labels,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the label reset command
func (c *LabelResetCommand) Execute(ctx context.Context, args []string) error {
	if err := c.labels.ResetRegistry(ctx); err != nil {
		return c.errorHandler.Handle("reset labels", err)
	}

	fmt.Println("Labels and assignments cleared")
	return nil
}

// parseLabelID parses a positional label id argument.
func parseLabelID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, errors.NewInvalidInputError("label-id", arg, "must be a numeric label id")
	}
	return id, nil
}
