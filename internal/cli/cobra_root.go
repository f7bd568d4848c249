package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"workday/internal/config"
)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd    *cobra.Command
	app    *App
	config *config.Config
}

// NewRootCommand creates the root cobra command with global flags
func NewRootCommand(app *App, cfg *config.Config) *RootCommand {
	root := &RootCommand{
		app:    app,
		config: cfg,
	}

	root.cmd = &cobra.Command{
		Use:   "workday",
		Short: "A command-line work shift scheduler",
		Long: `Workday is a command-line scheduler for personal work shifts.

FEATURES:
  • Maintain a registry of reusable shift labels with colors and durations
  • Assign labels to calendar days, with overlap detection
  • Enforce an optional weekly hour limit on assignment
  • Monthly summaries with hours, worked days and estimated salary
  • Export a month to CSV or to a paste-ready text listing

EXAMPLES:
  workday label add "16:00-22:00"            # Add a shift label (duration derived)
  workday label list                         # List all labels
  workday assign 2024-03-04 1                # Assign label 1 to a date
  workday show 2024-03-04                    # Show a date's assignments
  workday summary 2024-03                    # Monthly summary
  workday export 2024-03 > shifts.csv        # Export a month as CSV
  workday copy 2024-03                       # Paste-ready shift listing
  workday settings set --hourly-rate 1200    # Update settings

CONFIGURATION:
  Configuration follows this priority order: command-line flags > environment variables > defaults

  Database Configuration:
    WD_DB_DIR                              Database directory (default: ~/.workday)
    WD_DB_FILENAME                         Database filename (default: workday.db)
    WD_DB_EPHEMERAL                        Use an in-memory database (default: false)
    WD_DB_QUERY_TIMEOUT                    Query timeout (default: 10s)
    WD_DB_WRITE_TIMEOUT                    Write timeout (default: 5s)

  Validation Configuration:
    WD_VALIDATION_LABEL_NAME_MIN           Min label name length (default: 1)
    WD_VALIDATION_LABEL_NAME_MAX           Max label name length (default: 100)

  Application Configuration:
    WD_APP_TIMEOUT                         Application timeout (default: 60s)
    WD_APP_VERBOSE                         Enable verbose output (default: false)

GETTING HELP:
  workday [command] --help                 # Get help for any specific command`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return root.getConfigFromFlags()
		},
	}

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.cmd.Execute()
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	flags.String("db-dir", "", "Database directory (overrides WD_DB_DIR)")
	flags.String("db-filename", "", "Database filename (overrides WD_DB_FILENAME)")
	flags.Duration("db-query-timeout", 0, "Database query timeout (overrides WD_DB_QUERY_TIMEOUT)")
	flags.Duration("db-write-timeout", 0, "Database write timeout (overrides WD_DB_WRITE_TIMEOUT)")

	flags.Duration("app-timeout", 0, "Application timeout (overrides WD_APP_TIMEOUT)")
	flags.Bool("verbose", false, "Enable verbose output (overrides WD_APP_VERBOSE)")
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	r.cmd.AddCommand(
		r.labelCommand(),
		r.assignCommand(),
		r.unassignCommand(),
		r.clearCommand(),
		r.showCommand(),
		r.summaryCommand(),
		r.exportCommand(),
		r.copyCommand(),
		r.settingsCommand(),
	)
}

// labelCommand builds the label command group.
func (r *RootCommand) labelCommand() *cobra.Command {
	labelCmd := &cobra.Command{
		Use:   "label",
		Short: "Manage shift labels",
		Long:  "Add, list, edit, delete and reset the reusable shift labels.",
	}

	var addOpts LabelOptions
	addCmd := &cobra.Command{
		Use:   "add [name]",
		Short: "Add a new shift label",
		Long: `Add a new shift label to the registry.

A name matching "HH:MM-HH:MM" gets its duration derived automatically,
with overnight ranges wrapping past midnight. Explicit --start and --end
clock times take precedence over the name pattern.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			addOpts.Name = args[0]
			return NewLabelAddCommand(r.app).Execute(ctx, addOpts)
		},
	}
	addLabelFlags(addCmd, &addOpts)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List all shift labels",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			return NewLabelListCommand(r.app).Execute(ctx, args)
		},
	}

	var editOpts LabelOptions
	editCmd := &cobra.Command{
		Use:   "edit [label-id] [name]",
		Short: "Edit an existing shift label",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			editOpts.Name = args[1]
			return NewLabelEditCommand(r.app).Execute(ctx, args[0], editOpts)
		},
	}
	addLabelFlags(editCmd, &editOpts)

	deleteCmd := &cobra.Command{
		Use:   "delete [label-id]",
		Short: "Delete a shift label and its assignments",
		Long:  "Delete a shift label. The label is also removed from every date it was assigned to.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			return NewLabelDeleteCommand(r.app).Execute(ctx, args[0])
		},
	}

	resetCmd := &cobra.Command{
		Use:   "reset",
		Short: "Remove all labels and assignments",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			return NewLabelResetCommand(r.app).Execute(ctx, args)
		},
	}

	labelCmd.AddCommand(addCmd, listCmd, editCmd, deleteCmd, resetCmd)
	return labelCmd
}

// addLabelFlags registers the shared label field flags on a command.
func addLabelFlags(cmd *cobra.Command, opts *LabelOptions) {
	cmd.Flags().StringVar(&opts.Color, "color", "", "Label color as #RRGGBB")
	cmd.Flags().Float64Var(&opts.Duration, "duration", 0, "Shift duration in hours (derived from the name or clock times when omitted)")
	cmd.Flags().StringVar(&opts.StartTime, "start", "", "Shift start clock time (HH:MM)")
	cmd.Flags().StringVar(&opts.EndTime, "end", "", "Shift end clock time (HH:MM)")
}

// assignCommand builds the assign command.
func (r *RootCommand) assignCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "assign [date] [label-id]",
		Short: "Assign a label to a date",
		Long: `Assign a shift label to a calendar date (YYYY-MM-DD).

The assignment is rejected when the label's time range overlaps an
existing assignment on the same date, or when the weekly hour limit
is enabled and the week's total would exceed it.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			return NewAssignCommand(r.app).Execute(ctx, args[0], args[1])
		},
	}
}

// unassignCommand builds the unassign command.
func (r *RootCommand) unassignCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unassign [date] [label-id]",
		Short: "Remove a label from a date",
		Long:  "Remove the first occurrence of a label from a date. Removing an absent label is a no-op.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			return NewUnassignCommand(r.app).Execute(ctx, args[0], args[1])
		},
	}
}

// clearCommand builds the clear command.
func (r *RootCommand) clearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove all assignments",
		Long:  "Remove every assignment from every date. Labels are kept.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			return NewClearCommand(r.app).Execute(ctx, args)
		},
	}
}

// showCommand builds the show command.
func (r *RootCommand) showCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show [date]",
		Short: "Show a date's assignments",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			return NewShowCommand(r.app).Execute(ctx, args[0])
		},
	}
}

// summaryCommand builds the summary command.
func (r *RootCommand) summaryCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "summary [YYYY-MM]",
		Short: "Show a monthly summary",
		Long: `Show total hours, worked days, estimated salary and weekly totals
for a month, defaulting to the current one. The salary line is
omitted while both the hourly rate and the transport fee are zero.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			return NewSummaryCommand(r.app).Execute(ctx, args)
		},
	}
}

// exportCommand builds the export command.
func (r *RootCommand) exportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "export [YYYY-MM]",
		Short: "Export a month as CSV",
		Long: `Export one CSV row per assignment of a month to standard output,
defaulting to the current month.

Example:
  workday export 2024-03 > shifts.csv`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			return NewExportCommand(r.app).Execute(ctx, args)
		},
	}
}

// copyCommand builds the copy command.
func (r *RootCommand) copyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "copy [YYYY-MM]",
		Short: "Print a paste-ready shift listing",
		Long: `Print one "MM/DD (Www) shift" line per assignment of a month,
wrapped in the configured copy header and footer.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			return NewCopyCommand(r.app).Execute(ctx, args)
		},
	}
}

// settingsCommand builds the settings command group.
func (r *RootCommand) settingsCommand() *cobra.Command {
	settingsCmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or update scheduler settings",
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show the current settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			return NewSettingsShowCommand(r.app).Execute(ctx, args)
		},
	}

	var (
		hourlyRate         float64
		transportFee       float64
		weeklyLimitHours   float64
		weeklyLimitEnabled bool
		copyHeader         string
		copyFooter         string
	)
	setCmd := &cobra.Command{
		Use:   "set",
		Short: "Update settings",
		Long: `Update one or more settings. Only the given flags change;
everything else keeps its stored value.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			var overrides SettingsOverrides
			if cmd.Flags().Changed("hourly-rate") {
				overrides.HourlyRate = &hourlyRate
			}
			if cmd.Flags().Changed("transport-fee") {
				overrides.TransportFee = &transportFee
			}
			if cmd.Flags().Changed("weekly-limit") {
				overrides.WeeklyLimitHours = &weeklyLimitHours
			}
			if cmd.Flags().Changed("weekly-limit-enabled") {
				overrides.WeeklyLimitEnabled = &weeklyLimitEnabled
			}
			if cmd.Flags().Changed("copy-header") {
				overrides.CopyHeader = &copyHeader
			}
			if cmd.Flags().Changed("copy-footer") {
				overrides.CopyFooter = &copyFooter
			}

			return NewSettingsSetCommand(r.app).Execute(ctx, overrides)
		},
	}
	setCmd.Flags().Float64Var(&hourlyRate, "hourly-rate", 0, "Hourly rate for salary estimation")
	setCmd.Flags().Float64Var(&transportFee, "transport-fee", 0, "Per-worked-day transport fee")
	setCmd.Flags().Float64Var(&weeklyLimitHours, "weekly-limit", 0, "Weekly hour limit")
	setCmd.Flags().BoolVar(&weeklyLimitEnabled, "weekly-limit-enabled", false, "Enforce the weekly hour limit on assignment")
	setCmd.Flags().StringVar(&copyHeader, "copy-header", "", "Header line for the copy command")
	setCmd.Flags().StringVar(&copyFooter, "copy-footer", "", "Footer line for the copy command")

	settingsCmd.AddCommand(showCmd, setCmd)
	return settingsCmd
}

// commandContext returns a context bounded by the application timeout.
func (r *RootCommand) commandContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), r.getAppTimeout())
}

// getAppTimeout returns the configured application timeout
func (r *RootCommand) getAppTimeout() time.Duration {
	if r.config != nil {
		return r.config.Application.Timeout
	}
	return 60 * time.Second
}

// getConfigFromFlags updates the configuration with values from command-line flags
func (r *RootCommand) getConfigFromFlags() error {
	if r.config == nil {
		return nil
	}

	flags := r.cmd.PersistentFlags()

	if dbDir, _ := flags.GetString("db-dir"); dbDir != "" {
		r.config.Database.Dir = dbDir
	}
	if dbFilename, _ := flags.GetString("db-filename"); dbFilename != "" {
		r.config.Database.Filename = dbFilename
	}
	if queryTimeout, _ := flags.GetDuration("db-query-timeout"); queryTimeout > 0 {
		r.config.Database.QueryTimeout = queryTimeout
	}
	if writeTimeout, _ := flags.GetDuration("db-write-timeout"); writeTimeout > 0 {
		r.config.Database.WriteTimeout = writeTimeout
	}

	if appTimeout, _ := flags.GetDuration("app-timeout"); appTimeout > 0 {
		r.config.Application.Timeout = appTimeout
	}
	if verbose, _ := flags.GetBool("verbose"); verbose {
		r.config.Application.Verbose = verbose
	}

	return nil
}
