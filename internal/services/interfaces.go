package services

import (
	"context"
	"time"

	"workday/internal/domain"
	"workday/internal/repository/sqlite"
)

// WeekTotal represents the assigned hours of one Sunday-start week.
type WeekTotal struct {
	StartDate string  `json:"start_date"` // Sunday date key
	Hours     float64 `json:"hours"`
	OverLimit bool    `json:"over_limit"`
}

// MonthSummary represents the aggregated view of one calendar month.
type MonthSummary struct {
	Year          int         `json:"year"`
	Month         time.Month  `json:"month"`
	TotalHours    float64     `json:"total_hours"`
	WorkedDays    int         `json:"worked_days"`
	Salary        float64     `json:"salary"`
	SalaryVisible bool        `json:"salary_visible"`
	Weeks         []WeekTotal `json:"weeks"`
}

// DayAssignment represents one resolved (date, label) pair, in calendar and
// insertion order. Stale label references are already filtered out.
type DayAssignment struct {
	Date    string        `json:"date"`
	Weekday time.Weekday  `json:"weekday"`
	Label   *domain.Label `json:"label"`
}

// LabelService owns the shift label registry.
type LabelService interface {
	// Label CRUD operations
	CreateLabel(ctx context.Context, label domain.Label) (*domain.Label, error)
	GetLabel(ctx context.Context, id int64) (*domain.Label, error)
	ListLabels(ctx context.Context) ([]*domain.Label, error)
	UpdateLabel(ctx context.Context, id int64, fields domain.Label) (*domain.Label, error)

	// DeleteLabelWithAssignments removes a label and cascades the removal
	// through every date assignment.
	DeleteLabelWithAssignments(ctx context.Context, id int64) error

	// ResetRegistry empties the registry and the assignment map together.
	ResetRegistry(ctx context.Context) error

	// RepairDurations back-fills zero durations from time-range names,
	// returning the number of labels repaired. Runs once at startup.
	RepairDurations(ctx context.Context) (int, error)
}

// ScheduleService owns the date-to-labels assignment map and enforces the
// overlap and weekly-limit invariants on insertion.
type ScheduleService interface {
	// Assign validates and appends a label to a date. Rejections
	// (overlap conflict, weekly limit, unknown label) leave the
	// assignment map and persisted state untouched.
	Assign(ctx context.Context, date string, labelID int64) error

	// Unassign removes the first occurrence of a label from a date.
	// Removing a label that is not assigned is a no-op.
	Unassign(ctx context.Context, date string, labelID int64) error

	// ClearAll empties the entire assignment map.
	ClearAll(ctx context.Context) error

	// CascadeDeleteLabel removes a label id from every date's sequence.
	CascadeDeleteLabel(ctx context.Context, labelID int64) error

	// AssignmentsForDate returns the resolved labels assigned to a date in
	// insertion order, silently skipping stale references.
	AssignmentsForDate(ctx context.Context, date string) ([]*domain.Label, error)
}

// ReportService computes hour and salary aggregates. All queries are pure
// reads over the registry, assignment map and settings at call time.
type ReportService interface {
	DailyHours(ctx context.Context, date string) (float64, error)
	WeeklyHours(ctx context.Context, date string) (float64, error)
	MonthlyHours(ctx context.Context, year int, month time.Month) (float64, error)
	MonthlyWorkedDayCount(ctx context.Context, year int, month time.Month) (int, error)
	EstimatedSalary(ctx context.Context, year int, month time.Month) (float64, error)
	WeeklyLimitViolated(ctx context.Context, weeklyHours float64) (bool, error)

	// MonthSummary bundles the monthly aggregates with per-week totals.
	MonthSummary(ctx context.Context, year int, month time.Month) (*MonthSummary, error)

	// MonthAssignments returns every resolved (date, label) pair of a month
	// in calendar and insertion order, for the exporters.
	MonthAssignments(ctx context.Context, year int, month time.Month) ([]*DayAssignment, error)
}

// SettingsService loads and stores the scheduler settings.
type SettingsService interface {
	Load(ctx context.Context) (*domain.Settings, error)
	Save(ctx context.Context, settings domain.Settings) error
}

// ServiceContainer manages all services and their dependencies
type ServiceContainer struct {
	Labels   LabelService
	Schedule ScheduleService
	Reports  ReportService
	Settings SettingsService
}

// NewServiceContainer wires all services over a shared repository.
func NewServiceContainer(repo sqlite.Repository) *ServiceContainer {
	settings := NewSettingsService(repo)
	reports := NewReportService(repo, settings)
	schedule := NewScheduleService(repo, settings, reports)
	labels := NewLabelService(repo)

	return &ServiceContainer{
		Labels:   labels,
		Schedule: schedule,
		Reports:  reports,
		Settings: settings,
	}
}
