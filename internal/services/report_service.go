package services

import (
	"context"
	"fmt"
	"math"
	"time"

	"workday/internal/domain"
	"workday/internal/errors"
	"workday/internal/repository/sqlite"
	"workday/internal/validation"
)

// reportServiceImpl implements the ReportService interface
type reportServiceImpl struct {
	repo           sqlite.Repository
	settings       SettingsService
	mapper         *domain.Mapper
	labelValidator *validation.LabelValidator
}

// NewReportService creates a new ReportService instance
func NewReportService(repo sqlite.Repository, settings SettingsService) ReportService {
	return &reportServiceImpl{
		repo:           repo,
		settings:       settings,
		mapper:         domain.NewMapper(),
		labelValidator: validation.NewLabelValidator(),
	}
}

func formatID(id int64) string {
	return fmt.Sprintf("%d", id)
}

// labelDurations loads the stored duration of every registered label.
func (r *reportServiceImpl) labelDurations(ctx context.Context) (map[int64]float64, error) {
	dbLabels, err := r.repo.ListLabels(ctx)
	if err != nil {
		return nil, err
	}

	durations := make(map[int64]float64, len(dbLabels))
	for _, dbLabel := range dbLabels {
		durations[dbLabel.ID] = dbLabel.Duration
	}
	return durations, nil
}

// sumHours totals the durations behind a list of label ids. Ids missing from
// the registry contribute nothing, so one stale reference cannot break the
// totals for a whole period.
func sumHours(ids []int64, durations map[int64]float64) float64 {
	var total float64
	for _, id := range ids {
		total += durations[id]
	}
	return total
}

// DailyHours returns the total stored duration assigned to a date.
func (r *reportServiceImpl) DailyHours(ctx context.Context, date string) (float64, error) {
	if err := r.labelValidator.ValidateDateKey(date); err != nil {
		return 0, errors.NewValidationError("invalid date", err)
	}

	durations, err := r.labelDurations(ctx)
	if err != nil {
		return 0, err
	}

	ids, err := r.repo.ListAssignments(ctx, date)
	if err != nil {
		return 0, err
	}

	return sumHours(ids, durations), nil
}

// WeeklyHours returns the total hours of the Sunday-start week containing the
// date. Every day of one week yields the same total.
func (r *reportServiceImpl) WeeklyHours(ctx context.Context, date string) (float64, error) {
	if err := r.labelValidator.ValidateDateKey(date); err != nil {
		return 0, errors.NewValidationError("invalid date", err)
	}

	day, err := domain.ParseDateKey(date)
	if err != nil {
		return 0, errors.NewValidationError("invalid date", err)
	}

	keys := domain.WeekDateKeys(day)
	return r.rangeHours(ctx, keys[0], keys[6])
}

// rangeHours totals the assigned hours over an inclusive date-key range.
func (r *reportServiceImpl) rangeHours(ctx context.Context, fromDate, toDate string) (float64, error) {
	durations, err := r.labelDurations(ctx)
	if err != nil {
		return 0, err
	}

	byDate, err := r.repo.AssignmentsInRange(ctx, fromDate, toDate)
	if err != nil {
		return 0, err
	}

	var total float64
	for _, ids := range byDate {
		total += sumHours(ids, durations)
	}
	return total, nil
}

// MonthlyHours returns the total hours assigned over every day of a month.
func (r *reportServiceImpl) MonthlyHours(ctx context.Context, year int, month time.Month) (float64, error) {
	first, last := domain.MonthBounds(year, month)
	return r.rangeHours(ctx, first, last)
}

// MonthlyWorkedDayCount returns the number of distinct dates in the month
// with at least one assignment.
func (r *reportServiceImpl) MonthlyWorkedDayCount(ctx context.Context, year int, month time.Month) (int, error) {
	first, last := domain.MonthBounds(year, month)
	byDate, err := r.repo.AssignmentsInRange(ctx, first, last)
	if err != nil {
		return 0, err
	}
	return len(byDate), nil
}

// EstimatedSalary returns round(monthlyHours*hourlyRate + workedDays*transportFee).
func (r *reportServiceImpl) EstimatedSalary(ctx context.Context, year int, month time.Month) (float64, error) {
	cfg, err := r.settings.Load(ctx)
	if err != nil {
		return 0, err
	}

	hours, err := r.MonthlyHours(ctx, year, month)
	if err != nil {
		return 0, err
	}

	days, err := r.MonthlyWorkedDayCount(ctx, year, month)
	if err != nil {
		return 0, err
	}

	return math.Round(hours*cfg.HourlyRate + float64(days)*cfg.TransportFee), nil
}

// WeeklyLimitViolated reports whether a weekly total breaks the configured
// cap. Equal to the limit is not a violation.
func (r *reportServiceImpl) WeeklyLimitViolated(ctx context.Context, weeklyHours float64) (bool, error) {
	cfg, err := r.settings.Load(ctx)
	if err != nil {
		return false, err
	}
	return cfg.WeeklyLimitViolated(weeklyHours), nil
}

// MonthSummary bundles the monthly aggregates with per-week totals for every
// Sunday-start week intersecting the month.
func (r *reportServiceImpl) MonthSummary(ctx context.Context, year int, month time.Month) (*MonthSummary, error) {
	cfg, err := r.settings.Load(ctx)
	if err != nil {
		return nil, err
	}

	hours, err := r.MonthlyHours(ctx, year, month)
	if err != nil {
		return nil, err
	}

	days, err := r.MonthlyWorkedDayCount(ctx, year, month)
	if err != nil {
		return nil, err
	}

	salary, err := r.EstimatedSalary(ctx, year, month)
	if err != nil {
		return nil, err
	}

	summary := &MonthSummary{
		Year:          year,
		Month:         month,
		TotalHours:    hours,
		WorkedDays:    days,
		Salary:        salary,
		SalaryVisible: cfg.SalaryVisible(),
	}

	firstOfMonth := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	lastOfMonth := firstOfMonth.AddDate(0, 1, -1)
	for week := domain.WeekStart(firstOfMonth); !week.After(lastOfMonth); week = week.AddDate(0, 0, 7) {
		weekly, err := r.WeeklyHours(ctx, domain.FormatDateKey(week))
		if err != nil {
			return nil, err
		}
		summary.Weeks = append(summary.Weeks, WeekTotal{
			StartDate: domain.FormatDateKey(week),
			Hours:     weekly,
			OverLimit: cfg.WeeklyLimitViolated(weekly),
		})
	}

	return summary, nil
}

// MonthAssignments returns every resolved (date, label) pair of a month in
// calendar and insertion order. Stale references are skipped.
func (r *reportServiceImpl) MonthAssignments(ctx context.Context, year int, month time.Month) ([]*DayAssignment, error) {
	dbLabels, err := r.repo.ListLabels(ctx)
	if err != nil {
		return nil, err
	}
	registry := make(map[int64]*domain.Label, len(dbLabels))
	for _, dbLabel := range dbLabels {
		domainLabel := r.mapper.Label.FromDatabase(*dbLabel)
		registry[domainLabel.ID] = &domainLabel
	}

	first, last := domain.MonthBounds(year, month)
	byDate, err := r.repo.AssignmentsInRange(ctx, first, last)
	if err != nil {
		return nil, err
	}

	var assignments []*DayAssignment
	for day := 1; day <= domain.DaysInMonth(year, month); day++ {
		date := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
		key := domain.FormatDateKey(date)
		for _, id := range byDate[key] {
			label, ok := registry[id]
			if !ok {
				continue
			}
			assignments = append(assignments, &DayAssignment{
				Date:    key,
				Weekday: date.Weekday(),
				Label:   label,
			})
		}
	}

	return assignments, nil
}
