package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"workday/internal/domain"
	"workday/internal/repository/sqlite"
)

func setupServicesWithRepo(t *testing.T) (*ServiceContainer, sqlite.Repository) {
	repo, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	return NewServiceContainer(repo), repo
}

func TestDailyHours(t *testing.T) {
	c := setupServices(t)
	ctx := context.Background()

	six := mustCreateLabel(t, c, domain.Label{Name: "16:00-22:00"})
	two := mustCreateLabel(t, c, domain.Label{Name: "Briefing", Duration: 2})

	require.NoError(t, c.Schedule.Assign(ctx, "2024-03-04", six.ID))
	require.NoError(t, c.Schedule.Assign(ctx, "2024-03-04", two.ID))

	hours, err := c.Reports.DailyHours(ctx, "2024-03-04")
	require.NoError(t, err)
	assert.Equal(t, 8.0, hours)

	hours, err = c.Reports.DailyHours(ctx, "2024-03-05")
	require.NoError(t, err)
	assert.Equal(t, 0.0, hours)
}

func TestWeeklyHoursSameForEveryWeekday(t *testing.T) {
	c := setupServices(t)
	ctx := context.Background()

	six := mustCreateLabel(t, c, domain.Label{Name: "Shift", Duration: 6})
	require.NoError(t, c.Schedule.Assign(ctx, "2024-03-04", six.ID)) // Monday
	require.NoError(t, c.Schedule.Assign(ctx, "2024-03-07", six.ID)) // Thursday

	// Sunday 2024-03-03 through Saturday 2024-03-09 all see the same week.
	week := []string{
		"2024-03-03", "2024-03-04", "2024-03-05", "2024-03-06",
		"2024-03-07", "2024-03-08", "2024-03-09",
	}
	for _, date := range week {
		hours, err := c.Reports.WeeklyHours(ctx, date)
		require.NoError(t, err)
		assert.Equal(t, 12.0, hours, "queried via %s", date)
	}

	// The neighboring weeks see nothing.
	hours, err := c.Reports.WeeklyHours(ctx, "2024-03-02")
	require.NoError(t, err)
	assert.Equal(t, 0.0, hours)

	hours, err = c.Reports.WeeklyHours(ctx, "2024-03-10")
	require.NoError(t, err)
	assert.Equal(t, 0.0, hours)
}

func TestMonthlyHoursIncludesMonthEdges(t *testing.T) {
	c := setupServices(t)
	ctx := context.Background()

	six := mustCreateLabel(t, c, domain.Label{Name: "16:00-22:00"})
	five := mustCreateLabel(t, c, domain.Label{Name: "17:00-22:00"})

	require.NoError(t, c.Schedule.Assign(ctx, "2024-02-01", six.ID))
	require.NoError(t, c.Schedule.Assign(ctx, "2024-02-29", five.ID)) // leap day
	require.NoError(t, c.Schedule.Assign(ctx, "2024-03-01", six.ID))  // outside

	hours, err := c.Reports.MonthlyHours(ctx, 2024, time.February)
	require.NoError(t, err)
	assert.Equal(t, 11.0, hours)
}

func TestMonthlyWorkedDayCount(t *testing.T) {
	c := setupServices(t)
	ctx := context.Background()

	six := mustCreateLabel(t, c, domain.Label{Name: "Shift", Duration: 6})
	two := mustCreateLabel(t, c, domain.Label{Name: "Briefing", Duration: 2})

	// Two labels on one day still count it once.
	require.NoError(t, c.Schedule.Assign(ctx, "2024-03-04", six.ID))
	require.NoError(t, c.Schedule.Assign(ctx, "2024-03-04", two.ID))
	require.NoError(t, c.Schedule.Assign(ctx, "2024-03-10", six.ID))

	days, err := c.Reports.MonthlyWorkedDayCount(ctx, 2024, time.March)
	require.NoError(t, err)
	assert.Equal(t, 2, days)
}

func TestEstimatedSalary(t *testing.T) {
	c := setupServices(t)
	ctx := context.Background()

	require.NoError(t, c.Settings.Save(ctx, domain.Settings{
		HourlyRate:   1200,
		TransportFee: 500,
	}))

	six := mustCreateLabel(t, c, domain.Label{Name: "16:00-22:00"})
	require.NoError(t, c.Schedule.Assign(ctx, "2024-03-04", six.ID))

	// round(6*1200 + 1*500) = 7700
	salary, err := c.Reports.EstimatedSalary(ctx, 2024, time.March)
	require.NoError(t, err)
	assert.Equal(t, 7700.0, salary)
}

func TestEstimatedSalaryRoundsFractionalHours(t *testing.T) {
	c := setupServices(t)
	ctx := context.Background()

	require.NoError(t, c.Settings.Save(ctx, domain.Settings{HourlyRate: 1111}))

	half := mustCreateLabel(t, c, domain.Label{Name: "Half", Duration: 4.5})
	require.NoError(t, c.Schedule.Assign(ctx, "2024-03-04", half.ID))

	// round(4.5*1111) = round(4999.5) = 5000
	salary, err := c.Reports.EstimatedSalary(ctx, 2024, time.March)
	require.NoError(t, err)
	assert.Equal(t, 5000.0, salary)
}

func TestWeeklyLimitViolated(t *testing.T) {
	c := setupServices(t)
	ctx := context.Background()

	require.NoError(t, c.Settings.Save(ctx, domain.Settings{
		WeeklyLimitHours:   40,
		WeeklyLimitEnabled: true,
	}))

	violated, err := c.Reports.WeeklyLimitViolated(ctx, 40)
	require.NoError(t, err)
	assert.False(t, violated, "equal to the limit is not a violation")

	violated, err = c.Reports.WeeklyLimitViolated(ctx, 40.5)
	require.NoError(t, err)
	assert.True(t, violated)

	require.NoError(t, c.Settings.Save(ctx, domain.Settings{
		WeeklyLimitHours:   40,
		WeeklyLimitEnabled: false,
	}))

	violated, err = c.Reports.WeeklyLimitViolated(ctx, 100)
	require.NoError(t, err)
	assert.False(t, violated, "disabled limit never flags")
}

func TestMonthSummary(t *testing.T) {
	c := setupServices(t)
	ctx := context.Background()

	six := mustCreateLabel(t, c, domain.Label{Name: "Shift", Duration: 6})
	require.NoError(t, c.Schedule.Assign(ctx, "2024-03-04", six.ID))
	require.NoError(t, c.Schedule.Assign(ctx, "2024-03-05", six.ID))

	// Enable the limit after assigning: two six-hour days already exceed 10h,
	// so the week of March 3rd must come back flagged.
	require.NoError(t, c.Settings.Save(ctx, domain.Settings{
		HourlyRate:         1200,
		TransportFee:       500,
		WeeklyLimitHours:   10,
		WeeklyLimitEnabled: true,
	}))

	summary, err := c.Reports.MonthSummary(ctx, 2024, time.March)
	require.NoError(t, err)

	assert.Equal(t, 2024, summary.Year)
	assert.Equal(t, time.March, summary.Month)
	assert.Equal(t, 12.0, summary.TotalHours)
	assert.Equal(t, 2, summary.WorkedDays)
	assert.Equal(t, 15400.0, summary.Salary) // round(12*1200 + 2*500)
	assert.True(t, summary.SalaryVisible)

	// March 2024 spans six Sunday-start weeks (Feb 25 through Mar 31).
	require.Len(t, summary.Weeks, 6)
	assert.Equal(t, "2024-02-25", summary.Weeks[0].StartDate)
	assert.Equal(t, "2024-03-31", summary.Weeks[5].StartDate)

	week := summary.Weeks[1] // week of March 3rd
	assert.Equal(t, "2024-03-03", week.StartDate)
	assert.Equal(t, 12.0, week.Hours)
	assert.True(t, week.OverLimit)
	assert.False(t, summary.Weeks[2].OverLimit)
}

func TestMonthSummarySalaryHiddenWhenUnconfigured(t *testing.T) {
	c := setupServices(t)
	ctx := context.Background()

	six := mustCreateLabel(t, c, domain.Label{Name: "Shift", Duration: 6})
	require.NoError(t, c.Schedule.Assign(ctx, "2024-03-04", six.ID))

	summary, err := c.Reports.MonthSummary(ctx, 2024, time.March)
	require.NoError(t, err)
	assert.False(t, summary.SalaryVisible)
	assert.Equal(t, 0.0, summary.Salary)
}

func TestMonthAssignmentsOrderAndStaleSkipping(t *testing.T) {
	c, repo := setupServicesWithRepo(t)
	ctx := context.Background()

	evening := mustCreateLabel(t, c, domain.Label{Name: "Evening", StartTime: "16:00", EndTime: "22:00"})
	office := mustCreateLabel(t, c, domain.Label{Name: "Office", Duration: 8})

	require.NoError(t, c.Schedule.Assign(ctx, "2024-03-10", office.ID))
	require.NoError(t, c.Schedule.Assign(ctx, "2024-03-04", evening.ID))
	require.NoError(t, c.Schedule.Assign(ctx, "2024-03-04", office.ID))

	// A label deleted behind the service's back leaves a stale reference,
	// which readers skip rather than fail on.
	require.NoError(t, repo.DeleteLabel(ctx, office.ID))

	assignments, err := c.Reports.MonthAssignments(ctx, 2024, time.March)
	require.NoError(t, err)
	require.Len(t, assignments, 1)
	assert.Equal(t, "2024-03-04", assignments[0].Date)
	assert.Equal(t, time.Monday, assignments[0].Weekday)
	assert.Equal(t, evening.ID, assignments[0].Label.ID)
	assert.Equal(t, "16:00 - 22:00", assignments[0].Label.DisplayName())
}

func TestMonthAssignmentsCalendarOrder(t *testing.T) {
	c := setupServices(t)
	ctx := context.Background()

	shift := mustCreateLabel(t, c, domain.Label{Name: "Shift", Duration: 6})

	// Assigned out of calendar order.
	require.NoError(t, c.Schedule.Assign(ctx, "2024-03-20", shift.ID))
	require.NoError(t, c.Schedule.Assign(ctx, "2024-03-01", shift.ID))
	require.NoError(t, c.Schedule.Assign(ctx, "2024-03-10", shift.ID))

	assignments, err := c.Reports.MonthAssignments(ctx, 2024, time.March)
	require.NoError(t, err)
	require.Len(t, assignments, 3)
	assert.Equal(t, "2024-03-01", assignments[0].Date)
	assert.Equal(t, "2024-03-10", assignments[1].Date)
	assert.Equal(t, "2024-03-20", assignments[2].Date)
}
