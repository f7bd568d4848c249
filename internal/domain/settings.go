package domain

// Settings holds the scheduler's process-wide configuration values. All
// fields are non-negative; zero is the default for anything unset.
type Settings struct {
	HourlyRate         float64
	TransportFee       float64
	WeeklyLimitHours   float64
	WeeklyLimitEnabled bool
	CopyHeader         string
	CopyFooter         string
}

// SalaryVisible reports whether a salary estimate is meaningful. The figure
// is suppressed when both the hourly rate and transport fee are zero.
func (s Settings) SalaryVisible() bool {
	return s.HourlyRate != 0 || s.TransportFee != 0
}

// WeeklyLimitViolated reports whether a weekly hour total breaks the
// configured cap. Totals equal to the limit are not a violation.
func (s Settings) WeeklyLimitViolated(weeklyHours float64) bool {
	return s.WeeklyLimitEnabled && weeklyHours > s.WeeklyLimitHours
}
