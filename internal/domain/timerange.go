package domain

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

const minutesPerDay = 24 * 60

// timeRangePattern matches shift names like "16:00 - 22:00", "9:30~17:00" or
// "１６：００-２２：００" (full-width colon accepted, separator '-' or '~').
var timeRangePattern = regexp.MustCompile(`(\d{1,2})[:：](\d{2})\s*[-~]\s*(\d{1,2})[:：](\d{2})`)

// TimeRange is a start/end pair in minutes since midnight. EndMinute may
// exceed 1440 when the range wraps past midnight.
type TimeRange struct {
	StartMinute int
	EndMinute   int
}

// ParseTimeRange extracts a time range from free text. It returns nil when the
// text contains no recognizable range; callers treat that as "no derivable
// range", not as an error.
func ParseTimeRange(text string) *TimeRange {
	m := timeRangePattern.FindStringSubmatch(text)
	if m == nil {
		return nil
	}

	startHour, _ := strconv.Atoi(m[1])
	startMinute, _ := strconv.Atoi(m[2])
	endHour, _ := strconv.Atoi(m[3])
	endMinute, _ := strconv.Atoi(m[4])

	start := startHour*60 + startMinute
	end := endHour*60 + endMinute
	if end < start {
		end += minutesPerDay // overnight shift
	}

	return &TimeRange{StartMinute: start, EndMinute: end}
}

// RangeFromClocks builds a time range from explicit "HH:MM" start and end
// fields. The end clock wraps to the next day when it falls before the start.
// Returns nil unless both fields are populated.
func RangeFromClocks(startClock, endClock string) *TimeRange {
	if startClock == "" || endClock == "" {
		return nil
	}
	start := ClockToMinutes(startClock, 0)
	end := ClockToMinutes(endClock, start)
	return &TimeRange{StartMinute: start, EndMinute: end}
}

// ClockToMinutes converts an "HH:MM" clock string to minutes since midnight.
// When referenceStart is positive and the clock falls before it, the value is
// shifted by one day so overnight end times sort after their start.
func ClockToMinutes(clock string, referenceStart int) int {
	if clock == "" {
		return 0
	}
	parts := strings.SplitN(clock, ":", 2)
	if len(parts) != 2 {
		return 0
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0
	}

	total := hours*60 + minutes
	if referenceStart > 0 && total < referenceStart {
		total += minutesPerDay
	}
	return total
}

// Overlaps reports whether two ranges intersect on a half-open interval basis.
// Touching endpoints do not count as an overlap.
func (r TimeRange) Overlaps(other TimeRange) bool {
	return r.StartMinute < other.EndMinute && r.EndMinute > other.StartMinute
}

// Hours returns the span of the range in hours, rounded to one decimal place.
// A value of zero or less means no duration could be derived.
func (r TimeRange) Hours() float64 {
	return RoundHours(float64(r.EndMinute-r.StartMinute) / 60)
}

// DurationFromText parses a duration in hours out of free text containing a
// time range, returning 0 when none is derivable.
func DurationFromText(text string) float64 {
	r := ParseTimeRange(text)
	if r == nil {
		return 0
	}
	hours := r.Hours()
	if hours <= 0 {
		return 0
	}
	return hours
}

// RoundHours rounds an hour value to one decimal place.
func RoundHours(hours float64) float64 {
	return math.Round(hours*10) / 10
}
