package validation

import (
	"regexp"
	"strings"
	"time"

	"workday/internal/domain"
)

// Validator provides common validation utilities
type Validator struct {
	hexColorRegex *regexp.Regexp
	clockRegex    *regexp.Regexp
}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{
		hexColorRegex: regexp.MustCompile(`^#[0-9a-fA-F]{6}$`),
		clockRegex:    regexp.MustCompile(`^([01]?\d|2[0-3]):[0-5]\d$`),
	}
}

// IsNonEmptyString checks if a string is not empty after trimming whitespace
func (v *Validator) IsNonEmptyString(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsValidStringLength checks if a string length is within the specified range
func (v *Validator) IsValidStringLength(s string, min, max int) bool {
	length := len(strings.TrimSpace(s))
	return length >= min && length <= max
}

// IsValidHexColor checks if a string is a #RRGGBB color value
func (v *Validator) IsValidHexColor(color string) bool {
	return v.hexColorRegex.MatchString(color)
}

// IsValidClock checks if a string is an HH:MM clock value (00:00 to 23:59)
func (v *Validator) IsValidClock(clock string) bool {
	return v.clockRegex.MatchString(clock)
}

// IsNonNegative checks if a numeric value is zero or greater
func (v *Validator) IsNonNegative(value float64) bool {
	return value >= 0
}

// IsValidLabelID checks if a label ID is valid (positive)
func (v *Validator) IsValidLabelID(id int64) bool {
	return id > 0
}

// IsValidDateKey checks if a string is a zero-padded YYYY-MM-DD calendar date
func (v *Validator) IsValidDateKey(key string) bool {
	if len(key) != len(domain.DateKeyFormat) {
		return false
	}
	t, err := domain.ParseDateKey(key)
	if err != nil {
		return false
	}
	// Reject dates that only parse via normalization (e.g. 2024-02-30).
	return domain.FormatDateKey(t) == key
}

// IsValidMonthKey checks if a string is a YYYY-MM month key
func (v *Validator) IsValidMonthKey(key string) bool {
	_, err := time.Parse("2006-01", key)
	return err == nil && len(key) == len("2006-01")
}

// TrimAndValidateString trims whitespace and returns the cleaned string
func (v *Validator) TrimAndValidateString(s string) string {
	return strings.TrimSpace(s)
}
