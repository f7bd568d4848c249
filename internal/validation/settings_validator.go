package validation

import (
	"workday/internal/domain"
)

// SettingsValidator provides validation for scheduler settings
type SettingsValidator struct {
	validator *Validator
}

// NewSettingsValidator creates a new settings validator
func NewSettingsValidator() *SettingsValidator {
	return &SettingsValidator{
		validator: NewValidator(),
	}
}

// ValidateSettings validates a full settings record
func (sv *SettingsValidator) ValidateSettings(settings domain.Settings) error {
	validationError := NewValidationError()

	if !sv.validator.IsNonNegative(settings.HourlyRate) {
		validationError.AddInvalidValueError("hourly_rate", settings.HourlyRate, "must be zero or greater")
	}
	if !sv.validator.IsNonNegative(settings.TransportFee) {
		validationError.AddInvalidValueError("transport_fee", settings.TransportFee, "must be zero or greater")
	}
	if !sv.validator.IsNonNegative(settings.WeeklyLimitHours) {
		validationError.AddInvalidValueError("weekly_limit_hours", settings.WeeklyLimitHours, "must be zero or greater")
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}
