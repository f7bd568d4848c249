package validation

import (
	"workday/internal/domain"
)

// LabelValidator provides validation for Label-related operations
type LabelValidator struct {
	validator *Validator
}

// NewLabelValidator creates a new label validator
func NewLabelValidator() *LabelValidator {
	return &LabelValidator{
		validator: NewValidator(),
	}
}

// ValidateName validates a label display name
func (lv *LabelValidator) ValidateName(name string) error {
	validationError := NewValidationError()

	trimmedName := lv.validator.TrimAndValidateString(name)
	if !lv.validator.IsNonEmptyString(trimmedName) {
		validationError.AddRequiredError("name")
		return validationError
	}

	if !lv.validator.IsValidStringLength(trimmedName, 1, 100) {
		validationError.AddInvalidLengthError("name", trimmedName, 1, 100)
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// ValidateLabel validates a domain.Label for creation or update
func (lv *LabelValidator) ValidateLabel(label domain.Label) error {
	validationError := NewValidationError()

	if nameErr := lv.ValidateName(label.Name); nameErr != nil {
		if nameValidationErr, ok := nameErr.(*ValidationError); ok {
			validationError.Errors = append(validationError.Errors, nameValidationErr.Errors...)
		}
	}

	if label.Color != "" && !lv.validator.IsValidHexColor(label.Color) {
		validationError.AddInvalidFormatError("color", label.Color, "#RRGGBB")
	}

	if !lv.validator.IsNonNegative(label.Duration) {
		validationError.AddInvalidValueError("duration", label.Duration, "must be zero or greater")
	}

	if label.StartTime != "" && !lv.validator.IsValidClock(label.StartTime) {
		validationError.AddInvalidFormatError("start_time", label.StartTime, "HH:MM")
	}
	if label.EndTime != "" && !lv.validator.IsValidClock(label.EndTime) {
		validationError.AddInvalidFormatError("end_time", label.EndTime, "HH:MM")
	}

	// Clock fields only make a range together.
	if (label.StartTime == "") != (label.EndTime == "") {
		validationError.AddInvalidValueError("end_time", label.EndTime, "start and end times must be set together")
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// ValidateLabelID validates a label ID
func (lv *LabelValidator) ValidateLabelID(id int64) error {
	if !lv.validator.IsValidLabelID(id) {
		validationError := NewValidationError()
		validationError.AddInvalidValueError("label_id", id, "must be a positive integer")
		return validationError
	}
	return nil
}

// ValidateDateKey validates a calendar-date key
func (lv *LabelValidator) ValidateDateKey(key string) error {
	if !lv.validator.IsValidDateKey(key) {
		validationError := NewValidationError()
		validationError.AddInvalidFormatError("date", key, "YYYY-MM-DD")
		return validationError
	}
	return nil
}
