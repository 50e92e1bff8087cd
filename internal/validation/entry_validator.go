package validation

import (
	"time"

	"timesheet-manager/internal/domain"
)

// EntryValidator provides validation for time entry operations
type EntryValidator struct {
	validator *Validator
}

// NewEntryValidator creates a new time entry validator
func NewEntryValidator() *EntryValidator {
	return &EntryValidator{
		validator: NewValidator(),
	}
}

// NewEntryValidatorWith creates a time entry validator sharing an existing
// base validator (and its configuration)
func NewEntryValidatorWith(v *Validator) *EntryValidator {
	return &EntryValidator{
		validator: v,
	}
}

// ValidateEntryForAppend validates a time entry before it is appended to a
// timesheet
func (ev *EntryValidator) ValidateEntryForAppend(entry domain.TimeEntry) error {
	validationError := NewValidationError()

	// Validate date
	if entry.Date.IsZero() {
		validationError.AddRequiredError("date")
	} else if !ev.validator.IsReasonableDate(entry.Date) {
		validationError.AddInvalidValueError("date", entry.Date, "must be within reasonable date range")
	}

	// Validate job name
	trimmedJob := ev.validator.TrimAndValidateString(entry.JobName)
	if !ev.validator.IsNonEmptyString(trimmedJob) {
		validationError.AddRequiredError("job_name")
	} else {
		if !ev.validator.IsValidJobNameLength(trimmedJob) {
			validationError.AddInvalidLengthError("job_name", entry.JobName, 1, 255)
		}
		if !ev.validator.IsValidJobName(trimmedJob) {
			validationError.AddInvalidCharacterError("job_name", entry.JobName)
		}
	}

	// Validate hours
	if !ev.validator.IsValidHours(entry.Hours) {
		validationError.AddInvalidRangeError("hours", entry.Hours, "must be between 0 and 24")
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// ParseEntryDate parses and validates a date input string, returning the
// normalized calendar day
func (ev *EntryValidator) ParseEntryDate(raw string) (time.Time, error) {
	date, ok := ev.validator.ParseDate(raw)
	if !ok {
		validationError := NewValidationError()
		validationError.AddInvalidFormatError("date", raw, domain.DateKeyFormat+" or RFC3339")
		return time.Time{}, validationError
	}
	return date, nil
}
