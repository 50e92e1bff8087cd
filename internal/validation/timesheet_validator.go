package validation

import (
	"time"
)

// TimesheetValidator provides validation for timesheet operations
type TimesheetValidator struct {
	validator *Validator
}

// NewTimesheetValidator creates a new timesheet validator
func NewTimesheetValidator() *TimesheetValidator {
	return &TimesheetValidator{
		validator: NewValidator(),
	}
}

// NewTimesheetValidatorWith creates a timesheet validator sharing an existing
// base validator (and its configuration)
func NewTimesheetValidatorWith(v *Validator) *TimesheetValidator {
	return &TimesheetValidator{
		validator: v,
	}
}

// ValidateTimesheetID validates a timesheet identifier
func (tv *TimesheetValidator) ValidateTimesheetID(id string) error {
	if !tv.validator.IsValidID(id) {
		validationError := NewValidationError()
		validationError.AddInvalidValueError("timesheet_id", id, "must be a valid UUID")
		return validationError
	}
	return nil
}

// ValidateWeekStart validates a week start date for timesheet creation
func (tv *TimesheetValidator) ValidateWeekStart(weekStart time.Time) error {
	validationError := NewValidationError()

	if weekStart.IsZero() {
		validationError.AddRequiredError("week_start")
	} else if !tv.validator.IsReasonableDate(weekStart) {
		validationError.AddInvalidValueError("week_start", weekStart, "must be within reasonable date range")
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// ParseWeekStart parses and validates a week start input string
func (tv *TimesheetValidator) ParseWeekStart(raw string) (time.Time, error) {
	weekStart, ok := tv.validator.ParseDate(raw)
	if !ok {
		validationError := NewValidationError()
		validationError.AddInvalidFormatError("week_start", raw, "2006-01-02 or RFC3339")
		return time.Time{}, validationError
	}
	if err := tv.ValidateWeekStart(weekStart); err != nil {
		return time.Time{}, err
	}
	return weekStart, nil
}
