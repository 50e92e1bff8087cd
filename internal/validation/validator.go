package validation

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"timesheet-manager/internal/config"
	"timesheet-manager/internal/domain"
)

// entryDateFormats are the accepted input encodings for entry and week dates.
// Day-granularity dates are canonical; RFC3339 timestamps are accepted and
// truncated to their calendar day.
var entryDateFormats = []string{
	domain.DateKeyFormat,
	time.RFC3339,
}

// Validator provides common validation utilities
type Validator struct {
	jobNameChars *regexp.Regexp
	config       *config.Config
}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{
		jobNameChars: regexp.MustCompile(`^[a-zA-Z0-9 \-_.,!?()]+$`),
		config:       nil, // Use defaults
	}
}

// NewValidatorWithConfig creates a new validator instance with configuration
func NewValidatorWithConfig(cfg *config.Config) *Validator {
	v := NewValidator()
	v.config = cfg
	return v
}

// IsNonEmptyString checks if a string is not empty after trimming whitespace
func (v *Validator) IsNonEmptyString(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsValidID checks if an identifier is a well-formed UUID
func (v *Validator) IsValidID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// IsValidHours checks if an hour value is within the per-entry bounds
func (v *Validator) IsValidHours(hours float64) bool {
	return hours >= domain.MinEntryHours && hours <= domain.MaxEntryHours
}

// IsValidJobNameLength checks if a job name length is within configured limits
func (v *Validator) IsValidJobNameLength(name string) bool {
	length := len(strings.TrimSpace(name))
	return length >= v.getJobNameMinLength() && length <= v.getJobNameMaxLength()
}

// IsValidJobName checks if a job name contains only allowed characters
func (v *Validator) IsValidJobName(name string) bool {
	return v.jobNameChars.MatchString(name)
}

// IsReasonableDate checks if a date is within reasonable bounds
func (v *Validator) IsReasonableDate(t time.Time) bool {
	now := time.Now()
	// Allow dates from 10 years ago to 1 year in the future
	tenYearsAgo := now.AddDate(-10, 0, 0)
	oneYearFromNow := now.AddDate(1, 0, 0)

	return t.After(tenYearsAgo) && t.Before(oneYearFromNow)
}

// ParseDate parses a date input in any accepted encoding, normalized to its
// UTC calendar day
func (v *Validator) ParseDate(s string) (time.Time, bool) {
	trimmed := strings.TrimSpace(s)
	for _, format := range entryDateFormats {
		if t, err := time.Parse(format, trimmed); err == nil {
			return domain.NormalizeDate(t), true
		}
	}
	return time.Time{}, false
}

// TrimAndValidateString trims whitespace and returns the cleaned string
func (v *Validator) TrimAndValidateString(s string) string {
	return strings.TrimSpace(s)
}

// getJobNameMinLength returns configured minimum job name length or default
func (v *Validator) getJobNameMinLength() int {
	if v.config != nil {
		return v.config.Validation.JobNameMinLength
	}
	return 1
}

// getJobNameMaxLength returns configured maximum job name length or default
func (v *Validator) getJobNameMaxLength() int {
	if v.config != nil {
		return v.config.Validation.JobNameMaxLength
	}
	return 255
}
