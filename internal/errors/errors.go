package errors

import (
	"errors"
	"fmt"
)

// NewValidationError creates a new validation error
func NewValidationError(message string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeValidation,
		Message: message,
		Code:    "VALIDATION_FAILED",
		Cause:   cause,
		Context: make(map[string]interface{}),
	}
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(resource string, identifier string) *AppError {
	return &AppError{
		Type:    ErrorTypeNotFound,
		Message: fmt.Sprintf("%s not found: %s", resource, identifier),
		Code:    "NOT_FOUND",
		Context: map[string]interface{}{
			"resource":   resource,
			"identifier": identifier,
		},
	}
}

// NewDatabaseError creates a new database error
func NewDatabaseError(operation string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeDatabase,
		Message: fmt.Sprintf("database operation failed: %s", operation),
		Code:    "DATABASE_ERROR",
		Cause:   cause,
		Context: map[string]interface{}{
			"operation": operation,
		},
	}
}

// NewInvalidInputError creates a new invalid input error
func NewInvalidInputError(field string, value interface{}, reason string) *AppError {
	return &AppError{
		Type:    ErrorTypeInvalidInput,
		Message: fmt.Sprintf("invalid input for %s: %s", field, reason),
		Code:    "INVALID_INPUT",
		Context: map[string]interface{}{
			"field":  field,
			"value":  value,
			"reason": reason,
		},
	}
}

// NewTimeoutError creates a new timeout error
func NewTimeoutError(operation string, timeout interface{}) *AppError {
	return &AppError{
		Type:    ErrorTypeTimeout,
		Message: fmt.Sprintf("operation timed out: %s", operation),
		Code:    "TIMEOUT",
		Context: map[string]interface{}{
			"operation": operation,
			"timeout":   timeout,
		},
	}
}

// NewPermissionError creates a new permission error
func NewPermissionError(operation string, resource string) *AppError {
	return &AppError{
		Type:    ErrorTypePermission,
		Message: fmt.Sprintf("permission denied for %s on %s", operation, resource),
		Code:    "PERMISSION_DENIED",
		Context: map[string]interface{}{
			"operation": operation,
			"resource":  resource,
		},
	}
}

// NewNotOwnerError creates a permission error for a caller that does not own the timesheet
func NewNotOwnerError(callerID string, timesheetID string) *AppError {
	return &AppError{
		Type:    ErrorTypePermission,
		Message: fmt.Sprintf("caller %s does not own timesheet %s", callerID, timesheetID),
		Code:    "NOT_OWNER",
		Context: map[string]interface{}{
			"caller":    callerID,
			"timesheet": timesheetID,
		},
	}
}

// NewNotMutableError creates an error for a write attempted on a completed timesheet
func NewNotMutableError(timesheetID string) *AppError {
	return &AppError{
		Type:    ErrorTypeNotMutable,
		Message: fmt.Sprintf("timesheet %s is completed and cannot be modified", timesheetID),
		Code:    "NOT_MUTABLE",
		Context: map[string]interface{}{
			"timesheet": timesheetID,
		},
	}
}

// NewDuplicateWeekError creates an error for a second timesheet on the same owner/week
func NewDuplicateWeekError(ownerID string, weekStart string) *AppError {
	return &AppError{
		Type:    ErrorTypeDuplicate,
		Message: fmt.Sprintf("a timesheet for week %s already exists", weekStart),
		Code:    "DUPLICATE_WEEK",
		Context: map[string]interface{}{
			"owner":      ownerID,
			"week_start": weekStart,
		},
	}
}

// NewAlreadyCompletedError creates an error for completing an already-completed timesheet
func NewAlreadyCompletedError(timesheetID string) *AppError {
	return &AppError{
		Type:    ErrorTypeAlreadyCompleted,
		Message: fmt.Sprintf("timesheet %s is already completed", timesheetID),
		Code:    "ALREADY_COMPLETED",
		Context: map[string]interface{}{
			"timesheet": timesheetID,
		},
	}
}

// WrapError wraps an existing error with additional context
func WrapError(err error, errorType ErrorType, message string) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
		Code:    errorType.String(),
		Cause:   err,
		Context: make(map[string]interface{}),
	}
}

// IsAppError checks if the error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// AsAppError converts an error to an AppError if possible
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsErrorType checks if the error is of the specified type
func IsErrorType(err error, errorType ErrorType) bool {
	if appErr, ok := AsAppError(err); ok {
		return appErr.IsType(errorType)
	}
	return false
}

// GetErrorCode returns the structured code for an error, or empty string
func GetErrorCode(err error) string {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code
	}
	return ""
}

// GetUserMessage returns a user-friendly error message
func GetUserMessage(err error) string {
	appErr, ok := AsAppError(err)
	if !ok {
		return err.Error()
	}

	switch appErr.Type {
	case ErrorTypeValidation, ErrorTypeInvalidInput:
		return appErr.Message
	case ErrorTypeNotFound:
		return appErr.Message
	case ErrorTypeNotMutable:
		return "this timesheet has been completed and can no longer be changed"
	case ErrorTypeAlreadyCompleted:
		return "this timesheet was already marked as completed"
	case ErrorTypeDuplicate:
		return appErr.Message
	case ErrorTypePermission:
		return "you are not allowed to perform this operation"
	case ErrorTypeTimeout:
		return "the operation timed out, please try again"
	case ErrorTypeDatabase:
		return "a storage error occurred, please try again"
	default:
		return appErr.Message
	}
}
