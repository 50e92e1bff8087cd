package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorTypeString(t *testing.T) {
	tests := []struct {
		errorType ErrorType
		expected  string
	}{
		{ErrorTypeValidation, "validation"},
		{ErrorTypeNotFound, "not_found"},
		{ErrorTypeDatabase, "database"},
		{ErrorTypeTimeout, "timeout"},
		{ErrorTypePermission, "permission"},
		{ErrorTypeNotMutable, "not_mutable"},
		{ErrorTypeDuplicate, "duplicate"},
		{ErrorTypeAlreadyCompleted, "already_completed"},
		{ErrorType(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.errorType.String())
		})
	}
}

func TestNewNotMutableError(t *testing.T) {
	err := NewNotMutableError("ts-1")

	assert.True(t, err.IsType(ErrorTypeNotMutable))
	assert.Equal(t, "NOT_MUTABLE", err.Code)
	assert.Contains(t, err.Error(), "ts-1")

	id, ok := err.GetContext("timesheet")
	assert.True(t, ok)
	assert.Equal(t, "ts-1", id)
}

func TestNewDuplicateWeekError(t *testing.T) {
	err := NewDuplicateWeekError("emp-1", "2024-06-03")

	assert.True(t, err.IsType(ErrorTypeDuplicate))
	assert.Equal(t, "DUPLICATE_WEEK", err.Code)
	assert.Contains(t, err.Message, "2024-06-03")
}

func TestNewAlreadyCompletedError(t *testing.T) {
	err := NewAlreadyCompletedError("ts-1")

	assert.True(t, err.IsType(ErrorTypeAlreadyCompleted))
	assert.Equal(t, "ALREADY_COMPLETED", err.Code)
}

func TestNewNotOwnerError(t *testing.T) {
	err := NewNotOwnerError("emp-2", "ts-1")

	assert.True(t, err.IsType(ErrorTypePermission))
	assert.Equal(t, "NOT_OWNER", err.Code)
}

func TestIsErrorType(t *testing.T) {
	err := NewNotFoundError("timesheet", "ts-1")

	assert.True(t, IsErrorType(err, ErrorTypeNotFound))
	assert.False(t, IsErrorType(err, ErrorTypeValidation))
	assert.False(t, IsErrorType(fmt.Errorf("plain"), ErrorTypeNotFound))
}

func TestErrorWrapping(t *testing.T) {
	cause := fmt.Errorf("disk full")
	err := NewDatabaseError("insert timesheet", cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "disk full")
}

func TestWrappedAppErrorDetection(t *testing.T) {
	inner := NewNotMutableError("ts-1")
	wrapped := fmt.Errorf("store: %w", inner)

	appErr, ok := AsAppError(wrapped)
	assert.True(t, ok)
	assert.True(t, appErr.IsType(ErrorTypeNotMutable))
	assert.True(t, IsErrorType(wrapped, ErrorTypeNotMutable))
}

func TestGetUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		contains string
	}{
		{
			name:     "not mutable",
			err:      NewNotMutableError("ts-1"),
			contains: "no longer be changed",
		},
		{
			name:     "already completed",
			err:      NewAlreadyCompletedError("ts-1"),
			contains: "already marked as completed",
		},
		{
			name:     "permission",
			err:      NewPermissionError("list all timesheets", "timesheets"),
			contains: "not allowed",
		},
		{
			name:     "timeout",
			err:      NewTimeoutError("append entry", nil),
			contains: "timed out",
		},
		{
			name:     "plain error passes through",
			err:      fmt.Errorf("boom"),
			contains: "boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, GetUserMessage(tt.err), tt.contains)
		})
	}
}

func TestGetErrorCode(t *testing.T) {
	assert.Equal(t, "DUPLICATE_WEEK", GetErrorCode(NewDuplicateWeekError("emp-1", "2024-06-03")))
	assert.Equal(t, "", GetErrorCode(fmt.Errorf("plain")))
}
