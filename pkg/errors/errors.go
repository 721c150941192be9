package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrNotFound     ErrorCode = "NOT_FOUND"

	// Catalog errors
	ErrConfigLoad       ErrorCode = "CONFIG_LOAD"
	ErrConfigParse      ErrorCode = "CONFIG_PARSE"
	ErrPackEntryInvalid ErrorCode = "PACK_ENTRY_INVALID"
	ErrPackNotFound     ErrorCode = "PACK_NOT_FOUND"

	// Mapping errors
	ErrMappingNotFound ErrorCode = "MAPPING_NOT_FOUND"
	ErrMappingParse    ErrorCode = "MAPPING_PARSE"
	ErrMappingEmpty    ErrorCode = "MAPPING_EMPTY"

	// Download errors
	ErrIconSpecInvalid ErrorCode = "ICON_SPEC_INVALID"
	ErrFetchFailed     ErrorCode = "FETCH_FAILED"
	ErrEmptyBody       ErrorCode = "EMPTY_BODY"
	ErrFileWrite       ErrorCode = "FILE_WRITE"
	ErrCancelled       ErrorCode = "CANCELLED"

	// Backup errors
	ErrNoBackup     ErrorCode = "NO_BACKUP"
	ErrBackupCopy   ErrorCode = "BACKUP_COPY"
	ErrDirCreate    ErrorCode = "DIR_CREATE"
	ErrSettingsLoad ErrorCode = "SETTINGS_LOAD"
	ErrSettingsSave ErrorCode = "SETTINGS_SAVE"
)

// SwapError represents a structured error with code and details
type SwapError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *SwapError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *SwapError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *SwapError) Is(target error) bool {
	var targetErr *SwapError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new SwapError with the given code and message
func New(code ErrorCode, message string) *SwapError {
	return &SwapError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new SwapError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *SwapError {
	return &SwapError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a SwapError
func Wrap(err error, code ErrorCode, message string) *SwapError {
	if err == nil {
		return nil
	}
	return &SwapError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *SwapError {
	if err == nil {
		return nil
	}
	return &SwapError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail key-value pair to the error
func (e *SwapError) WithDetail(key string, value interface{}) *SwapError {
	e.Details[key] = value
	return e
}

// GetCode extracts the error code from an error, returning ErrUnknown
// for errors that are not SwapErrors
func GetCode(err error) ErrorCode {
	var swapErr *SwapError
	if errors.As(err, &swapErr) {
		return swapErr.Code
	}
	return ErrUnknown
}

// IsCode reports whether err carries the given code
func IsCode(err error, code ErrorCode) bool {
	return GetCode(err) == code
}
