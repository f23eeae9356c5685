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
	ErrUnknown       ErrorCode = "UNKNOWN"
	ErrInternal      ErrorCode = "INTERNAL"
	ErrInvalidInput  ErrorCode = "INVALID_INPUT"
	ErrNotFound      ErrorCode = "NOT_FOUND"
	ErrAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// Help errors
	ErrUnknownTopic ErrorCode = "UNKNOWN_TOPIC"

	// Card errors
	ErrUnknownCard ErrorCode = "UNKNOWN_CARD"

	// Container errors
	ErrContainerRange ErrorCode = "CONTAINER_RANGE"
	ErrContainerEmpty ErrorCode = "CONTAINER_EMPTY"

	// Supply errors
	ErrUnknownLayout ErrorCode = "UNKNOWN_LAYOUT"
	ErrSupplyBuild   ErrorCode = "SUPPLY_BUILD"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Compendium errors
	ErrCompendiumWrite ErrorCode = "COMPENDIUM_WRITE"
)

// GameError represents a structured error with code and details
type GameError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *GameError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *GameError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *GameError) Is(target error) bool {
	var targetErr *GameError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new GameError with the given code and message
func New(code ErrorCode, message string) *GameError {
	return &GameError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new GameError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *GameError {
	return &GameError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a GameError
func Wrap(err error, code ErrorCode, message string) *GameError {
	if err == nil {
		return nil
	}
	return &GameError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *GameError {
	if err == nil {
		return nil
	}
	return &GameError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *GameError) WithDetail(key string, value interface{}) *GameError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *GameError) WithDetails(details map[string]interface{}) *GameError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// AsGameError returns the GameError in err's chain, if any
func AsGameError(err error) (*GameError, bool) {
	var gameErr *GameError
	if errors.As(err, &gameErr) {
		return gameErr, true
	}
	return nil, false
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var gameErr *GameError
	if errors.As(err, &gameErr) {
		return gameErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a GameError
func GetErrorCode(err error) ErrorCode {
	var gameErr *GameError
	if errors.As(err, &gameErr) {
		return gameErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a GameError
func GetErrorDetails(err error) map[string]interface{} {
	var gameErr *GameError
	if errors.As(err, &gameErr) {
		return gameErr.Details
	}
	return nil
}
