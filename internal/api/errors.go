package api

import (
	"errors"
	"fmt"
)

// User-facing texts. These are the only two messages the form ever shows.
const (
	MsgMissingTrainNumber = "Please enter a train number"
	MsgFetchFailed        = "Failed to fetch data"
)

// Common errors
var (
	// ErrNotFound indicates the requested resource was not found
	ErrNotFound = errors.New("not found")

	// ErrInvalidRequest indicates the request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrServerError indicates a server-side error
	ErrServerError = errors.New("server error")

	// ErrTimeout indicates the request timed out or its context ended
	ErrTimeout = errors.New("request timed out")

	// ErrEmptyTrainNumber is matched by the validation error for blank input
	ErrEmptyTrainNumber = errors.New("train number is empty")
)

// APIError represents a non-OK status from the train-info endpoint
type APIError struct {
	StatusCode int
	Status     string
	Endpoint   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error %d: %s (endpoint: %s)", e.StatusCode, e.Status, e.Endpoint)
}

// Is implements errors.Is for APIError
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.StatusCode == 404
	case ErrServerError:
		return e.StatusCode >= 500
	case ErrInvalidRequest:
		return e.StatusCode >= 400 && e.StatusCode < 500
	}
	return false
}

// NewAPIError creates a new API error
func NewAPIError(statusCode int, status, endpoint string) *APIError {
	return &APIError{
		StatusCode: statusCode,
		Status:     status,
		Endpoint:   endpoint,
	}
}

// ValidationError represents a validation error for request parameters
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// Is implements errors.Is for ValidationError
func (e *ValidationError) Is(target error) bool {
	return target == ErrEmptyTrainNumber && e.Field == ParamTrainNumber
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// ErrMissingTrainNumber is returned for blank input; no request is made.
func ErrMissingTrainNumber() error {
	return NewValidationError(ParamTrainNumber, MsgMissingTrainNumber)
}

// FetchError wraps any transport failure or non-OK response.
type FetchError struct {
	Err error
}

func (e *FetchError) Error() string {
	if e.Err == nil {
		return MsgFetchFailed
	}
	return MsgFetchFailed + ": " + e.Err.Error()
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// NewFetchError wraps err as a fetch failure
func NewFetchError(err error) *FetchError {
	return &FetchError{Err: err}
}

// UserMessage maps an error to the inline text shown to the user.
// Validation errors keep their own text; everything else collapses to
// the generic fetch failure.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Message
	}
	return MsgFetchFailed
}

// IsValidation reports whether err is a ValidationError
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
