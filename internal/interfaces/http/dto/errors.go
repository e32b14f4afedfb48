package dto

import "net/http"

// Domain error codes surfaced over HTTP
const (
	// ErrCodeNotFound is used when a resource is not found
	ErrCodeNotFound = "NOT_FOUND"
	// ErrCodeAlreadyExists is used when trying to create a duplicate resource
	ErrCodeAlreadyExists = "ALREADY_EXISTS"
	// ErrCodeInvalidInput is used for invalid input data
	ErrCodeInvalidInput = "INVALID_INPUT"
	// ErrCodeInvalidState is used when an operation is invalid for the current state
	ErrCodeInvalidState = "INVALID_STATE"
	// ErrCodeInvalidTransition is used when a lifecycle transition is not allowed
	ErrCodeInvalidTransition = "INVALID_TRANSITION"
	// ErrCodeMissingField is used when a required field is missing or blank
	ErrCodeMissingField = "MISSING_FIELD"
	// ErrCodeUnauthorized is used when credentials are missing or wrong
	ErrCodeUnauthorized = "UNAUTHORIZED"
	// ErrCodeInternal is used for unexpected failures
	ErrCodeInternal = "INTERNAL_ERROR"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeNotFound:          http.StatusNotFound,
	ErrCodeAlreadyExists:     http.StatusConflict,
	ErrCodeInvalidInput:      http.StatusBadRequest,
	ErrCodeInvalidState:      http.StatusBadRequest,
	ErrCodeInvalidTransition: http.StatusBadRequest,
	ErrCodeMissingField:      http.StatusBadRequest,
	ErrCodeUnauthorized:      http.StatusUnauthorized,
	ErrCodeInternal:          http.StatusInternalServerError,
}

// GetHTTPStatus returns the HTTP status code for an error code.
// Unknown codes map to 500 Internal Server Error.
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
