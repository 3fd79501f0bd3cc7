// Package errors defines the application error contract shared by the
// use-case layer and the HTTP delivery.
package errors

import (
	"net/http"

	"fleetops/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Region selection
	ErrRegionUnknown = NewBaseError(
		http.StatusBadRequest,
		"REGION_UNKNOWN",
		"The selected country/region is not in the supported set",
		"",
	)

	// Location catalog
	ErrLocationNotFound = NewBaseError(
		http.StatusNotFound,
		"LOCATION_NOT_FOUND",
		"The referenced location does not exist",
		"",
	)

	ErrLocationInUse = NewBaseError(
		http.StatusConflict,
		"LOCATION_IN_USE",
		"The location is part of the active route draft and cannot be deleted",
		"",
	)

	ErrLocationSaveFailed = NewBaseError(
		http.StatusInternalServerError,
		"LOCATION_SAVE_FAILED",
		"Saving the location failed; nothing was changed",
		"",
	)

	ErrLocationDeleteFailed = NewBaseError(
		http.StatusInternalServerError,
		"LOCATION_DELETE_FAILED",
		"Deleting the location failed; nothing was changed",
		"",
	)

	// Route workflow
	ErrDraftFrozen = NewBaseError(
		http.StatusConflict,
		"DRAFT_FROZEN",
		"The load is confirmed; start a new route to make changes",
		"",
	)

	ErrTooFewStops = NewBaseError(
		http.StatusUnprocessableEntity,
		"TOO_FEW_STOPS",
		"At least three stops are required before optimizing",
		"",
	)

	ErrOptimizeInFlight = NewBaseError(
		http.StatusConflict,
		"OPTIMIZE_IN_FLIGHT",
		"An optimization is already running for this draft",
		"",
	)

	ErrOptimizationFailed = NewBaseError(
		http.StatusBadGateway,
		"OPTIMIZATION_FAILED",
		"The route optimizer did not return a result; the draft is unchanged",
		"",
	)

	ErrNotOptimized = NewBaseError(
		http.StatusUnprocessableEntity,
		"NOT_OPTIMIZED",
		"The draft must be optimized before the load can be confirmed",
		"",
	)

	ErrLoadNotConfirmed = NewBaseError(
		http.StatusUnprocessableEntity,
		"LOAD_NOT_CONFIRMED",
		"The load must be confirmed before the route can be saved",
		"",
	)

	ErrSaveInFlight = NewBaseError(
		http.StatusConflict,
		"SAVE_IN_FLIGHT",
		"A save is already running for this draft",
		"",
	)

	ErrRouteSaveFailed = NewBaseError(
		http.StatusInternalServerError,
		"ROUTE_SAVE_FAILED",
		"Persisting the route failed; the confirmed draft is unchanged",
		"",
	)

	ErrStaleResult = NewBaseError(
		http.StatusConflict,
		"STALE_RESULT",
		"The result belonged to a discarded draft and was ignored",
		"",
	)

	// History / export
	ErrHistoryFetchFailed = NewBaseError(
		http.StatusBadGateway,
		"HISTORY_FETCH_FAILED",
		"Fetching route history failed",
		"",
	)

	ErrExportFailed = NewBaseError(
		http.StatusBadGateway,
		"EXPORT_FAILED",
		"Exporting the records failed",
		"",
	)

	// Authentication
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Email or password is incorrect",
		"",
	)

	ErrTokenGeneration = NewBaseError(
		http.StatusInternalServerError,
		"TOKEN_GENERATION_FAILED",
		"Issuing the access token failed",
		"",
	)

	// Generic database failure
	ErrDatabaseExecute = NewBaseError(
		http.StatusInternalServerError,
		"DATABASE_EXECUTE_FAILED",
		"A database operation failed",
		"",
	)
)

// NewDatabaseExecuteError wraps a low-level database error into an AppError
// while keeping the original message as details.
func NewDatabaseExecuteError(err error, message string) *BaseError {
	return ErrDatabaseExecute.WithDetails(message + ": " + err.Error())
}
