package services

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes surfaced to callers. Availability and identity conflicts carry
// enough detail to adjust the request; store failures are never retried.
const (
	CodeValidation       = "VALIDATION_ERROR"
	CodeCapacityExceeded = "CAPACITY_EXCEEDED"
	CodeRoomUnavailable  = "ROOM_UNAVAILABLE"
	CodeDateBlocked      = "DATE_BLOCKED"
	CodeIdentityConflict = "IDENTITY_CONFLICT"
	CodeNotFound         = "NOT_FOUND"
	CodeUnauthorized     = "UNAUTHORIZED"
	CodeStore            = "STORE_ERROR"
)

type AppError struct {
	Code       string         `json:"code"`
	Message    string         `json:"message"`
	HTTPStatus int            `json:"-"`
	Details    map[string]any `json:"details,omitempty"`
	Err        error          `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func ErrValidation(message string) *AppError {
	return &AppError{
		Code:       CodeValidation,
		Message:    message,
		HTTPStatus: http.StatusBadRequest,
	}
}

func ErrCapacityExceeded(date string, remaining int) *AppError {
	return &AppError{
		Code:       CodeCapacityExceeded,
		Message:    "full day capacity exceeded for this date",
		HTTPStatus: http.StatusConflict,
		Details: map[string]any{
			"date":               date,
			"available_capacity": remaining,
		},
	}
}

func ErrRoomUnavailable(roomID uint, roomName string) *AppError {
	return &AppError{
		Code:       CodeRoomUnavailable,
		Message:    "room not available for the selected dates",
		HTTPStatus: http.StatusConflict,
		Details: map[string]any{
			"room_id":   roomID,
			"room_name": roomName,
		},
	}
}

func ErrDateBlocked(date string) *AppError {
	return &AppError{
		Code:       CodeDateBlocked,
		Message:    "date is blocked for bookings",
		HTTPStatus: http.StatusConflict,
		Details:    map[string]any{"date": date},
	}
}

func ErrIdentityConflict(document, storedName string) *AppError {
	return &AppError{
		Code:       CodeIdentityConflict,
		Message:    "document is registered under a different name",
		HTTPStatus: http.StatusConflict,
		Details: map[string]any{
			"id_document": document,
			"stored_name": storedName,
		},
	}
}

func ErrNotFound(resource string) *AppError {
	return &AppError{
		Code:       CodeNotFound,
		Message:    fmt.Sprintf("%s not found", resource),
		HTTPStatus: http.StatusNotFound,
	}
}

func ErrStore(err error) *AppError {
	return &AppError{
		Code:       CodeStore,
		Message:    "storage operation failed",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// AsAppError extracts an *AppError from err, wrapping unknown errors as
// store failures so controllers always have a code and status to report.
func AsAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return ErrStore(err)
}
