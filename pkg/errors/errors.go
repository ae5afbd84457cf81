package errors

import (
	"errors"
	"fmt"
	"net/http"
)

type AppError struct {
	Code    string
	Message string
	Status  int
	Err     error
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code string, message string, status int, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Status:  status,
		Err:     err,
	}
}

func NotFound(resource string, err error) *AppError {
	return &AppError{
		Code:    "NOT_FOUND",
		Message: fmt.Sprintf("%s not found", resource),
		Status:  http.StatusNotFound,
		Err:     err,
	}
}

func BadRequest(message string, err error) *AppError {
	return &AppError{
		Code:    "BAD_REQUEST",
		Message: message,
		Status:  http.StatusBadRequest,
		Err:     err,
	}
}

func Unauthorized(message string, err error) *AppError {
	return &AppError{
		Code:    "UNAUTHORIZED",
		Message: message,
		Status:  http.StatusUnauthorized,
		Err:     err,
	}
}

func Internal(message string, err error) *AppError {
	return &AppError{
		Code:    "INTERNAL_ERROR",
		Message: message,
		Status:  http.StatusInternalServerError,
		Err:     err,
	}
}

// Remote mutation taxonomy. Each step of a product mutation fails with its
// own code so a partially-applied chain is observable from the outside.

func RemoteCreate(message string, err error) *AppError {
	return &AppError{
		Code:    "REMOTE_CREATE_FAILED",
		Message: message,
		Status:  http.StatusBadGateway,
		Err:     err,
	}
}

func RemoteUpdate(message string, err error) *AppError {
	return &AppError{
		Code:    "REMOTE_UPDATE_FAILED",
		Message: message,
		Status:  http.StatusBadGateway,
		Err:     err,
	}
}

func VariantUpdate(message string, err error) *AppError {
	return &AppError{
		Code:    "VARIANT_UPDATE_FAILED",
		Message: message,
		Status:  http.StatusBadGateway,
		Err:     err,
	}
}

func ImageAttach(message string, err error) *AppError {
	return &AppError{
		Code:    "IMAGE_ATTACH_FAILED",
		Message: message,
		Status:  http.StatusBadGateway,
		Err:     err,
	}
}

func RemoteDelete(message string, err error) *AppError {
	return &AppError{
		Code:    "REMOTE_DELETE_FAILED",
		Message: message,
		Status:  http.StatusBadGateway,
		Err:     err,
	}
}

func UnsupportedMethod(method string) *AppError {
	return &AppError{
		Code:    "UNSUPPORTED_METHOD",
		Message: fmt.Sprintf("method %s is not supported", method),
		Status:  http.StatusMethodNotAllowed,
		Err:     nil,
	}
}

// DataError marks a remote payload that violates an invariant we rely on,
// e.g. a product listed without its default variant.
func DataError(message string) *AppError {
	return &AppError{
		Code:    "DATA_ERROR",
		Message: message,
		Status:  http.StatusBadGateway,
		Err:     nil,
	}
}

func Is(err error, code string) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}
