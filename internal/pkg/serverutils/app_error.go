package serverutils

import (
	"github.com/gofiber/fiber/v2"
)

// AppError is the error type controllers and services return when they want a
// specific status code and body on the wire. Anything else that escapes a
// handler becomes a generic 500 with diagnostic details.
type AppError struct {
	Code    int
	Message string
	Details string
}

func (e *AppError) Error() string {
	return e.Message
}

func NewAppError(code int, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

func NewAppErrorWithDetails(code int, message, details string) *AppError {
	return &AppError{Code: code, Message: message, Details: details}
}

func BadRequest(message string) *AppError {
	return NewAppError(fiber.StatusBadRequest, message)
}

func NotFound(message string) *AppError {
	return NewAppError(fiber.StatusNotFound, message)
}

func Internal(message, details string) *AppError {
	return NewAppErrorWithDetails(fiber.StatusInternalServerError, message, details)
}
