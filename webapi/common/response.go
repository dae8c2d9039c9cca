// Package common holds the response helpers shared by the webapi handlers:
// the wire error contract and request binding with validation.
package common

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/kongbank/accounts/pkg/domain"
)

// ErrorCode identifies the failure category on the wire.
type ErrorCode string

const (
	CodeInternalError     ErrorCode = "INTERNAL_ERROR"
	CodeNotFound          ErrorCode = "NOT_FOUND"
	CodeInsufficientFunds ErrorCode = "INSUFFICIENT_FUNDS"
	CodeInvalidInput      ErrorCode = "INVALID_INPUT"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	ErrorCode ErrorCode `json:"error_code"`
	Message   string    `json:"message"`
}

// ErrorJSON writes an ErrorResponse with the given status.
func ErrorJSON(c *fiber.Ctx, status int, code ErrorCode, message string) error {
	return c.Status(status).JSON(ErrorResponse{ErrorCode: code, Message: message})
}

// ErrorToStatusCode maps a ledger error to an HTTP status and wire error code.
func ErrorToStatusCode(err error) (int, ErrorCode) {
	switch {
	case errors.Is(err, domain.ErrAccountNotFound):
		return fiber.StatusNotFound, CodeNotFound
	case errors.Is(err, domain.ErrInsufficientFunds):
		return fiber.StatusBadRequest, CodeInsufficientFunds
	case errors.Is(err, domain.ErrAmountNotPositive),
		errors.Is(err, domain.ErrNegativeInitialBalance),
		errors.Is(err, domain.ErrInvalidAccountKind):
		return fiber.StatusBadRequest, CodeInvalidInput
	default:
		return fiber.StatusInternalServerError, CodeInternalError
	}
}

// DomainErrorJSON writes the error response for a failed ledger operation.
// Unexpected errors get a generic message so internals do not leak.
func DomainErrorJSON(c *fiber.Ctx, action string, err error) error {
	status, code := ErrorToStatusCode(err)
	msg := fmt.Sprintf("Failed to %s: %v", action, err)
	if code == CodeInternalError {
		msg = fmt.Sprintf("Failed to %s: internal server error occurred", action)
	}
	return ErrorJSON(c, status, code, msg)
}

// BindAndValidate parses the request body into T and validates it with
// go-playground/validator. On failure it writes an INVALID_INPUT response and
// returns nil.
func BindAndValidate[T any](c *fiber.Ctx) (*T, error) {
	var input T
	if err := c.BodyParser(&input); err != nil {
		return nil, ErrorJSON(c, fiber.StatusBadRequest, CodeInvalidInput,
			fmt.Sprintf("Invalid request body: %v", err))
	}
	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return nil, ErrorJSON(c, fiber.StatusBadRequest, CodeInvalidInput,
			fmt.Sprintf("Validation failed: %v", err))
	}
	return &input, nil
}
