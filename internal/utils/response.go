package utils

import (
	"github.com/gofiber/fiber/v2"
)

// Envelope is the uniform response body: success flag, human message,
// optional payload and optional per-field error lines.
type Envelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Errors  []string    `json:"errors,omitempty"`
}

// SuccessResponse sends a 200 envelope with a payload.
func SuccessResponse(c *fiber.Ctx, message string, data interface{}) error {
	return c.Status(fiber.StatusOK).JSON(Envelope{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// ErrorResponse sends an error envelope with the given status.
func ErrorResponse(c *fiber.Ctx, status int, message string, errs ...string) error {
	return c.Status(status).JSON(Envelope{
		Success: false,
		Message: message,
		Errors:  errs,
	})
}

// NotFoundResponse sends a 404 envelope.
func NotFoundResponse(c *fiber.Ctx, message string) error {
	return ErrorResponse(c, fiber.StatusNotFound, message)
}

// ValidationErrorResponse sends a 400 envelope with detail lines.
func ValidationErrorResponse(c *fiber.Ctx, message string, errs []string) error {
	return ErrorResponse(c, fiber.StatusBadRequest, message, errs...)
}
