package handler

import (
	"github.com/gofiber/fiber/v2"
)

// messagePayload is the response body shape shared by errors and simple
// confirmations: a single human-readable message, no internal detail.
// Request correlation travels in the X-Request-ID header, not the body.
type messagePayload struct {
	Message string `json:"message"`
}

// writeMessage writes a `{message}` JSON response with the given status.
// The message must be safe for clients; internal errors are logged upstream,
// never echoed.
func writeMessage(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(messagePayload{Message: message})
}

// ErrorHandler returns a Fiber global error handler that standardizes error
// responses. Unclassified errors collapse to a generic 500.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		if e, ok := err.(*fiber.Error); ok {
			status = e.Code
		}

		switch status {
		case fiber.StatusBadRequest:
			return writeMessage(c, status, "Bad request")
		case fiber.StatusNotFound:
			return writeMessage(c, status, "Resource not found")
		case fiber.StatusMethodNotAllowed:
			return writeMessage(c, status, "Method not allowed")
		case fiber.StatusRequestEntityTooLarge:
			return writeMessage(c, status, "Request body too large")
		default:
			return writeMessage(c, status, "Internal server error")
		}
	}
}
