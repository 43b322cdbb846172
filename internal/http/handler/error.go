package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"qrdesk/internal/http/middleware"
	"qrdesk/internal/qr"
	"qrdesk/internal/service"
)

// errorPayload defines the standardized error response body.
type errorPayload struct {
	RequestID string        `json:"request_id"`
	Error     errorEnvelope `json:"error"`
}

type errorEnvelope struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// writeError writes a standardized JSON error response without leaking internal errors.
//
// Parameters:
// - status: HTTP status code to return
// - code: machine-readable short error code (e.g., "PAYLOAD_TOO_LARGE", "LAUNCH_FAILED")
// - message: human-readable safe message
func writeError(c *fiber.Ctx, status int, code, message string) error {
	res := errorPayload{
		RequestID: middleware.RequestIDFromCtx(c),
		Error: errorEnvelope{
			Code:    code,
			Message: message,
		},
	}
	return c.Status(status).JSON(res)
}

// writeCommandError maps command surface errors onto the envelope.
// Only launch failures carry the underlying OS cause in the message.
func writeCommandError(c *fiber.Ctx, err error) error {
	var (
		encErr    *qr.EncodingError
		launchErr *service.LaunchFailedError
	)
	switch {
	case errors.Is(err, qr.ErrPayloadTooLarge):
		return writeError(c, fiber.StatusRequestEntityTooLarge, "PAYLOAD_TOO_LARGE", "payload exceeds the QR code capacity")
	case errors.As(err, &encErr):
		return writeError(c, fiber.StatusUnprocessableEntity, "ENCODING_FAILED", "payload cannot be encoded as a QR code")
	case errors.As(err, &launchErr):
		return writeError(c, fiber.StatusInternalServerError, "LAUNCH_FAILED", launchMessage(c.Get(fiber.HeaderAcceptLanguage), launchErr))
	case errors.Is(err, service.ErrHistoryDisabled):
		return writeError(c, fiber.StatusNotFound, "HISTORY_DISABLED", "export history is not configured")
	default:
		return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
	}
}

// ErrorHandler returns a Fiber global error handler that standardizes error responses.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		if e, ok := err.(*fiber.Error); ok {
			status = e.Code
		}

		switch status {
		case fiber.StatusBadRequest:
			return writeError(c, status, "BAD_REQUEST", "bad request")
		case fiber.StatusForbidden:
			return writeError(c, status, "FORBIDDEN_ORIGIN", "request origin is not allowed")
		case fiber.StatusNotFound:
			return writeError(c, status, "NOT_FOUND", "resource not found")
		case fiber.StatusMethodNotAllowed:
			return writeError(c, status, "METHOD_NOT_ALLOWED", "method not allowed")
		case fiber.StatusUnsupportedMediaType:
			return writeError(c, status, "UNSUPPORTED_MEDIA_TYPE", "content type must be application/json")
		default:
			return writeError(c, status, "INTERNAL_ERROR", "internal server error")
		}
	}
}
