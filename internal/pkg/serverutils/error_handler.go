package serverutils

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

const (
	MessageError        = "Error"
	MessageNotFound     = "Not found"
	MessageInvalidId    = "Invalid id"
	MessageUnauthorized = "Unauthorized"
)

// ErrorHandlerMiddleware turns errors returned by handlers into JSON bodies.
// A *fiber.Error keeps its status and message; anything else is a 500 whose
// cause never reaches the client.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Message))
		}

		return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse(MessageError))
	}
}
