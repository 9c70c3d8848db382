package handler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

const (
	MessageInvalidBody   = "Invalid request body"
	MessageMissingFields = "Missing required fields"
	MessageServerError   = "Server error"
)

var validate = validator.New()

type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func fail(ctx *fiber.Ctx, status int, message string) error {
	return ctx.Status(status).JSON(ErrorResponse{Success: false, Message: message})
}

// parseBody decodes the request body into out and runs its validate tags.
// It writes the 400 response itself and reports whether the handler may go on.
func parseBody(ctx *fiber.Ctx, out interface{}) (bool, error) {
	if err := ctx.BodyParser(out); err != nil {
		return false, fail(ctx, fiber.StatusBadRequest, MessageInvalidBody)
	}
	if err := validate.Struct(out); err != nil {
		return false, fail(ctx, fiber.StatusBadRequest, MessageMissingFields)
	}
	return true, nil
}
