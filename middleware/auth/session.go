package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

const sessionKey = "auth.session"

// Session identifies the signed-in user of a request.
type Session struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
}

// Sessions parses an optional bearer token and stores the resulting session
// in the request locals. Missing or invalid tokens leave the request anonymous.
func Sessions(tokens *Tokens) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		header := ctx.Get(fiber.HeaderAuthorization)
		raw, ok := strings.CutPrefix(header, "Bearer ")
		if ok && raw != "" {
			if session, err := tokens.Parse(strings.TrimSpace(raw)); err == nil {
				ctx.Locals(sessionKey, session)
			}
		}
		return ctx.Next()
	}
}

// SessionFrom returns the session of the request, if any.
func SessionFrom(ctx *fiber.Ctx) (*Session, bool) {
	session, ok := ctx.Locals(sessionKey).(*Session)
	return session, ok && session != nil
}

func RequireSession() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		if _, ok := SessionFrom(ctx); !ok {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"message": "Please log in to continue",
			})
		}
		return ctx.Next()
	}
}
