package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

const ApiKeyHeaderName = "X-Api-Key"

// New guards the profiler and cache maintenance with the shared api key.
// Admin writes are guarded per route with RequireApiKey.
func New(apiKey string) fiber.Handler {
	guard := RequireApiKey(apiKey)
	return func(ctx *fiber.Ctx) error {
		if strings.Contains(ctx.Path(), "pprof") || strings.HasPrefix(ctx.Path(), "/caches") {
			return guard(ctx)
		}
		return ctx.Next()
	}
}

// RequireApiKey rejects requests without the key. An empty key rejects everything.
func RequireApiKey(apiKey string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		if apiKey == "" || ctx.Get(ApiKeyHeaderName) != apiKey {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"message": "Unauthorized",
			})
		}
		return ctx.Next()
	}
}
