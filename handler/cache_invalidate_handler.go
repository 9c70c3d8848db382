package handler

import (
	"github.com/gofiber/fiber/v2"
	log "github.com/hospice/hospital-locator-api/pkg/logger"
	"go.uber.org/zap"
)

type Pruner interface {
	Prune() error
}

// InvalidateCache godoc
// @Summary            Drop every cached response
// @Tags               Cache
// @Success            200
// @Security           ApiKeyAuth
// @Router             /caches/prune [GET]
func InvalidateCache(cacheRepo Pruner) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := cacheRepo.Prune()

		if err != nil {
			log.Logger().Error("cache prune failed", zap.Error(err))
			ctx.Status(fiber.StatusInternalServerError)
			return ctx.SendString(err.Error())
		}

		return ctx.SendStatus(fiber.StatusOK)
	}
}
