package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	log "github.com/hospice/hospital-locator-api/pkg/logger"
	"go.uber.org/zap"
)

const healthcheckTimeout = 2 * time.Second

// Check probes one dependency of the service.
type Check func(ctx context.Context) error

// HealthCheck godoc
// @Summary            Show the status of server.
// @Description        get the status of server and its dependencies.
// @Tags               Healthcheck
// @Accept             */*
// @Produce            json
// @Success            200 {object} map[string]string
// @Failure            503 {object} map[string]string
// @Router             /healthcheck [GET]
func HealthCheck(checks map[string]Check) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		c, cancel := context.WithTimeout(ctx.UserContext(), healthcheckTimeout)
		defer cancel()

		status := fiber.StatusOK
		report := map[string]string{}
		for name, check := range checks {
			if err := check(c); err != nil {
				log.Logger().Warn("healthcheck failed", zap.String("dependency", name), zap.Error(err))
				report[name] = "down"
				status = fiber.StatusServiceUnavailable
				continue
			}
			report[name] = "up"
		}

		return ctx.Status(status).JSON(report)
	}
}
