package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/hospice/hospital-locator-api/app"
	"github.com/hospice/hospital-locator-api/config"
	_ "github.com/hospice/hospital-locator-api/docs"
	log "github.com/hospice/hospital-locator-api/pkg/logger"
	"go.uber.org/zap"
)

// @title						Hospital Locator API
// @version					    1.0
// @description				    Nearby hospital ranking, doctor directory and WhatsApp relay
// @BasePath					/
// @schemes					    https http
// @securityDefinitions.apiKey	ApiKeyAuth
// @in							header
// @name						X-Api-Key
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Logger().Fatal("failed to load config", zap.Error(err))
	}

	application, err := app.New(context.Background(), cfg)
	if err != nil {
		log.Logger().Fatal("failed to init application", zap.Error(err))
	}
	application.Setup()

	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT)
	signal.Notify(c, syscall.SIGTERM)

	go func() {
		_ = <-c
		log.Logger().Info("application gracefully shutting down..")
		if err := application.Shutdown(); err != nil {
			log.Logger().Error("shutdown failed", zap.Error(err))
		}
	}()

	if err := application.Listen(); err != nil {
		log.Logger().Panic("app error", zap.Error(err))
	}
}
