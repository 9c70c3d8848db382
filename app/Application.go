package app

import (
	"context"
	"errors"
	"os"

	"github.com/Shopify/sarama"
	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/pprof"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/hospice/hospital-locator-api/broker"
	"github.com/hospice/hospital-locator-api/cache"
	"github.com/hospice/hospital-locator-api/config"
	"github.com/hospice/hospital-locator-api/handler"
	"github.com/hospice/hospital-locator-api/locator"
	"github.com/hospice/hospital-locator-api/messaging"
	"github.com/hospice/hospital-locator-api/middleware/auth"
	cachemw "github.com/hospice/hospital-locator-api/middleware/cache"
	"github.com/hospice/hospital-locator-api/overpass"
	"github.com/hospice/hospital-locator-api/overrides"
	log "github.com/hospice/hospital-locator-api/pkg/logger"
	"github.com/hospice/hospital-locator-api/repository"
	"github.com/hospice/hospital-locator-api/routing"
	"github.com/hospice/hospital-locator-api/search"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type Application struct {
	app           *fiber.App
	cfg           *config.Config
	repo          *repository.Repository
	redis         *cache.RedisRepository
	kafkaProducer sarama.SyncProducer
	tokens        *auth.Tokens

	checks     map[string]handler.Check
	facilities *handler.FacilitiesHandler
	auth       *handler.AuthHandler
	doctors    *handler.DoctorsHandler
	messages   *handler.MessagesHandler
	hospitals  *handler.HospitalsHandler
}

// New connects the stores and builds every handler. Redis, Kafka,
// Elasticsearch and the messaging gateway are optional and skipped when
// unconfigured.
func New(ctx context.Context, cfg *config.Config) (*Application, error) {
	repo, err := repository.New(ctx, cfg.Database.ConnStr)
	if err != nil {
		return nil, err
	}
	if err := repo.Migrate(ctx); err != nil {
		repo.Close()
		return nil, err
	}

	a := &Application{
		cfg:    cfg,
		repo:   repo,
		tokens: auth.NewTokens(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL),
		checks: map[string]handler.Check{"postgres": repo.Ping},
	}

	if cfg.Redis.Addr != "" {
		a.redis = cache.NewRedisRepository(cfg.Redis)
		a.checks["redis"] = func(context.Context) error { return a.redis.Ping() }
	}

	var publisher messaging.Publisher
	if cfg.Kafka.Enabled() {
		a.kafkaProducer, err = broker.NewProducer(cfg.Kafka.Brokers)
		if err != nil {
			log.Logger().Error("failed to init kafka producer, inbound messages are stored directly", zap.Error(err))
		} else {
			publisher = broker.NewInboundPublisher(a.kafkaProducer, cfg.Kafka.InboundTopic)
		}
	}

	finder, err := a.newLocator()
	if err != nil {
		a.Close()
		return nil, err
	}
	a.facilities = handler.NewFacilitiesHandler(finder, locator.NewSessionStore(cfg.Locator.SessionTTL))

	var gateway messaging.Gateway
	if cfg.Messaging.Enabled() {
		gateway = messaging.NewTwilioClient(cfg.Messaging.TwilioBaseURL, cfg.Messaging.TwilioAccountSID,
			cfg.Messaging.TwilioAuthToken, cfg.Messaging.TwilioFrom)
	} else {
		log.Logger().Warn("messaging gateway is not configured, sending is disabled")
	}
	relay := messaging.NewRelay(repo, repo, publisher)

	var index handler.HospitalIndex
	if cfg.Elastic.ConnStr != "" {
		index = search.NewHospitalIndex(cfg.Elastic.ConnStr, cfg.Elastic.Index)
	}

	a.auth = handler.NewAuthHandler(repo, a.tokens)
	a.doctors = handler.NewDoctorsHandler(repo)
	a.messages = handler.NewMessagesHandler(repo, gateway, relay)
	a.hospitals = handler.NewHospitalsHandler(repo, index)

	return a, nil
}

func (a *Application) newLocator() (*locator.Locator, error) {
	lc := a.cfg.Locator

	var router routing.Router = routing.NewOSRMClient(lc.OSRMURL, lc.OSRMTimeout)
	if a.redis != nil {
		router = routing.NewCachedRouter(router, a.redis, a.cfg.Redis.RouteTTL)
	}
	refiner := routing.NewRefiner(router, lc.RefineLimit, routing.FixedDelay(lc.RefineDelay))

	table, err := overrides.Load(lc.OverridesFile)
	if errors.Is(err, os.ErrNotExist) {
		log.Logger().Warn("override table not found, no region overrides", zap.String("path", lc.OverridesFile))
		table, err = nil, nil
	}
	if err != nil {
		return nil, err
	}

	l := locator.New(overpass.NewClient(lc.OverpassURL, lc.OverpassTimeout), refiner, table)
	if lc.RadiusMeters > 0 {
		l.Radius = lc.RadiusMeters
	}
	if lc.MaxResults > 0 {
		l.MaxResults = lc.MaxResults
	}
	return l, nil
}

// Setup creates the fiber app with its middleware stack and routes.
func (a *Application) Setup() *fiber.App {
	a.app = fiber.New(fiber.Config{
		AppName:      "hospital-locator-api",
		ErrorHandler: errorHandler,
	})
	a.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestCompression,
	}))
	a.app.Use(cors.New())
	a.app.Use(recover.New())
	a.app.Use(auth.New(a.cfg.Auth.APIKey))
	a.app.Use(pprof.New())
	if a.redis != nil {
		a.app.Use(cachemw.New(a.redis, a.cfg.Redis.CacheTTL))
	}
	a.app.Use(auth.Sessions(a.tokens))

	a.Register()
	return a.app
}

func (a *Application) Register() {
	admin := auth.RequireApiKey(a.cfg.Auth.APIKey)

	handler.RegisterSwagger(a.app)
	a.app.Get("/healthcheck", handler.HealthCheck(a.checks))
	a.app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	a.app.Get("/monitor", monitor.New())
	if a.redis != nil {
		a.app.Get("/caches/prune", handler.InvalidateCache(a.redis))
	}

	api := a.app.Group("/api")

	api.Post("/auth/register", a.auth.HandleRegister)
	api.Post("/auth/login", a.auth.HandleLogin)
	api.Get("/auth/me", handler.HandleMe)

	api.Get("/facilities/nearby", a.facilities.HandleNearby)
	api.Post("/facilities/locate", a.facilities.HandleLocate)
	api.Get("/facilities/session", a.facilities.HandleSession)
	api.Get("/facilities/taxonomy", handler.HandleTaxonomy)

	api.Get("/doctors", a.doctors.HandleList)
	api.Get("/doctors/:id", a.doctors.HandleGet)
	api.Post("/doctors", admin, a.doctors.HandleCreate)

	api.Post("/whatsapp/send", auth.RequireSession(), a.messages.HandleSend)
	api.Post("/whatsapp/save", auth.RequireSession(), a.messages.HandleSave)
	api.Post("/whatsapp/inbound", a.messages.HandleInbound)
	api.Get("/whatsapp/:doctorId", auth.RequireSession(), a.messages.HandleList)

	api.Get("/hospitals", a.hospitals.HandleList)
	api.Post("/hospitals", admin, a.hospitals.HandleCreate)
	api.Post("/hospitals/nearby", a.hospitals.HandleNearby)
	api.Put("/hospitals/:id", admin, a.hospitals.HandleUpdate)
}

func (a *Application) Listen() error {
	return a.app.Listen(":" + a.cfg.Server.Port)
}

func (a *Application) Shutdown() error {
	var err error
	if a.app != nil {
		err = a.app.Shutdown()
	}
	a.Close()
	return err
}

// Close releases the stores and the producer.
func (a *Application) Close() {
	if a.kafkaProducer != nil {
		if err := a.kafkaProducer.Close(); err != nil {
			log.Logger().Warn("kafka producer close failed", zap.Error(err))
		}
	}
	if a.repo != nil {
		a.repo.Close()
	}
}

func errorHandler(ctx *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
	}
	message := err.Error()
	if code >= fiber.StatusInternalServerError {
		log.Logger().Error("request failed", zap.String("path", ctx.Path()), zap.Error(err))
		message = handler.MessageServerError
	}
	return ctx.Status(code).JSON(handler.ErrorResponse{Success: false, Message: message})
}
