package app

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/hospice/hospital-locator-api/config"
	"github.com/hospice/hospital-locator-api/handler"
	"github.com/hospice/hospital-locator-api/middleware/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testApplication() *Application {
	cfg := &config.Config{
		Server: config.ServerConfig{Port: "0"},
		Auth:   config.AuthConfig{JWTSecret: "secret", TokenTTL: time.Hour, APIKey: "admin-key"},
	}
	tokens := auth.NewTokens(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	return &Application{
		cfg:        cfg,
		tokens:     tokens,
		checks:     map[string]handler.Check{},
		facilities: handler.NewFacilitiesHandler(nil, nil),
		auth:       handler.NewAuthHandler(nil, tokens),
		doctors:    handler.NewDoctorsHandler(nil),
		messages:   handler.NewMessagesHandler(nil, nil, nil),
		hospitals:  handler.NewHospitalsHandler(nil, nil),
	}
}

func status(t *testing.T, app *fiber.App, method, target string, headers map[string]string) int {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp.StatusCode
}

func TestPublicRoutes(t *testing.T) {
	app := testApplication().Setup()

	assert.Equal(t, fiber.StatusOK, status(t, app, "GET", "/healthcheck", nil))
	assert.Equal(t, fiber.StatusOK, status(t, app, "GET", "/api/facilities/taxonomy", nil))
	assert.Equal(t, fiber.StatusOK, status(t, app, "GET", "/metrics", nil))
	assert.Equal(t, fiber.StatusPermanentRedirect, status(t, app, "GET", "/", nil))
}

func TestAdminRoutesNeedApiKey(t *testing.T) {
	app := testApplication().Setup()

	assert.Equal(t, fiber.StatusUnauthorized, status(t, app, "POST", "/api/hospitals", nil))
	assert.Equal(t, fiber.StatusUnauthorized, status(t, app, "PUT", "/api/hospitals/h-1", nil))
	assert.Equal(t, fiber.StatusUnauthorized, status(t, app, "POST", "/api/doctors", nil))
	assert.Equal(t, fiber.StatusUnauthorized, status(t, app, "GET", "/debug/pprof/", nil))

	// the key lets the request through to body validation
	key := map[string]string{auth.ApiKeyHeaderName: "admin-key"}
	assert.Equal(t, fiber.StatusBadRequest, status(t, app, "POST", "/api/hospitals", key))
}

func TestMessagingNeedsSession(t *testing.T) {
	application := testApplication()
	app := application.Setup()

	assert.Equal(t, fiber.StatusUnauthorized, status(t, app, "POST", "/api/whatsapp/send", nil))
	assert.Equal(t, fiber.StatusUnauthorized, status(t, app, "GET", "/api/whatsapp/doc-1", nil))

	token, err := application.tokens.Issue("user-1", "Asha", "asha@example.com")
	require.NoError(t, err)
	bearer := map[string]string{fiber.HeaderAuthorization: "Bearer " + token}

	// signed in, the empty body is rejected by the handler instead
	assert.Equal(t, fiber.StatusBadRequest, status(t, app, "POST", "/api/whatsapp/send", bearer))
}

func TestCachePruneNeedsRedis(t *testing.T) {
	app := testApplication().Setup()

	key := map[string]string{auth.ApiKeyHeaderName: "admin-key"}
	assert.Equal(t, fiber.StatusNotFound, status(t, app, "GET", "/caches/prune", key))
}
