package auth

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApiKeyGuard(t *testing.T) {
	app := fiber.New()
	app.Use(New("secret"))
	app.Get("/debug/pprof/heap", func(c *fiber.Ctx) error { return c.SendString("heap") })
	app.Get("/caches/prune", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })
	app.Get("/api/doctors", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })
	app.Post("/api/doctors", RequireApiKey("secret"), func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusCreated) })

	cases := []struct {
		method, path, key string
		want              int
	}{
		{"GET", "/debug/pprof/heap", "", fiber.StatusUnauthorized},
		{"GET", "/debug/pprof/heap", "secret", fiber.StatusOK},
		{"GET", "/caches/prune", "wrong", fiber.StatusUnauthorized},
		{"GET", "/api/doctors", "", fiber.StatusOK},
		{"POST", "/api/doctors", "", fiber.StatusUnauthorized},
		{"POST", "/api/doctors", "secret", fiber.StatusCreated},
	}

	for _, tc := range cases {
		req := httptest.NewRequest(tc.method, tc.path, nil)
		if tc.key != "" {
			req.Header.Set(ApiKeyHeaderName, tc.key)
		}
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, tc.want, resp.StatusCode, "%s %s", tc.method, tc.path)
	}
}

func TestEmptyApiKeyRejectsEverything(t *testing.T) {
	app := fiber.New()
	app.Get("/admin", RequireApiKey(""), func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })

	resp, err := app.Test(httptest.NewRequest("GET", "/admin", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestTokenRoundTrip(t *testing.T) {
	tokens := NewTokens("s3cret", 0)

	raw, err := tokens.Issue("user-1", "Asha", "asha@example.com")
	require.NoError(t, err)

	session, err := tokens.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, &Session{UserID: "user-1", Name: "Asha", Email: "asha@example.com"}, session)
}

func TestTokenExpiry(t *testing.T) {
	tokens := NewTokens("s3cret", time.Hour)
	issuedAt := time.Now()
	tokens.now = func() time.Time { return issuedAt }

	raw, err := tokens.Issue("user-1", "", "")
	require.NoError(t, err)

	tokens.now = func() time.Time { return issuedAt.Add(2 * time.Hour) }
	_, err = tokens.Parse(raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenForged(t *testing.T) {
	raw, err := NewTokens("one", time.Hour).Issue("user-1", "", "")
	require.NoError(t, err)

	_, err = NewTokens("two", time.Hour).Parse(raw)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = NewTokens("one", time.Hour).Parse("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestIssueWithoutSecret(t *testing.T) {
	_, err := NewTokens("", time.Hour).Issue("user-1", "", "")
	assert.Error(t, err)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("hunter22")
	require.NoError(t, err)

	assert.NotEqual(t, "hunter22", hash)
	assert.True(t, CheckPassword(hash, "hunter22"))
	assert.False(t, CheckPassword(hash, "hunter23"))
}

func TestSessionMiddleware(t *testing.T) {
	tokens := NewTokens("s3cret", time.Hour)
	app := fiber.New()
	app.Use(Sessions(tokens))
	app.Get("/whoami", func(c *fiber.Ctx) error {
		if session, ok := SessionFrom(c); ok {
			return c.SendString(session.UserID)
		}
		return c.SendString("anonymous")
	})
	app.Get("/private", RequireSession(), func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })

	raw, err := tokens.Issue("user-9", "", "")
	require.NoError(t, err)

	whoami := func(header string) string {
		req := httptest.NewRequest("GET", "/whoami", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		resp, err := app.Test(req)
		require.NoError(t, err)
		body, _ := io.ReadAll(resp.Body)
		return string(body)
	}

	assert.Equal(t, "user-9", whoami("Bearer "+raw))
	assert.Equal(t, "anonymous", whoami(""))
	assert.Equal(t, "anonymous", whoami("Bearer garbage"))
	assert.Equal(t, "anonymous", whoami(raw))

	resp, err := app.Test(httptest.NewRequest("GET", "/private", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	req := httptest.NewRequest("GET", "/private", nil)
	req.Header.Set("Authorization", "Bearer "+raw)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
