package cache

import (
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	log "github.com/hospice/hospital-locator-api/pkg/logger"
	"go.uber.org/zap"
)

type Store interface {
	GetBytes(key string) []byte
	SetKey(key string, value interface{}, ttl time.Duration)
	Delete(key string) error
}

// Responses that depend on the caller or on live upstream data are never cached.
var skipPrefixes = []string{
	"/healthcheck",
	"/metrics",
	"/monitor",
	"/swagger",
	"/debug/pprof",
	"/caches",
	"/api/auth",
	"/api/facilities",
	"/api/whatsapp",
}

func New(store Store, ttl time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if skip(c.Path()) {
			return c.Next()
		}

		collection := Collection(c.Path())
		if c.Method() != http.MethodGet {
			if err := c.Next(); err != nil {
				return err
			}
			if status := c.Response().StatusCode(); status >= 200 && status < 300 {
				invalidate(store, collection, c.OriginalURL())
			}
			return nil
		}

		hashURL := entryKey(store, collection, c.OriginalURL())
		cacheData := store.GetBytes(hashURL)
		if len(cacheData) == 0 {
			if err := c.Next(); err != nil {
				return err
			}
			if c.Response().StatusCode() == fiber.StatusOK && len(c.Response().Body()) > 0 {
				body := append([]byte(nil), c.Response().Body()...)
				store.SetKey(hashURL, body, ttl)
			}
			return nil
		}

		c.Set("x-cached-response", "true")
		c.Response().SetBodyRaw(cacheData)
		c.Response().Header.SetContentType(fiber.MIMEApplicationJSON)
		return nil
	}
}

// invalidate moves collection to a new generation so every cached variant of
// it (query strings, single items) stops matching.
func invalidate(store Store, collection, originalURL string) {
	store.SetKey(generationKey(collection), uuid.NewString(), 0)
	if err := store.Delete(Key(originalURL)); err != nil {
		log.Logger().Warn("cache delete failed", zap.String("url", originalURL), zap.Error(err))
	}
}

func entryKey(store Store, collection, originalURL string) string {
	generation := store.GetBytes(generationKey(collection))
	if len(generation) == 0 {
		return Key(originalURL)
	}
	return Key(string(generation) + originalURL)
}

func generationKey(collection string) string {
	return "cache-generation:" + collection
}

// Collection returns the first two segments of path, e.g. /api/hospitals for
// /api/hospitals/42.
func Collection(path string) string {
	parts := strings.SplitN(strings.TrimPrefix(path, "/"), "/", 3)
	if len(parts) > 2 {
		parts = parts[:2]
	}
	return "/" + strings.Join(parts, "/")
}

func Key(originalURL string) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(originalURL)).String()
}

func skip(path string) bool {
	if path == "/" {
		return true
	}
	for _, prefix := range skipPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}
