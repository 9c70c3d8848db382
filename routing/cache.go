package routing

import (
	"context"
	"fmt"
	"time"

	"github.com/hospice/hospital-locator-api/geo"
)

type KeyValueStore interface {
	Get(key string, out interface{}) bool
	SetKey(key string, value interface{}, ttl time.Duration)
}

// CachedRouter remembers routed distances for a coordinate pair.
type CachedRouter struct {
	next  Router
	store KeyValueStore
	ttl   time.Duration
}

func NewCachedRouter(next Router, store KeyValueStore, ttl time.Duration) *CachedRouter {
	return &CachedRouter{next: next, store: store, ttl: ttl}
}

func cacheKey(from, to geo.Coordinate) string {
	return fmt.Sprintf("route:%.5f,%.5f:%.5f,%.5f", from.Latitude, from.Longitude, to.Latitude, to.Longitude)
}

func (c *CachedRouter) Distance(ctx context.Context, from, to geo.Coordinate) (float64, error) {
	key := cacheKey(from, to)

	var km float64
	if c.store.Get(key, &km) {
		return km, nil
	}

	km, err := c.next.Distance(ctx, from, to)
	if err != nil {
		return 0, err
	}

	c.store.SetKey(key, km, c.ttl)
	return km, nil
}
