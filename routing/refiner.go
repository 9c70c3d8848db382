package routing

import (
	"context"

	"github.com/hospice/hospital-locator-api/facilities"
	"github.com/hospice/hospital-locator-api/geo"
	log "github.com/hospice/hospital-locator-api/pkg/logger"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

const DefaultLimit = 5

type Refiner struct {
	Router Router
	Limit  int
	Pacer  Pacer
}

func NewRefiner(router Router, limit int, pacer Pacer) *Refiner {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if pacer == nil {
		pacer = NoDelay
	}
	return &Refiner{Router: router, Limit: limit, Pacer: pacer}
}

// Refine replaces the estimate of the first Limit candidates with the routed
// road distance, one call at a time in list order. A failed lookup keeps the
// estimate. Candidates past Limit are left untouched.
func (r *Refiner) Refine(ctx context.Context, origin geo.Coordinate, candidates []*facilities.Facility) {
	if r.Router == nil {
		return
	}

	pacer := r.Pacer
	if pacer == nil {
		pacer = NoDelay
	}

	limit := r.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > len(candidates) {
		limit = len(candidates)
	}

	for i := 0; i < limit; i++ {
		if i > 0 {
			if err := pacer.Wait(ctx); err != nil {
				log.Logger().Debug("route refinement interrupted", zap.Int("refined", i), zap.Error(err))
				return
			}
		}

		candidate := candidates[i]
		km, err := r.Router.Distance(ctx, origin, candidate.Coordinate())
		if err != nil {
			refinements.With(prometheus.Labels{"outcome": "fallback"}).Inc()
			log.Logger().Debug("road distance unavailable, keeping estimate",
				zap.String("facility", candidate.ID),
				zap.Error(err),
			)
			continue
		}

		refinements.With(prometheus.Labels{"outcome": "routed"}).Inc()
		candidate.Distance = km
		candidate.DistanceSource = facilities.DistanceRoute
	}
}
