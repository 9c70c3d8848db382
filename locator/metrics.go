package locator

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	assembled = promauto.NewCounter(prometheus.CounterOpts{
		Name: "locator_results_assembled_total",
		Help: "Nearby facility lists assembled successfully",
	})

	upstreamFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "locator_upstream_failures_total",
		Help: "Facility query service failures",
	})

	positionFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "locator_position_failures_total",
		Help: "Locate requests rejected for a missing or denied position",
	}, []string{"reason"})
)
