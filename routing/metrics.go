package routing

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var refinements = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "route_refinements_total",
	Help: "Road distance lookups by outcome",
}, []string{"outcome"})
