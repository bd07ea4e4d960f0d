package main

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// recomputeCollector bundles the Prometheus metrics of the recompute loop.
type recomputeCollector struct {
	recomputations *prometheus.CounterVec
	duration       prometheus.Histogram
}

// newRecomputeCollector registers the metrics against the provided registerer, defaulting to the global
// Prometheus registry when nil.
func newRecomputeCollector(reg prometheus.Registerer) (*recomputeCollector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	c := &recomputeCollector{
		recomputations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "orbits_recomputations_total",
			Help: "Total number of orbit recomputations, labeled by outcome.",
		}, []string{"outcome"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "orbits_recompute_duration_seconds",
			Help:    "Time to compute both orbits and their loci.",
			Buckets: []float64{0.0001, 0.00025, 0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05},
		}),
	}
	for _, col := range []prometheus.Collector{c.recomputations, c.duration} {
		if err := reg.Register(col); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func (c *recomputeCollector) observe(outcome string, d time.Duration) {
	c.recomputations.WithLabelValues(outcome).Inc()
	c.duration.Observe(d.Seconds())
}
