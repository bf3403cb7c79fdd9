// Package metrics exports challenge generation metrics to Prometheus.
//
// A Collector plugs into a composer as its observer:
//
//	col := metrics.NewCollector(prometheus.DefaultRegisterer)
//	c := emojicap.NewComposer(catalog, emojicap.WithObserver(col))
package metrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/gogpu/emojicap"
)

// Outcome label values.
const (
	OutcomeOK           = "ok"
	OutcomeEmptyCatalog = "empty_catalog"
	OutcomeInvalid      = "invalid_request"
	OutcomeEncoding     = "encoding_error"
	OutcomeOther        = "error"
)

// RenderBuckets covers challenge rendering latencies from 1ms to 2.5s.
var RenderBuckets = []float64{0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5}

// Collector records challenge outcomes and latencies. It implements
// emojicap.Observer and is safe for concurrent use.
type Collector struct {
	challenges *prometheus.CounterVec
	duration   prometheus.Histogram
	glyphs     prometheus.Gauge
}

// NewCollector creates the challenge metrics and registers them with reg.
// A nil reg leaves them unregistered. It panics if registration fails.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		challenges: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "emojicap_challenges_total",
				Help: "Challenges generated, by outcome",
			},
			[]string{"outcome"},
		),
		duration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "emojicap_challenge_duration_seconds",
				Help:    "Challenge generation duration",
				Buckets: RenderBuckets,
			},
		),
		glyphs: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "emojicap_catalog_glyphs",
				Help: "Glyphs in the loaded catalog",
			},
		),
	}
	if reg != nil {
		reg.MustRegister(c.challenges, c.duration, c.glyphs)
	}
	return c
}

// ObserveChallenge implements emojicap.Observer.
func (c *Collector) ObserveChallenge(elapsed time.Duration, err error) {
	c.challenges.WithLabelValues(Outcome(err)).Inc()
	if err == nil {
		c.duration.Observe(elapsed.Seconds())
	}
}

// SetCatalogSize records the number of glyphs available.
func (c *Collector) SetCatalogSize(n int) {
	c.glyphs.Set(float64(n))
}

// Outcome maps a Generate error to its label value.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, emojicap.ErrCatalogEmpty):
		return OutcomeEmptyCatalog
	case errors.Is(err, emojicap.ErrInvalidRequest):
		return OutcomeInvalid
	case errors.Is(err, emojicap.ErrEncoding):
		return OutcomeEncoding
	default:
		return OutcomeOther
	}
}
