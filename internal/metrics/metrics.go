package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/rocketscienceinc/counter-backend/internal/apperror"
)

const namespace = "counter"

const (
	SourcePublished = "published"
	SourceRelayed   = "relayed"
	SourceDropped   = "dropped"
)

type Metrics struct {
	gatherer prometheus.Gatherer

	GamesCreated  prometheus.Counter
	Joins         *prometheus.CounterVec
	Moves         *prometheus.CounterVec
	FeedEvents    *prometheus.CounterVec
	Subscriptions prometheus.Gauge
}

// New - registers the collectors on reg. Each registry may hold one Metrics.
func New(reg *prometheus.Registry) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		gatherer: reg,

		GamesCreated: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "games_created_total",
			Help:      "Games opened by a player.",
		}),
		Joins: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "joins_total",
			Help:      "Join attempts by result code.",
		}, []string{"result"}),
		Moves: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "moves_total",
			Help:      "Move attempts by result code.",
		}, []string{"result"}),
		FeedEvents: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "feed_events_total",
			Help:      "Change-feed events by source. Each event is counted under exactly one source.",
		}, []string{"source"}),
		Subscriptions: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "ws_subscriptions",
			Help:      "Open WebSocket game subscriptions.",
		}),
	}
}

// NewNop - metrics on a private registry, for tests and tools that never expose them.
func NewNop() *Metrics {
	return New(prometheus.NewRegistry())
}

func (that *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(that.gatherer, promhttp.HandlerOpts{})
}

// Result - label value for the outcome of an operation.
func Result(err error) string {
	if err == nil {
		return "ok"
	}

	return apperror.Code(err)
}
