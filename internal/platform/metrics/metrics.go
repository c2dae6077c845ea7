package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	AccessRegistered  *prometheus.CounterVec
	Logins            *prometheus.CounterVec
	NavigationDenied  prometheus.Counter
	RequestDuration   *prometheus.HistogramVec
}

// New creates and registers all metrics against the given registerer. Main
// passes the default registerer; tests pass a fresh registry so parallel
// suites never collide.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		AccessRegistered: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "condogate_access_events_registered_total",
			Help: "Total access events appended to the ledger, by direction.",
		}, []string{"direction"}),
		Logins: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "condogate_logins_total",
			Help: "Total login attempts, by outcome.",
		}, []string{"outcome"}),
		NavigationDenied: factory.NewCounter(prometheus.CounterOpts{
			Name: "condogate_navigation_denied_total",
			Help: "Total navigation requests redirected by the authorization guard.",
		}),
		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "condogate_http_request_duration_seconds",
			Help:    "HTTP request latency by route and status.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route", "status"}),
	}
}

func (m *Metrics) IncrementAccessRegistered(direction string) {
	m.AccessRegistered.WithLabelValues(direction).Inc()
}

func (m *Metrics) IncrementLogin(outcome string) {
	m.Logins.WithLabelValues(outcome).Inc()
}

func (m *Metrics) IncrementNavigationDenied() {
	m.NavigationDenied.Inc()
}
