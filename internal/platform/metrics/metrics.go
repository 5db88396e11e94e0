package metrics

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"pet-registry/internal/domain/pets"
)

// Metrics agrupa los collectors del servicio. Se registran en un registry
// propio para no chocar entre tests.
type Metrics struct {
	registry *prometheus.Registry

	requests  *prometheus.CounterVec
	durations *prometheus.HistogramVec
	mutations *prometheus.CounterVec
	petsTotal prometheus.Gauge
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "petregistry",
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		durations: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "petregistry",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		mutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "petregistry",
			Name:      "pet_mutations_total",
			Help:      "Pet store mutations by operation and result.",
		}, []string{"op", "result"}),
		petsTotal: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "petregistry",
			Name:      "pets",
			Help:      "Pets currently in the list.",
		}),
	}

	m.registry.MustRegister(
		m.requests,
		m.durations,
		m.mutations,
		m.petsTotal,
		collectors.NewGoCollector(),
	)
	return m
}

// Handler expone /metrics.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) ObserveRequest(method, route string, status int, seconds float64) {
	m.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.durations.WithLabelValues(method, route).Observe(seconds)
}

// ObserveMutation cuenta el resultado de add/update/delete.
func (m *Metrics) ObserveMutation(op pets.Op, err error) {
	m.mutations.WithLabelValues(string(op), mutationResult(err)).Inc()
}

// TrackStore mantiene el gauge de mascotas con los cambios del servicio.
func (m *Metrics) TrackStore(initial int, svc *pets.Service) func() {
	m.petsTotal.Set(float64(initial))
	return svc.Subscribe(func(c pets.Change) {
		m.petsTotal.Set(float64(c.Count))
	})
}

func mutationResult(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, pets.ErrDuplicateName):
		return "duplicate"
	case errors.Is(err, pets.ErrNotFound):
		return "not_found"
	case errors.Is(err, pets.ErrInvalidInput):
		return "invalid"
	default:
		return "error"
	}
}
