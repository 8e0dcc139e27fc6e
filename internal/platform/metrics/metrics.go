// Package metrics expone métricas Prometheus del servicio: requests HTTP y llamadas al Store.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const defaultNamespace = "dogs_api"

// Metrics agrupa los collectors sobre un registry propio (sin las métricas default de Go).
type Metrics struct {
	namespace string
	buckets   []float64
	registry  *prometheus.Registry

	httpRequests  *prometheus.CounterVec
	httpDuration  *prometheus.HistogramVec
	storeCalls    *prometheus.CounterVec
	storeDuration *prometheus.HistogramVec
}

type Option func(*Metrics)

// WithNamespace cambia el prefijo de las métricas.
func WithNamespace(ns string) Option {
	return func(m *Metrics) {
		if ns != "" {
			m.namespace = ns
		}
	}
}

// WithBuckets cambia los buckets (en segundos) de los histogramas.
func WithBuckets(b []float64) Option {
	return func(m *Metrics) {
		if len(b) > 0 {
			m.buckets = b
		}
	}
}

func New(opts ...Option) *Metrics {
	m := &Metrics{
		namespace: defaultNamespace,
		buckets:   prometheus.DefBuckets,
		registry:  prometheus.NewRegistry(),
	}
	for _, opt := range opts {
		opt(m)
	}

	auto := promauto.With(m.registry)

	m.httpRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total HTTP requests by route, method and status code",
	}, []string{"route", "method", "code"})

	m.httpDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency by route and method",
		Buckets:   m.buckets,
	}, []string{"route", "method"})

	m.storeCalls = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "store",
		Name:      "calls_total",
		Help:      "Record store calls by operation and result (ok, not_found, error)",
	}, []string{"op", "result"})

	m.storeDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: "store",
		Name:      "call_duration_seconds",
		Help:      "Record store call latency by operation",
		Buckets:   m.buckets,
	}, []string{"op"})

	return m
}

// Registry devuelve el registry donde viven las métricas.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// Handler sirve /metrics.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) ObserveHTTP(route, method string, status int, took time.Duration) {
	m.httpRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(route, method).Observe(took.Seconds())
}

// ObserveStoreCall implementa dogs.Observer.
func (m *Metrics) ObserveStoreCall(op, result string, took time.Duration) {
	m.storeCalls.WithLabelValues(op, result).Inc()
	m.storeDuration.WithLabelValues(op).Observe(took.Seconds())
}
