// Package metrics expone métricas Prometheus del servidor web: peticiones por
// vista, cargas diferidas de vistas y fallos del backend observados por las vistas.
package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Tipos de fallo del backend.
const (
	FailureStatus    = "status"    // el backend respondió fuera de 2xx
	FailureTransport = "transport" // red, timeout o cancelación
)

// Metrics colectores del servidor web con registro propio.
// Todos los métodos aceptan un receptor nil (no-op).
type Metrics struct {
	registry        *prometheus.Registry
	viewRequests    *prometheus.CounterVec
	viewLoads       *prometheus.CounterVec
	backendFailures *prometheus.CounterVec
}

// New registra los colectores bajo namespace.
func New(namespace string) *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		viewRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "view_requests_total",
				Help:      "Peticiones atendidas por cada vista.",
			},
			[]string{"view", "method", "status"},
		),
		viewLoads: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "view_loads_total",
				Help:      "Vistas construidas de forma diferida.",
			},
			[]string{"view"},
		),
		backendFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "backend_failures_total",
				Help:      "Llamadas al backend rechazadas, vistas desde cada vista.",
			},
			[]string{"view", "kind"},
		),
	}
	m.registry.MustRegister(m.viewRequests, m.viewLoads, m.backendFailures)
	return m
}

// Registry registro Prometheus propio (sin colectores globales).
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// Handler handler HTTP para /metrics.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveViewRequest cuenta una petición atendida por view.
func (m *Metrics) ObserveViewRequest(view, method string, status int) {
	if m == nil {
		return
	}
	m.viewRequests.WithLabelValues(view, method, strconv.Itoa(status)).Inc()
}

// ObserveViewLoad cuenta la construcción diferida de view.
func (m *Metrics) ObserveViewLoad(view string) {
	if m == nil {
		return
	}
	m.viewLoads.WithLabelValues(view).Inc()
}

// ObserveBackendFailure cuenta un rechazo del backend visto por view.
func (m *Metrics) ObserveBackendFailure(view, kind string) {
	if m == nil {
		return
	}
	m.backendFailures.WithLabelValues(view, kind).Inc()
}
