// Package metrics expõe as métricas Prometheus da API e do agendador.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "hageland_dashboard"

// Metrics guarda um registry próprio para não colidir com o registry padrão
// em testes que sobem vários servidores.
type Metrics struct {
	registry        *prometheus.Registry
	handler         http.Handler
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	digestRuns      *prometheus.CounterVec
	digestDuration  prometheus.Histogram
}

func New() *Metrics {
	registry := prometheus.NewRegistry()

	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Requisições HTTP por rota e status.",
	}, []string{"route", "code"})
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duração das requisições HTTP por rota.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route"})
	digestRuns := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "digest_runs_total",
		Help:      "Execuções do resumo diário por resultado.",
	}, []string{"status"})
	digestDuration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "digest_duration_seconds",
		Help:      "Duração das execuções do resumo diário.",
		Buckets:   prometheus.DefBuckets,
	})

	registry.MustRegister(requests, duration, digestRuns, digestDuration)

	return &Metrics{
		registry:        registry,
		handler:         promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		requestsTotal:   requests,
		requestDuration: duration,
		digestRuns:      digestRuns,
		digestDuration:  digestDuration,
	}
}

// Handler é o endpoint /metrics
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, http.StatusText(http.StatusServiceUnavailable), http.StatusServiceUnavailable)
		})
	}
	return m.handler
}

// Instrument registra contagem e duração com o padrão da rota como label
// (ex.: "/v1/stores/:name/kpis"), nunca com o caminho concreto.
func (m *Metrics) Instrument(route string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if m == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(recorder, r)
			m.requestsTotal.WithLabelValues(route, strconv.Itoa(recorder.status)).Inc()
			m.requestDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
		})
	}
}

// ObserveDigest registra uma execução do resumo diário
func (m *Metrics) ObserveDigest(started time.Time, err error) {
	if m == nil {
		return
	}
	status := "success"
	if err != nil {
		status = "failure"
	}
	m.digestRuns.WithLabelValues(status).Inc()
	m.digestDuration.Observe(time.Since(started).Seconds())
}

func (m *Metrics) Registerer() prometheus.Registerer {
	if m == nil {
		return prometheus.DefaultRegisterer
	}
	return m.registry
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
