// Package metrics expone métricas Prometheus de la API.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector métricas HTTP y de autenticación.
type Collector struct {
	requests     *prometheus.CounterVec
	latency      *prometheus.HistogramVec
	logins       *prometheus.CounterVec
	registration prometheus.Counter
}

// NewCollector crea el collector y lo registra en reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "practica_http_requests_total",
			Help: "Peticiones HTTP por método, ruta y código",
		}, []string{"method", "route", "status"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "practica_http_request_duration_seconds",
			Help:    "Latencia de las peticiones HTTP (segundos)",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		logins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "practica_logins_total",
			Help: "Intentos de login por resultado",
		}, []string{"result"}),
		registration: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "practica_registrations_total",
			Help: "Usuarios registrados",
		}),
	}
	reg.MustRegister(c.requests, c.latency, c.logins, c.registration)
	return c
}

// RecordRequest registra una petición terminada. route es el patrón, no la URL.
func (c *Collector) RecordRequest(method, route string, status int, d time.Duration) {
	c.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.latency.WithLabelValues(method, route).Observe(d.Seconds())
}

// RecordLogin result: ok, invalid, forbidden, error.
func (c *Collector) RecordLogin(result string) {
	c.logins.WithLabelValues(result).Inc()
}

// RecordRegistration cuenta un registro exitoso.
func (c *Collector) RecordRegistration() {
	c.registration.Inc()
}

// Handler handler de scrape.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
