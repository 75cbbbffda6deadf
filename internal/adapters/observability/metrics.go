package observability

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "packager", Name: "http_requests_total", Help: "HTTP requests."},
		[]string{"route", "method", "status"},
	)
	HTTPLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "packager", Name: "http_request_duration_seconds",
			Help:    "HTTP request duration seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)
	Generations = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "packager", Name: "generations_total", Help: "Generate actions by outcome."},
		[]string{"outcome"}, // ok|no_paying_guests|missing_entries|empty
	)
	PackagesGenerated = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "packager", Name: "packages_generated_total", Help: "Packages produced by successful generations."},
	)
	ClipboardEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "packager", Name: "clipboard_events_total", Help: "Clipboard writes/reads/misses/errors."},
		[]string{"backend", "event"},
	)
)

// Serve starts a standalone metrics listener on addr exposing reg. An empty
// addr disables it and returns a nil server. The listener is bound before
// Serve returns, so srv.Addr holds the resolved address.
func Serve(addr string, reg *prometheus.Registry) (*http.Server, error) {
	if addr == "" {
		return nil, nil // disabled
	}
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("metrics listen %s: %w", addr, err)
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", MetricsHandler(reg))
	srv := &http.Server{
		Addr:              ln.Addr().String(),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Msg("metrics server listening")
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("metrics server failed")
		}
	}()
	return srv, nil
}

func InitRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(HTTPRequests, HTTPLatency, Generations, PackagesGenerated, ClipboardEvents)
	return reg
}

func MetricsHandler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}

func ObserveHTTP(route, method string, status int, dur time.Duration) {
	HTTPRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	HTTPLatency.WithLabelValues(route, method).Observe(dur.Seconds())
}

func ObserveGeneration(outcome string, packages int) {
	Generations.WithLabelValues(outcome).Inc()
	if packages > 0 {
		PackagesGenerated.Add(float64(packages))
	}
}

func ObserveClipboard(backend, event string) { // event: write|read|miss|error
	ClipboardEvents.WithLabelValues(backend, event).Inc()
}
