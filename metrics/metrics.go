// Package metrics exposes the service's Prometheus collector and a
// standalone /metrics listener.
package metrics

import (
	"log"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Collector struct {
	reg *prometheus.Registry

	HTTPRequests    *prometheus.CounterVec // labels: route, status
	RequestDuration prometheus.Histogram

	TrackRequests   prometheus.Counter
	LocationUpdates prometheus.Counter
	IngestErrors    *prometheus.CounterVec // label: source (http|nats|gtfsrt)

	ActiveBuses   prometheus.Gauge
	NATSConnected prometheus.Gauge
}

func NewCollector() *Collector {
	reg := prometheus.NewRegistry()

	c := &Collector{
		reg: reg,
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "shuttle_http_requests_total",
			Help: "Total HTTP requests by route and status code.",
		}, []string{"route", "status"}),
		RequestDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "shuttle_http_request_duration_seconds",
			Help:    "HTTP request handling duration.",
			Buckets: prometheus.ExponentialBuckets(0.0005, 2, 15),
		}),
		TrackRequests: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "shuttle_track_requests_total",
			Help: "Total tracking queries answered.",
		}),
		LocationUpdates: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "shuttle_location_updates_total",
			Help: "Total location updates applied to the fleet.",
		}),
		IngestErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "shuttle_ingest_errors_total",
			Help: "Location updates rejected or failed, by source.",
		}, []string{"source"}),
		ActiveBuses: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "shuttle_active_buses",
			Help: "Number of buses currently marked active.",
		}),
		NATSConnected: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "shuttle_nats_connected",
			Help: "1 if the NATS ingestion connection is established, 0 otherwise.",
		}),
	}

	reg.MustRegister(
		c.HTTPRequests, c.RequestDuration,
		c.TrackRequests, c.LocationUpdates, c.IngestErrors,
		c.ActiveBuses, c.NATSConnected,
	)
	return c
}

func (c *Collector) Handler() http.Handler { return promhttp.HandlerFor(c.reg, promhttp.HandlerOpts{}) }

// Serve starts an HTTP server exposing /metrics on the given address.
func (c *Collector) Serve(addr string) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", c.Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("metrics server error: %v", err)
		}
	}()
	log.Printf("metrics listening on %s", addr)
	return srv
}
