// Package metrics exposes request counters and latency histograms labelled by
// the matched route pattern.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/catatsuy/methodtree"
	"github.com/catatsuy/methodtree/internal/respwriter"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const defaultNamespace = "methodtree"

// Config configures the collector.
type Config struct {
	// Namespace is the metrics namespace (default: "methodtree").
	Namespace string

	// Buckets are the histogram buckets for request duration.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

type Option func(*Config)

func WithNamespace(namespace string) Option {
	return func(c *Config) {
		c.Namespace = namespace
	}
}

func WithBuckets(buckets []float64) Option {
	return func(c *Config) {
		c.Buckets = buckets
	}
}

func WithRegistry(registry prometheus.Registerer) Option {
	return func(c *Config) {
		c.Registry = registry
	}
}

// Collector holds the request metrics.
type Collector struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// New registers the request metrics and returns their collector.
func New(opts ...Option) *Collector {
	cfg := Config{
		Namespace: defaultNamespace,
		Buckets:   prometheus.DefBuckets,
		Registry:  prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	factory := promauto.With(cfg.Registry)

	return &Collector{
		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Name:      "requests_total",
			Help:      "Total number of HTTP requests by method, route and status code",
		}, []string{"method", "route", "code"}),

		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: cfg.Namespace,
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   cfg.Buckets,
		}, []string{"method", "route"}),
	}
}

// Middleware records every request that reaches a registered route.
func (c *Collector) Middleware() methodtree.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			start := time.Now()
			rec := respwriter.Wrap(w)
			next.ServeHTTP(rec, req)

			c.requests.WithLabelValues(req.Method, req.Pattern, strconv.Itoa(rec.Status)).Inc()
			c.duration.WithLabelValues(req.Method, req.Pattern).Observe(time.Since(start).Seconds())
		})
	}
}
