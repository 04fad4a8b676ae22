// Package stub builds a router that answers configured routes with canned
// responses.
package stub

import (
	"net/http"
	"strconv"

	"github.com/catatsuy/methodtree"
	"github.com/catatsuy/methodtree/internal/accesslog"
	"github.com/catatsuy/methodtree/internal/config"
	"github.com/catatsuy/methodtree/internal/metrics"
	"github.com/catatsuy/methodtree/internal/tracing"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// Build returns a router serving every route in cfg.Routes.
//
// Requests pass through the access log, metrics and (when enabled) tracing
// middleware, in that order. When cfg.Server.MetricsPath is set, reg is
// exposed there under GET.
func Build(cfg *config.Config, log zerolog.Logger, reg *prometheus.Registry) *methodtree.Router {
	r := methodtree.New()
	r.Use(accesslog.New(log))
	if reg != nil {
		r.Use(metrics.New(metrics.WithRegistry(reg)).Middleware())
	}
	if cfg.Server.Tracing {
		r.Use(tracing.Middleware(""))
	}

	for _, rt := range cfg.Routes {
		r.Handle(rt.Method, rt.Path, respond(rt))
		log.Debug().Str("method", rt.Method).Str("path", rt.Path).Int("status", rt.Status).Msg("route registered")
	}

	if reg != nil && cfg.Server.MetricsPath != "" {
		r.Handle(http.MethodGet, cfg.Server.MetricsPath, promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	}
	return r
}

func respond(rt config.RouteConfig) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		body := Render(rt.Body, req.PathValue)
		h := w.Header()
		for k, v := range rt.Headers {
			h.Set(k, v)
		}
		if h.Get("Content-Type") == "" && body != "" {
			h.Set("Content-Type", "text/plain; charset=utf-8")
		}
		h.Set("Content-Length", strconv.Itoa(len(body)))
		w.WriteHeader(rt.Status)
		if req.Method != http.MethodHead {
			_, _ = w.Write([]byte(body))
		}
	})
}
