// Package accesslog writes one structured log event per request.
package accesslog

import (
	"net/http"
	"time"

	"github.com/catatsuy/methodtree"
	"github.com/catatsuy/methodtree/internal/respwriter"
	"github.com/nats-io/nuid"
	"github.com/rs/zerolog"
)

// HeaderRequestID carries the generated request id on the response.
const HeaderRequestID = "X-Request-Id"

// New returns middleware logging method, path, matched route, status, size
// and duration. Each request gets a fresh id, echoed in HeaderRequestID.
func New(log zerolog.Logger) methodtree.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			start := time.Now()
			id := nuid.Next()
			w.Header().Set(HeaderRequestID, id)

			rec := respwriter.Wrap(w)
			next.ServeHTTP(rec, req)

			ev := log.Info()
			if rec.Status >= http.StatusInternalServerError {
				ev = log.Error()
			}
			ev.Str("id", id).
				Str("method", req.Method).
				Str("path", req.URL.Path).
				Str("route", req.Pattern).
				Int("status", rec.Status).
				Int("bytes", rec.Bytes).
				Dur("duration", time.Since(start)).
				Msg("request")
		})
	}
}
