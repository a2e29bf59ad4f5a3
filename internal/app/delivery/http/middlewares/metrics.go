package middlewares

import (
	"net/http"
	"psychology-assessment-client/internal/app/services/shared/metrics"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
)

// Metrics records request count and latency labelled by the matched route
// pattern, never the raw path.
func (m *Middlewares) Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := newResponseRecorder(w)

		next.ServeHTTP(rec, r)

		route := "unmatched"
		if routeContext := chi.RouteContext(r.Context()); routeContext != nil {
			if pattern := routeContext.RoutePattern(); pattern != "" {
				route = pattern
			}
		}
		metrics.GatewayRequestCounter.WithLabelValues(r.Method, route, strconv.Itoa(rec.statusCode)).Inc()
		metrics.GatewayRequestDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}
