package middleware

import (
	"net/http"
	"time"

	"bird-service/internal/platform/logger"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

// HTTPRecorder es lo que Observe necesita de metrics.Metrics.
type HTTPRecorder interface {
	RecordHTTPRequest(method, route string, status int, d time.Duration)
}

// Observe loguea una línea por request y, si recorder != nil, registra métricas.
// Va después de chimw.RequestID para tener el request_id.
func Observe(log logger.Logger, recorder HTTPRecorder) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			elapsed := time.Since(start)
			route := routePattern(r)

			if recorder != nil {
				recorder.RecordHTTPRequest(r.Method, route, status, elapsed)
			}

			fields := map[string]any{
				"request_id":  chimw.GetReqID(r.Context()),
				"method":      r.Method,
				"path":        r.URL.Path,
				"route":       route,
				"status":      status,
				"bytes":       ww.BytesWritten(),
				"duration_ms": elapsed.Milliseconds(),
			}
			if status >= http.StatusInternalServerError {
				log.Warn("http request", fields)
				return
			}
			log.Info("http request", fields)
		})
	}
}

// routePattern usa el patrón de chi ("/birds/{birdID}") para no explotar la cardinalidad de métricas.
func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if p := rctx.RoutePattern(); p != "" {
			return p
		}
	}
	return "unmatched"
}
