package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

const unmatchedRoute = "unmatched"

// HTTPObserver recibe una muestra por request (lo implementa metrics.Metrics).
type HTTPObserver interface {
	ObserveHTTP(route, method string, status int, took time.Duration)
}

// Metrics reporta cada request etiquetado con el patrón de ruta de chi
// (p.ej. /api/dogs/{id}) para no explotar la cardinalidad con ids.
func Metrics(obs HTTPObserver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if obs == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}

			route := unmatchedRoute
			if rctx := chi.RouteContext(r.Context()); rctx != nil {
				if p := rctx.RoutePattern(); p != "" {
					route = p
				}
			}
			obs.ObserveHTTP(route, r.Method, status, time.Since(start))
		})
	}
}
