package router

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	mem "dogs-api/internal/adapters/storage/memory"
	_ "dogs-api/internal/docs"
	"dogs-api/internal/domain/dogs"
	"dogs-api/internal/middleware"
	"dogs-api/internal/platform/metrics"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

const healthTimeout = 2 * time.Second

type Options struct {
	// Store es el Record Store. Si es nil se usa uno in-memory.
	Store dogs.Store

	// DB opcional: si viene, /health hace ping.
	DB *sql.DB

	Logger *zap.Logger

	// Metrics opcional: instrumenta HTTP y Store y monta /metrics.
	Metrics *metrics.Metrics

	Swagger bool
}

// NewRouter arma el handler HTTP completo. Cada llamada devuelve una instancia independiente.
func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(log))
	if opts.Metrics != nil {
		r.Use(middleware.Metrics(opts.Metrics))
	}
	r.Use(chimw.Recoverer)

	r.Get("/health", healthHandler(opts.DB))

	if opts.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", opts.Metrics.Handler())
	}
	if opts.Swagger {
		r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	}

	store := opts.Store
	if store == nil {
		store = mem.NewDogStore()
	}
	if opts.Metrics != nil {
		store = dogs.Instrument(store, opts.Metrics)
	}

	dogs.RegisterRoutes(r, store, log)

	return r
}

func healthHandler(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if db != nil {
			ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
			defer cancel()
			if err := db.PingContext(ctx); err != nil {
				w.WriteHeader(http.StatusServiceUnavailable)
				_, _ = w.Write([]byte("unavailable"))
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}
}
