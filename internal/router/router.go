package router

import (
	"net/http"

	_ "bird-service/docs"
	mem "bird-service/internal/adapters/storage/memory"
	"bird-service/internal/domain/birds"
	"bird-service/internal/middleware"
	"bird-service/internal/platform/logger"
	"bird-service/internal/platform/metrics"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	// Opcional: si no viene, usa in-memory.
	Repo birds.Repository

	// Opcional: si no viene, no se loguea nada.
	Logger logger.Logger

	// Opcional: si viene, se registran métricas HTTP y se expone /metrics.
	Metrics *metrics.Metrics
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	repo := opts.Repo
	if repo == nil {
		repo = mem.NewBirdRepo()
	}

	var recorder middleware.HTTPRecorder
	if opts.Metrics != nil {
		recorder = opts.Metrics
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Observe(log, recorder))
	r.Use(chimw.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	if opts.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", opts.Metrics.Handler())
	}

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	birds.RegisterRoutes(r, birds.NewService(repo), log)

	return r
}
