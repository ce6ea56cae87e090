package routes

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"sbcatalog/internal/config"
	"sbcatalog/internal/handlers"
	"sbcatalog/internal/metrics"
	appmw "sbcatalog/internal/middleware"
)

// SetupRoutes builds the service router. metricsHandler serves /metrics; pass
// nil to leave the endpoint out.
func SetupRoutes(cfg *config.Config, logger *slog.Logger, recorder *metrics.Recorder, metricsHandler http.Handler) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Request-Id"},
		ExposedHeaders: []string{"X-Request-Id"},
		MaxAge:         300,
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	if metricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", metricsHandler)
	}
	RegisterSwaggerRoutes(r)

	base := handlers.NewBaseHandler(cfg, logger, recorder)

	r.Route("/api/v1", func(r chi.Router) {
		if cfg.Auth.Enabled() {
			r.Use(appmw.JWTAuth(cfg.Auth.JWTSecret))
		}
		RegisterSchemaRoutes(r, base)
	})

	return r
}
