package router

import (
	"net/http"

	"stockroom/internal/handler"
	"stockroom/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"
)

// New creates the HTTP router with all routes and middleware configured.
func New(
	dashboardHandler *handler.DashboardHandler,
	categoryHandler *handler.CategoryHandler,
	itemHandler *handler.ItemHandler,
	logger zerolog.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Recovery outermost so panics in other middleware are still caught.
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logging(logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "X-Request-ID"},
	}))

	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	r.Get("/", dashboardHandler.Show)

	r.Route("/categories", func(r chi.Router) {
		r.Get("/", categoryHandler.List)
		r.Get("/new", categoryHandler.NewForm)
		r.Post("/", categoryHandler.Create)
		r.Get("/{id}", categoryHandler.Detail)
	})

	r.Route("/items", func(r chi.Router) {
		r.Get("/", itemHandler.List)
		r.Get("/new", itemHandler.NewForm)
		r.Post("/", itemHandler.Create)
		r.Post("/delete", itemHandler.Delete)
		r.Get("/{id}", itemHandler.Detail)
	})

	return r
}
