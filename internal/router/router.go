package router

import (
	"net/http"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"

	"shifa-backend/internal/handlers"
	"shifa-backend/internal/metrics"
	"shifa-backend/internal/middleware"
)

func New(
	healthHandler *handlers.HealthHandler,
	userHandler *handlers.UserHandler,
	chatHandler *handlers.ChatHandler,
	adminHandler *handlers.AdminHandler,
	collector *metrics.Collector,
	gatherer prometheus.Gatherer,
	frontendDir string,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.CORS)
	r.Use(collector.Middleware)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", healthHandler.Check)

		r.Post("/users/create", userHandler.Create)

		r.Route("/chat", func(r chi.Router) {
			r.Post("/send", chatHandler.Send)
			r.Get("/history/{user_id}", chatHandler.History)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Get("/users", adminHandler.ListUsers)
			r.Delete("/users/{user_id}", adminHandler.DeleteUser)
		})
	})

	r.Get("/metrics", metrics.Handler(gatherer).ServeHTTP)

	// Prebuilt frontend bundle
	servePage := func(name string) http.HandlerFunc {
		page := filepath.Join(frontendDir, name)
		return func(w http.ResponseWriter, r *http.Request) {
			http.ServeFile(w, r, page)
		}
	}
	r.Get("/", servePage("index.html"))
	r.Get("/get-started", servePage("get-started.html"))
	r.Get("/chat", servePage("chat.html"))
	r.Get("/admin", servePage("admin.html"))

	assets := http.StripPrefix("/assets/", http.FileServer(http.Dir(filepath.Join(frontendDir, "assets"))))
	r.Get("/assets/*", assets.ServeHTTP)

	return r
}
