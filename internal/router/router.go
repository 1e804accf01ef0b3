package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"gremaster-backend/internal/handlers"
	"gremaster-backend/internal/middleware"
)

func New(
	healthHandler *handlers.HealthHandler,
	chatHandler *handlers.ChatHandler,
	allowedOrigins []string,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.CORS(allowedOrigins))

	r.Get("/", healthHandler.Index)
	r.Get("/health", healthHandler.Health)

	// ──── Chat ────
	r.Post("/chat", chatHandler.Chat)

	return r
}
