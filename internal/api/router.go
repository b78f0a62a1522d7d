/**
 * @description
 * This file sets up the HTTP router for the enrollment-service using the go-chi/chi router.
 * It applies middleware for logging, recovery, CORS and authentication, and maps the
 * subscription routes to their handlers.
 */
package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter creates a new Chi router and registers the enrollment-service routes.
func NewRouter(h *Handler, jwtSecret string) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300, // Maximum value not ignored by any major browsers
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("Enrollment service is healthy"))
	})

	r.Route("/subscriptions", func(r chi.Router) {
		r.Use(JWTAuthMiddleware(jwtSecret))
		r.Post("/boleto", h.handleCreateBoleto)
		r.Post("/paypal", h.handleCreatePayPal)
		r.Post("/credit-card", h.handleCreateCreditCard)
	})

	return r
}
