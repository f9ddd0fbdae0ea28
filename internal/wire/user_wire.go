package wire

import (
	"ecommerce-api/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

// wireUser configures user routes with role-based access control
func wireUser(r chi.Router, userHandler *adaptor.UserHandler, g guards) {
	r.Route("/user", func(r chi.Router) {
		// ==================== PUBLIC ====================
		r.Post("/", userHandler.Create)

		// ==================== AUTHENTICATED ====================
		r.With(g.auth).Patch("/", userHandler.UpdatePassword)

		// ==================== ADMIN ====================
		r.Group(func(r chi.Router) {
			r.Use(g.auth, g.admin)
			r.Get("/", userHandler.GetAll)
			r.Get("/{userId}", userHandler.GetByID)
		})
	})
}
