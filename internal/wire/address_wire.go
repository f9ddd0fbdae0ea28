package wire

import (
	"ecommerce-api/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireAddress(r chi.Router, addressHandler *adaptor.AddressHandler, g guards) {
	r.Route("/address", func(r chi.Router) {
		r.Use(g.auth)
		r.Post("/", addressHandler.Create)
		r.Get("/", addressHandler.GetMine)
		r.With(g.admin).Post("/{userId}", addressHandler.CreateForUser)
	})
}
