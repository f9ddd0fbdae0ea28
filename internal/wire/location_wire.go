package wire

import (
	"ecommerce-api/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

// wireLocation exposes the seeded state and city lookups (public)
func wireLocation(r chi.Router, stateHandler *adaptor.StateHandler) {
	r.Get("/state", stateHandler.GetAll)
	r.Get("/city/{stateId}", stateHandler.GetCities)
}
