package wire

import (
	"ecommerce-api/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

// wireCart configures the caller's cart; every route requires a token
func wireCart(r chi.Router, cartHandler *adaptor.CartHandler, g guards) {
	r.Group(func(r chi.Router) {
		r.Use(g.auth)

		r.Get("/cart", cartHandler.GetActive)
		r.Delete("/cart", cartHandler.Clear)

		r.Post("/cart-product", cartHandler.Insert)
		r.Put("/cart-product", cartHandler.Update)
		r.Delete("/cart-product/{productId}", cartHandler.DeleteProduct)
	})
}
