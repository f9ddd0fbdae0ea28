package wire

import (
	"ecommerce-api/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireCategory(r chi.Router, categoryHandler *adaptor.CategoryHandler, g guards) {
	r.Route("/category", func(r chi.Router) {
		r.Get("/", categoryHandler.GetAll)
		r.Get("/{id}", categoryHandler.GetByID)

		r.Group(func(r chi.Router) {
			r.Use(g.auth, g.admin)
			r.Post("/", categoryHandler.Create)
			r.Put("/{id}", categoryHandler.Update)
			r.Delete("/{id}", categoryHandler.Delete)
		})
	})
}

func wireProduct(r chi.Router, productHandler *adaptor.ProductHandler, g guards) {
	r.Route("/product", func(r chi.Router) {
		r.Get("/", productHandler.GetAll)
		r.Get("/{id}", productHandler.GetByID)

		r.Group(func(r chi.Router) {
			r.Use(g.auth, g.admin)
			r.Post("/", productHandler.Create)
			r.Put("/{id}", productHandler.Update)
			r.Delete("/{id}", productHandler.Delete)
			r.Post("/{id}/image", productHandler.UploadImage)
		})
	})
}

func wirePaymentStatus(r chi.Router, paymentStatusHandler *adaptor.PaymentStatusHandler) {
	r.Get("/payment-status", paymentStatusHandler.GetAll)
	r.Get("/payment-status/{id}", paymentStatusHandler.GetByID)
}
