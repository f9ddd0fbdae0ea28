package adaptor

import (
	"net/http"

	"ecommerce-api/internal/dto/request"
	"ecommerce-api/internal/usecase"
	"ecommerce-api/pkg/utils"

	"go.uber.org/zap"
)

// CartHandler serves /cart and /cart-product for the authenticated user.
type CartHandler struct {
	service usecase.CartService
	log     *zap.Logger
}

func NewCartHandler(service usecase.CartService, log *zap.Logger) *CartHandler {
	return &CartHandler{
		service: service,
		log:     log.With(zap.String("handler", "cart")),
	}
}

func (h *CartHandler) GetActive(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	cart, err := h.service.GetActive(r.Context(), userID)
	if err != nil {
		handleServiceError(h.log, w, err, "get cart")
		return
	}

	utils.ResponseSuccess(w, "success", cart)
}

func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	if err := h.service.Clear(r.Context(), userID); err != nil {
		handleServiceError(h.log, w, err, "clear cart")
		return
	}

	utils.ResponseSuccess(w, "Cart cleared", nil)
}

// Insert handles POST /cart-product
func (h *CartHandler) Insert(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req request.InsertCartRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	cart, err := h.service.Insert(r.Context(), userID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "insert cart product")
		return
	}

	utils.ResponseCreated(w, "Product added to cart", cart)
}

// Update handles PUT /cart-product
func (h *CartHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req request.UpdateCartRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	item, err := h.service.Update(r.Context(), userID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update cart product")
		return
	}

	utils.ResponseSuccess(w, "Cart updated", item)
}

// DeleteProduct handles DELETE /cart-product/{productId}
func (h *CartHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	productID, ok := pathID(w, r, "productId")
	if !ok {
		return
	}

	if err := h.service.DeleteProduct(r.Context(), userID, productID); err != nil {
		handleServiceError(h.log, w, err, "delete cart product")
		return
	}

	utils.ResponseSuccess(w, "Product removed from cart", nil)
}
