package response

import (
	"ecommerce-api/internal/data/entity"
)

type CartProductResponse struct {
	ID        uint             `json:"id"`
	CartID    uint             `json:"cartId"`
	ProductID uint             `json:"productId"`
	Amount    int              `json:"amount"`
	Product   *ProductResponse `json:"product,omitempty"`
}

type CartResponse struct {
	ID          uint                  `json:"id"`
	CartProduct []CartProductResponse `json:"cartProduct"`
}

func CartProductToResponse(item *entity.CartProduct) CartProductResponse {
	resp := CartProductResponse{
		ID:        item.ID,
		CartID:    item.CartID,
		ProductID: item.ProductID,
		Amount:    item.Amount,
	}
	if item.Product != nil {
		product := ProductToResponse(item.Product)
		resp.Product = &product
	}
	return resp
}

func CartToResponse(cart *entity.Cart) CartResponse {
	items := make([]CartProductResponse, len(cart.CartProducts))
	for i := range cart.CartProducts {
		items[i] = CartProductToResponse(&cart.CartProducts[i])
	}
	return CartResponse{ID: cart.ID, CartProduct: items}
}
