package response

import (
	"ecommerce-api/internal/data/entity"

	"github.com/shopspring/decimal"
)

type CategoryResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type ProductResponse struct {
	ID       uint              `json:"id"`
	Name     string            `json:"name"`
	Price    decimal.Decimal   `json:"price"`
	Image    string            `json:"image"`
	Category *CategoryResponse `json:"category,omitempty"`
}

type PaymentStatusResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func CategoryToResponse(category *entity.Category) CategoryResponse {
	return CategoryResponse{ID: category.ID, Name: category.Name}
}

func ProductToResponse(product *entity.Product) ProductResponse {
	resp := ProductResponse{
		ID:    product.ID,
		Name:  product.Name,
		Price: product.Price,
		Image: product.Image,
	}
	if product.Category != nil {
		category := CategoryToResponse(product.Category)
		resp.Category = &category
	}
	return resp
}

func PaymentStatusToResponse(status *entity.PaymentStatus) PaymentStatusResponse {
	return PaymentStatusResponse{ID: status.ID, Name: status.Name}
}
