package request

import "github.com/shopspring/decimal"

type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required,max=255"`
}

type UpdateCategoryRequest struct {
	Name string `json:"name" validate:"required,max=255"`
}

type CreateProductRequest struct {
	Name       string           `json:"name" validate:"required,max=255"`
	CategoryID uint             `json:"categoryId" validate:"required"`
	Price      *decimal.Decimal `json:"price" validate:"required"`
	Image      string           `json:"image" validate:"omitempty,max=500"`
}

// UpdateProductRequest is a partial update; nil fields are left untouched.
type UpdateProductRequest struct {
	Name       *string          `json:"name" validate:"omitempty,min=1,max=255"`
	CategoryID *uint            `json:"categoryId" validate:"omitempty,gt=0"`
	Price      *decimal.Decimal `json:"price"`
	Image      *string          `json:"image" validate:"omitempty,max=500"`
}
