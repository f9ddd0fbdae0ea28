package request

type InsertCartRequest struct {
	ProductID uint `json:"productId" validate:"required"`
	Amount    int  `json:"amount" validate:"required,gt=0"`
}

type UpdateCartRequest struct {
	ProductID uint `json:"productId" validate:"required"`
	Amount    int  `json:"amount" validate:"required,gt=0"`
}
