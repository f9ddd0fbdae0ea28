package request

type CreateUserRequest struct {
	Name     string `json:"name" validate:"required,max=255"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Phone    string `json:"phone" validate:"omitempty,max=30"`
	CPF      string `json:"cpf" validate:"required,max=14"`
	Password string `json:"password" validate:"required,max=72"`
}

type UpdatePasswordRequest struct {
	NewPassword string `json:"newPassword" validate:"required,max=72"`
	OldPassword string `json:"oldPassword" validate:"required"`
}
