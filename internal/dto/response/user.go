package response

import (
	"ecommerce-api/internal/data/entity"
)

type UserResponse struct {
	ID        uint              `json:"id"`
	Name      string            `json:"name"`
	Email     string            `json:"email"`
	Phone     string            `json:"phone"`
	CPF       string            `json:"cpf"`
	TypeUser  int               `json:"typeUser"`
	Addresses []AddressResponse `json:"addresses,omitempty"`
}

// Helper converters
func UserToResponse(user *entity.User) UserResponse {
	resp := UserResponse{
		ID:       user.ID,
		Name:     user.Name,
		Email:    user.Email,
		Phone:    user.Phone,
		CPF:      user.CPF,
		TypeUser: user.TypeUser,
	}

	if len(user.Addresses) > 0 {
		resp.Addresses = make([]AddressResponse, len(user.Addresses))
		for i := range user.Addresses {
			resp.Addresses[i] = AddressToResponse(&user.Addresses[i])
		}
	}

	return resp
}
