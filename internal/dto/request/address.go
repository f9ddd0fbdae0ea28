package request

type CreateAddressRequest struct {
	Complement    string `json:"complement" validate:"omitempty,max=255"`
	NumberAddress int    `json:"numberAddress" validate:"required,gt=0"`
	CEP           string `json:"cep" validate:"required,max=9"`
	CityID        uint   `json:"cityId" validate:"required"`
}
