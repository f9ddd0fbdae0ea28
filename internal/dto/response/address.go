package response

import (
	"ecommerce-api/internal/data/entity"
)

type StateResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	UF   string `json:"uf"`
}

type CityResponse struct {
	ID    uint           `json:"id"`
	Name  string         `json:"name"`
	State *StateResponse `json:"state,omitempty"`
}

type AddressResponse struct {
	ID            uint          `json:"id"`
	Complement    string        `json:"complement"`
	NumberAddress int           `json:"numberAddress"`
	CEP           string        `json:"cep"`
	City          *CityResponse `json:"city,omitempty"`
}

func StateToResponse(state *entity.State) StateResponse {
	return StateResponse{ID: state.ID, Name: state.Name, UF: state.UF}
}

func CityToResponse(city *entity.City) CityResponse {
	resp := CityResponse{ID: city.ID, Name: city.Name}
	if city.State != nil {
		state := StateToResponse(city.State)
		resp.State = &state
	}
	return resp
}

func AddressToResponse(address *entity.Address) AddressResponse {
	resp := AddressResponse{
		ID:            address.ID,
		Complement:    address.Complement,
		NumberAddress: address.Number,
		CEP:           address.CEP,
	}
	if address.City != nil {
		city := CityToResponse(address.City)
		resp.City = &city
	}
	return resp
}
