package usecase

import (
	"context"

	"ecommerce-api/internal/data/entity"
	"ecommerce-api/internal/data/repository"
	"ecommerce-api/internal/dto/request"
	"ecommerce-api/internal/dto/response"

	"go.uber.org/zap"
)

type AddressService interface {
	Create(ctx context.Context, userID uint, req *request.CreateAddressRequest) (*response.AddressResponse, error)
	GetByUserID(ctx context.Context, userID uint) ([]response.AddressResponse, error)
}

type addressService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewAddressService(repo *repository.Repository, log *zap.Logger) AddressService {
	return &addressService{
		repo: repo,
		log:  log.With(zap.String("service", "address")),
	}
}

func (s *addressService) Create(ctx context.Context, userID uint, req *request.CreateAddressRequest) (*response.AddressResponse, error) {
	// 1. Owner must exist
	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to find user", zap.Error(err), zap.Uint("user_id", userID))
		return nil, internal("failed to create address")
	}
	if user == nil {
		return nil, notFound("user not found")
	}

	// 2. City must exist
	city, err := s.repo.City.FindByID(ctx, req.CityID)
	if err != nil {
		s.log.Error("Failed to find city", zap.Error(err), zap.Uint("city_id", req.CityID))
		return nil, internal("failed to create address")
	}
	if city == nil {
		return nil, notFound("city not found")
	}

	// 3. Save
	address := &entity.Address{
		UserID:     userID,
		Complement: req.Complement,
		Number:     req.NumberAddress,
		CEP:        req.CEP,
		CityID:     req.CityID,
	}
	if err := s.repo.Address.Create(ctx, address); err != nil {
		return nil, internal("failed to create address")
	}

	s.log.Info("Address created", zap.Uint("address_id", address.ID), zap.Uint("user_id", userID))

	address.City = city
	resp := response.AddressToResponse(address)
	return &resp, nil
}

func (s *addressService) GetByUserID(ctx context.Context, userID uint) ([]response.AddressResponse, error) {
	addresses, err := s.repo.Address.FindByUserID(ctx, userID)
	if err != nil {
		return nil, internal("failed to get addresses")
	}
	if len(addresses) == 0 {
		return nil, notFound("no address found for this user")
	}

	resp := make([]response.AddressResponse, len(addresses))
	for i, address := range addresses {
		resp[i] = response.AddressToResponse(address)
	}
	return resp, nil
}
