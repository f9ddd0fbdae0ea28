package usecase

import (
	"context"

	"ecommerce-api/internal/data/repository"
	"ecommerce-api/internal/dto/response"
	"ecommerce-api/pkg/cache"

	"go.uber.org/zap"
)

// StateService serves the state and city lookups through the cache.
type StateService interface {
	GetAll(ctx context.Context) ([]response.StateResponse, error)
	GetCitiesByState(ctx context.Context, stateID uint) ([]response.CityResponse, error)
}

type stateService struct {
	stateRepo repository.StateRepository
	cityRepo  repository.CityRepository
	cache     *cache.Cache
	log       *zap.Logger
}

func NewStateService(stateRepo repository.StateRepository, cityRepo repository.CityRepository, c *cache.Cache, log *zap.Logger) StateService {
	return &stateService{
		stateRepo: stateRepo,
		cityRepo:  cityRepo,
		cache:     c,
		log:       log.With(zap.String("service", "state")),
	}
}

func (s *stateService) GetAll(ctx context.Context) ([]response.StateResponse, error) {
	return cache.GetOrSet(ctx, s.cache, cache.Key("state", "all"), func(ctx context.Context) ([]response.StateResponse, error) {
		states, err := s.stateRepo.FindAll(ctx)
		if err != nil {
			return nil, internal("failed to get states")
		}

		resp := make([]response.StateResponse, len(states))
		for i, state := range states {
			resp[i] = response.StateToResponse(state)
		}
		return resp, nil
	})
}

func (s *stateService) GetCitiesByState(ctx context.Context, stateID uint) ([]response.CityResponse, error) {
	return cache.GetOrSet(ctx, s.cache, cache.Key("city", "state", stateID), func(ctx context.Context) ([]response.CityResponse, error) {
		cities, err := s.cityRepo.FindByStateID(ctx, stateID)
		if err != nil {
			return nil, internal("failed to get cities")
		}

		resp := make([]response.CityResponse, len(cities))
		for i, city := range cities {
			resp[i] = response.CityToResponse(city)
		}
		return resp, nil
	})
}
