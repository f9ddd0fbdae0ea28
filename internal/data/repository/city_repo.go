package repository

import (
	"context"
	"errors"
	"fmt"

	"ecommerce-api/internal/data/entity"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CityRepository interface {
	FindByID(ctx context.Context, id uint) (*entity.City, error)
	FindByStateID(ctx context.Context, stateID uint) ([]*entity.City, error)
}

type cityRepository struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewCityRepository(db *gorm.DB, log *zap.Logger) CityRepository {
	return &cityRepository{
		db:  db,
		log: log.With(zap.String("repository", "city")),
	}
}

func (r *cityRepository) FindByID(ctx context.Context, id uint) (*entity.City, error) {
	var city entity.City
	err := r.db.WithContext(ctx).First(&city, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find city", zap.Error(err), zap.Uint("city_id", id))
		return nil, fmt.Errorf("find city %d: %w", id, err)
	}

	return &city, nil
}

func (r *cityRepository) FindByStateID(ctx context.Context, stateID uint) ([]*entity.City, error) {
	var cities []*entity.City
	err := r.db.WithContext(ctx).
		Where("state_id = ?", stateID).
		Order("name").
		Find(&cities).Error
	if err != nil {
		r.log.Error("Failed to find cities", zap.Error(err), zap.Uint("state_id", stateID))
		return nil, fmt.Errorf("find cities for state %d: %w", stateID, err)
	}

	return cities, nil
}
