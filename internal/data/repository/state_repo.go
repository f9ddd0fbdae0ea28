package repository

import (
	"context"
	"fmt"

	"ecommerce-api/internal/data/entity"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type StateRepository interface {
	FindAll(ctx context.Context) ([]*entity.State, error)
}

type stateRepository struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewStateRepository(db *gorm.DB, log *zap.Logger) StateRepository {
	return &stateRepository{
		db:  db,
		log: log.With(zap.String("repository", "state")),
	}
}

func (r *stateRepository) FindAll(ctx context.Context) ([]*entity.State, error) {
	var states []*entity.State
	if err := r.db.WithContext(ctx).Order("name").Find(&states).Error; err != nil {
		r.log.Error("Failed to get states", zap.Error(err))
		return nil, fmt.Errorf("find all states: %w", err)
	}

	return states, nil
}
