package repository

import (
	"context"
	"fmt"

	"ecommerce-api/internal/data/entity"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type AddressRepository interface {
	Create(ctx context.Context, address *entity.Address) error
	FindByUserID(ctx context.Context, userID uint) ([]*entity.Address, error)
}

type addressRepository struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewAddressRepository(db *gorm.DB, log *zap.Logger) AddressRepository {
	return &addressRepository{
		db:  db,
		log: log.With(zap.String("repository", "address")),
	}
}

func (r *addressRepository) Create(ctx context.Context, address *entity.Address) error {
	if err := r.db.WithContext(ctx).Create(address).Error; err != nil {
		r.log.Error("Failed to create address", zap.Error(err), zap.Uint("user_id", address.UserID))
		return fmt.Errorf("create address for user %d: %w", address.UserID, err)
	}

	return nil
}

// FindByUserID returns the user's addresses with city and state loaded
func (r *addressRepository) FindByUserID(ctx context.Context, userID uint) ([]*entity.Address, error) {
	var addresses []*entity.Address
	err := r.db.WithContext(ctx).
		Preload("City.State").
		Where("user_id = ?", userID).
		Order("id").
		Find(&addresses).Error
	if err != nil {
		r.log.Error("Failed to find addresses", zap.Error(err), zap.Uint("user_id", userID))
		return nil, fmt.Errorf("find addresses for user %d: %w", userID, err)
	}

	return addresses, nil
}
