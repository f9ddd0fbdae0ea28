package repository

import (
	"context"
	"errors"
	"fmt"

	"ecommerce-api/internal/data/entity"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CartRepository interface {
	Create(ctx context.Context, cart *entity.Cart) error
	FindActiveByUserID(ctx context.Context, userID uint) (*entity.Cart, error)
	FindActiveWithItems(ctx context.Context, userID uint) (*entity.Cart, error)
	Deactivate(ctx context.Context, cartID uint) error
}

type cartRepository struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewCartRepository(db *gorm.DB, log *zap.Logger) CartRepository {
	return &cartRepository{
		db:  db,
		log: log.With(zap.String("repository", "cart")),
	}
}

func (r *cartRepository) Create(ctx context.Context, cart *entity.Cart) error {
	if err := r.db.WithContext(ctx).Create(cart).Error; err != nil {
		r.log.Error("Failed to create cart", zap.Error(err), zap.Uint("user_id", cart.UserID))
		return fmt.Errorf("create cart for user %d: %w", cart.UserID, err)
	}

	return nil
}

func (r *cartRepository) FindActiveByUserID(ctx context.Context, userID uint) (*entity.Cart, error) {
	return r.findActive(r.db.WithContext(ctx), userID)
}

// FindActiveWithItems loads line items and their products
func (r *cartRepository) FindActiveWithItems(ctx context.Context, userID uint) (*entity.Cart, error) {
	return r.findActive(r.db.WithContext(ctx).Preload("CartProducts.Product"), userID)
}

func (r *cartRepository) findActive(tx *gorm.DB, userID uint) (*entity.Cart, error) {
	var cart entity.Cart
	err := tx.Where("user_id = ? AND active = ?", userID, true).First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find active cart", zap.Error(err), zap.Uint("user_id", userID))
		return nil, fmt.Errorf("find active cart for user %d: %w", userID, err)
	}

	return &cart, nil
}

func (r *cartRepository) Deactivate(ctx context.Context, cartID uint) error {
	result := r.db.WithContext(ctx).
		Model(&entity.Cart{}).
		Where("id = ?", cartID).
		Update("active", false)
	if result.Error != nil {
		r.log.Error("Failed to deactivate cart", zap.Error(result.Error), zap.Uint("cart_id", cartID))
		return fmt.Errorf("deactivate cart %d: %w", cartID, result.Error)
	}

	return nil
}
