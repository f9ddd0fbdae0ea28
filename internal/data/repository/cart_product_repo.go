package repository

import (
	"context"
	"errors"
	"fmt"

	"ecommerce-api/internal/data/entity"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CartProductRepository interface {
	FindByCartAndProduct(ctx context.Context, cartID, productID uint) (*entity.CartProduct, error)
	// AddAmount creates the line item or adds Amount to the existing one.
	AddAmount(ctx context.Context, item *entity.CartProduct) error
	UpdateAmount(ctx context.Context, id uint, amount int) error
	Delete(ctx context.Context, id uint) error
}

type cartProductRepository struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewCartProductRepository(db *gorm.DB, log *zap.Logger) CartProductRepository {
	return &cartProductRepository{
		db:  db,
		log: log.With(zap.String("repository", "cart_product")),
	}
}

func (r *cartProductRepository) FindByCartAndProduct(ctx context.Context, cartID, productID uint) (*entity.CartProduct, error) {
	var item entity.CartProduct
	err := r.db.WithContext(ctx).
		Where("cart_id = ? AND product_id = ?", cartID, productID).
		First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find cart product",
			zap.Error(err),
			zap.Uint("cart_id", cartID),
			zap.Uint("product_id", productID),
		)
		return nil, fmt.Errorf("find cart %d product %d: %w", cartID, productID, err)
	}

	return &item, nil
}

// AddAmount is a single INSERT .. ON CONFLICT statement, so concurrent adds
// of the same product to the same cart are summed by the database.
func (r *cartProductRepository) AddAmount(ctx context.Context, item *entity.CartProduct) error {
	err := r.db.WithContext(ctx).
		Omit("Product").
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "cart_id"}, {Name: "product_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"amount":     gorm.Expr("cart_product.amount + excluded.amount"),
				"updated_at": gorm.Expr("excluded.updated_at"),
			}),
		}).
		Create(item).Error
	if err != nil {
		r.log.Error("Failed to add cart product",
			zap.Error(err),
			zap.Uint("cart_id", item.CartID),
			zap.Uint("product_id", item.ProductID),
		)
		return fmt.Errorf("add product %d to cart %d: %w", item.ProductID, item.CartID, err)
	}

	return nil
}

func (r *cartProductRepository) UpdateAmount(ctx context.Context, id uint, amount int) error {
	result := r.db.WithContext(ctx).
		Model(&entity.CartProduct{}).
		Where("id = ?", id).
		Update("amount", amount)
	if result.Error != nil {
		r.log.Error("Failed to update cart product", zap.Error(result.Error), zap.Uint("id", id))
		return fmt.Errorf("update cart product %d: %w", id, result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("cart product %d not found", id)
	}

	return nil
}

func (r *cartProductRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&entity.CartProduct{}, id)
	if result.Error != nil {
		r.log.Error("Failed to delete cart product", zap.Error(result.Error), zap.Uint("id", id))
		return fmt.Errorf("delete cart product %d: %w", id, result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("cart product %d not found", id)
	}

	return nil
}
