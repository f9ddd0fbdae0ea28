package repository

import (
	"context"
	"errors"
	"fmt"

	"ecommerce-api/internal/data/entity"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type PaymentStatusRepository interface {
	FindAll(ctx context.Context) ([]*entity.PaymentStatus, error)
	FindByID(ctx context.Context, id uint) (*entity.PaymentStatus, error)
}

type paymentStatusRepository struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewPaymentStatusRepository(db *gorm.DB, log *zap.Logger) PaymentStatusRepository {
	return &paymentStatusRepository{
		db:  db,
		log: log.With(zap.String("repository", "payment_status")),
	}
}

func (r *paymentStatusRepository) FindAll(ctx context.Context) ([]*entity.PaymentStatus, error) {
	var statuses []*entity.PaymentStatus
	if err := r.db.WithContext(ctx).Order("id").Find(&statuses).Error; err != nil {
		r.log.Error("Failed to get payment statuses", zap.Error(err))
		return nil, fmt.Errorf("find all payment statuses: %w", err)
	}

	return statuses, nil
}

func (r *paymentStatusRepository) FindByID(ctx context.Context, id uint) (*entity.PaymentStatus, error) {
	var status entity.PaymentStatus
	err := r.db.WithContext(ctx).First(&status, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find payment status", zap.Error(err), zap.Uint("id", id))
		return nil, fmt.Errorf("find payment status %d: %w", id, err)
	}

	return &status, nil
}
