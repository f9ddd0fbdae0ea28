package repository

import (
	"context"
	"errors"
	"fmt"

	"ecommerce-api/internal/data/entity"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	FindByID(ctx context.Context, id uint) (*entity.Category, error)
	FindByName(ctx context.Context, name string) (*entity.Category, error)
	FindAll(ctx context.Context) ([]*entity.Category, error)
	CountProducts(ctx context.Context, id uint) (int64, error)
	Update(ctx context.Context, category *entity.Category) error
	Delete(ctx context.Context, id uint) error
}

type categoryRepository struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewCategoryRepository(db *gorm.DB, log *zap.Logger) CategoryRepository {
	return &categoryRepository{
		db:  db,
		log: log.With(zap.String("repository", "category")),
	}
}

func (r *categoryRepository) Create(ctx context.Context, category *entity.Category) error {
	if err := r.db.WithContext(ctx).Create(category).Error; err != nil {
		r.log.Error("Failed to create category", zap.Error(err), zap.String("name", category.Name))
		return fmt.Errorf("create category %s: %w", category.Name, err)
	}

	return nil
}

func (r *categoryRepository) FindByID(ctx context.Context, id uint) (*entity.Category, error) {
	var category entity.Category
	err := r.db.WithContext(ctx).First(&category, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find category", zap.Error(err), zap.Uint("category_id", id))
		return nil, fmt.Errorf("find category %d: %w", id, err)
	}

	return &category, nil
}

func (r *categoryRepository) FindByName(ctx context.Context, name string) (*entity.Category, error) {
	var category entity.Category
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&category).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find category by name", zap.Error(err), zap.String("name", name))
		return nil, fmt.Errorf("find category by name %s: %w", name, err)
	}

	return &category, nil
}

func (r *categoryRepository) FindAll(ctx context.Context) ([]*entity.Category, error) {
	var categories []*entity.Category
	if err := r.db.WithContext(ctx).Order("name").Find(&categories).Error; err != nil {
		r.log.Error("Failed to get categories", zap.Error(err))
		return nil, fmt.Errorf("find all categories: %w", err)
	}

	return categories, nil
}

// CountProducts counts products still referencing the category
func (r *categoryRepository) CountProducts(ctx context.Context, id uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entity.Product{}).
		Where("category_id = ?", id).
		Count(&count).Error
	if err != nil {
		r.log.Error("Failed to count category products", zap.Error(err), zap.Uint("category_id", id))
		return 0, fmt.Errorf("count products of category %d: %w", id, err)
	}

	return count, nil
}

func (r *categoryRepository) Update(ctx context.Context, category *entity.Category) error {
	if err := r.db.WithContext(ctx).Save(category).Error; err != nil {
		r.log.Error("Failed to update category", zap.Error(err), zap.Uint("category_id", category.ID))
		return fmt.Errorf("update category %d: %w", category.ID, err)
	}

	return nil
}

func (r *categoryRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&entity.Category{}, id)
	if result.Error != nil {
		r.log.Error("Failed to delete category", zap.Error(result.Error), zap.Uint("category_id", id))
		return fmt.Errorf("delete category %d: %w", id, result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("category %d not found", id)
	}

	r.log.Info("Category deleted", zap.Uint("category_id", id))
	return nil
}
