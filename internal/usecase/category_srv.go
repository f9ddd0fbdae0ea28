package usecase

import (
	"context"
	"errors"

	"ecommerce-api/internal/data/entity"
	"ecommerce-api/internal/data/repository"
	"ecommerce-api/internal/dto/request"
	"ecommerce-api/internal/dto/response"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CategoryService interface {
	Create(ctx context.Context, req *request.CreateCategoryRequest) (*response.CategoryResponse, error)
	GetAll(ctx context.Context) ([]response.CategoryResponse, error)
	GetByID(ctx context.Context, id uint) (*response.CategoryResponse, error)
	Update(ctx context.Context, id uint, req *request.UpdateCategoryRequest) (*response.CategoryResponse, error)
	Delete(ctx context.Context, id uint) error
}

type categoryService struct {
	categoryRepo repository.CategoryRepository
	log          *zap.Logger
}

func NewCategoryService(categoryRepo repository.CategoryRepository, log *zap.Logger) CategoryService {
	return &categoryService{
		categoryRepo: categoryRepo,
		log:          log.With(zap.String("service", "category")),
	}
}

func (s *categoryService) Create(ctx context.Context, req *request.CreateCategoryRequest) (*response.CategoryResponse, error) {
	if err := s.ensureNameFree(ctx, req.Name, 0); err != nil {
		return nil, err
	}

	category := &entity.Category{Name: req.Name}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, categoryNameTaken(category.Name)
		}
		return nil, internal("failed to create category")
	}

	s.log.Info("Category created", zap.Uint("category_id", category.ID), zap.String("name", category.Name))

	resp := response.CategoryToResponse(category)
	return &resp, nil
}

func (s *categoryService) GetAll(ctx context.Context) ([]response.CategoryResponse, error) {
	categories, err := s.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, internal("failed to get categories")
	}
	if len(categories) == 0 {
		return nil, notFound("categories empty")
	}

	resp := make([]response.CategoryResponse, len(categories))
	for i, category := range categories {
		resp[i] = response.CategoryToResponse(category)
	}
	return resp, nil
}

func (s *categoryService) GetByID(ctx context.Context, id uint) (*response.CategoryResponse, error) {
	category, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := response.CategoryToResponse(category)
	return &resp, nil
}

func (s *categoryService) Update(ctx context.Context, id uint, req *request.UpdateCategoryRequest) (*response.CategoryResponse, error) {
	category, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.ensureNameFree(ctx, req.Name, id); err != nil {
		return nil, err
	}

	category.Name = req.Name
	if err := s.categoryRepo.Update(ctx, category); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, categoryNameTaken(category.Name)
		}
		return nil, internal("failed to update category")
	}

	resp := response.CategoryToResponse(category)
	return &resp, nil
}

func (s *categoryService) Delete(ctx context.Context, id uint) error {
	if _, err := s.find(ctx, id); err != nil {
		return err
	}

	count, err := s.categoryRepo.CountProducts(ctx, id)
	if err != nil {
		return internal("failed to delete category")
	}
	if count > 0 {
		return badRequest("category with relations")
	}

	if err := s.categoryRepo.Delete(ctx, id); err != nil {
		// a product was added after the count
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return badRequest("category with relations")
		}
		return internal("failed to delete category")
	}
	return nil
}

func (s *categoryService) find(ctx context.Context, id uint) (*entity.Category, error) {
	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, internal("failed to get category")
	}
	if category == nil {
		return nil, notFound("category not found")
	}
	return category, nil
}

// ensureNameFree rejects a name used by any category other than selfID.
func (s *categoryService) ensureNameFree(ctx context.Context, name string, selfID uint) error {
	existing, err := s.categoryRepo.FindByName(ctx, name)
	if err != nil {
		return internal("failed to check category name")
	}
	if existing != nil && existing.ID != selfID {
		return categoryNameTaken(name)
	}
	return nil
}

func categoryNameTaken(name string) error {
	return conflict("category name " + name + " already exists")
}
