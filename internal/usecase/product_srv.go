package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"ecommerce-api/internal/data/entity"
	"ecommerce-api/internal/data/repository"
	"ecommerce-api/internal/dto/request"
	"ecommerce-api/internal/dto/response"
	"ecommerce-api/pkg/storage"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ImageUpload is a product image read from a multipart form.
type ImageUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

type ProductService interface {
	Create(ctx context.Context, req *request.CreateProductRequest) (*response.ProductResponse, error)
	GetAll(ctx context.Context) ([]response.ProductResponse, error)
	GetByID(ctx context.Context, id uint) (*response.ProductResponse, error)
	Update(ctx context.Context, id uint, req *request.UpdateProductRequest) (*response.ProductResponse, error)
	Delete(ctx context.Context, id uint) error
	UploadImage(ctx context.Context, id uint, img ImageUpload) (*response.ProductResponse, error)
}

type productService struct {
	repo    *repository.Repository
	storage storage.Storage
	log     *zap.Logger
}

func NewProductService(repo *repository.Repository, store storage.Storage, log *zap.Logger) ProductService {
	return &productService{
		repo:    repo,
		storage: store,
		log:     log.With(zap.String("service", "product")),
	}
}

func (s *productService) Create(ctx context.Context, req *request.CreateProductRequest) (*response.ProductResponse, error) {
	// 1. Validate price
	if req.Price == nil {
		return nil, badRequest("price is required")
	}
	if req.Price.IsNegative() {
		return nil, badRequest("price must not be negative")
	}

	// 2. Category must exist
	category, err := s.findCategory(ctx, req.CategoryID)
	if err != nil {
		return nil, err
	}

	// 3. Name must be unique
	if err := s.ensureNameFree(ctx, req.Name, 0); err != nil {
		return nil, err
	}

	// 4. Save
	product := &entity.Product{
		Name:       req.Name,
		CategoryID: req.CategoryID,
		Price:      *req.Price,
		Image:      req.Image,
	}
	if err := s.repo.Product.Create(ctx, product); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, productNameTaken(product.Name)
		}
		return nil, internal("failed to create product")
	}

	s.log.Info("Product created", zap.Uint("product_id", product.ID), zap.String("name", product.Name))

	product.Category = category
	resp := response.ProductToResponse(product)
	return &resp, nil
}

func (s *productService) GetAll(ctx context.Context) ([]response.ProductResponse, error) {
	products, err := s.repo.Product.FindAll(ctx)
	if err != nil {
		return nil, internal("failed to get products")
	}
	if len(products) == 0 {
		return nil, notFound("not found products")
	}

	resp := make([]response.ProductResponse, len(products))
	for i, product := range products {
		resp[i] = response.ProductToResponse(product)
	}
	return resp, nil
}

func (s *productService) GetByID(ctx context.Context, id uint) (*response.ProductResponse, error) {
	product, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := response.ProductToResponse(product)
	return &resp, nil
}

// Update merges the non-nil request fields into the stored product.
func (s *productService) Update(ctx context.Context, id uint, req *request.UpdateProductRequest) (*response.ProductResponse, error) {
	product, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil && *req.Name != product.Name {
		if err := s.ensureNameFree(ctx, *req.Name, id); err != nil {
			return nil, err
		}
		product.Name = *req.Name
	}

	if req.CategoryID != nil && *req.CategoryID != product.CategoryID {
		category, err := s.findCategory(ctx, *req.CategoryID)
		if err != nil {
			return nil, err
		}
		product.CategoryID = category.ID
		product.Category = category
	}

	if req.Price != nil {
		if req.Price.IsNegative() {
			return nil, badRequest("price must not be negative")
		}
		product.Price = *req.Price
	}

	if req.Image != nil {
		product.Image = *req.Image
	}

	if err := s.repo.Product.Update(ctx, product); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, productNameTaken(product.Name)
		}
		return nil, internal("failed to update product")
	}

	resp := response.ProductToResponse(product)
	return &resp, nil
}

func (s *productService) Delete(ctx context.Context, id uint) error {
	if _, err := s.find(ctx, id); err != nil {
		return err
	}

	if err := s.repo.Product.Delete(ctx, id); err != nil {
		// still referenced by a cart line item
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return badRequest("product with relations")
		}
		return internal("failed to delete product")
	}
	return nil
}

// UploadImage stores the image in the bucket and points the product at it.
func (s *productService) UploadImage(ctx context.Context, id uint, img ImageUpload) (*response.ProductResponse, error) {
	if !strings.HasPrefix(img.ContentType, "image/") {
		return nil, badRequest("file must be an image")
	}

	product, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("products/%d/%s%s", id, uuid.NewString(), strings.ToLower(path.Ext(img.Filename)))
	info, err := s.storage.Put(ctx, key, img.Body, storage.PutObjectOptions{
		Size:        img.Size,
		ContentType: img.ContentType,
	})
	if errors.Is(err, storage.ErrNotConfigured) {
		return nil, unavailable("image upload is not available")
	}
	if err != nil {
		s.log.Error("Failed to store image", zap.Error(err), zap.Uint("product_id", id))
		return nil, internal("failed to upload image")
	}

	product.Image = info.URL
	if err := s.repo.Product.Update(ctx, product); err != nil {
		// drop the orphaned object
		if delErr := s.storage.Delete(ctx, key); delErr != nil {
			s.log.Warn("Failed to remove orphaned image", zap.Error(delErr), zap.String("key", key))
		}
		return nil, internal("failed to update product")
	}

	s.log.Info("Product image uploaded", zap.Uint("product_id", id), zap.String("key", key))

	resp := response.ProductToResponse(product)
	return &resp, nil
}

func (s *productService) find(ctx context.Context, id uint) (*entity.Product, error) {
	product, err := s.repo.Product.FindByID(ctx, id)
	if err != nil {
		return nil, internal("failed to get product")
	}
	if product == nil {
		return nil, notFound("product not found")
	}
	return product, nil
}

func (s *productService) findCategory(ctx context.Context, id uint) (*entity.Category, error) {
	category, err := s.repo.Category.FindByID(ctx, id)
	if err != nil {
		return nil, internal("failed to get category")
	}
	if category == nil {
		return nil, notFound("category not found")
	}
	return category, nil
}

func (s *productService) ensureNameFree(ctx context.Context, name string, selfID uint) error {
	existing, err := s.repo.Product.FindByName(ctx, name)
	if err != nil {
		return internal("failed to check product name")
	}
	if existing != nil && existing.ID != selfID {
		return productNameTaken(name)
	}
	return nil
}

func productNameTaken(name string) error {
	return conflict("product name " + name + " already exists")
}
