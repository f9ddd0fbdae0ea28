package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"ecommerce-api/internal/data/entity"
	"ecommerce-api/internal/data/repository"
	repoMocks "ecommerce-api/internal/data/repository/mocks"
	"ecommerce-api/internal/dto/request"
	"ecommerce-api/pkg/storage"
	storeMocks "ecommerce-api/pkg/storage/mocks"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func TestCategoryService(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		run        func(svc CategoryService) error
		setupMocks func(m *repoMocks.MockCategoryRepository)
		wantErr    error
	}{
		{
			name: "get unknown id",
			run: func(svc CategoryService) error {
				_, err := svc.GetByID(ctx, 42)
				return err
			},
			setupMocks: func(m *repoMocks.MockCategoryRepository) {
				m.On("FindByID", ctx, uint(42)).Return(nil, nil)
			},
			wantErr: ErrNotFound,
		},
		{
			name: "list empty",
			run: func(svc CategoryService) error {
				_, err := svc.GetAll(ctx)
				return err
			},
			setupMocks: func(m *repoMocks.MockCategoryRepository) {
				m.On("FindAll", ctx).Return([]*entity.Category{}, nil)
			},
			wantErr: ErrNotFound,
		},
		{
			name: "create duplicate name",
			run: func(svc CategoryService) error {
				_, err := svc.Create(ctx, &request.CreateCategoryRequest{Name: "Livros"})
				return err
			},
			setupMocks: func(m *repoMocks.MockCategoryRepository) {
				m.On("FindByName", ctx, "Livros").Return(&entity.Category{Base: entity.Base{ID: 1}, Name: "Livros"}, nil)
			},
			wantErr: ErrConflict,
		},
		{
			name: "create",
			run: func(svc CategoryService) error {
				resp, err := svc.Create(ctx, &request.CreateCategoryRequest{Name: "Livros"})
				if err == nil && resp.ID != 2 {
					return errors.New("id not propagated")
				}
				return err
			},
			setupMocks: func(m *repoMocks.MockCategoryRepository) {
				m.On("FindByName", ctx, "Livros").Return(nil, nil)
				m.On("Create", ctx, mock.AnythingOfType("*entity.Category")).
					Run(func(args mock.Arguments) { args.Get(1).(*entity.Category).ID = 2 }).
					Return(nil)
			},
		},
		{
			name: "create loses the unique index race",
			run: func(svc CategoryService) error {
				_, err := svc.Create(ctx, &request.CreateCategoryRequest{Name: "Livros"})
				return err
			},
			setupMocks: func(m *repoMocks.MockCategoryRepository) {
				m.On("FindByName", ctx, "Livros").Return(nil, nil)
				m.On("Create", ctx, mock.AnythingOfType("*entity.Category")).
					Return(fmt.Errorf("create category Livros: %w", gorm.ErrDuplicatedKey))
			},
			wantErr: ErrConflict,
		},
		{
			name: "rename loses the unique index race",
			run: func(svc CategoryService) error {
				_, err := svc.Update(ctx, 1, &request.UpdateCategoryRequest{Name: "Papelaria"})
				return err
			},
			setupMocks: func(m *repoMocks.MockCategoryRepository) {
				m.On("FindByID", ctx, uint(1)).Return(&entity.Category{Base: entity.Base{ID: 1}, Name: "Livros"}, nil)
				m.On("FindByName", ctx, "Papelaria").Return(nil, nil)
				m.On("Update", ctx, mock.AnythingOfType("*entity.Category")).
					Return(fmt.Errorf("update category 1: %w", gorm.ErrDuplicatedKey))
			},
			wantErr: ErrConflict,
		},
		{
			name: "rename to own name is allowed",
			run: func(svc CategoryService) error {
				_, err := svc.Update(ctx, 1, &request.UpdateCategoryRequest{Name: "Livros"})
				return err
			},
			setupMocks: func(m *repoMocks.MockCategoryRepository) {
				cat := &entity.Category{Base: entity.Base{ID: 1}, Name: "Livros"}
				m.On("FindByID", ctx, uint(1)).Return(cat, nil)
				m.On("FindByName", ctx, "Livros").Return(cat, nil)
				m.On("Update", ctx, cat).Return(nil)
			},
		},
		{
			name: "delete with products",
			run: func(svc CategoryService) error {
				return svc.Delete(ctx, 1)
			},
			setupMocks: func(m *repoMocks.MockCategoryRepository) {
				m.On("FindByID", ctx, uint(1)).Return(&entity.Category{Base: entity.Base{ID: 1}}, nil)
				m.On("CountProducts", ctx, uint(1)).Return(int64(3), nil)
			},
			wantErr: ErrBadRequest,
		},
		{
			name: "delete races with a new product",
			run: func(svc CategoryService) error {
				return svc.Delete(ctx, 1)
			},
			setupMocks: func(m *repoMocks.MockCategoryRepository) {
				m.On("FindByID", ctx, uint(1)).Return(&entity.Category{Base: entity.Base{ID: 1}}, nil)
				m.On("CountProducts", ctx, uint(1)).Return(int64(0), nil)
				m.On("Delete", ctx, uint(1)).Return(fmt.Errorf("delete category 1: %w", gorm.ErrForeignKeyViolated))
			},
			wantErr: ErrBadRequest,
		},
		{
			name: "delete",
			run: func(svc CategoryService) error {
				return svc.Delete(ctx, 1)
			},
			setupMocks: func(m *repoMocks.MockCategoryRepository) {
				m.On("FindByID", ctx, uint(1)).Return(&entity.Category{Base: entity.Base{ID: 1}}, nil)
				m.On("CountProducts", ctx, uint(1)).Return(int64(0), nil)
				m.On("Delete", ctx, uint(1)).Return(nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(repoMocks.MockCategoryRepository)
			tt.setupMocks(repo)

			err := tt.run(NewCategoryService(repo, zap.NewNop()))

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			repo.AssertExpectations(t)
		})
	}
}

type productMocks struct {
	product  *repoMocks.MockProductRepository
	category *repoMocks.MockCategoryRepository
	storage  *storeMocks.MockStorage
}

func newProductService(m productMocks) ProductService {
	repo := &repository.Repository{Product: m.product, Category: m.category}
	return NewProductService(repo, m.storage, zap.NewNop())
}

func TestProductService_Create(t *testing.T) {
	ctx := context.Background()
	price := decimal.RequireFromString("19.90")
	negative := decimal.NewFromInt(-1)

	tests := []struct {
		name        string
		req         request.CreateProductRequest
		setupMocks  func(m productMocks)
		wantErr     error
		insertFails bool
	}{
		{
			name:       "negative price",
			req:        request.CreateProductRequest{Name: "Caneca", CategoryID: 1, Price: &negative},
			setupMocks: func(m productMocks) {},
			wantErr:    ErrBadRequest,
		},
		{
			name:       "missing price",
			req:        request.CreateProductRequest{Name: "Caneca", CategoryID: 1},
			setupMocks: func(m productMocks) {},
			wantErr:    ErrBadRequest,
		},
		{
			name: "category not found",
			req:  request.CreateProductRequest{Name: "Caneca", CategoryID: 5, Price: &price},
			setupMocks: func(m productMocks) {
				m.category.On("FindByID", ctx, uint(5)).Return(nil, nil)
			},
			wantErr: ErrNotFound,
		},
		{
			name: "duplicate name",
			req:  request.CreateProductRequest{Name: "Caneca", CategoryID: 1, Price: &price},
			setupMocks: func(m productMocks) {
				m.category.On("FindByID", ctx, uint(1)).Return(&entity.Category{Base: entity.Base{ID: 1}}, nil)
				m.product.On("FindByName", ctx, "Caneca").Return(&entity.Product{Base: entity.Base{ID: 9}}, nil)
			},
			wantErr: ErrConflict,
		},
		{
			name: "name taken by a concurrent insert",
			req:  request.CreateProductRequest{Name: "Caneca", CategoryID: 1, Price: &price},
			setupMocks: func(m productMocks) {
				m.category.On("FindByID", ctx, uint(1)).Return(&entity.Category{Base: entity.Base{ID: 1}}, nil)
				m.product.On("FindByName", ctx, "Caneca").Return(nil, nil)
				m.product.On("Create", ctx, mock.Anything).
					Return(fmt.Errorf("create product Caneca: %w", gorm.ErrDuplicatedKey))
			},
			wantErr:     ErrConflict,
			insertFails: true,
		},
		{
			name: "created with category",
			req:  request.CreateProductRequest{Name: "Caneca", CategoryID: 1, Price: &price},
			setupMocks: func(m productMocks) {
				m.category.On("FindByID", ctx, uint(1)).Return(&entity.Category{Base: entity.Base{ID: 1}, Name: "Cozinha"}, nil)
				m.product.On("FindByName", ctx, "Caneca").Return(nil, nil)
				m.product.On("Create", ctx, mock.MatchedBy(func(p *entity.Product) bool {
					return p.Price.Equal(price) && p.CategoryID == 1
				})).Return(nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := productMocks{
				product:  new(repoMocks.MockProductRepository),
				category: new(repoMocks.MockCategoryRepository),
				storage:  new(storeMocks.MockStorage),
			}
			tt.setupMocks(m)

			resp, err := newProductService(m).Create(ctx, &tt.req)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, resp)
				if !tt.insertFails {
					m.product.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
				}
			} else {
				require.NoError(t, err)
				assert.Equal(t, "Cozinha", resp.Category.Name)
			}
			m.product.AssertExpectations(t)
			m.category.AssertExpectations(t)
		})
	}
}

func TestProductService_UpdateNameRace(t *testing.T) {
	ctx := context.Background()
	m := productMocks{product: new(repoMocks.MockProductRepository)}
	m.product.On("FindByID", ctx, uint(1)).Return(&entity.Product{Base: entity.Base{ID: 1}, Name: "Caneca"}, nil)
	m.product.On("FindByName", ctx, "Copo").Return(nil, nil)
	m.product.On("Update", ctx, mock.Anything).
		Return(fmt.Errorf("update product 1: %w", gorm.ErrDuplicatedKey))

	name := "Copo"
	_, err := newProductService(m).Update(ctx, 1, &request.UpdateProductRequest{Name: &name})

	assert.ErrorIs(t, err, ErrConflict)
	assert.EqualError(t, err, "product name Copo already exists")
}

func TestProductService_Delete(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		deleteErr error
		wantErr   error
	}{
		{name: "deleted", deleteErr: nil},
		{
			name:      "still in a cart",
			deleteErr: fmt.Errorf("delete product 1: %w", gorm.ErrForeignKeyViolated),
			wantErr:   ErrBadRequest,
		},
		{name: "database failure", deleteErr: errors.New("db down"), wantErr: ErrInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := productMocks{product: new(repoMocks.MockProductRepository)}
			m.product.On("FindByID", ctx, uint(1)).Return(&entity.Product{Base: entity.Base{ID: 1}}, nil)
			m.product.On("Delete", ctx, uint(1)).Return(tt.deleteErr)

			err := newProductService(m).Delete(ctx, 1)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			m.product.AssertExpectations(t)
		})
	}
}

func TestProductService_GetByID_NotFound(t *testing.T) {
	ctx := context.Background()
	m := productMocks{product: new(repoMocks.MockProductRepository)}
	m.product.On("FindByID", ctx, uint(404)).Return(nil, nil)

	resp, err := newProductService(m).GetByID(ctx, 404)
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProductService_GetAll_Empty(t *testing.T) {
	ctx := context.Background()
	m := productMocks{product: new(repoMocks.MockProductRepository)}
	m.product.On("FindAll", ctx).Return([]*entity.Product{}, nil)

	_, err := newProductService(m).GetAll(ctx)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProductService_UpdateMergesFields(t *testing.T) {
	ctx := context.Background()
	m := productMocks{
		product:  new(repoMocks.MockProductRepository),
		category: new(repoMocks.MockCategoryRepository),
	}
	stored := &entity.Product{Base: entity.Base{ID: 1}, Name: "Caneca", CategoryID: 1, Price: decimal.NewFromInt(10), Image: "a.png"}
	m.product.On("FindByID", ctx, uint(1)).Return(stored, nil)
	m.product.On("Update", ctx, mock.MatchedBy(func(p *entity.Product) bool {
		return p.Name == "Caneca" && p.Image == "a.png" && p.Price.Equal(decimal.NewFromInt(15))
	})).Return(nil)

	newPrice := decimal.NewFromInt(15)
	resp, err := newProductService(m).Update(ctx, 1, &request.UpdateProductRequest{Price: &newPrice})

	require.NoError(t, err)
	assert.True(t, resp.Price.Equal(newPrice))
	m.product.AssertExpectations(t)
	m.category.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestProductService_UploadImage(t *testing.T) {
	ctx := context.Background()

	t.Run("stores and saves url", func(t *testing.T) {
		m := productMocks{product: new(repoMocks.MockProductRepository), storage: new(storeMocks.MockStorage)}
		m.product.On("FindByID", ctx, uint(1)).Return(&entity.Product{Base: entity.Base{ID: 1}}, nil)
		body := strings.NewReader("png-bytes")
		m.storage.On("Put", ctx, mock.MatchedBy(func(key string) bool {
			return strings.HasPrefix(key, "products/1/") && strings.HasSuffix(key, ".png")
		}), body, storage.PutObjectOptions{Size: 9, ContentType: "image/png"}).
			Return(storage.ObjectInfo{URL: "http://minio/products/1/x.png"}, nil)
		m.product.On("Update", ctx, mock.MatchedBy(func(p *entity.Product) bool {
			return p.Image == "http://minio/products/1/x.png"
		})).Return(nil)

		resp, err := newProductService(m).UploadImage(ctx, 1, ImageUpload{
			Filename: "Foto.PNG", ContentType: "image/png", Size: 9, Body: body,
		})
		require.NoError(t, err)
		assert.Equal(t, "http://minio/products/1/x.png", resp.Image)
		m.storage.AssertExpectations(t)
	})

	t.Run("rejects non images", func(t *testing.T) {
		m := productMocks{product: new(repoMocks.MockProductRepository), storage: new(storeMocks.MockStorage)}

		_, err := newProductService(m).UploadImage(ctx, 1, ImageUpload{ContentType: "application/pdf"})
		assert.ErrorIs(t, err, ErrBadRequest)
	})

	t.Run("storage not configured", func(t *testing.T) {
		m := productMocks{product: new(repoMocks.MockProductRepository)}
		m.product.On("FindByID", ctx, uint(1)).Return(&entity.Product{Base: entity.Base{ID: 1}}, nil)
		repo := &repository.Repository{Product: m.product}

		_, err := NewProductService(repo, storage.Disabled(), zap.NewNop()).UploadImage(ctx, 1, ImageUpload{
			Filename: "a.jpg", ContentType: "image/jpeg", Size: 1, Body: strings.NewReader("x"),
		})
		assert.ErrorIs(t, err, ErrUnavailable)
	})

	t.Run("removes object when save fails", func(t *testing.T) {
		m := productMocks{product: new(repoMocks.MockProductRepository), storage: new(storeMocks.MockStorage)}
		m.product.On("FindByID", ctx, uint(1)).Return(&entity.Product{Base: entity.Base{ID: 1}}, nil)
		m.storage.On("Put", ctx, mock.Anything, mock.Anything, mock.Anything).
			Return(storage.ObjectInfo{URL: "http://minio/k"}, nil)
		m.product.On("Update", ctx, mock.Anything).Return(errors.New("db down"))
		m.storage.On("Delete", ctx, mock.AnythingOfType("string")).Return(nil)

		_, err := newProductService(m).UploadImage(ctx, 1, ImageUpload{
			Filename: "a.jpg", ContentType: "image/jpeg", Size: 1, Body: strings.NewReader("x"),
		})
		assert.ErrorIs(t, err, ErrInternal)
		m.storage.AssertCalled(t, "Delete", ctx, mock.AnythingOfType("string"))
	})
}

func TestPaymentStatusService_GetByID(t *testing.T) {
	ctx := context.Background()
	repo := new(repoMocks.MockPaymentStatusRepository)
	repo.On("FindByID", ctx, uint(1)).Return(&entity.PaymentStatus{Base: entity.Base{ID: 1}, Name: "Pago"}, nil)
	repo.On("FindByID", ctx, uint(9)).Return(nil, nil)
	svc := NewPaymentStatusService(repo, zap.NewNop())

	resp, err := svc.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Pago", resp.Name)

	_, err = svc.GetByID(ctx, 9)
	assert.ErrorIs(t, err, ErrNotFound)
}
