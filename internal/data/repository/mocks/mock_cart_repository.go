package mocks

import (
	"context"

	"ecommerce-api/internal/data/entity"

	"github.com/stretchr/testify/mock"
)

type MockCartRepository struct {
	mock.Mock
}

func (m *MockCartRepository) Create(ctx context.Context, cart *entity.Cart) error {
	args := m.Called(ctx, cart)
	return args.Error(0)
}

func (m *MockCartRepository) FindActiveByUserID(ctx context.Context, userID uint) (*entity.Cart, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Cart), args.Error(1)
}

func (m *MockCartRepository) FindActiveWithItems(ctx context.Context, userID uint) (*entity.Cart, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Cart), args.Error(1)
}

func (m *MockCartRepository) Deactivate(ctx context.Context, cartID uint) error {
	args := m.Called(ctx, cartID)
	return args.Error(0)
}

type MockCartProductRepository struct {
	mock.Mock
}

func (m *MockCartProductRepository) FindByCartAndProduct(ctx context.Context, cartID, productID uint) (*entity.CartProduct, error) {
	args := m.Called(ctx, cartID, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.CartProduct), args.Error(1)
}

func (m *MockCartProductRepository) AddAmount(ctx context.Context, item *entity.CartProduct) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockCartProductRepository) UpdateAmount(ctx context.Context, id uint, amount int) error {
	args := m.Called(ctx, id, amount)
	return args.Error(0)
}

func (m *MockCartProductRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
