package mocks

import (
	"context"

	"ecommerce-api/internal/dto/request"
	"ecommerce-api/internal/dto/response"

	"github.com/stretchr/testify/mock"
)

type MockCartService struct {
	mock.Mock
}

func (m *MockCartService) Insert(ctx context.Context, userID uint, req *request.InsertCartRequest) (*response.CartResponse, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.CartResponse), args.Error(1)
}

func (m *MockCartService) GetActive(ctx context.Context, userID uint) (*response.CartResponse, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.CartResponse), args.Error(1)
}

func (m *MockCartService) Update(ctx context.Context, userID uint, req *request.UpdateCartRequest) (*response.CartProductResponse, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.CartProductResponse), args.Error(1)
}

func (m *MockCartService) DeleteProduct(ctx context.Context, userID, productID uint) error {
	args := m.Called(ctx, userID, productID)
	return args.Error(0)
}

func (m *MockCartService) Clear(ctx context.Context, userID uint) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}
