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

type CartService interface {
	Insert(ctx context.Context, userID uint, req *request.InsertCartRequest) (*response.CartResponse, error)
	GetActive(ctx context.Context, userID uint) (*response.CartResponse, error)
	Update(ctx context.Context, userID uint, req *request.UpdateCartRequest) (*response.CartProductResponse, error)
	DeleteProduct(ctx context.Context, userID, productID uint) error
	Clear(ctx context.Context, userID uint) error
}

type cartService struct {
	cartRepo    repository.CartRepository
	cartProduct CartProductService
	log         *zap.Logger
}

func NewCartService(cartRepo repository.CartRepository, cartProduct CartProductService, log *zap.Logger) CartService {
	return &cartService{
		cartRepo:    cartRepo,
		cartProduct: cartProduct,
		log:         log.With(zap.String("service", "cart")),
	}
}

func (s *cartService) Insert(ctx context.Context, userID uint, req *request.InsertCartRequest) (*response.CartResponse, error) {
	cart, err := s.findOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	if _, err := s.cartProduct.Insert(ctx, cart, req); err != nil {
		return nil, err
	}

	return s.GetActive(ctx, userID)
}

func (s *cartService) GetActive(ctx context.Context, userID uint) (*response.CartResponse, error) {
	cart, err := s.cartRepo.FindActiveWithItems(ctx, userID)
	if err != nil {
		return nil, internal("failed to get cart")
	}
	if cart == nil {
		return nil, notFound("cart active not found")
	}

	resp := response.CartToResponse(cart)
	return &resp, nil
}

func (s *cartService) Update(ctx context.Context, userID uint, req *request.UpdateCartRequest) (*response.CartProductResponse, error) {
	cart, err := s.findActive(ctx, userID)
	if err != nil {
		return nil, err
	}

	item, err := s.cartProduct.Update(ctx, cart, req)
	if err != nil {
		return nil, err
	}

	resp := response.CartProductToResponse(item)
	return &resp, nil
}

func (s *cartService) DeleteProduct(ctx context.Context, userID, productID uint) error {
	cart, err := s.findActive(ctx, userID)
	if err != nil {
		return err
	}

	return s.cartProduct.Delete(ctx, cart.ID, productID)
}

// Clear deactivates the active cart; the next insert opens a new one.
func (s *cartService) Clear(ctx context.Context, userID uint) error {
	cart, err := s.findActive(ctx, userID)
	if err != nil {
		return err
	}

	if err := s.cartRepo.Deactivate(ctx, cart.ID); err != nil {
		return internal("failed to clear cart")
	}

	s.log.Info("Cart cleared", zap.Uint("cart_id", cart.ID), zap.Uint("user_id", userID))
	return nil
}

func (s *cartService) findActive(ctx context.Context, userID uint) (*entity.Cart, error) {
	cart, err := s.cartRepo.FindActiveByUserID(ctx, userID)
	if err != nil {
		return nil, internal("failed to get cart")
	}
	if cart == nil {
		return nil, notFound("cart active not found")
	}
	return cart, nil
}

func (s *cartService) findOrCreate(ctx context.Context, userID uint) (*entity.Cart, error) {
	cart, err := s.cartRepo.FindActiveByUserID(ctx, userID)
	if err != nil {
		return nil, internal("failed to get cart")
	}
	if cart != nil {
		return cart, nil
	}

	cart = &entity.Cart{UserID: userID, Active: true}
	err = s.cartRepo.Create(ctx, cart)
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// a concurrent request opened the cart first
		return s.findActive(ctx, userID)
	}
	if err != nil {
		return nil, internal("failed to create cart")
	}

	s.log.Info("Cart created", zap.Uint("cart_id", cart.ID), zap.Uint("user_id", userID))
	return cart, nil
}
