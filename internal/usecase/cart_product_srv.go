package usecase

import (
	"context"

	"ecommerce-api/internal/data/entity"
	"ecommerce-api/internal/data/repository"
	"ecommerce-api/internal/dto/request"

	"go.uber.org/zap"
)

// CartProductService manages the line items of a cart.
type CartProductService interface {
	Insert(ctx context.Context, cart *entity.Cart, req *request.InsertCartRequest) (*entity.CartProduct, error)
	Update(ctx context.Context, cart *entity.Cart, req *request.UpdateCartRequest) (*entity.CartProduct, error)
	Delete(ctx context.Context, cartID, productID uint) error
}

type cartProductService struct {
	cartProductRepo repository.CartProductRepository
	productRepo     repository.ProductRepository
	log             *zap.Logger
}

func NewCartProductService(cartProductRepo repository.CartProductRepository, productRepo repository.ProductRepository, log *zap.Logger) CartProductService {
	return &cartProductService{
		cartProductRepo: cartProductRepo,
		productRepo:     productRepo,
		log:             log.With(zap.String("service", "cart_product")),
	}
}

// Insert adds the product to the cart, summing the amount when the product
// is already there.
func (s *cartProductService) Insert(ctx context.Context, cart *entity.Cart, req *request.InsertCartRequest) (*entity.CartProduct, error) {
	if err := s.ensureProduct(ctx, req.ProductID); err != nil {
		return nil, err
	}

	item := &entity.CartProduct{
		CartID:    cart.ID,
		ProductID: req.ProductID,
		Amount:    req.Amount,
	}
	if err := s.cartProductRepo.AddAmount(ctx, item); err != nil {
		return nil, internal("failed to add product to cart")
	}

	merged, err := s.cartProductRepo.FindByCartAndProduct(ctx, cart.ID, req.ProductID)
	if err != nil || merged == nil {
		s.log.Error("Line item missing after insert",
			zap.Error(err),
			zap.Uint("cart_id", cart.ID),
			zap.Uint("product_id", req.ProductID),
		)
		return nil, internal("failed to add product to cart")
	}

	s.log.Info("Product added to cart",
		zap.Uint("cart_id", cart.ID),
		zap.Uint("product_id", req.ProductID),
		zap.Int("amount", merged.Amount),
	)
	return merged, nil
}

func (s *cartProductService) Update(ctx context.Context, cart *entity.Cart, req *request.UpdateCartRequest) (*entity.CartProduct, error) {
	if err := s.ensureProduct(ctx, req.ProductID); err != nil {
		return nil, err
	}

	item, err := s.find(ctx, cart.ID, req.ProductID)
	if err != nil {
		return nil, err
	}

	if err := s.cartProductRepo.UpdateAmount(ctx, item.ID, req.Amount); err != nil {
		return nil, internal("failed to update cart")
	}

	item.Amount = req.Amount
	return item, nil
}

func (s *cartProductService) Delete(ctx context.Context, cartID, productID uint) error {
	item, err := s.find(ctx, cartID, productID)
	if err != nil {
		return err
	}

	if err := s.cartProductRepo.Delete(ctx, item.ID); err != nil {
		return internal("failed to remove product from cart")
	}
	return nil
}

func (s *cartProductService) find(ctx context.Context, cartID, productID uint) (*entity.CartProduct, error) {
	item, err := s.cartProductRepo.FindByCartAndProduct(ctx, cartID, productID)
	if err != nil {
		return nil, internal("failed to get cart product")
	}
	if item == nil {
		return nil, notFound("product not found in cart")
	}
	return item, nil
}

func (s *cartProductService) ensureProduct(ctx context.Context, productID uint) error {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return internal("failed to get product")
	}
	if product == nil {
		return notFound("product not found")
	}
	return nil
}
