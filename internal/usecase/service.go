package usecase

import (
	"ecommerce-api/internal/data/repository"
	"ecommerce-api/pkg/cache"
	"ecommerce-api/pkg/storage"
	"ecommerce-api/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth          AuthService
	User          UserService
	Address       AddressService
	State         StateService
	Category      CategoryService
	Product       ProductService
	Cart          CartService
	PaymentStatus PaymentStatusService
}

func NewService(
	repo *repository.Repository,
	tokens *utils.TokenManager,
	c *cache.Cache,
	store storage.Storage,
	log *zap.Logger,
) *Service {
	cartProduct := NewCartProductService(repo.CartProduct, repo.Product, log)

	return &Service{
		Auth:          NewAuthService(repo.User, tokens, log),
		User:          NewUserService(repo.User, log),
		Address:       NewAddressService(repo, log),
		State:         NewStateService(repo.State, repo.City, c, log),
		Category:      NewCategoryService(repo.Category, log),
		Product:       NewProductService(repo, store, log),
		Cart:          NewCartService(repo.Cart, cartProduct, log),
		PaymentStatus: NewPaymentStatusService(repo.PaymentStatus, log),
	}
}
