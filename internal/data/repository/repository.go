package repository

import (
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Repository struct {
	User          UserRepository
	Address       AddressRepository
	State         StateRepository
	City          CityRepository
	Category      CategoryRepository
	Product       ProductRepository
	Cart          CartRepository
	CartProduct   CartProductRepository
	PaymentStatus PaymentStatusRepository
}

func NewRepository(db *gorm.DB, log *zap.Logger) *Repository {
	return &Repository{
		User:          NewUserRepository(db, log),
		Address:       NewAddressRepository(db, log),
		State:         NewStateRepository(db, log),
		City:          NewCityRepository(db, log),
		Category:      NewCategoryRepository(db, log),
		Product:       NewProductRepository(db, log),
		Cart:          NewCartRepository(db, log),
		CartProduct:   NewCartProductRepository(db, log),
		PaymentStatus: NewPaymentStatusRepository(db, log),
	}
}
