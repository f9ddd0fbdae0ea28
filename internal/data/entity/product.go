package entity

import "github.com/shopspring/decimal"

type Product struct {
	Base
	Name       string          `gorm:"column:name;not null;uniqueIndex:idx_product_name"`
	CategoryID uint            `gorm:"column:category_id;not null;index"`
	Price      decimal.Decimal `gorm:"column:price;type:numeric(12,2);not null"`
	Image      string          `gorm:"column:image;not null;default:''"`
	Category   *Category       `gorm:"foreignKey:CategoryID"`
}

func (Product) TableName() string { return "product" }
