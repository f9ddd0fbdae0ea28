package entity

type Cart struct {
	Base
	UserID       uint          `gorm:"column:user_id;not null"`
	Active       bool          `gorm:"column:active;not null;default:true"`
	CartProducts []CartProduct `gorm:"foreignKey:CartID"`
}

func (Cart) TableName() string { return "cart" }

// CartProduct is a cart line item. (cart_id, product_id) is unique.
type CartProduct struct {
	Base
	CartID    uint     `gorm:"column:cart_id;not null;uniqueIndex:idx_cart_product_cart_product"`
	ProductID uint     `gorm:"column:product_id;not null;uniqueIndex:idx_cart_product_cart_product"`
	Amount    int      `gorm:"column:amount;not null"`
	Product   *Product `gorm:"foreignKey:ProductID"`
}

func (CartProduct) TableName() string { return "cart_product" }
