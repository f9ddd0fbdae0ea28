package entity

type PaymentStatus struct {
	Base
	Name string `gorm:"column:name;not null"`
}

func (PaymentStatus) TableName() string { return "payment_status" }
