package entity

type Category struct {
	Base
	Name     string    `gorm:"column:name;not null;uniqueIndex:idx_category_name"`
	Products []Product `gorm:"foreignKey:CategoryID"`
}

func (Category) TableName() string { return "category" }
