package entity

type Address struct {
	Base
	UserID     uint   `gorm:"column:user_id;not null;index"`
	Complement string `gorm:"column:complement"`
	Number     int    `gorm:"column:number;not null"`
	CEP        string `gorm:"column:cep;not null"`
	CityID     uint   `gorm:"column:city_id;not null"`
	City       *City  `gorm:"foreignKey:CityID"`
}

func (Address) TableName() string { return "address" }
