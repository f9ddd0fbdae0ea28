package entity

const (
	UserTypeUser  = 1
	UserTypeAdmin = 2
)

type User struct {
	Base
	Name      string    `gorm:"column:name;not null"`
	Email     string    `gorm:"column:email;not null;uniqueIndex:idx_user_email"`
	Phone     string    `gorm:"column:phone"`
	CPF       string    `gorm:"column:cpf;not null"`
	TypeUser  int       `gorm:"column:type_user;not null;default:1"`
	Password  string    `gorm:"column:password;not null"`
	Addresses []Address `gorm:"foreignKey:UserID"`
}

func (User) TableName() string { return "user" }
