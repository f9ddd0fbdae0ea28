package entity

type State struct {
	Base
	Name   string `gorm:"column:name;not null"`
	UF     string `gorm:"column:uf;not null"`
	Cities []City `gorm:"foreignKey:StateID"`
}

func (State) TableName() string { return "state" }

type City struct {
	Base
	StateID uint   `gorm:"column:state_id;not null;index"`
	Name    string `gorm:"column:name;not null"`
	State   *State `gorm:"foreignKey:StateID"`
}

func (City) TableName() string { return "city" }
