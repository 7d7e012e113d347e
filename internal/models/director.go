package models

type Director struct {
	ID   uint    `gorm:"primaryKey" json:"id" example:"1"`
	Name *string `gorm:"size:255" json:"name" example:"Christopher Nolan"`
}

func (Director) TableName() string {
	return "directors"
}
