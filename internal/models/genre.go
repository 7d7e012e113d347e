package models

type Genre struct {
	ID   uint    `gorm:"primaryKey" json:"id" example:"2"`
	Name *string `gorm:"size:255" json:"name" example:"Science Fiction"`
}

func (Genre) TableName() string {
	return "genres"
}
