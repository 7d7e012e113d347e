package models

type Movie struct {
	ID          uint      `gorm:"primaryKey" json:"id" example:"1"`
	Title       *string   `gorm:"size:255" json:"title" example:"Tenet"`
	Description *string   `gorm:"size:255" json:"description" example:"Armed with only one word, Tenet..."`
	Trailer     *string   `gorm:"size:255" json:"trailer" example:"https://www.youtube.com/watch?v=LdOM0x0XDMo"`
	Year        *int      `json:"year" example:"2020"`
	Rating      *float64  `json:"rating" example:"7.8"`
	GenreID     *uint     `gorm:"index" json:"genre_id" example:"2"`
	Genre       *Genre    `gorm:"foreignKey:GenreID" json:"genre"`
	DirectorID  *uint     `gorm:"index" json:"director_id" example:"1"`
	Director    *Director `gorm:"foreignKey:DirectorID" json:"director"`
}

func (Movie) TableName() string {
	return "movies"
}

// MovieColumns are the columns overwritten by a full-replace update.
var MovieColumns = []string{"title", "description", "trailer", "year", "rating", "genre_id", "director_id"}
