package models

// Game represents one record in the personal collection. The games table
// pre-exists, so the struct maps columns explicitly instead of embedding
// gorm.Model.
type Game struct {
	ID          uint    `gorm:"primaryKey"`
	Title       string  `gorm:"size:255;not null"`
	Description *string
	GenreID     uint `gorm:"not null"`
	Genre       Genre
	DeveloperID *uint
	Developer   *Developer
	Platform    string `gorm:"size:100;not null"`
	ReleaseYear *int
	Status      GameStatus `gorm:"size:20;not null;default:owned"`
	PricePaid   *float64   `gorm:"type:numeric(10,2)"`
}

func (Game) TableName() string {
	return "games"
}
