package models

// Genre is reference data classifying a game (e.g. "RPG", "Roguelike").
// Genres are seeded once and have no mutation surface.
type Genre struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"size:100;unique;not null"`
	Description string
}

func (Genre) TableName() string {
	return "genres"
}
