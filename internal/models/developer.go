package models

// Developer is reference data identifying a game's studio of origin.
type Developer struct {
	ID      uint   `gorm:"primaryKey"`
	Name    string `gorm:"size:255;not null"`
	Website *string
	Country *string
}

func (Developer) TableName() string {
	return "developers"
}
