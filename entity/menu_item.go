package entity

import (
	"gorm.io/gorm"
)

type MenuItem struct {
	gorm.Model
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"` // paise
	Image       string `json:"image"`

	Category    string `json:"category"`
	Subcategory string `json:"subcategory"`

	// enabled=false is a hard block: disabled lines are purged from carts
	// at every checkout stage.
	Enabled bool `json:"enabled" gorm:"default:true"`
}
