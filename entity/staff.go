package entity

import (
	"gorm.io/gorm"
)

type Staff struct {
	gorm.Model
	Name         string `json:"name"`
	Email        string `json:"email" gorm:"uniqueIndex"`
	PasswordHash string `json:"-"`
}
