package entity

import (
	"gorm.io/gorm"
)

// CartLine belongs to one patron session. Name and UnitPrice are snapshotted
// from the menu item at add time.
type CartLine struct {
	gorm.Model
	SessionID string `json:"-" gorm:"index"`

	MenuItemID uint     `json:"itemId"`
	MenuItem   MenuItem `json:"-"`

	Name      string `json:"name"`
	UnitPrice int64  `json:"unitPrice"`
	Qty       int    `json:"quantity"`
}
