package entity

import (
	"gorm.io/gorm"
)

// TransactionItem is a cart line frozen at intent-creation time.
type TransactionItem struct {
	gorm.Model
	TransactionID uint        `json:"-"`
	Transaction   Transaction `json:"-"`

	MenuItemID uint   `json:"itemId"`
	Name       string `json:"name"`
	UnitPrice  int64  `json:"unitPrice"`
	Qty        int    `json:"quantity"`
}
