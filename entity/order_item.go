package entity

import (
	"gorm.io/gorm"
)

type OrderItem struct {
	gorm.Model
	OrderID uint  `json:"orderId"`
	Order   Order `json:"-"`

	MenuItemID uint   `json:"itemId"`
	Name       string `json:"name"`
	UnitPrice  int64  `json:"unitPrice"`
	Qty        int    `json:"quantity"`
}
