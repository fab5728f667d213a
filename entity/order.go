package entity

import (
	"time"

	"gorm.io/gorm"
)

// Order exists iff a transaction reached verified success. The unique index
// on GatewayOrderID is what keeps a duplicate gateway callback from minting
// a second order.
type Order struct {
	gorm.Model
	Total int64 `json:"total"` // paise

	CustomerName  string `json:"customerName"`
	CustomerPhone string `json:"customerPhone"`
	SeatNumber    string `json:"seatNumber"`
	Screen        string `json:"screen"`

	GatewayOrderID string `json:"gatewayOrderId" gorm:"uniqueIndex"`
	PaymentID      string `json:"paymentId"`
	Signature      string `json:"signature"`

	Status string `json:"status" gorm:"index"`

	CompletedAt      *time.Time `json:"completedAt,omitempty"`
	CompletionStatus string     `json:"completionStatus,omitempty"`

	Items []OrderItem `json:"items" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
