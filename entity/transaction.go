package entity

import (
	"time"

	"gorm.io/gorm"
)

// Transaction is the ledger record created before the gateway UI opens.
// It is never deleted; the payment flow mutates it exactly once, to success
// or failed.
type Transaction struct {
	gorm.Model
	SessionID      string `json:"-" gorm:"index"`
	GatewayOrderID string `json:"gatewayOrderId" gorm:"uniqueIndex"`
	Amount         int64  `json:"amount"` // paise, identical to what the gateway was asked to collect
	Receipt        string `json:"receipt" gorm:"uniqueIndex"`

	CustomerName  string `json:"customerName"`
	CustomerPhone string `json:"customerPhone"`
	SeatNumber    string `json:"seatNumber"`
	Screen        string `json:"screen"`

	Status string `json:"status" gorm:"index"`

	// Verification outcome, filled on callback or cancellation. VerifyError
	// distinguishes the failure paths for support reconciliation.
	Verified    bool       `json:"verified"`
	VerifiedAt  *time.Time `json:"verifiedAt,omitempty"`
	PaymentID   string     `json:"paymentId"`
	VerifyError string     `json:"verifyError,omitempty"`

	Items []TransactionItem `json:"items" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
