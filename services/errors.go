package services

import "errors"

// Checkout/fulfillment failure taxonomy. Controllers map these to HTTP
// statuses with errors.Is; everything else surfaces as a server fault.
var (
	ErrCartEmpty          = errors.New("cart is empty")
	ErrStockConflict      = errors.New("some items are no longer available")
	ErrGatewayUnavailable = errors.New("payment gateway unavailable")
	ErrVerificationFailed = errors.New("payment verification failed")
	ErrOrderConflict      = errors.New("order already finalised")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
