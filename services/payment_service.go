package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/dineshnaiduavula/moviesample/entity"
	"github.com/dineshnaiduavula/moviesample/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Gateway is the payment provider surface the orchestrator drives.
// pkg/razorpay implements it.
type Gateway interface {
	CreateOrder(amount int64, receipt string) (string, error)
	VerifySignature(orderID, paymentID, signature string) bool
}

// Notifier receives ledger events for the live staff feed. May be nil.
type Notifier interface {
	OrderCreated(o *entity.Order)
	OrderUpdated(o *entity.Order)
}

// Session identifies the patron for one visit: who and where to deliver.
type Session struct {
	ID         string
	Name       string
	Phone      string
	SeatNumber string
	Screen     string
}

type PaymentService struct {
	DB       *gorm.DB
	Ledger   *repository.LedgerRepository
	CartRepo *repository.CartRepository
	MenuRepo *repository.MenuRepository
	Gateway  Gateway
	Policy   FeePolicy
	KeyID    string // published to the client SDK, never the secret
	Feed     Notifier
}

func NewPaymentService(
	db *gorm.DB,
	ledger *repository.LedgerRepository,
	cartRepo *repository.CartRepository,
	menuRepo *repository.MenuRepository,
	gateway Gateway,
	policy FeePolicy,
	keyID string,
	feed Notifier,
) *PaymentService {
	return &PaymentService{
		DB: db, Ledger: ledger, CartRepo: cartRepo, MenuRepo: menuRepo,
		Gateway: gateway, Policy: policy, KeyID: keyID, Feed: feed,
	}
}

// IntentOut is everything the client SDK needs to open the gateway UI.
type IntentOut struct {
	Key            string    `json:"key"`
	Amount         int64     `json:"amount"` // paise
	Currency       string    `json:"currency"`
	GatewayOrderID string    `json:"orderId"`
	Receipt        string    `json:"receipt"`
	PrefillName    string    `json:"prefillName"`
	PrefillContact string    `json:"prefillContact"`
	Breakdown      Breakdown `json:"breakdown"`
}

// CreateIntent validates the cart against the live catalog, recomputes the
// total server-side, reserves it with the gateway and records a pending
// transaction with an immutable cart snapshot. The amount sent to the
// gateway and the amount on the transaction are the same number.
func (s *PaymentService) CreateIntent(sess Session) (*IntentOut, []string, error) {
	lines, err := s.CartRepo.GetLines(sess.ID)
	if err != nil { return nil, nil, err }
	if len(lines) == 0 {
		return nil, nil, ErrCartEmpty
	}

	snap, err := s.MenuRepo.Snapshot()
	if err != nil { return nil, nil, err }

	breakdown, removed := ComputeBreakdown(lines, snap, s.Policy)
	if len(removed) > 0 {
		ids := make([]uint, 0, len(removed))
		names := make([]string, 0, len(removed))
		for _, ln := range removed {
			ids = append(ids, ln.MenuItemID)
			names = append(names, ln.Name)
		}
		err = s.DB.Transaction(func(tx *gorm.DB) error {
			return s.CartRepo.RemoveByMenuItems(tx, sess.ID, ids)
		})
		if err != nil { return nil, nil, err }
		return nil, names, ErrStockConflict
	}
	if breakdown.Total <= 0 {
		return nil, nil, ErrCartEmpty
	}

	receipt := "ORDER_" + uuid.NewString()
	gatewayOrderID, err := s.Gateway.CreateOrder(breakdown.Total, receipt)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrGatewayUnavailable, err)
	}

	txn := entity.Transaction{
		SessionID:      sess.ID,
		GatewayOrderID: gatewayOrderID,
		Amount:         breakdown.Total,
		Receipt:        receipt,
		CustomerName:   sess.Name,
		CustomerPhone:  sess.Phone,
		SeatNumber:     sess.SeatNumber,
		Screen:         sess.Screen,
		Status:         entity.TxnPending,
	}
	for _, ln := range lines {
		txn.Items = append(txn.Items, entity.TransactionItem{
			MenuItemID: ln.MenuItemID,
			Name:       ln.Name,
			UnitPrice:  ln.UnitPrice,
			Qty:        ln.Qty,
		})
	}
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Ledger.CreateTransaction(tx, &txn)
	})
	if err != nil { return nil, nil, err }

	return &IntentOut{
		Key:            s.KeyID,
		Amount:         breakdown.Total,
		Currency:       "INR",
		GatewayOrderID: gatewayOrderID,
		Receipt:        receipt,
		PrefillName:    sess.Name,
		PrefillContact: sess.Phone,
		Breakdown:      breakdown,
	}, nil, nil
}

type CallbackIn struct {
	GatewayOrderID string `json:"orderId" binding:"required"`
	PaymentID      string `json:"paymentId" binding:"required"`
	Signature      string `json:"signature" binding:"required"`
}

// ConfirmPayment handles the gateway success callback. The signature is
// verified here against the API secret; on a verified first delivery it
// flips the transaction to success, creates the order and clears the cart.
// A duplicate delivery finds the transaction already terminal and returns
// the order that already exists.
func (s *PaymentService) ConfirmPayment(in *CallbackIn) (*entity.Order, error) {
	txn, err := s.Ledger.GetTransactionByGatewayOrderID(in.GatewayOrderID)
	if err != nil { return nil, err }

	now := time.Now()
	if !s.Gateway.VerifySignature(in.GatewayOrderID, in.PaymentID, in.Signature) {
		err = s.DB.Transaction(func(tx *gorm.DB) error {
			_, gerr := s.Ledger.UpdateTransactionGuard(tx, txn.ID, entity.TxnPending, entity.TxnFailed, map[string]any{
				"verified":     false,
				"verified_at":  now,
				"payment_id":   in.PaymentID,
				"verify_error": "Invalid signature",
			})
			return gerr
		})
		if err != nil { return nil, err }
		return nil, ErrVerificationFailed
	}

	var order *entity.Order
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		affected, gerr := s.Ledger.UpdateTransactionGuard(tx, txn.ID, entity.TxnPending, entity.TxnSuccess, map[string]any{
			"verified":    true,
			"verified_at": now,
			"payment_id":  in.PaymentID,
		})
		if gerr != nil { return gerr }

		if affected == 0 {
			// lost the race or a redelivered callback; the order, if any,
			// is whatever the first delivery produced
			existing, gerr := s.Ledger.GetOrderByGatewayOrderID(tx, in.GatewayOrderID)
			if errors.Is(gerr, gorm.ErrRecordNotFound) {
				return ErrOrderConflict
			}
			if gerr != nil { return gerr }
			order = existing
			return nil
		}

		s.warnStaleLines(txn)

		o := entity.Order{
			Total:          txn.Amount,
			CustomerName:   txn.CustomerName,
			CustomerPhone:  txn.CustomerPhone,
			SeatNumber:     txn.SeatNumber,
			Screen:         txn.Screen,
			GatewayOrderID: txn.GatewayOrderID,
			PaymentID:      in.PaymentID,
			Signature:      in.Signature,
			Status:         entity.OrderPending,
		}
		for _, it := range txn.Items {
			o.Items = append(o.Items, entity.OrderItem{
				MenuItemID: it.MenuItemID,
				Name:       it.Name,
				UnitPrice:  it.UnitPrice,
				Qty:        it.Qty,
			})
		}
		if gerr := s.Ledger.CreateOrder(tx, &o); gerr != nil {
			return gerr
		}
		if gerr := s.CartRepo.Clear(tx, txn.SessionID); gerr != nil {
			return gerr
		}
		order = &o
		return nil
	})
	if err != nil { return nil, err }

	if s.Feed != nil && order != nil {
		s.Feed.OrderCreated(order)
	}
	return order, nil
}

// CancelPayment handles the patron dismissing the gateway UI. The
// transaction is closed out as failed; the cart is left intact for a retry.
// A cancel arriving after the callback already settled the transaction is a
// no-op.
func (s *PaymentService) CancelPayment(gatewayOrderID string) error {
	txn, err := s.Ledger.GetTransactionByGatewayOrderID(gatewayOrderID)
	if err != nil { return err }

	now := time.Now()
	return s.DB.Transaction(func(tx *gorm.DB) error {
		_, gerr := s.Ledger.UpdateTransactionGuard(tx, txn.ID, entity.TxnPending, entity.TxnFailed, map[string]any{
			"verified":     false,
			"verified_at":  now,
			"verify_error": "Payment cancelled",
		})
		return gerr
	})
}

// An item disabled between intent creation and the callback was still paid
// for; refunds are off the table by policy, so the order keeps the line and
// staff get a log trail.
func (s *PaymentService) warnStaleLines(txn *entity.Transaction) {
	snap, err := s.MenuRepo.Snapshot()
	if err != nil {
		return
	}
	for _, it := range txn.Items {
		if !snap.IsEnabled(it.MenuItemID) {
			log.Printf("paid order %s contains now-disabled item %q", txn.GatewayOrderID, it.Name)
			continue
		}
		if price, ok := snap.CurrentPrice(it.MenuItemID); ok && price != it.UnitPrice {
			log.Printf("paid order %s: %q priced at %d, catalog now says %d", txn.GatewayOrderID, it.Name, it.UnitPrice, price)
		}
	}
}
