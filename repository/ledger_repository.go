package repository

import (
	"time"

	"github.com/dineshnaiduavula/moviesample/entity"
	"gorm.io/gorm"
)

// LedgerRepository owns the transactions and orders collections.
type LedgerRepository struct {
	DB *gorm.DB
}

func NewLedgerRepository(db *gorm.DB) *LedgerRepository {
	return &LedgerRepository{DB: db}
}

// ---------------- Transactions ----------------

func (r *LedgerRepository) CreateTransaction(tx *gorm.DB, t *entity.Transaction) error {
	return tx.Create(t).Error
}

func (r *LedgerRepository) GetTransactionByGatewayOrderID(gatewayOrderID string) (*entity.Transaction, error) {
	var t entity.Transaction
	if err := r.DB.Where("gateway_order_id = ?", gatewayOrderID).
		Preload("Items").
		First(&t).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

// UpdateTransactionGuard flips status only when the row is still in `from`.
// The returned affected count is the winner/loser signal for duplicate
// callback delivery.
func (r *LedgerRepository) UpdateTransactionGuard(tx *gorm.DB, id uint, from, to string, fields map[string]any) (int64, error) {
	if fields == nil {
		fields = map[string]any{}
	}
	fields["status"] = to
	res := tx.Model(&entity.Transaction{}).
		Where("id = ? AND status = ?", id, from).
		Updates(fields)
	return res.RowsAffected, res.Error
}

func (r *LedgerRepository) ListTransactions(limit int) ([]entity.Transaction, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	var ts []entity.Transaction
	err := r.DB.Preload("Items").
		Order("created_at DESC").
		Limit(limit).
		Find(&ts).Error
	return ts, err
}

// ---------------- Orders ----------------

func (r *LedgerRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *LedgerRepository) GetOrder(id uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Preload("Items").First(&o, id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *LedgerRepository) GetOrderByGatewayOrderID(tx *gorm.DB, gatewayOrderID string) (*entity.Order, error) {
	var o entity.Order
	if err := tx.Where("gateway_order_id = ?", gatewayOrderID).
		Preload("Items").
		First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *LedgerRepository) ListPendingOrders() ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.Where("status = ?", entity.OrderPending).
		Preload("Items").
		Order("created_at").
		Find(&orders).Error
	return orders, err
}

// ListClosedOrders returns terminal orders created inside [from, to],
// newest completion first. Backs the staff history view and CSV export.
func (r *LedgerRepository) ListClosedOrders(from, to time.Time) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.Where("status IN ?", []string{entity.OrderCompleted, entity.OrderNotDone}).
		Where("created_at >= ? AND created_at <= ?", from, to).
		Preload("Items").
		Order("completed_at DESC").
		Find(&orders).Error
	return orders, err
}

// UpdateOrderStatusGuard is the terminal staff transition: pending -> to,
// stamping completedAt and completionStatus. Zero rows affected means the
// order already left pending.
func (r *LedgerRepository) UpdateOrderStatusGuard(tx *gorm.DB, orderID uint, to, completionStatus string, completedAt time.Time) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND status = ?", orderID, entity.OrderPending).
		Updates(map[string]any{
			"status":            to,
			"completed_at":      completedAt,
			"completion_status": completionStatus,
		})
	return res.RowsAffected, res.Error
}
