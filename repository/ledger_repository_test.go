package repository

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/dineshnaiduavula/moviesample/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entity.MenuItem{},
		&entity.CartLine{},
		&entity.Transaction{}, &entity.TransactionItem{},
		&entity.Order{}, &entity.OrderItem{},
	))
	return db
}

func TestUpdateTransactionGuard(t *testing.T) {
	db := newTestDB(t)
	repo := NewLedgerRepository(db)

	txn := entity.Transaction{
		GatewayOrderID: "order_1",
		Receipt:        "ORDER_r1",
		Amount:         20800,
		Status:         entity.TxnPending,
	}
	require.NoError(t, repo.CreateTransaction(db, &txn))

	affected, err := repo.UpdateTransactionGuard(db, txn.ID, entity.TxnPending, entity.TxnSuccess, map[string]any{"verified": true})
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	// second flip finds the row already out of pending
	affected, err = repo.UpdateTransactionGuard(db, txn.ID, entity.TxnPending, entity.TxnFailed, nil)
	require.NoError(t, err)
	assert.Zero(t, affected)

	var check entity.Transaction
	require.NoError(t, db.First(&check, txn.ID).Error)
	assert.Equal(t, entity.TxnSuccess, check.Status)
	assert.True(t, check.Verified)
}

func TestOrderGatewayIDUnique(t *testing.T) {
	db := newTestDB(t)
	repo := NewLedgerRepository(db)

	first := entity.Order{GatewayOrderID: "order_1", Status: entity.OrderPending, Total: 100}
	require.NoError(t, repo.CreateOrder(db, &first))

	dup := entity.Order{GatewayOrderID: "order_1", Status: entity.OrderPending, Total: 100}
	assert.Error(t, repo.CreateOrder(db, &dup), "one order per gateway order id")
}

func TestUpdateOrderStatusGuard(t *testing.T) {
	db := newTestDB(t)
	repo := NewLedgerRepository(db)

	o := entity.Order{GatewayOrderID: "order_1", Status: entity.OrderPending, Total: 100}
	require.NoError(t, repo.CreateOrder(db, &o))

	now := time.Now()
	affected, err := repo.UpdateOrderStatusGuard(db, o.ID, entity.OrderCompleted, entity.CompletionSuccess, now)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	affected, err = repo.UpdateOrderStatusGuard(db, o.ID, entity.OrderNotDone, entity.CompletionFailed, now)
	require.NoError(t, err)
	assert.Zero(t, affected, "terminal states have no way out")
}

func TestListClosedOrdersRange(t *testing.T) {
	db := newTestDB(t)
	repo := NewLedgerRepository(db)

	now := time.Now()
	closed := entity.Order{GatewayOrderID: "order_1", Status: entity.OrderCompleted, CompletionStatus: entity.CompletionSuccess, CompletedAt: &now, Total: 100}
	pending := entity.Order{GatewayOrderID: "order_2", Status: entity.OrderPending, Total: 200}
	require.NoError(t, repo.CreateOrder(db, &closed))
	require.NoError(t, repo.CreateOrder(db, &pending))

	orders, err := repo.ListClosedOrders(now.Add(-time.Hour), now.Add(time.Hour))
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "order_1", orders[0].GatewayOrderID)

	orders, err = repo.ListClosedOrders(now.Add(-2*time.Hour), now.Add(-time.Hour))
	require.NoError(t, err)
	assert.Empty(t, orders)
}
