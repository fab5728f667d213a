package services

import (
	"fmt"
	"strings"
	"testing"

	"github.com/dineshnaiduavula/moviesample/entity"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a fresh shared in-memory sqlite database named after the
// test so parallel tests don't collide.
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
		&entity.Staff{},
	))
	return db
}

// fakeGateway stands in for the Razorpay client.
type fakeGateway struct {
	orderID    string
	createErr  error
	valid      bool
	calls      int
	lastAmount int64
}

func (g *fakeGateway) CreateOrder(amount int64, receipt string) (string, error) {
	g.calls++
	g.lastAmount = amount
	if g.createErr != nil {
		return "", g.createErr
	}
	return g.orderID, nil
}

func (g *fakeGateway) VerifySignature(orderID, paymentID, signature string) bool {
	return g.valid
}
