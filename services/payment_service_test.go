package services

import (
	"errors"
	"testing"

	"github.com/dineshnaiduavula/moviesample/entity"
	"github.com/dineshnaiduavula/moviesample/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const testSessionID = "sess-1"

func newPaymentFixture(t *testing.T, gw *fakeGateway) (*PaymentService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	svc := NewPaymentService(
		db,
		repository.NewLedgerRepository(db),
		repository.NewCartRepository(db),
		repository.NewMenuRepository(db),
		gw,
		DefaultFeePolicy(),
		"rzp_test_key",
		nil,
	)
	return svc, db
}

func seedCheckout(t *testing.T, db *gorm.DB) {
	t.Helper()
	items := []entity.MenuItem{
		{Name: "Popcorn", Price: 10000, Category: "Popcorn", Enabled: true},
		{Name: "Cola", Price: 5000, Category: "Beverages", Enabled: true},
	}
	require.NoError(t, db.Create(&items).Error)
	lines := []entity.CartLine{
		{SessionID: testSessionID, MenuItemID: items[0].ID, Name: "Popcorn", UnitPrice: 10000, Qty: 2},
		{SessionID: testSessionID, MenuItemID: items[1].ID, Name: "Cola", UnitPrice: 5000, Qty: 1},
	}
	require.NoError(t, db.Create(&lines).Error)
}

func testSession() Session {
	return Session{
		ID:         testSessionID,
		Name:       "Asha",
		Phone:      "9876543210",
		SeatNumber: "F12",
		Screen:     "Screen 2",
	}
}

func TestCreateIntentRecordsPendingTransaction(t *testing.T) {
	gw := &fakeGateway{orderID: "order_abc", valid: true}
	svc, db := newPaymentFixture(t, gw)
	seedCheckout(t, db)

	out, removed, err := svc.CreateIntent(testSession())
	require.NoError(t, err)
	assert.Empty(t, removed)

	// subtotal 25000, handling 1000
	assert.Equal(t, int64(26000), out.Amount)
	assert.Equal(t, "INR", out.Currency)
	assert.Equal(t, "order_abc", out.GatewayOrderID)
	assert.Equal(t, "rzp_test_key", out.Key)
	assert.Equal(t, "Asha", out.PrefillName)

	// gateway was asked for exactly the recorded amount
	assert.Equal(t, out.Amount, gw.lastAmount)

	var txn entity.Transaction
	require.NoError(t, db.Preload("Items").Where("gateway_order_id = ?", "order_abc").First(&txn).Error)
	assert.Equal(t, entity.TxnPending, txn.Status)
	assert.Equal(t, out.Amount, txn.Amount)
	assert.Equal(t, "F12", txn.SeatNumber)
	assert.Len(t, txn.Items, 2)
	assert.False(t, txn.Verified)
}

func TestCreateIntentEmptyCart(t *testing.T) {
	gw := &fakeGateway{orderID: "order_abc"}
	svc, _ := newPaymentFixture(t, gw)

	_, _, err := svc.CreateIntent(testSession())
	assert.ErrorIs(t, err, ErrCartEmpty)
	assert.Zero(t, gw.calls)
}

func TestCreateIntentGatewayDown(t *testing.T) {
	gw := &fakeGateway{createErr: errors.New("connection refused")}
	svc, db := newPaymentFixture(t, gw)
	seedCheckout(t, db)

	_, _, err := svc.CreateIntent(testSession())
	assert.ErrorIs(t, err, ErrGatewayUnavailable)

	var count int64
	db.Model(&entity.Transaction{}).Count(&count)
	assert.Zero(t, count, "no transaction recorded when intent creation fails")
}

func TestCreateIntentPurgesDisabledLines(t *testing.T) {
	gw := &fakeGateway{orderID: "order_abc"}
	svc, db := newPaymentFixture(t, gw)
	seedCheckout(t, db)
	require.NoError(t, db.Model(&entity.MenuItem{}).Where("name = ?", "Cola").Update("enabled", false).Error)

	_, removed, err := svc.CreateIntent(testSession())
	assert.ErrorIs(t, err, ErrStockConflict)
	assert.Equal(t, []string{"Cola"}, removed)

	var lines []entity.CartLine
	require.NoError(t, db.Where("session_id = ?", testSessionID).Find(&lines).Error)
	require.Len(t, lines, 1, "offending line removed, the rest kept")
	assert.Equal(t, "Popcorn", lines[0].Name)
	assert.Zero(t, gw.calls, "gateway not invoked on a stale cart")
}

func TestConfirmPaymentCreatesExactlyOneOrder(t *testing.T) {
	gw := &fakeGateway{orderID: "order_abc", valid: true}
	svc, db := newPaymentFixture(t, gw)
	seedCheckout(t, db)

	out, _, err := svc.CreateIntent(testSession())
	require.NoError(t, err)

	cb := &CallbackIn{GatewayOrderID: out.GatewayOrderID, PaymentID: "pay_1", Signature: "sig_1"}
	order, err := svc.ConfirmPayment(cb)
	require.NoError(t, err)
	require.NotNil(t, order)
	assert.Equal(t, entity.OrderPending, order.Status)
	assert.Equal(t, out.Amount, order.Total)
	assert.Equal(t, "pay_1", order.PaymentID)
	assert.Len(t, order.Items, 2)

	var txn entity.Transaction
	require.NoError(t, db.Where("gateway_order_id = ?", out.GatewayOrderID).First(&txn).Error)
	assert.Equal(t, entity.TxnSuccess, txn.Status)
	assert.True(t, txn.Verified)
	assert.NotNil(t, txn.VerifiedAt)
	assert.Equal(t, "pay_1", txn.PaymentID)

	var cartCount int64
	db.Model(&entity.CartLine{}).Where("session_id = ?", testSessionID).Count(&cartCount)
	assert.Zero(t, cartCount, "cart cleared on verified payment")

	// duplicate callback delivery: same order back, still one row
	again, err := svc.ConfirmPayment(cb)
	require.NoError(t, err)
	assert.Equal(t, order.ID, again.ID)

	var orderCount int64
	db.Model(&entity.Order{}).Count(&orderCount)
	assert.Equal(t, int64(1), orderCount)
}

func TestConfirmPaymentInvalidSignature(t *testing.T) {
	gw := &fakeGateway{orderID: "order_abc", valid: false}
	svc, db := newPaymentFixture(t, gw)
	seedCheckout(t, db)

	out, _, err := svc.CreateIntent(testSession())
	require.NoError(t, err)

	_, err = svc.ConfirmPayment(&CallbackIn{GatewayOrderID: out.GatewayOrderID, PaymentID: "pay_1", Signature: "forged"})
	assert.ErrorIs(t, err, ErrVerificationFailed)

	var txn entity.Transaction
	require.NoError(t, db.Where("gateway_order_id = ?", out.GatewayOrderID).First(&txn).Error)
	assert.Equal(t, entity.TxnFailed, txn.Status)
	assert.False(t, txn.Verified)
	assert.Equal(t, "Invalid signature", txn.VerifyError)

	var orderCount int64
	db.Model(&entity.Order{}).Count(&orderCount)
	assert.Zero(t, orderCount, "no order on a failed verification")

	var cartCount int64
	db.Model(&entity.CartLine{}).Where("session_id = ?", testSessionID).Count(&cartCount)
	assert.Equal(t, int64(2), cartCount, "cart kept for retry")
}

func TestCancelPayment(t *testing.T) {
	gw := &fakeGateway{orderID: "order_abc", valid: true}
	svc, db := newPaymentFixture(t, gw)
	seedCheckout(t, db)

	out, _, err := svc.CreateIntent(testSession())
	require.NoError(t, err)

	require.NoError(t, svc.CancelPayment(out.GatewayOrderID))

	var txn entity.Transaction
	require.NoError(t, db.Where("gateway_order_id = ?", out.GatewayOrderID).First(&txn).Error)
	assert.Equal(t, entity.TxnFailed, txn.Status)
	assert.Equal(t, "Payment cancelled", txn.VerifyError)

	var orderCount int64
	db.Model(&entity.Order{}).Count(&orderCount)
	assert.Zero(t, orderCount)

	var cartCount int64
	db.Model(&entity.CartLine{}).Where("session_id = ?", testSessionID).Count(&cartCount)
	assert.Equal(t, int64(2), cartCount, "cart intact after dismissal")

	// second dismissal is a no-op
	require.NoError(t, svc.CancelPayment(out.GatewayOrderID))
}

func TestCancelAfterSuccessIsNoOp(t *testing.T) {
	gw := &fakeGateway{orderID: "order_abc", valid: true}
	svc, db := newPaymentFixture(t, gw)
	seedCheckout(t, db)

	out, _, err := svc.CreateIntent(testSession())
	require.NoError(t, err)
	_, err = svc.ConfirmPayment(&CallbackIn{GatewayOrderID: out.GatewayOrderID, PaymentID: "pay_1", Signature: "sig"})
	require.NoError(t, err)

	require.NoError(t, svc.CancelPayment(out.GatewayOrderID))

	var txn entity.Transaction
	require.NoError(t, db.Where("gateway_order_id = ?", out.GatewayOrderID).First(&txn).Error)
	assert.Equal(t, entity.TxnSuccess, txn.Status, "a late dismissal cannot undo a settled payment")
}

func TestConfirmPaymentUnknownTransaction(t *testing.T) {
	gw := &fakeGateway{valid: true}
	svc, _ := newPaymentFixture(t, gw)

	_, err := svc.ConfirmPayment(&CallbackIn{GatewayOrderID: "order_nope", PaymentID: "p", Signature: "s"})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
