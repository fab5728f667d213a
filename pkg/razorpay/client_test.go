package razorpay

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateOrder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/orders", r.URL.Path)

		user, pass, ok := r.BasicAuth()
		require.True(t, ok)
		assert.Equal(t, "key_id", user)
		assert.Equal(t, "key_secret", pass)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, float64(20800), body["amount"])
		assert.Equal(t, "INR", body["currency"])
		assert.Equal(t, "ORDER_r1", body["receipt"])

		json.NewEncoder(w).Encode(map[string]string{"id": "order_test123"})
	}))
	defer srv.Close()

	c := NewClient("key_id", "key_secret")
	c.BaseURL = srv.URL

	id, err := c.CreateOrder(20800, "ORDER_r1")
	require.NoError(t, err)
	assert.Equal(t, "order_test123", id)
}

func TestCreateOrderGatewayError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient("key_id", "key_secret")
	c.BaseURL = srv.URL

	_, err := c.CreateOrder(100, "ORDER_r2")
	assert.Error(t, err)
}

func TestCreateOrderEmptyID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{})
	}))
	defer srv.Close()

	c := NewClient("key_id", "key_secret")
	c.BaseURL = srv.URL

	_, err := c.CreateOrder(100, "ORDER_r3")
	assert.Error(t, err)
}

func TestVerifySignature(t *testing.T) {
	c := NewClient("key_id", "key_secret")

	mac := hmac.New(sha256.New, []byte("key_secret"))
	mac.Write([]byte("order_1|pay_1"))
	good := hex.EncodeToString(mac.Sum(nil))

	assert.True(t, c.VerifySignature("order_1", "pay_1", good))
	assert.False(t, c.VerifySignature("order_1", "pay_1", "deadbeef"))
	assert.False(t, c.VerifySignature("order_2", "pay_1", good), "signature bound to the order id")
	assert.False(t, c.VerifySignature("order_1", "pay_2", good), "signature bound to the payment id")
}
