package razorpay

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const defaultBaseURL = "https://api.razorpay.com"

// Client talks to the Razorpay Orders API and verifies payment signatures.
// The key secret never leaves this process; signature checks are done here,
// not in the browser.
type Client struct {
	KeyID     string
	KeySecret string
	BaseURL   string
	HTTP      *http.Client
}

func NewClient(keyID, keySecret string) *Client {
	return &Client{
		KeyID:     keyID,
		KeySecret: keySecret,
		BaseURL:   defaultBaseURL,
		HTTP:      &http.Client{Timeout: 15 * time.Second},
	}
}

type createOrderReq struct {
	Amount   int64  `json:"amount"` // paise
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}

type createOrderRes struct {
	ID string `json:"id"`
}

// CreateOrder reserves the amount gateway-side and returns the provider
// order id. Amount is integer paise, already rounded.
func (c *Client) CreateOrder(amount int64, receipt string) (string, error) {
	body, err := json.Marshal(createOrderReq{
		Amount:   amount,
		Currency: "INR",
		Receipt:  receipt,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequest(http.MethodPost, c.BaseURL+"/v1/orders", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.SetBasicAuth(c.KeyID, c.KeySecret)
	req.Header.Set("Content-Type", "application/json")

	res, err := c.HTTP.Do(req)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return "", fmt.Errorf("razorpay create order: status %d", res.StatusCode)
	}

	var out createOrderRes
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return "", err
	}
	if out.ID == "" {
		return "", fmt.Errorf("razorpay create order: empty order id")
	}
	return out.ID, nil
}

// VerifySignature checks the callback signature: HMAC-SHA256 of
// "<orderId>|<paymentId>" keyed with the API secret.
func (c *Client) VerifySignature(orderID, paymentID, signature string) bool {
	mac := hmac.New(sha256.New, []byte(c.KeySecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
