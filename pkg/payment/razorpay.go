package payment

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/razorpay/razorpay-go"
)

type RazorpayGateway struct {
	client    *razorpay.Client
	keySecret string
}

func NewRazorpayGateway(keyID, keySecret string) *RazorpayGateway {
	client := razorpay.NewClient(keyID, keySecret)

	return &RazorpayGateway{
		client:    client,
		keySecret: keySecret,
	}
}

func (g *RazorpayGateway) CreateOrder(ctx context.Context, request *OrderRequest) (*Order, error) {
	orderData := map[string]interface{}{
		"amount":   request.Amount,
		"currency": request.Currency,
		"receipt":  request.Receipt,
		"notes":    request.Notes,
	}

	data, err := g.call(ctx, func() (map[string]interface{}, error) {
		return g.client.Order.Create(orderData, nil)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	return orderFromResponse(data), nil
}

func (g *RazorpayGateway) FetchOrder(ctx context.Context, orderID string) (*Order, error) {
	data, err := g.call(ctx, func() (map[string]interface{}, error) {
		return g.client.Order.Fetch(orderID, nil, nil)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch order %s: %w", orderID, err)
	}

	return orderFromResponse(data), nil
}

func (g *RazorpayGateway) CreateTransfer(ctx context.Context, request *TransferRequest) (*TransferResult, error) {
	transferData := map[string]interface{}{
		"account":  request.Account,
		"amount":   request.Amount,
		"currency": request.Currency,
		"notes":    request.Notes,
	}
	if request.Mode != "" {
		if transferData["notes"] == nil {
			transferData["notes"] = map[string]interface{}{}
		}
		transferData["notes"].(map[string]interface{})["mode"] = request.Mode
	}

	extraHeaders := map[string]string{}
	if request.IdempotencyKey != "" {
		extraHeaders["X-Razorpay-Idempotency-Key"] = request.IdempotencyKey
	}

	data, err := g.call(ctx, func() (map[string]interface{}, error) {
		return g.client.Transfer.Create(transferData, extraHeaders)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create transfer: %w", err)
	}

	return &TransferResult{
		ID:        asString(data["id"]),
		Status:    asString(data["status"]),
		Amount:    asInt64(data["amount"]),
		Currency:  asString(data["currency"]),
		CreatedAt: asInt64(data["created_at"]),
	}, nil
}

// VerifyCaptureSignature recomputes the HMAC-SHA256 the gateway signs a
// successful checkout with: hex(hmac(secret, order_id + "|" + payment_id)).
// Comparison is constant time.
func (g *RazorpayGateway) VerifyCaptureSignature(orderID, paymentID, signature string) bool {
	h := hmac.New(sha256.New, []byte(g.keySecret))
	h.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(h.Sum(nil))

	return hmac.Equal([]byte(signature), []byte(expected))
}

// call runs an SDK call under the caller's context. The SDK itself is not
// context aware; a deadline on ctx bounds how long the caller waits.
func (g *RazorpayGateway) call(ctx context.Context, fn func() (map[string]interface{}, error)) (map[string]interface{}, error) {
	type result struct {
		data map[string]interface{}
		err  error
	}

	ch := make(chan result, 1)
	go func() {
		data, err := fn()
		ch <- result{data: data, err: err}
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case r := <-ch:
		return r.data, r.err
	}
}

func orderFromResponse(data map[string]interface{}) *Order {
	return &Order{
		ID:        asString(data["id"]),
		Amount:    asInt64(data["amount"]),
		Currency:  asString(data["currency"]),
		Status:    asString(data["status"]),
		Method:    asString(data["method"]),
		Receipt:   asString(data["receipt"]),
		CreatedAt: asInt64(data["created_at"]),
	}
}

func asString(v interface{}) string {
	s, _ := v.(string)
	return s
}

func asInt64(v interface{}) int64 {
	switch n := v.(type) {
	case int64:
		return n
	case int:
		return int64(n)
	case float64:
		return int64(n)
	case json.Number:
		i, _ := n.Int64()
		return i
	default:
		return 0
	}
}
