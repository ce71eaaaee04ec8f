package payment

import (
	"context"
)

// Gateway is the narrow surface the settlement and payout services need
// from the hosted payment provider.
type Gateway interface {
	CreateOrder(ctx context.Context, request *OrderRequest) (*Order, error)
	FetchOrder(ctx context.Context, orderID string) (*Order, error)
	CreateTransfer(ctx context.Context, request *TransferRequest) (*TransferResult, error)

	// VerifyCaptureSignature checks the signature the gateway attaches to a
	// successful checkout. Pure function of its inputs, no remote call.
	VerifyCaptureSignature(orderID, paymentID, signature string) bool
}

// OrderRequest creates a gateway order. Amount is in minor units (paise).
type OrderRequest struct {
	Amount   int64                  `json:"amount"`
	Currency string                 `json:"currency"`
	Receipt  string                 `json:"receipt"`
	Notes    map[string]interface{} `json:"notes"`
}

// Order is the gateway's authoritative view of an order. Amount is in minor
// units and is the value captures reconcile against.
type Order struct {
	ID        string `json:"id"`
	Amount    int64  `json:"amount"`
	Currency  string `json:"currency"`
	Status    string `json:"status"`
	Method    string `json:"method"`
	Receipt   string `json:"receipt"`
	CreatedAt int64  `json:"created_at"`
}

// TransferRequest dispatches a payout to a provider's linked account.
// IdempotencyKey makes a retried dispatch a no-op on the gateway side.
type TransferRequest struct {
	Account        string                 `json:"account"`
	Amount         int64                  `json:"amount"`
	Currency       string                 `json:"currency"`
	Mode           string                 `json:"mode"`
	Notes          map[string]interface{} `json:"notes"`
	IdempotencyKey string                 `json:"-"`
}

type TransferResult struct {
	ID        string `json:"id"`
	Status    string `json:"status"`
	Amount    int64  `json:"amount"`
	Currency  string `json:"currency"`
	CreatedAt int64  `json:"created_at"`
}
