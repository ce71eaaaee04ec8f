package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PaymentStatus string
type PaymentMethod string

const (
	PaymentStatusCreated  PaymentStatus = "created"
	PaymentStatusCaptured PaymentStatus = "captured"
	PaymentStatusFailed   PaymentStatus = "failed"

	PaymentMethodCard       PaymentMethod = "card"
	PaymentMethodUPI        PaymentMethod = "upi"
	PaymentMethodNetbanking PaymentMethod = "netbanking"
	PaymentMethodWallet     PaymentMethod = "wallet"
)

// Payment records a customer payment against a bill. RazorpayPaymentID is
// unique across the collection; the index is the hard backstop against a
// duplicate capture slipping past the status checks.
type Payment struct {
	ID                primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	BillID            primitive.ObjectID `json:"bill_id" bson:"bill_id" validate:"required"`
	RequestID         primitive.ObjectID `json:"request_id" bson:"request_id" validate:"required"`
	CustomerID        primitive.ObjectID `json:"customer_id" bson:"customer_id" validate:"required"`
	ProviderID        primitive.ObjectID `json:"provider_id" bson:"provider_id" validate:"required"`
	RazorpayOrderID   string             `json:"razorpay_order_id" bson:"razorpay_order_id" validate:"required"`
	RazorpayPaymentID string             `json:"razorpay_payment_id" bson:"razorpay_payment_id"`
	Method            PaymentMethod      `json:"method" bson:"method"`
	Status            PaymentStatus      `json:"status" bson:"status" default:"created"`
	Amount            float64            `json:"amount" bson:"amount" validate:"required,gt=0"`
	Currency          string             `json:"currency" bson:"currency" default:"INR"`
	PlatformFee       float64            `json:"platform_fee" bson:"platform_fee"`
	CapturedAt        *time.Time         `json:"captured_at" bson:"captured_at"`
	CreatedAt         time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt         time.Time          `json:"updated_at" bson:"updated_at"`
}

// ProviderShare is the amount routed to the provider when the payment
// settles. It is computed once, at transfer creation.
func (p *Payment) ProviderShare() float64 {
	return p.Amount - p.PlatformFee
}
