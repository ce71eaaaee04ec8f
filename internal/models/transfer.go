package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type TransferStatus string
type TransferMode string

const (
	TransferStatusCreated  TransferStatus = "created"
	TransferStatusCaptured TransferStatus = "captured"

	TransferModeIMPS TransferMode = "IMPS"
	TransferModeNEFT TransferMode = "NEFT"
	TransferModeUPI  TransferMode = "UPI"
)

// Transfer is the payout owed to a provider for one captured payment.
// Amount is payment.amount minus the platform fee, fixed at creation and
// never recomputed. One transfer exists per payment (unique index on
// payment_id).
type Transfer struct {
	ID                 primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	PaymentID          primitive.ObjectID `json:"payment_id" bson:"payment_id" validate:"required"`
	ProviderID         primitive.ObjectID `json:"provider_id" bson:"provider_id" validate:"required"`
	Amount             float64            `json:"amount" bson:"amount" validate:"required,gt=0"`
	Currency           string             `json:"currency" bson:"currency" default:"INR"`
	Mode               TransferMode       `json:"mode" bson:"mode" default:"IMPS"`
	Status             TransferStatus     `json:"status" bson:"status" default:"created"`
	RazorpayTransferID string             `json:"razorpay_transfer_id" bson:"razorpay_transfer_id"`
	DispatchedAt       *time.Time         `json:"dispatched_at" bson:"dispatched_at"`
	CreatedAt          time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at" bson:"updated_at"`
}
