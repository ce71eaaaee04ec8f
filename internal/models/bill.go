package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BillStatus string

const (
	BillStatusUnpaid BillStatus = "unpaid"
	BillStatusPaid   BillStatus = "paid"
)

// Bill is the monetary obligation a provider raises against one service
// request. At most one bill exists per request (unique index on request_id),
// and it moves unpaid -> paid exactly once, as a side effect of a successful
// payment capture.
type Bill struct {
	ID         primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	RequestID  primitive.ObjectID `json:"request_id" bson:"request_id" validate:"required"`
	CustomerID primitive.ObjectID `json:"customer_id" bson:"customer_id" validate:"required"`
	ProviderID primitive.ObjectID `json:"provider_id" bson:"provider_id" validate:"required"`
	Amount     float64            `json:"amount" bson:"amount" validate:"required,gt=0"`
	Currency   string             `json:"currency" bson:"currency" default:"INR"`
	Status     BillStatus         `json:"status" bson:"status" default:"unpaid"`
	PaidAt     *time.Time         `json:"paid_at" bson:"paid_at"`
	CreatedAt  time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt  time.Time          `json:"updated_at" bson:"updated_at"`
}
