package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type VerificationStatus string

const (
	VerificationStatusPending  VerificationStatus = "pending"
	VerificationStatusVerified VerificationStatus = "verified"
)

// ProviderBankDetail is a provider's payout destination. Payouts are only
// dispatched to a verified fund account.
type ProviderBankDetail struct {
	ID                    primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	ProviderID            primitive.ObjectID `json:"provider_id" bson:"provider_id" validate:"required"`
	AccountHolderName     string             `json:"account_holder_name" bson:"account_holder_name" validate:"required"`
	AccountNumber         string             `json:"account_number" bson:"account_number" validate:"required"`
	IFSCCode              string             `json:"ifsc_code" bson:"ifsc_code" validate:"required"`
	RazorpayFundAccountID string             `json:"razorpay_fund_account_id" bson:"razorpay_fund_account_id" validate:"required"`
	VerificationStatus    VerificationStatus `json:"verification_status" bson:"verification_status" default:"pending"`
	VerifiedAt            *time.Time         `json:"verified_at" bson:"verified_at"`
	CreatedAt             time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt             time.Time          `json:"updated_at" bson:"updated_at"`
}

func (b *ProviderBankDetail) IsVerified() bool {
	return b.VerificationStatus == VerificationStatusVerified
}
