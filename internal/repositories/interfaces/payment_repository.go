package interfaces

import (
	"context"

	"localserve/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PaymentRepository interface {
	Create(ctx context.Context, payment *models.Payment) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Payment, error)
	GetByBillID(ctx context.Context, billID primitive.ObjectID) (*models.Payment, error)
	GetByRazorpayOrderID(ctx context.Context, orderID string) (*models.Payment, error)
	GetByRazorpayPaymentID(ctx context.Context, paymentID string) (*models.Payment, error)

	// MarkCaptured flips created -> captured with the from-state in the
	// filter and records the gateway payment id and method. Returns false
	// when the payment was no longer in created state.
	MarkCaptured(ctx context.Context, id primitive.ObjectID, razorpayPaymentID string, method models.PaymentMethod) (bool, error)
}
