package interfaces

import (
	"context"

	"localserve/internal/models"
	"localserve/internal/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type TransferRepository interface {
	Create(ctx context.Context, transfer *models.Transfer) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Transfer, error)
	GetByPaymentID(ctx context.Context, paymentID primitive.ObjectID) (*models.Transfer, error)
	GetByProviderID(ctx context.Context, providerID primitive.ObjectID, params *utils.PaginationParams) ([]*models.Transfer, int64, error)

	// MarkCaptured flips created -> captured with the from-state in the
	// filter and records the gateway transfer id. Returns false when the
	// transfer was no longer in created state.
	MarkCaptured(ctx context.Context, id primitive.ObjectID, razorpayTransferID string) (bool, error)
}
