package interfaces

import (
	"context"

	"localserve/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BillRepository interface {
	Create(ctx context.Context, bill *models.Bill) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Bill, error)
	GetByRequestID(ctx context.Context, requestID primitive.ObjectID) (*models.Bill, error)

	// MarkPaid flips unpaid -> paid with the from-state in the filter.
	// Returns false when the bill was no longer unpaid.
	MarkPaid(ctx context.Context, id primitive.ObjectID) (bool, error)
}
