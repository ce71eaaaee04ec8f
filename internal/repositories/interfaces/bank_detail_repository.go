package interfaces

import (
	"context"

	"localserve/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BankDetailRepository interface {
	Create(ctx context.Context, detail *models.ProviderBankDetail) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.ProviderBankDetail, error)
	GetByProviderID(ctx context.Context, providerID primitive.ObjectID) (*models.ProviderBankDetail, error)

	// MarkVerified flips pending -> verified. Returns false when the detail
	// was already verified.
	MarkVerified(ctx context.Context, id primitive.ObjectID) (bool, error)
}
