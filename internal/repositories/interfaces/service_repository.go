package interfaces

import (
	"context"

	"localserve/internal/models"
	"localserve/internal/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ServiceRepository interface {
	Create(ctx context.Context, service *models.Service) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Service, error)
	GetByProviderID(ctx context.Context, providerID primitive.ObjectID, params *utils.PaginationParams) ([]*models.Service, int64, error)
}
