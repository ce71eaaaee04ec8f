package interfaces

import (
	"context"

	"localserve/internal/models"
	"localserve/internal/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ServiceRequestRepository interface {
	Create(ctx context.Context, request *models.ServiceRequest) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.ServiceRequest, error)
	GetByCustomerID(ctx context.Context, customerID primitive.ObjectID, params *utils.PaginationParams) ([]*models.ServiceRequest, int64, error)
	GetByProviderID(ctx context.Context, providerID primitive.ObjectID, params *utils.PaginationParams) ([]*models.ServiceRequest, int64, error)

	// UpdateStatusFrom flips the status only when the document is still in
	// the expected from-state. Returns false when the guard did not match.
	UpdateStatusFrom(ctx context.Context, id primitive.ObjectID, from, to models.RequestStatus) (bool, error)
}
