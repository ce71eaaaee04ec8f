package mongodb

import (
	"context"
	"fmt"
	"time"

	"localserve/internal/models"
	"localserve/internal/repositories/interfaces"
	"localserve/internal/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type serviceRequestRepository struct {
	collection *mongo.Collection
}

func NewServiceRequestRepository(db *mongo.Database) interfaces.ServiceRequestRepository {
	return &serviceRequestRepository{
		collection: db.Collection(utils.CollectionRequests),
	}
}

func (r *serviceRequestRepository) Create(ctx context.Context, request *models.ServiceRequest) error {
	request.ID = primitive.NewObjectID()
	request.CreatedAt = time.Now()
	request.UpdatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, request)
	if err != nil {
		return fmt.Errorf("failed to create service request: %w", err)
	}

	return nil
}

func (r *serviceRequestRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.ServiceRequest, error) {
	var request models.ServiceRequest
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&request)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, utils.NewNotFoundError("service request")
		}
		return nil, fmt.Errorf("failed to get service request: %w", err)
	}

	return &request, nil
}

func (r *serviceRequestRepository) GetByCustomerID(ctx context.Context, customerID primitive.ObjectID, params *utils.PaginationParams) ([]*models.ServiceRequest, int64, error) {
	return r.list(ctx, bson.M{"customer_id": customerID}, params)
}

func (r *serviceRequestRepository) GetByProviderID(ctx context.Context, providerID primitive.ObjectID, params *utils.PaginationParams) ([]*models.ServiceRequest, int64, error) {
	return r.list(ctx, bson.M{"provider_id": providerID}, params)
}

func (r *serviceRequestRepository) list(ctx context.Context, filter bson.M, params *utils.PaginationParams) ([]*models.ServiceRequest, int64, error) {
	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count service requests: %w", err)
	}

	cursor, err := r.collection.Find(ctx, filter, params.FindOptions())
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list service requests: %w", err)
	}
	defer cursor.Close(ctx)

	var requests []*models.ServiceRequest
	if err := cursor.All(ctx, &requests); err != nil {
		return nil, 0, fmt.Errorf("failed to decode service requests: %w", err)
	}

	return requests, total, nil
}

func (r *serviceRequestRepository) UpdateStatusFrom(ctx context.Context, id primitive.ObjectID, from, to models.RequestStatus) (bool, error) {
	now := time.Now()
	updates := bson.M{
		"status":     to,
		"updated_at": now,
	}

	switch to {
	case models.RequestStatusAccepted:
		updates["accepted_at"] = now
	case models.RequestStatusRejected:
		updates["rejected_at"] = now
	case models.RequestStatusCompleted:
		updates["completed_at"] = now
	}

	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": id, "status": from},
		bson.M{"$set": updates},
	)
	if err != nil {
		return false, fmt.Errorf("failed to update service request status: %w", err)
	}

	return result.ModifiedCount > 0, nil
}
