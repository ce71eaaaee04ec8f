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

type transferRepository struct {
	collection *mongo.Collection
}

func NewTransferRepository(db *mongo.Database) interfaces.TransferRepository {
	return &transferRepository{
		collection: db.Collection(utils.CollectionTransfers),
	}
}

func (r *transferRepository) Create(ctx context.Context, transfer *models.Transfer) error {
	transfer.ID = primitive.NewObjectID()
	transfer.CreatedAt = time.Now()
	transfer.UpdatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, transfer)
	if err != nil {
		// Unique index on payment_id: one transfer per payment.
		if mongo.IsDuplicateKeyError(err) {
			return utils.NewDuplicateError("transfer already exists for this payment")
		}
		return fmt.Errorf("failed to create transfer: %w", err)
	}

	return nil
}

func (r *transferRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Transfer, error) {
	var transfer models.Transfer
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&transfer)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, utils.NewNotFoundError("transfer")
		}
		return nil, fmt.Errorf("failed to get transfer: %w", err)
	}

	return &transfer, nil
}

func (r *transferRepository) GetByPaymentID(ctx context.Context, paymentID primitive.ObjectID) (*models.Transfer, error) {
	var transfer models.Transfer
	err := r.collection.FindOne(ctx, bson.M{"payment_id": paymentID}).Decode(&transfer)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, utils.NewNotFoundError("transfer")
		}
		return nil, fmt.Errorf("failed to get transfer by payment: %w", err)
	}

	return &transfer, nil
}

func (r *transferRepository) GetByProviderID(ctx context.Context, providerID primitive.ObjectID, params *utils.PaginationParams) ([]*models.Transfer, int64, error) {
	filter := bson.M{"provider_id": providerID}

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count transfers: %w", err)
	}

	cursor, err := r.collection.Find(ctx, filter, params.FindOptions())
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list transfers: %w", err)
	}
	defer cursor.Close(ctx)

	var transfers []*models.Transfer
	if err := cursor.All(ctx, &transfers); err != nil {
		return nil, 0, fmt.Errorf("failed to decode transfers: %w", err)
	}

	return transfers, total, nil
}

func (r *transferRepository) MarkCaptured(ctx context.Context, id primitive.ObjectID, razorpayTransferID string) (bool, error) {
	now := time.Now()

	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": id, "status": models.TransferStatusCreated},
		bson.M{"$set": bson.M{
			"status":               models.TransferStatusCaptured,
			"razorpay_transfer_id": razorpayTransferID,
			"dispatched_at":        now,
			"updated_at":           now,
		}},
	)
	if err != nil {
		return false, fmt.Errorf("failed to mark transfer captured: %w", err)
	}

	return result.ModifiedCount > 0, nil
}
