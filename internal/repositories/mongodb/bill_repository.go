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

type billRepository struct {
	collection *mongo.Collection
}

func NewBillRepository(db *mongo.Database) interfaces.BillRepository {
	return &billRepository{
		collection: db.Collection(utils.CollectionBills),
	}
}

func (r *billRepository) Create(ctx context.Context, bill *models.Bill) error {
	bill.ID = primitive.NewObjectID()
	bill.CreatedAt = time.Now()
	bill.UpdatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, bill)
	if err != nil {
		// Unique index on request_id: one bill per service request.
		if mongo.IsDuplicateKeyError(err) {
			return utils.NewDuplicateError("bill already exists for this service request")
		}
		return fmt.Errorf("failed to create bill: %w", err)
	}

	return nil
}

func (r *billRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Bill, error) {
	var bill models.Bill
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&bill)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, utils.NewNotFoundError("bill")
		}
		return nil, fmt.Errorf("failed to get bill: %w", err)
	}

	return &bill, nil
}

func (r *billRepository) GetByRequestID(ctx context.Context, requestID primitive.ObjectID) (*models.Bill, error) {
	var bill models.Bill
	err := r.collection.FindOne(ctx, bson.M{"request_id": requestID}).Decode(&bill)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, utils.NewNotFoundError("bill")
		}
		return nil, fmt.Errorf("failed to get bill by request: %w", err)
	}

	return &bill, nil
}

func (r *billRepository) MarkPaid(ctx context.Context, id primitive.ObjectID) (bool, error) {
	now := time.Now()

	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": id, "status": models.BillStatusUnpaid},
		bson.M{"$set": bson.M{
			"status":     models.BillStatusPaid,
			"paid_at":    now,
			"updated_at": now,
		}},
	)
	if err != nil {
		return false, fmt.Errorf("failed to mark bill paid: %w", err)
	}

	return result.ModifiedCount > 0, nil
}
