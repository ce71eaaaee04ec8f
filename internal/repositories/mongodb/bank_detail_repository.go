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

type bankDetailRepository struct {
	collection *mongo.Collection
}

func NewBankDetailRepository(db *mongo.Database) interfaces.BankDetailRepository {
	return &bankDetailRepository{
		collection: db.Collection(utils.CollectionBankDetails),
	}
}

func (r *bankDetailRepository) Create(ctx context.Context, detail *models.ProviderBankDetail) error {
	detail.ID = primitive.NewObjectID()
	detail.CreatedAt = time.Now()
	detail.UpdatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, detail)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return utils.NewDuplicateError("bank details already registered for this provider")
		}
		return fmt.Errorf("failed to create bank detail: %w", err)
	}

	return nil
}

func (r *bankDetailRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.ProviderBankDetail, error) {
	var detail models.ProviderBankDetail
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&detail)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, utils.NewNotFoundError("bank detail")
		}
		return nil, fmt.Errorf("failed to get bank detail: %w", err)
	}

	return &detail, nil
}

func (r *bankDetailRepository) GetByProviderID(ctx context.Context, providerID primitive.ObjectID) (*models.ProviderBankDetail, error) {
	var detail models.ProviderBankDetail
	err := r.collection.FindOne(ctx, bson.M{"provider_id": providerID}).Decode(&detail)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, utils.NewNotFoundError("bank detail")
		}
		return nil, fmt.Errorf("failed to get bank detail by provider: %w", err)
	}

	return &detail, nil
}

func (r *bankDetailRepository) MarkVerified(ctx context.Context, id primitive.ObjectID) (bool, error) {
	now := time.Now()

	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": id, "verification_status": models.VerificationStatusPending},
		bson.M{"$set": bson.M{
			"verification_status": models.VerificationStatusVerified,
			"verified_at":         now,
			"updated_at":          now,
		}},
	)
	if err != nil {
		return false, fmt.Errorf("failed to mark bank detail verified: %w", err)
	}

	return result.ModifiedCount > 0, nil
}
