package mongodb

import (
	"context"
	"fmt"
	"time"

	"localserve/internal/models"
	"localserve/internal/repositories/interfaces"
	"localserve/internal/services"
	"localserve/internal/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const paymentCacheTTL = 30 * time.Minute

type paymentRepository struct {
	collection *mongo.Collection
	cache      services.CacheService
}

func NewPaymentRepository(db *mongo.Database, cache services.CacheService) interfaces.PaymentRepository {
	return &paymentRepository{
		collection: db.Collection(utils.CollectionPayments),
		cache:      cache,
	}
}

func (r *paymentRepository) Create(ctx context.Context, payment *models.Payment) error {
	payment.ID = primitive.NewObjectID()
	payment.CreatedAt = time.Now()
	payment.UpdatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, payment)
	if err != nil {
		// Unique indexes on razorpay_order_id and razorpay_payment_id.
		if mongo.IsDuplicateKeyError(err) {
			return utils.NewDuplicateError("payment already recorded for this order")
		}
		return fmt.Errorf("failed to create payment: %w", err)
	}

	return nil
}

func (r *paymentRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Payment, error) {
	if payment := r.getFromCache(ctx, r.cacheKey(id.Hex())); payment != nil {
		return payment, nil
	}

	var payment models.Payment
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&payment)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, utils.NewNotFoundError("payment")
		}
		return nil, fmt.Errorf("failed to get payment: %w", err)
	}

	// Captured payments are immutable, safe to cache.
	if payment.Status == models.PaymentStatusCaptured {
		r.cachePayment(ctx, &payment)
	}

	return &payment, nil
}

func (r *paymentRepository) GetByBillID(ctx context.Context, billID primitive.ObjectID) (*models.Payment, error) {
	var payment models.Payment
	err := r.collection.FindOne(ctx, bson.M{"bill_id": billID}).Decode(&payment)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, utils.NewNotFoundError("payment")
		}
		return nil, fmt.Errorf("failed to get payment by bill: %w", err)
	}

	return &payment, nil
}

func (r *paymentRepository) GetByRazorpayOrderID(ctx context.Context, orderID string) (*models.Payment, error) {
	var payment models.Payment
	err := r.collection.FindOne(ctx, bson.M{"razorpay_order_id": orderID}).Decode(&payment)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, utils.NewNotFoundError("payment")
		}
		return nil, fmt.Errorf("failed to get payment by order id: %w", err)
	}

	return &payment, nil
}

func (r *paymentRepository) GetByRazorpayPaymentID(ctx context.Context, paymentID string) (*models.Payment, error) {
	var payment models.Payment
	err := r.collection.FindOne(ctx, bson.M{"razorpay_payment_id": paymentID}).Decode(&payment)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, utils.NewNotFoundError("payment")
		}
		return nil, fmt.Errorf("failed to get payment by gateway id: %w", err)
	}

	return &payment, nil
}

func (r *paymentRepository) MarkCaptured(ctx context.Context, id primitive.ObjectID, razorpayPaymentID string, method models.PaymentMethod) (bool, error) {
	now := time.Now()

	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": id, "status": models.PaymentStatusCreated},
		bson.M{"$set": bson.M{
			"status":              models.PaymentStatusCaptured,
			"razorpay_payment_id": razorpayPaymentID,
			"method":              method,
			"captured_at":         now,
			"updated_at":          now,
		}},
	)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return false, utils.NewDuplicateError("gateway payment id already captured")
		}
		return false, fmt.Errorf("failed to mark payment captured: %w", err)
	}

	r.invalidateCache(ctx, id.Hex())

	return result.ModifiedCount > 0, nil
}

func (r *paymentRepository) cacheKey(id string) string {
	return fmt.Sprintf("payment_%s", id)
}

func (r *paymentRepository) cachePayment(ctx context.Context, payment *models.Payment) {
	if r.cache == nil {
		return
	}
	_ = r.cache.Set(ctx, r.cacheKey(payment.ID.Hex()), payment, paymentCacheTTL)
}

func (r *paymentRepository) getFromCache(ctx context.Context, key string) *models.Payment {
	if r.cache == nil {
		return nil
	}

	var payment models.Payment
	if err := r.cache.Get(ctx, key, &payment); err != nil {
		return nil
	}
	return &payment
}

func (r *paymentRepository) invalidateCache(ctx context.Context, id string) {
	if r.cache == nil {
		return
	}
	_ = r.cache.Delete(ctx, r.cacheKey(id))
}
