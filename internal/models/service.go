package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Service is a provider's listed offering. Discovery (geo search, ratings)
// lives in a separate collaborator; bookings only need the reference and
// the owning provider.
type Service struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	ProviderID  primitive.ObjectID `json:"provider_id" bson:"provider_id" validate:"required"`
	Name        string             `json:"name" bson:"name" validate:"required,min=2,max=100"`
	Category    string             `json:"category" bson:"category" validate:"required,min=2,max=50"`
	Description string             `json:"description" bson:"description"`
	BasePrice   float64            `json:"base_price" bson:"base_price" validate:"required,gt=0"`
	Currency    string             `json:"currency" bson:"currency" default:"INR"`
	IsActive    bool               `json:"is_active" bson:"is_active" default:"true"`
	CreatedAt   time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at" bson:"updated_at"`
}
