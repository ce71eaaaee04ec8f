package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type RequestStatus string

const (
	RequestStatusPending   RequestStatus = "pending"
	RequestStatusAccepted  RequestStatus = "accepted"
	RequestStatusRejected  RequestStatus = "rejected"
	RequestStatusCompleted RequestStatus = "completed"
)

type ServiceRequest struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	CustomerID  primitive.ObjectID `json:"customer_id" bson:"customer_id" validate:"required"`
	ProviderID  primitive.ObjectID `json:"provider_id" bson:"provider_id" validate:"required"`
	ServiceID   primitive.ObjectID `json:"service_id" bson:"service_id" validate:"required"`
	TimeSlot    time.Time          `json:"time_slot" bson:"time_slot" validate:"required"`
	Note        string             `json:"note" bson:"note"`
	Status      RequestStatus      `json:"status" bson:"status" default:"pending"`
	AcceptedAt  *time.Time         `json:"accepted_at" bson:"accepted_at"`
	RejectedAt  *time.Time         `json:"rejected_at" bson:"rejected_at"`
	CompletedAt *time.Time         `json:"completed_at" bson:"completed_at"`
	CreatedAt   time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at" bson:"updated_at"`
}
