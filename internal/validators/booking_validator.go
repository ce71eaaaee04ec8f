package validators

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CreateServiceRequest struct {
	Name        string  `json:"name" validate:"required,min=2,max=100"`
	Category    string  `json:"category" validate:"required,min=2,max=50"`
	Description string  `json:"description" validate:"omitempty,max=1000"`
	BasePrice   float64 `json:"base_price" validate:"required,gt=0"`
	Currency    string  `json:"currency" validate:"omitempty,currency_code"`
}

type CreateBookingRequest struct {
	ServiceID primitive.ObjectID `json:"service_id" validate:"required,object_id"`
	TimeSlot  time.Time          `json:"time_slot" validate:"required,future_date"`
	Note      string             `json:"note" validate:"omitempty,max=500"`
}

type IssueBillRequest struct {
	Amount   float64 `json:"amount" validate:"required,gt=0"`
	Currency string  `json:"currency" validate:"omitempty,currency_code"`
}

func ValidateCreateService(req *CreateServiceRequest) ValidationErrors {
	return ValidateStruct(req)
}

func ValidateCreateBooking(req *CreateBookingRequest) ValidationErrors {
	return ValidateStruct(req)
}

func ValidateIssueBill(req *IssueBillRequest) ValidationErrors {
	return ValidateStruct(req)
}
