package validators

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestValidateCapturePaymentRequiresAllCallbackFields(t *testing.T) {
	errs := ValidateCapturePayment(&CapturePaymentRequest{})
	require.NotNil(t, errs)

	details := errs.Details()
	assert.Contains(t, details, "razorpayorderid")
	assert.Contains(t, details, "razorpaypaymentid")
	assert.Contains(t, details, "razorpaysignature")
}

func TestValidateCapturePaymentAcceptsCompleteCallback(t *testing.T) {
	errs := ValidateCapturePayment(&CapturePaymentRequest{
		RazorpayOrderID:   "order_abc",
		RazorpayPaymentID: "pay_xyz",
		RazorpaySignature: "deadbeef",
	})
	assert.Nil(t, errs)
}

func TestValidateRegisterBankDetailChecksIFSC(t *testing.T) {
	req := &RegisterBankDetailRequest{
		AccountHolderName:     "Asha Provider",
		AccountNumber:         "1234567890",
		IFSCCode:              "hdfc1234",
		RazorpayFundAccountID: "acc_1",
	}

	errs := ValidateRegisterBankDetail(req)
	require.NotNil(t, errs)
	assert.Contains(t, errs.Details(), "ifsccode")

	req.IFSCCode = "HDFC0001234"
	assert.Nil(t, ValidateRegisterBankDetail(req))
}

func TestValidateCreateBookingRejectsPastSlot(t *testing.T) {
	errs := ValidateCreateBooking(&CreateBookingRequest{
		ServiceID: primitive.NewObjectID(),
		TimeSlot:  time.Now().Add(-time.Hour),
	})
	require.NotNil(t, errs)
	assert.Contains(t, errs.Details(), "timeslot")
}

func TestValidateIssueBillRejectsNonPositiveAmount(t *testing.T) {
	errs := ValidateIssueBill(&IssueBillRequest{Amount: 0})
	require.NotNil(t, errs)
	assert.Contains(t, errs.Details(), "amount")

	assert.Nil(t, ValidateIssueBill(&IssueBillRequest{Amount: 500, Currency: "INR"}))
}
