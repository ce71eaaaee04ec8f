package models

import (
	"testing"

	"localserve/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kindOf(t *testing.T, err error) utils.ErrorKind {
	t.Helper()
	appErr, ok := utils.AsAppError(err)
	require.True(t, ok, "expected an AppError, got %v", err)
	return appErr.Kind
}

func TestRequestTransitions(t *testing.T) {
	assert.NoError(t, CanTransitionRequest(RequestStatusPending, RequestStatusAccepted))
	assert.NoError(t, CanTransitionRequest(RequestStatusPending, RequestStatusRejected))
	assert.NoError(t, CanTransitionRequest(RequestStatusAccepted, RequestStatusCompleted))

	// No backward or skipping moves.
	assert.Error(t, CanTransitionRequest(RequestStatusPending, RequestStatusCompleted))
	assert.Error(t, CanTransitionRequest(RequestStatusAccepted, RequestStatusPending))
	assert.Error(t, CanTransitionRequest(RequestStatusRejected, RequestStatusAccepted))
	assert.Error(t, CanTransitionRequest(RequestStatusCompleted, RequestStatusAccepted))
}

func TestRequestTransitionDistinguishesDuplicateFromInvalid(t *testing.T) {
	err := CanTransitionRequest(RequestStatusAccepted, RequestStatusAccepted)
	assert.Equal(t, utils.ErrKindDuplicate, kindOf(t, err))

	err = CanTransitionRequest(RequestStatusRejected, RequestStatusCompleted)
	assert.Equal(t, utils.ErrKindInvalidState, kindOf(t, err))
}

func TestBillTransitions(t *testing.T) {
	assert.NoError(t, CanTransitionBill(BillStatusUnpaid, BillStatusPaid))

	err := CanTransitionBill(BillStatusPaid, BillStatusPaid)
	assert.Equal(t, utils.ErrKindDuplicate, kindOf(t, err))

	err = CanTransitionBill(BillStatusPaid, BillStatusUnpaid)
	assert.Equal(t, utils.ErrKindInvalidState, kindOf(t, err))
}

func TestPaymentTransitions(t *testing.T) {
	assert.NoError(t, CanTransitionPayment(PaymentStatusCreated, PaymentStatusCaptured))
	assert.NoError(t, CanTransitionPayment(PaymentStatusCreated, PaymentStatusFailed))

	err := CanTransitionPayment(PaymentStatusCaptured, PaymentStatusCaptured)
	assert.Equal(t, utils.ErrKindDuplicate, kindOf(t, err))

	err = CanTransitionPayment(PaymentStatusFailed, PaymentStatusCaptured)
	assert.Equal(t, utils.ErrKindInvalidState, kindOf(t, err))

	err = CanTransitionPayment(PaymentStatusCaptured, PaymentStatusCreated)
	assert.Equal(t, utils.ErrKindInvalidState, kindOf(t, err))
}

func TestTransferTransitions(t *testing.T) {
	assert.NoError(t, CanTransitionTransfer(TransferStatusCreated, TransferStatusCaptured))

	err := CanTransitionTransfer(TransferStatusCaptured, TransferStatusCaptured)
	assert.Equal(t, utils.ErrKindDuplicate, kindOf(t, err))

	err = CanTransitionTransfer(TransferStatusCaptured, TransferStatusCreated)
	assert.Equal(t, utils.ErrKindInvalidState, kindOf(t, err))
}

func TestProviderShare(t *testing.T) {
	p := &Payment{Amount: 500, PlatformFee: 25}
	assert.Equal(t, 475.0, p.ProviderShare())
}
