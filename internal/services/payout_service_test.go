package services

import (
	"context"
	"errors"
	"testing"

	"localserve/internal/models"
	"localserve/internal/utils"
	"localserve/internal/validators"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type payoutFixture struct {
	providerID primitive.ObjectID
	transfer   *models.Transfer
	detail     *models.ProviderBankDetail

	transferRepo *fakeTransferRepo
	bankRepo     *fakeBankDetailRepo
	gateway      *fakeGateway

	service PayoutService
}

func newPayoutFixture(t *testing.T) *payoutFixture {
	t.Helper()

	f := &payoutFixture{providerID: primitive.NewObjectID()}

	f.transfer = &models.Transfer{
		ID:         primitive.NewObjectID(),
		PaymentID:  primitive.NewObjectID(),
		ProviderID: f.providerID,
		Amount:     475,
		Currency:   "INR",
		Mode:       models.TransferModeIMPS,
		Status:     models.TransferStatusCreated,
	}
	f.detail = &models.ProviderBankDetail{
		ID:                    primitive.NewObjectID(),
		ProviderID:            f.providerID,
		AccountHolderName:     "Asha Provider",
		AccountNumber:         "1234567890",
		IFSCCode:              "HDFC0001234",
		RazorpayFundAccountID: "acc_provider_1",
		VerificationStatus:    models.VerificationStatusVerified,
	}

	f.transferRepo = newFakeTransferRepo(f.transfer)
	f.bankRepo = newFakeBankDetailRepo(f.detail)
	f.gateway = newFakeGateway()

	f.service = NewPayoutService(
		f.transferRepo,
		f.bankRepo,
		f.gateway,
		nil,
		testRazorpayConfig(),
		testLogger(),
	)

	return f
}

func TestDispatchTransferSendsProviderShare(t *testing.T) {
	f := newPayoutFixture(t)

	transfer, err := f.service.DispatchTransfer(context.Background(), f.providerID, f.transfer.ID)
	require.NoError(t, err)

	assert.Equal(t, models.TransferStatusCaptured, transfer.Status)
	assert.Equal(t, "trf_test_1", transfer.RazorpayTransferID)

	require.Len(t, f.gateway.transferRequests, 1)
	sent := f.gateway.transferRequests[0]
	assert.Equal(t, "acc_provider_1", sent.Account)
	assert.Equal(t, int64(47500), sent.Amount)
	assert.Equal(t, "INR", sent.Currency)
	assert.Equal(t, "IMPS", sent.Mode)
	assert.NotEmpty(t, sent.IdempotencyKey)
}

func TestDispatchTransferIdempotencyKeyIsStablePerTransfer(t *testing.T) {
	id := primitive.NewObjectID()

	assert.Equal(t, dispatchIdempotencyKey(id), dispatchIdempotencyKey(id))
	assert.NotEqual(t, dispatchIdempotencyKey(id), dispatchIdempotencyKey(primitive.NewObjectID()))
}

func TestDispatchTransferRequiresVerifiedBankDetail(t *testing.T) {
	f := newPayoutFixture(t)
	f.detail.VerificationStatus = models.VerificationStatusPending

	_, err := f.service.DispatchTransfer(context.Background(), f.providerID, f.transfer.ID)
	require.Error(t, err)
	appErr, ok := utils.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, utils.ErrKindInvalidState, appErr.Kind)

	assert.Empty(t, f.gateway.transferRequests)
	transfer, err := f.transferRepo.GetByID(context.Background(), f.transfer.ID)
	require.NoError(t, err)
	assert.Equal(t, models.TransferStatusCreated, transfer.Status)
}

func TestDispatchTransferRejectsRepeatedDispatch(t *testing.T) {
	f := newPayoutFixture(t)

	_, err := f.service.DispatchTransfer(context.Background(), f.providerID, f.transfer.ID)
	require.NoError(t, err)

	_, err = f.service.DispatchTransfer(context.Background(), f.providerID, f.transfer.ID)
	require.Error(t, err)
	appErr, ok := utils.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, utils.ErrKindDuplicate, appErr.Kind)

	// The gateway saw exactly one dispatch.
	assert.Len(t, f.gateway.transferRequests, 1)
}

func TestDispatchTransferRejectsForeignProvider(t *testing.T) {
	f := newPayoutFixture(t)

	_, err := f.service.DispatchTransfer(context.Background(), primitive.NewObjectID(), f.transfer.ID)
	require.Error(t, err)
	appErr, ok := utils.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, utils.ErrKindAuthorization, appErr.Kind)
}

func TestDispatchTransferLeavesCreatedOnGatewayFailure(t *testing.T) {
	f := newPayoutFixture(t)
	f.gateway.createTransferErr = errors.New("gateway down")

	_, err := f.service.DispatchTransfer(context.Background(), f.providerID, f.transfer.ID)
	require.Error(t, err)
	appErr, ok := utils.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, utils.ErrKindUpstreamGateway, appErr.Kind)

	transfer, err := f.transferRepo.GetByID(context.Background(), f.transfer.ID)
	require.NoError(t, err)
	assert.Equal(t, models.TransferStatusCreated, transfer.Status)
	assert.Empty(t, transfer.RazorpayTransferID)
}

func TestRegisterBankDetailStartsPending(t *testing.T) {
	f := newPayoutFixture(t)
	providerID := primitive.NewObjectID()

	detail, err := f.service.RegisterBankDetail(context.Background(), providerID, &validators.RegisterBankDetailRequest{
		AccountHolderName:     "Ravi Provider",
		AccountNumber:         "9876543210",
		IFSCCode:              "ICIC0004321",
		RazorpayFundAccountID: "acc_provider_2",
	})
	require.NoError(t, err)

	assert.Equal(t, providerID, detail.ProviderID)
	assert.Equal(t, models.VerificationStatusPending, detail.VerificationStatus)
	assert.False(t, detail.IsVerified())
}

func TestVerifyBankDetailIsOneWay(t *testing.T) {
	f := newPayoutFixture(t)
	f.detail.VerificationStatus = models.VerificationStatusPending

	detail, err := f.service.VerifyBankDetail(context.Background(), f.detail.ID)
	require.NoError(t, err)
	assert.True(t, detail.IsVerified())

	_, err = f.service.VerifyBankDetail(context.Background(), f.detail.ID)
	require.Error(t, err)
	appErr, ok := utils.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, utils.ErrKindDuplicate, appErr.Kind)
}
