package services

import (
	"context"

	"localserve/internal/config"
	"localserve/internal/models"
	"localserve/internal/repositories/interfaces"
	"localserve/internal/utils"
	"localserve/internal/validators"
	"localserve/pkg/logger"
	"localserve/pkg/payment"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PayoutService releases captured funds to providers and manages their
// payout destinations.
type PayoutService interface {
	DispatchTransfer(ctx context.Context, providerID, transferID primitive.ObjectID) (*models.Transfer, error)
	GetTransfer(ctx context.Context, providerID, transferID primitive.ObjectID) (*models.Transfer, error)
	ListTransfers(ctx context.Context, providerID primitive.ObjectID, params *utils.PaginationParams) ([]*models.Transfer, int64, error)

	RegisterBankDetail(ctx context.Context, providerID primitive.ObjectID, req *validators.RegisterBankDetailRequest) (*models.ProviderBankDetail, error)
	VerifyBankDetail(ctx context.Context, detailID primitive.ObjectID) (*models.ProviderBankDetail, error)
}

type payoutService struct {
	transferRepo interfaces.TransferRepository
	bankRepo     interfaces.BankDetailRepository
	gateway      payment.Gateway
	notifier     NotificationService
	razorpayCfg  *config.RazorpayConfig
	log          *logger.Logger
}

func NewPayoutService(
	transferRepo interfaces.TransferRepository,
	bankRepo interfaces.BankDetailRepository,
	gateway payment.Gateway,
	notifier NotificationService,
	razorpayCfg *config.RazorpayConfig,
	log *logger.Logger,
) PayoutService {
	return &payoutService{
		transferRepo: transferRepo,
		bankRepo:     bankRepo,
		gateway:      gateway,
		notifier:     notifier,
		razorpayCfg:  razorpayCfg,
		log:          log,
	}
}

// DispatchTransfer calls the gateway only after the transfer and the
// provider's fund account pass every check. A gateway failure leaves the
// transfer in created so the dispatch can be retried; the idempotency key
// derived from the transfer id keeps the retry safe on the gateway side.
func (s *payoutService) DispatchTransfer(ctx context.Context, providerID, transferID primitive.ObjectID) (*models.Transfer, error) {
	transfer, err := s.transferRepo.GetByID(ctx, transferID)
	if err != nil {
		return nil, err
	}

	if transfer.ProviderID != providerID {
		return nil, utils.NewAuthorizationError("transfer belongs to another provider")
	}

	if err := models.CanTransitionTransfer(transfer.Status, models.TransferStatusCaptured); err != nil {
		return nil, err
	}

	detail, err := s.bankRepo.GetByProviderID(ctx, transfer.ProviderID)
	if err != nil {
		return nil, err
	}
	if !detail.IsVerified() {
		return nil, utils.NewInvalidStateError("provider bank details are not verified")
	}

	gatewayCtx, cancel := context.WithTimeout(ctx, s.razorpayCfg.CallTimeout)
	defer cancel()

	result, err := s.gateway.CreateTransfer(gatewayCtx, &payment.TransferRequest{
		Account:  detail.RazorpayFundAccountID,
		Amount:   utils.ToMinorUnits(transfer.Amount),
		Currency: transfer.Currency,
		Mode:     string(transfer.Mode),
		Notes: map[string]interface{}{
			"payment_id":  transfer.PaymentID.Hex(),
			"provider_id": transfer.ProviderID.Hex(),
		},
		IdempotencyKey: dispatchIdempotencyKey(transfer.ID),
	})
	if err != nil {
		return nil, utils.NewUpstreamGatewayError(err)
	}

	captured, err := s.transferRepo.MarkCaptured(ctx, transfer.ID, result.ID)
	if err != nil {
		return nil, err
	}
	if !captured {
		return nil, utils.NewDuplicateError("transfer was dispatched concurrently")
	}

	transfer.Status = models.TransferStatusCaptured
	transfer.RazorpayTransferID = result.ID

	s.log.WithEntityID("transfer_id", transfer.ID).
		WithField("razorpay_transfer_id", result.ID).
		WithField("amount", transfer.Amount).
		Info("payout dispatched")

	if s.notifier != nil {
		s.notifier.NotifyPayoutDispatched(ctx, transfer)
	}

	return transfer, nil
}

func (s *payoutService) GetTransfer(ctx context.Context, providerID, transferID primitive.ObjectID) (*models.Transfer, error) {
	transfer, err := s.transferRepo.GetByID(ctx, transferID)
	if err != nil {
		return nil, err
	}

	if transfer.ProviderID != providerID {
		return nil, utils.NewAuthorizationError("transfer belongs to another provider")
	}

	return transfer, nil
}

func (s *payoutService) ListTransfers(ctx context.Context, providerID primitive.ObjectID, params *utils.PaginationParams) ([]*models.Transfer, int64, error) {
	return s.transferRepo.GetByProviderID(ctx, providerID, params)
}

func (s *payoutService) RegisterBankDetail(ctx context.Context, providerID primitive.ObjectID, req *validators.RegisterBankDetailRequest) (*models.ProviderBankDetail, error) {
	detail := &models.ProviderBankDetail{
		ProviderID:            providerID,
		AccountHolderName:     req.AccountHolderName,
		AccountNumber:         req.AccountNumber,
		IFSCCode:              req.IFSCCode,
		RazorpayFundAccountID: req.RazorpayFundAccountID,
		VerificationStatus:    models.VerificationStatusPending,
	}

	if err := s.bankRepo.Create(ctx, detail); err != nil {
		return nil, err
	}

	s.log.WithUserID(providerID).Info("provider bank details registered")

	return detail, nil
}

func (s *payoutService) VerifyBankDetail(ctx context.Context, detailID primitive.ObjectID) (*models.ProviderBankDetail, error) {
	detail, err := s.bankRepo.GetByID(ctx, detailID)
	if err != nil {
		return nil, err
	}

	if detail.IsVerified() {
		return nil, utils.NewDuplicateError("bank details are already verified")
	}

	verified, err := s.bankRepo.MarkVerified(ctx, detail.ID)
	if err != nil {
		return nil, err
	}
	if !verified {
		return nil, utils.NewDuplicateError("bank details were verified concurrently")
	}

	detail.VerificationStatus = models.VerificationStatusVerified

	return detail, nil
}

// dispatchIdempotencyKey is stable per transfer, so a retried dispatch
// reuses the same key.
func dispatchIdempotencyKey(transferID primitive.ObjectID) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte("transfer-dispatch:"+transferID.Hex())).String()
}
