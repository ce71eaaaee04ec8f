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

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SettlementService moves a bill/payment pair from awaiting-capture to
// captured/paid and spawns the provider's transfer, as one logical unit.
type SettlementService interface {
	CapturePayment(ctx context.Context, customerID, requestID primitive.ObjectID, req *validators.CapturePaymentRequest) (*SettlementResult, error)
}

type SettlementResult struct {
	Payment  *models.Payment  `json:"payment"`
	Transfer *models.Transfer `json:"transfer"`
}

type settlementService struct {
	requestRepo  interfaces.ServiceRequestRepository
	billRepo     interfaces.BillRepository
	paymentRepo  interfaces.PaymentRepository
	transferRepo interfaces.TransferRepository
	gateway      payment.Gateway
	tx           TxRunner
	notifier     NotificationService
	razorpayCfg  *config.RazorpayConfig
	log          *logger.Logger
}

func NewSettlementService(
	requestRepo interfaces.ServiceRequestRepository,
	billRepo interfaces.BillRepository,
	paymentRepo interfaces.PaymentRepository,
	transferRepo interfaces.TransferRepository,
	gateway payment.Gateway,
	tx TxRunner,
	notifier NotificationService,
	razorpayCfg *config.RazorpayConfig,
	log *logger.Logger,
) SettlementService {
	return &settlementService{
		requestRepo:  requestRepo,
		billRepo:     billRepo,
		paymentRepo:  paymentRepo,
		transferRepo: transferRepo,
		gateway:      gateway,
		tx:           tx,
		notifier:     notifier,
		razorpayCfg:  razorpayCfg,
		log:          log,
	}
}

// CapturePayment runs every precondition before any write: ownership,
// bill state, payment state, signature, then amount reconciliation against
// the gateway's order. Only after all of them pass are the payment, bill
// and transfer mutated, inside one transaction.
func (s *settlementService) CapturePayment(ctx context.Context, customerID, requestID primitive.ObjectID, req *validators.CapturePaymentRequest) (*SettlementResult, error) {
	request, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	if request.CustomerID != customerID {
		return nil, utils.NewAuthorizationError("only the requesting customer can pay for this request")
	}

	bill, err := s.billRepo.GetByRequestID(ctx, request.ID)
	if err != nil {
		return nil, err
	}

	if err := models.CanTransitionBill(bill.Status, models.BillStatusPaid); err != nil {
		return nil, err
	}

	pay, err := s.paymentRepo.GetByBillID(ctx, bill.ID)
	if err != nil {
		if appErr, ok := utils.AsAppError(err); ok && appErr.Kind == utils.ErrKindNotFound {
			return nil, utils.NewInvalidStateError("no pending payment for this bill; create a checkout order first")
		}
		return nil, err
	}

	if err := models.CanTransitionPayment(pay.Status, models.PaymentStatusCaptured); err != nil {
		return nil, err
	}

	if pay.RazorpayOrderID != req.RazorpayOrderID {
		return nil, utils.NewValidationError("order id does not belong to this bill")
	}

	if !s.gateway.VerifyCaptureSignature(req.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature) {
		return nil, utils.NewSignatureMismatchError()
	}

	gatewayCtx, cancel := context.WithTimeout(ctx, s.razorpayCfg.CallTimeout)
	defer cancel()

	order, err := s.gateway.FetchOrder(gatewayCtx, req.RazorpayOrderID)
	if err != nil {
		return nil, utils.NewUpstreamGatewayError(err)
	}

	if err := utils.ReconcileAmounts(bill.Amount, order.Amount); err != nil {
		return nil, err
	}

	method := models.PaymentMethod(order.Method)

	transfer := &models.Transfer{
		PaymentID:  pay.ID,
		ProviderID: request.ProviderID,
		Amount:     pay.ProviderShare(),
		Currency:   pay.Currency,
		Mode:       models.TransferMode(s.razorpayCfg.TransferMode),
		Status:     models.TransferStatusCreated,
	}

	err = s.tx.RunTransaction(ctx, func(txCtx context.Context) error {
		captured, err := s.paymentRepo.MarkCaptured(txCtx, pay.ID, req.RazorpayPaymentID, method)
		if err != nil {
			return err
		}
		if !captured {
			return utils.NewDuplicateError("payment was captured concurrently")
		}

		paid, err := s.billRepo.MarkPaid(txCtx, bill.ID)
		if err != nil {
			return err
		}
		if !paid {
			return utils.NewDuplicateError("bill was paid concurrently")
		}

		return s.transferRepo.Create(txCtx, transfer)
	})
	if err != nil {
		return nil, err
	}

	now := transfer.CreatedAt
	pay.Status = models.PaymentStatusCaptured
	pay.RazorpayPaymentID = req.RazorpayPaymentID
	pay.Method = method
	pay.CapturedAt = &now
	bill.Status = models.BillStatusPaid
	bill.PaidAt = &now

	s.log.WithEntityID("bill_id", bill.ID).
		WithEntityID("payment_id", pay.ID).
		WithEntityID("transfer_id", transfer.ID).
		WithField("razorpay_payment_id", req.RazorpayPaymentID).
		Info("payment captured and settled")

	if s.notifier != nil {
		s.notifier.NotifyPaymentCaptured(ctx, pay)
	}

	return &SettlementResult{
		Payment:  pay,
		Transfer: transfer,
	}, nil
}
