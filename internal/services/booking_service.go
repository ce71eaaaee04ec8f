package services

import (
	"context"
	"math"

	"localserve/internal/config"
	"localserve/internal/models"
	"localserve/internal/repositories/interfaces"
	"localserve/internal/utils"
	"localserve/internal/validators"
	"localserve/pkg/logger"
	"localserve/pkg/payment"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BookingService interface {
	// Service catalog
	CreateService(ctx context.Context, providerID primitive.ObjectID, req *validators.CreateServiceRequest) (*models.Service, error)
	GetService(ctx context.Context, id primitive.ObjectID) (*models.Service, error)
	ListProviderServices(ctx context.Context, providerID primitive.ObjectID, params *utils.PaginationParams) ([]*models.Service, int64, error)

	// Request lifecycle
	CreateRequest(ctx context.Context, customerID primitive.ObjectID, req *validators.CreateBookingRequest) (*models.ServiceRequest, error)
	GetRequest(ctx context.Context, userID, requestID primitive.ObjectID) (*models.ServiceRequest, error)
	ListCustomerRequests(ctx context.Context, customerID primitive.ObjectID, params *utils.PaginationParams) ([]*models.ServiceRequest, int64, error)
	ListProviderRequests(ctx context.Context, providerID primitive.ObjectID, params *utils.PaginationParams) ([]*models.ServiceRequest, int64, error)
	AcceptRequest(ctx context.Context, providerID, requestID primitive.ObjectID) (*models.ServiceRequest, error)
	RejectRequest(ctx context.Context, providerID, requestID primitive.ObjectID) (*models.ServiceRequest, error)
	CompleteRequest(ctx context.Context, providerID, requestID primitive.ObjectID) (*models.ServiceRequest, error)

	// Billing
	IssueBill(ctx context.Context, providerID, requestID primitive.ObjectID, req *validators.IssueBillRequest) (*models.Bill, error)
	Checkout(ctx context.Context, customerID, requestID primitive.ObjectID) (*CheckoutResult, error)
}

// CheckoutResult carries what the customer's client needs to run the
// gateway's checkout flow.
type CheckoutResult struct {
	Bill            *models.Bill    `json:"bill"`
	Payment         *models.Payment `json:"payment"`
	RazorpayKeyID   string          `json:"razorpay_key_id"`
	RazorpayOrderID string          `json:"razorpay_order_id"`
	Amount          int64           `json:"amount"`
	Currency        string          `json:"currency"`
}

type bookingService struct {
	serviceRepo interfaces.ServiceRepository
	requestRepo interfaces.ServiceRequestRepository
	billRepo    interfaces.BillRepository
	paymentRepo interfaces.PaymentRepository
	gateway     payment.Gateway
	notifier    NotificationService
	razorpayCfg *config.RazorpayConfig
	razorpayKey string
	log         *logger.Logger
}

func NewBookingService(
	serviceRepo interfaces.ServiceRepository,
	requestRepo interfaces.ServiceRequestRepository,
	billRepo interfaces.BillRepository,
	paymentRepo interfaces.PaymentRepository,
	gateway payment.Gateway,
	notifier NotificationService,
	razorpayCfg *config.RazorpayConfig,
	log *logger.Logger,
) BookingService {
	return &bookingService{
		serviceRepo: serviceRepo,
		requestRepo: requestRepo,
		billRepo:    billRepo,
		paymentRepo: paymentRepo,
		gateway:     gateway,
		notifier:    notifier,
		razorpayCfg: razorpayCfg,
		razorpayKey: razorpayCfg.KeyID,
		log:         log,
	}
}

func (s *bookingService) CreateService(ctx context.Context, providerID primitive.ObjectID, req *validators.CreateServiceRequest) (*models.Service, error) {
	currency := req.Currency
	if currency == "" {
		currency = s.razorpayCfg.Currency
	}

	service := &models.Service{
		ProviderID:  providerID,
		Name:        req.Name,
		Category:    req.Category,
		Description: req.Description,
		BasePrice:   req.BasePrice,
		Currency:    currency,
		IsActive:    true,
	}

	if err := s.serviceRepo.Create(ctx, service); err != nil {
		return nil, err
	}

	return service, nil
}

func (s *bookingService) GetService(ctx context.Context, id primitive.ObjectID) (*models.Service, error) {
	return s.serviceRepo.GetByID(ctx, id)
}

func (s *bookingService) ListProviderServices(ctx context.Context, providerID primitive.ObjectID, params *utils.PaginationParams) ([]*models.Service, int64, error) {
	return s.serviceRepo.GetByProviderID(ctx, providerID, params)
}

func (s *bookingService) CreateRequest(ctx context.Context, customerID primitive.ObjectID, req *validators.CreateBookingRequest) (*models.ServiceRequest, error) {
	service, err := s.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		return nil, err
	}
	if !service.IsActive {
		return nil, utils.NewValidationError("service is no longer available")
	}

	request := &models.ServiceRequest{
		CustomerID: customerID,
		ProviderID: service.ProviderID,
		ServiceID:  service.ID,
		TimeSlot:   req.TimeSlot,
		Note:       req.Note,
		Status:     models.RequestStatusPending,
	}

	if err := s.requestRepo.Create(ctx, request); err != nil {
		return nil, err
	}

	s.log.WithEntityID("request_id", request.ID).WithUserID(customerID).Info("service request created")

	return request, nil
}

func (s *bookingService) GetRequest(ctx context.Context, userID, requestID primitive.ObjectID) (*models.ServiceRequest, error) {
	request, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	if request.CustomerID != userID && request.ProviderID != userID {
		return nil, utils.NewAuthorizationError("you do not have access to this service request")
	}

	return request, nil
}

func (s *bookingService) ListCustomerRequests(ctx context.Context, customerID primitive.ObjectID, params *utils.PaginationParams) ([]*models.ServiceRequest, int64, error) {
	return s.requestRepo.GetByCustomerID(ctx, customerID, params)
}

func (s *bookingService) ListProviderRequests(ctx context.Context, providerID primitive.ObjectID, params *utils.PaginationParams) ([]*models.ServiceRequest, int64, error) {
	return s.requestRepo.GetByProviderID(ctx, providerID, params)
}

func (s *bookingService) AcceptRequest(ctx context.Context, providerID, requestID primitive.ObjectID) (*models.ServiceRequest, error) {
	request, err := s.transitionRequest(ctx, providerID, requestID, models.RequestStatusAccepted)
	if err != nil {
		return nil, err
	}

	if s.notifier != nil {
		s.notifier.NotifyBookingAccepted(ctx, request)
	}

	return request, nil
}

func (s *bookingService) RejectRequest(ctx context.Context, providerID, requestID primitive.ObjectID) (*models.ServiceRequest, error) {
	return s.transitionRequest(ctx, providerID, requestID, models.RequestStatusRejected)
}

func (s *bookingService) CompleteRequest(ctx context.Context, providerID, requestID primitive.ObjectID) (*models.ServiceRequest, error) {
	return s.transitionRequest(ctx, providerID, requestID, models.RequestStatusCompleted)
}

func (s *bookingService) transitionRequest(ctx context.Context, providerID, requestID primitive.ObjectID, to models.RequestStatus) (*models.ServiceRequest, error) {
	request, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	if request.ProviderID != providerID {
		return nil, utils.NewAuthorizationError("only the owning provider can update this request")
	}

	if err := models.CanTransitionRequest(request.Status, to); err != nil {
		return nil, err
	}

	updated, err := s.requestRepo.UpdateStatusFrom(ctx, requestID, request.Status, to)
	if err != nil {
		return nil, err
	}
	if !updated {
		// Lost the race to a concurrent transition.
		return nil, utils.NewDuplicateError("service request was updated concurrently")
	}

	request.Status = to

	s.log.WithEntityID("request_id", requestID).Infof("service request %s", to)

	return request, nil
}

func (s *bookingService) IssueBill(ctx context.Context, providerID, requestID primitive.ObjectID, req *validators.IssueBillRequest) (*models.Bill, error) {
	request, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	if request.ProviderID != providerID {
		return nil, utils.NewAuthorizationError("only the owning provider can bill this request")
	}

	if request.Status != models.RequestStatusAccepted && request.Status != models.RequestStatusCompleted {
		return nil, utils.NewInvalidStateError("only accepted or completed requests can be billed")
	}

	currency := req.Currency
	if currency == "" {
		currency = s.razorpayCfg.Currency
	}

	bill := &models.Bill{
		RequestID:  request.ID,
		CustomerID: request.CustomerID,
		ProviderID: request.ProviderID,
		Amount:     req.Amount,
		Currency:   currency,
		Status:     models.BillStatusUnpaid,
	}

	if err := s.billRepo.Create(ctx, bill); err != nil {
		return nil, err
	}

	s.log.WithEntityID("bill_id", bill.ID).WithEntityID("request_id", requestID).Info("bill issued")

	return bill, nil
}

func (s *bookingService) Checkout(ctx context.Context, customerID, requestID primitive.ObjectID) (*CheckoutResult, error) {
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

	// A repeated checkout reuses the pending payment and its order.
	existing, err := s.paymentRepo.GetByBillID(ctx, bill.ID)
	if err == nil {
		if existing.Status != models.PaymentStatusCreated {
			return nil, utils.NewDuplicateError("bill already has a settled payment")
		}
		return s.checkoutResult(bill, existing), nil
	}
	if appErr, ok := utils.AsAppError(err); !ok || appErr.Kind != utils.ErrKindNotFound {
		return nil, err
	}

	platformFee := math.Round(bill.Amount*s.razorpayCfg.CommissionRate*100) / 100

	gatewayCtx, cancel := context.WithTimeout(ctx, s.razorpayCfg.CallTimeout)
	defer cancel()

	order, err := s.gateway.CreateOrder(gatewayCtx, &payment.OrderRequest{
		Amount:   utils.ToMinorUnits(bill.Amount),
		Currency: bill.Currency,
		Receipt:  bill.ID.Hex(),
		Notes: map[string]interface{}{
			"request_id":  request.ID.Hex(),
			"customer_id": customerID.Hex(),
		},
	})
	if err != nil {
		return nil, utils.NewUpstreamGatewayError(err)
	}

	pay := &models.Payment{
		BillID:          bill.ID,
		RequestID:       request.ID,
		CustomerID:      request.CustomerID,
		ProviderID:      request.ProviderID,
		RazorpayOrderID: order.ID,
		Status:          models.PaymentStatusCreated,
		Amount:          bill.Amount,
		Currency:        bill.Currency,
		PlatformFee:     platformFee,
	}

	if err := s.paymentRepo.Create(ctx, pay); err != nil {
		return nil, err
	}

	s.log.WithEntityID("bill_id", bill.ID).WithField("razorpay_order_id", order.ID).Info("checkout order created")

	return s.checkoutResult(bill, pay), nil
}

func (s *bookingService) checkoutResult(bill *models.Bill, pay *models.Payment) *CheckoutResult {
	return &CheckoutResult{
		Bill:            bill,
		Payment:         pay,
		RazorpayKeyID:   s.razorpayKey,
		RazorpayOrderID: pay.RazorpayOrderID,
		Amount:          utils.ToMinorUnits(pay.Amount),
		Currency:        pay.Currency,
	}
}
