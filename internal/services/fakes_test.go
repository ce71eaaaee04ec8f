package services

import (
	"context"
	"errors"
	"time"

	"localserve/internal/config"
	"localserve/internal/models"
	"localserve/internal/utils"
	"localserve/pkg/logger"
	"localserve/pkg/payment"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// In-memory repository fakes. They reproduce the contracts the mongo
// implementations give: not-found errors for missing documents and
// compare-and-set semantics for the Mark* methods.

func testLogger() *logger.Logger {
	log, err := logger.NewLogger(&logger.Config{Level: "error", Format: "text", Output: "stdout", AppName: "test"})
	if err != nil {
		panic(err)
	}
	return log
}

func testRazorpayConfig() *config.RazorpayConfig {
	return &config.RazorpayConfig{
		KeyID:          "rzp_test_key",
		KeySecret:      "rzp_test_secret",
		Currency:       "INR",
		CommissionRate: 0.05,
		TransferMode:   "IMPS",
		CallTimeout:    time.Second,
	}
}

type fakeRequestRepo struct {
	requests map[primitive.ObjectID]*models.ServiceRequest
}

func newFakeRequestRepo(requests ...*models.ServiceRequest) *fakeRequestRepo {
	r := &fakeRequestRepo{requests: make(map[primitive.ObjectID]*models.ServiceRequest)}
	for _, req := range requests {
		r.requests[req.ID] = req
	}
	return r
}

func (r *fakeRequestRepo) Create(ctx context.Context, request *models.ServiceRequest) error {
	if request.ID.IsZero() {
		request.ID = primitive.NewObjectID()
	}
	request.CreatedAt = time.Now()
	r.requests[request.ID] = request
	return nil
}

func (r *fakeRequestRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.ServiceRequest, error) {
	request, ok := r.requests[id]
	if !ok {
		return nil, utils.NewNotFoundError("service request")
	}
	copied := *request
	return &copied, nil
}

func (r *fakeRequestRepo) GetByCustomerID(ctx context.Context, customerID primitive.ObjectID, params *utils.PaginationParams) ([]*models.ServiceRequest, int64, error) {
	var out []*models.ServiceRequest
	for _, req := range r.requests {
		if req.CustomerID == customerID {
			out = append(out, req)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeRequestRepo) GetByProviderID(ctx context.Context, providerID primitive.ObjectID, params *utils.PaginationParams) ([]*models.ServiceRequest, int64, error) {
	var out []*models.ServiceRequest
	for _, req := range r.requests {
		if req.ProviderID == providerID {
			out = append(out, req)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeRequestRepo) UpdateStatusFrom(ctx context.Context, id primitive.ObjectID, from, to models.RequestStatus) (bool, error) {
	request, ok := r.requests[id]
	if !ok {
		return false, utils.NewNotFoundError("service request")
	}
	if request.Status != from {
		return false, nil
	}
	request.Status = to
	return true, nil
}

type fakeServiceRepo struct {
	services map[primitive.ObjectID]*models.Service
}

func newFakeServiceRepo(services ...*models.Service) *fakeServiceRepo {
	r := &fakeServiceRepo{services: make(map[primitive.ObjectID]*models.Service)}
	for _, svc := range services {
		r.services[svc.ID] = svc
	}
	return r
}

func (r *fakeServiceRepo) Create(ctx context.Context, service *models.Service) error {
	if service.ID.IsZero() {
		service.ID = primitive.NewObjectID()
	}
	service.CreatedAt = time.Now()
	r.services[service.ID] = service
	return nil
}

func (r *fakeServiceRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Service, error) {
	service, ok := r.services[id]
	if !ok {
		return nil, utils.NewNotFoundError("service")
	}
	copied := *service
	return &copied, nil
}

func (r *fakeServiceRepo) GetByProviderID(ctx context.Context, providerID primitive.ObjectID, params *utils.PaginationParams) ([]*models.Service, int64, error) {
	var out []*models.Service
	for _, svc := range r.services {
		if svc.ProviderID == providerID {
			out = append(out, svc)
		}
	}
	return out, int64(len(out)), nil
}

type fakeBillRepo struct {
	bills map[primitive.ObjectID]*models.Bill
}

func newFakeBillRepo(bills ...*models.Bill) *fakeBillRepo {
	r := &fakeBillRepo{bills: make(map[primitive.ObjectID]*models.Bill)}
	for _, bill := range bills {
		r.bills[bill.ID] = bill
	}
	return r
}

func (r *fakeBillRepo) Create(ctx context.Context, bill *models.Bill) error {
	for _, existing := range r.bills {
		if existing.RequestID == bill.RequestID {
			return utils.NewDuplicateError("bill already exists for this request")
		}
	}
	if bill.ID.IsZero() {
		bill.ID = primitive.NewObjectID()
	}
	bill.CreatedAt = time.Now()
	r.bills[bill.ID] = bill
	return nil
}

func (r *fakeBillRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Bill, error) {
	bill, ok := r.bills[id]
	if !ok {
		return nil, utils.NewNotFoundError("bill")
	}
	copied := *bill
	return &copied, nil
}

func (r *fakeBillRepo) GetByRequestID(ctx context.Context, requestID primitive.ObjectID) (*models.Bill, error) {
	for _, bill := range r.bills {
		if bill.RequestID == requestID {
			copied := *bill
			return &copied, nil
		}
	}
	return nil, utils.NewNotFoundError("bill")
}

func (r *fakeBillRepo) MarkPaid(ctx context.Context, id primitive.ObjectID) (bool, error) {
	bill, ok := r.bills[id]
	if !ok {
		return false, utils.NewNotFoundError("bill")
	}
	if bill.Status != models.BillStatusUnpaid {
		return false, nil
	}
	now := time.Now()
	bill.Status = models.BillStatusPaid
	bill.PaidAt = &now
	return true, nil
}

type fakePaymentRepo struct {
	payments map[primitive.ObjectID]*models.Payment
}

func newFakePaymentRepo(payments ...*models.Payment) *fakePaymentRepo {
	r := &fakePaymentRepo{payments: make(map[primitive.ObjectID]*models.Payment)}
	for _, pay := range payments {
		r.payments[pay.ID] = pay
	}
	return r
}

func (r *fakePaymentRepo) Create(ctx context.Context, pay *models.Payment) error {
	if pay.ID.IsZero() {
		pay.ID = primitive.NewObjectID()
	}
	pay.CreatedAt = time.Now()
	r.payments[pay.ID] = pay
	return nil
}

func (r *fakePaymentRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Payment, error) {
	pay, ok := r.payments[id]
	if !ok {
		return nil, utils.NewNotFoundError("payment")
	}
	copied := *pay
	return &copied, nil
}

func (r *fakePaymentRepo) GetByBillID(ctx context.Context, billID primitive.ObjectID) (*models.Payment, error) {
	for _, pay := range r.payments {
		if pay.BillID == billID {
			copied := *pay
			return &copied, nil
		}
	}
	return nil, utils.NewNotFoundError("payment")
}

func (r *fakePaymentRepo) GetByRazorpayOrderID(ctx context.Context, orderID string) (*models.Payment, error) {
	for _, pay := range r.payments {
		if pay.RazorpayOrderID == orderID {
			copied := *pay
			return &copied, nil
		}
	}
	return nil, utils.NewNotFoundError("payment")
}

func (r *fakePaymentRepo) GetByRazorpayPaymentID(ctx context.Context, paymentID string) (*models.Payment, error) {
	for _, pay := range r.payments {
		if pay.RazorpayPaymentID == paymentID {
			copied := *pay
			return &copied, nil
		}
	}
	return nil, utils.NewNotFoundError("payment")
}

func (r *fakePaymentRepo) MarkCaptured(ctx context.Context, id primitive.ObjectID, razorpayPaymentID string, method models.PaymentMethod) (bool, error) {
	pay, ok := r.payments[id]
	if !ok {
		return false, utils.NewNotFoundError("payment")
	}
	if pay.Status != models.PaymentStatusCreated {
		return false, nil
	}
	for _, other := range r.payments {
		if other.ID != id && other.RazorpayPaymentID == razorpayPaymentID {
			return false, utils.NewDuplicateError("payment already recorded for this gateway payment id")
		}
	}
	now := time.Now()
	pay.Status = models.PaymentStatusCaptured
	pay.RazorpayPaymentID = razorpayPaymentID
	pay.Method = method
	pay.CapturedAt = &now
	return true, nil
}

type fakeTransferRepo struct {
	transfers map[primitive.ObjectID]*models.Transfer
}

func newFakeTransferRepo(transfers ...*models.Transfer) *fakeTransferRepo {
	r := &fakeTransferRepo{transfers: make(map[primitive.ObjectID]*models.Transfer)}
	for _, transfer := range transfers {
		r.transfers[transfer.ID] = transfer
	}
	return r
}

func (r *fakeTransferRepo) Create(ctx context.Context, transfer *models.Transfer) error {
	for _, existing := range r.transfers {
		if existing.PaymentID == transfer.PaymentID {
			return utils.NewDuplicateError("transfer already exists for this payment")
		}
	}
	if transfer.ID.IsZero() {
		transfer.ID = primitive.NewObjectID()
	}
	transfer.CreatedAt = time.Now()
	r.transfers[transfer.ID] = transfer
	return nil
}

func (r *fakeTransferRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Transfer, error) {
	transfer, ok := r.transfers[id]
	if !ok {
		return nil, utils.NewNotFoundError("transfer")
	}
	copied := *transfer
	return &copied, nil
}

func (r *fakeTransferRepo) GetByPaymentID(ctx context.Context, paymentID primitive.ObjectID) (*models.Transfer, error) {
	for _, transfer := range r.transfers {
		if transfer.PaymentID == paymentID {
			copied := *transfer
			return &copied, nil
		}
	}
	return nil, utils.NewNotFoundError("transfer")
}

func (r *fakeTransferRepo) GetByProviderID(ctx context.Context, providerID primitive.ObjectID, params *utils.PaginationParams) ([]*models.Transfer, int64, error) {
	var out []*models.Transfer
	for _, transfer := range r.transfers {
		if transfer.ProviderID == providerID {
			out = append(out, transfer)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeTransferRepo) MarkCaptured(ctx context.Context, id primitive.ObjectID, razorpayTransferID string) (bool, error) {
	transfer, ok := r.transfers[id]
	if !ok {
		return false, utils.NewNotFoundError("transfer")
	}
	if transfer.Status != models.TransferStatusCreated {
		return false, nil
	}
	now := time.Now()
	transfer.Status = models.TransferStatusCaptured
	transfer.RazorpayTransferID = razorpayTransferID
	transfer.DispatchedAt = &now
	return true, nil
}

type fakeBankDetailRepo struct {
	details map[primitive.ObjectID]*models.ProviderBankDetail
}

func newFakeBankDetailRepo(details ...*models.ProviderBankDetail) *fakeBankDetailRepo {
	r := &fakeBankDetailRepo{details: make(map[primitive.ObjectID]*models.ProviderBankDetail)}
	for _, detail := range details {
		r.details[detail.ID] = detail
	}
	return r
}

func (r *fakeBankDetailRepo) Create(ctx context.Context, detail *models.ProviderBankDetail) error {
	for _, existing := range r.details {
		if existing.ProviderID == detail.ProviderID {
			return utils.NewDuplicateError("bank details already registered for this provider")
		}
	}
	if detail.ID.IsZero() {
		detail.ID = primitive.NewObjectID()
	}
	detail.CreatedAt = time.Now()
	r.details[detail.ID] = detail
	return nil
}

func (r *fakeBankDetailRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.ProviderBankDetail, error) {
	detail, ok := r.details[id]
	if !ok {
		return nil, utils.NewNotFoundError("bank details")
	}
	copied := *detail
	return &copied, nil
}

func (r *fakeBankDetailRepo) GetByProviderID(ctx context.Context, providerID primitive.ObjectID) (*models.ProviderBankDetail, error) {
	for _, detail := range r.details {
		if detail.ProviderID == providerID {
			copied := *detail
			return &copied, nil
		}
	}
	return nil, utils.NewNotFoundError("bank details")
}

func (r *fakeBankDetailRepo) MarkVerified(ctx context.Context, id primitive.ObjectID) (bool, error) {
	detail, ok := r.details[id]
	if !ok {
		return false, utils.NewNotFoundError("bank details")
	}
	if detail.VerificationStatus != models.VerificationStatusPending {
		return false, nil
	}
	now := time.Now()
	detail.VerificationStatus = models.VerificationStatusVerified
	detail.VerifiedAt = &now
	return true, nil
}

// fakeGateway scripts the gateway's answers. Signatures verify when they
// equal validSignature.
type fakeGateway struct {
	orders         map[string]*payment.Order
	validSignature string

	createOrderErr    error
	fetchOrderErr     error
	createTransferErr error

	transferResult   *payment.TransferResult
	transferRequests []*payment.TransferRequest
	orderRequests    []*payment.OrderRequest
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{
		orders:         make(map[string]*payment.Order),
		validSignature: "valid-signature",
		transferResult: &payment.TransferResult{ID: "trf_test_1", Status: "processed"},
	}
}

func (g *fakeGateway) CreateOrder(ctx context.Context, request *payment.OrderRequest) (*payment.Order, error) {
	if g.createOrderErr != nil {
		return nil, g.createOrderErr
	}
	g.orderRequests = append(g.orderRequests, request)
	order := &payment.Order{
		ID:       "order_test_" + request.Receipt,
		Amount:   request.Amount,
		Currency: request.Currency,
		Status:   "created",
		Receipt:  request.Receipt,
	}
	g.orders[order.ID] = order
	return order, nil
}

func (g *fakeGateway) FetchOrder(ctx context.Context, orderID string) (*payment.Order, error) {
	if g.fetchOrderErr != nil {
		return nil, g.fetchOrderErr
	}
	order, ok := g.orders[orderID]
	if !ok {
		return nil, errors.New("order not found")
	}
	return order, nil
}

func (g *fakeGateway) CreateTransfer(ctx context.Context, request *payment.TransferRequest) (*payment.TransferResult, error) {
	if g.createTransferErr != nil {
		return nil, g.createTransferErr
	}
	g.transferRequests = append(g.transferRequests, request)
	return g.transferResult, nil
}

func (g *fakeGateway) VerifyCaptureSignature(orderID, paymentID, signature string) bool {
	return signature == g.validSignature
}

// passthroughTxRunner runs the function without a real session; the fakes
// mutate in place so there is nothing to roll back.
type passthroughTxRunner struct{}

func (passthroughTxRunner) RunTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
