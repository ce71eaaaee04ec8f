package handlers

import (
	"localserve/internal/services"
	"localserve/internal/utils"
	"localserve/internal/validators"
	"localserve/pkg/logger"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	bookingService    services.BookingService
	settlementService services.SettlementService
	logger            *logger.Logger
}

func NewPaymentHandler(
	bookingService services.BookingService,
	settlementService services.SettlementService,
	logger *logger.Logger,
) *PaymentHandler {
	return &PaymentHandler{
		bookingService:    bookingService,
		settlementService: settlementService,
		logger:            logger,
	}
}

// Checkout creates (or returns the pending) gateway order for the request's
// bill so the client can open the payment flow.
func (h *PaymentHandler) Checkout(c *gin.Context) {
	customerID, ok := currentUserID(c)
	if !ok {
		return
	}
	requestID, ok := pathObjectID(c, "id")
	if !ok {
		return
	}

	result, err := h.bookingService.Checkout(c.Request.Context(), customerID, requestID)
	if err != nil {
		h.logger.WithError(err).WithEntityID("request_id", requestID).Error("Checkout failed")
		utils.AppErrorResponse(c, err)
		return
	}

	utils.CreatedResponse(c, "Checkout order created successfully", result)
}

// Pay settles the request's bill: it verifies the gateway callback fields,
// reconciles amounts and transitions payment, bill and transfer together.
func (h *PaymentHandler) Pay(c *gin.Context) {
	customerID, ok := currentUserID(c)
	if !ok {
		return
	}
	requestID, ok := pathObjectID(c, "id")
	if !ok {
		return
	}

	var req validators.CapturePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request format")
		return
	}

	if errs := validators.ValidateCapturePayment(&req); errs != nil {
		utils.ValidationErrorResponse(c, errs.Details())
		return
	}

	result, err := h.settlementService.CapturePayment(c.Request.Context(), customerID, requestID, &req)
	if err != nil {
		h.logger.WithError(err).
			WithEntityID("request_id", requestID).
			WithField("razorpay_order_id", req.RazorpayOrderID).
			Error("Payment capture failed")
		utils.AppErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Payment captured successfully", result)
}
