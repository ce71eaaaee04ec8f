package handlers

import (
	"context"

	"localserve/internal/models"
	"localserve/internal/services"
	"localserve/internal/utils"
	"localserve/internal/validators"
	"localserve/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type requestTransitionFn func(ctx context.Context, providerID, requestID primitive.ObjectID) (*models.ServiceRequest, error)

type BookingHandler struct {
	bookingService services.BookingService
	logger         *logger.Logger
}

func NewBookingHandler(bookingService services.BookingService, logger *logger.Logger) *BookingHandler {
	return &BookingHandler{
		bookingService: bookingService,
		logger:         logger,
	}
}

// CreateService registers a new offered service for the authenticated provider.
func (h *BookingHandler) CreateService(c *gin.Context) {
	providerID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req validators.CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request format")
		return
	}

	if errs := validators.ValidateCreateService(&req); errs != nil {
		utils.ValidationErrorResponse(c, errs.Details())
		return
	}

	service, err := h.bookingService.CreateService(c.Request.Context(), providerID, &req)
	if err != nil {
		h.logger.WithError(err).WithUserID(providerID).Error("Failed to create service")
		utils.AppErrorResponse(c, err)
		return
	}

	utils.CreatedResponse(c, "Service created successfully", service)
}

func (h *BookingHandler) GetService(c *gin.Context) {
	serviceID, ok := pathObjectID(c, "id")
	if !ok {
		return
	}

	service, err := h.bookingService.GetService(c.Request.Context(), serviceID)
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Service retrieved successfully", service)
}

func (h *BookingHandler) ListMyServices(c *gin.Context) {
	providerID, ok := currentUserID(c)
	if !ok {
		return
	}

	params := utils.GetPaginationParams(c)
	services, total, err := h.bookingService.ListProviderServices(c.Request.Context(), providerID, params)
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	meta := &utils.Meta{Pagination: utils.NewPaginationMeta(params, total)}
	utils.SuccessResponseWithMeta(c, "Services retrieved successfully", services, meta)
}

// CreateRequest books a service slot for the authenticated customer.
func (h *BookingHandler) CreateRequest(c *gin.Context) {
	customerID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req validators.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request format")
		return
	}

	if errs := validators.ValidateCreateBooking(&req); errs != nil {
		utils.ValidationErrorResponse(c, errs.Details())
		return
	}

	request, err := h.bookingService.CreateRequest(c.Request.Context(), customerID, &req)
	if err != nil {
		h.logger.WithError(err).WithUserID(customerID).Error("Failed to create service request")
		utils.AppErrorResponse(c, err)
		return
	}

	utils.CreatedResponse(c, "Service request created successfully", request)
}

func (h *BookingHandler) GetRequest(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	requestID, ok := pathObjectID(c, "id")
	if !ok {
		return
	}

	request, err := h.bookingService.GetRequest(c.Request.Context(), userID, requestID)
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Service request retrieved successfully", request)
}

func (h *BookingHandler) ListMyRequests(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	params := utils.GetPaginationParams(c)

	userType, _ := c.Get("user_type")
	var (
		requests interface{}
		total    int64
		err      error
	)
	if userType == "provider" {
		requests, total, err = h.bookingService.ListProviderRequests(c.Request.Context(), userID, params)
	} else {
		requests, total, err = h.bookingService.ListCustomerRequests(c.Request.Context(), userID, params)
	}
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	meta := &utils.Meta{Pagination: utils.NewPaginationMeta(params, total)}
	utils.SuccessResponseWithMeta(c, "Service requests retrieved successfully", requests, meta)
}

func (h *BookingHandler) AcceptRequest(c *gin.Context) {
	h.transitionRequest(c, h.bookingService.AcceptRequest, "Service request accepted")
}

func (h *BookingHandler) RejectRequest(c *gin.Context) {
	h.transitionRequest(c, h.bookingService.RejectRequest, "Service request rejected")
}

func (h *BookingHandler) CompleteRequest(c *gin.Context) {
	h.transitionRequest(c, h.bookingService.CompleteRequest, "Service request completed")
}

func (h *BookingHandler) transitionRequest(c *gin.Context, fn requestTransitionFn, message string) {
	providerID, ok := currentUserID(c)
	if !ok {
		return
	}
	requestID, ok := pathObjectID(c, "id")
	if !ok {
		return
	}

	request, err := fn(c.Request.Context(), providerID, requestID)
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, message, request)
}

// IssueBill creates the bill for a completed request.
func (h *BookingHandler) IssueBill(c *gin.Context) {
	providerID, ok := currentUserID(c)
	if !ok {
		return
	}
	requestID, ok := pathObjectID(c, "id")
	if !ok {
		return
	}

	var req validators.IssueBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request format")
		return
	}

	if errs := validators.ValidateIssueBill(&req); errs != nil {
		utils.ValidationErrorResponse(c, errs.Details())
		return
	}

	bill, err := h.bookingService.IssueBill(c.Request.Context(), providerID, requestID, &req)
	if err != nil {
		h.logger.WithError(err).WithEntityID("request_id", requestID).Error("Failed to issue bill")
		utils.AppErrorResponse(c, err)
		return
	}

	utils.CreatedResponse(c, "Bill issued successfully", bill)
}
