package handlers

import (
	"localserve/internal/services"
	"localserve/internal/utils"
	"localserve/internal/validators"
	"localserve/pkg/logger"

	"github.com/gin-gonic/gin"
)

type TransferHandler struct {
	payoutService services.PayoutService
	logger        *logger.Logger
}

func NewTransferHandler(payoutService services.PayoutService, logger *logger.Logger) *TransferHandler {
	return &TransferHandler{
		payoutService: payoutService,
		logger:        logger,
	}
}

// Dispatch pushes a pending transfer to the payment gateway.
func (h *TransferHandler) Dispatch(c *gin.Context) {
	providerID, ok := currentUserID(c)
	if !ok {
		return
	}
	transferID, ok := pathObjectID(c, "id")
	if !ok {
		return
	}

	transfer, err := h.payoutService.DispatchTransfer(c.Request.Context(), providerID, transferID)
	if err != nil {
		h.logger.WithError(err).WithEntityID("transfer_id", transferID).Error("Transfer dispatch failed")
		utils.AppErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Transfer dispatched successfully", transfer)
}

func (h *TransferHandler) GetTransfer(c *gin.Context) {
	providerID, ok := currentUserID(c)
	if !ok {
		return
	}
	transferID, ok := pathObjectID(c, "id")
	if !ok {
		return
	}

	transfer, err := h.payoutService.GetTransfer(c.Request.Context(), providerID, transferID)
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Transfer retrieved successfully", transfer)
}

func (h *TransferHandler) ListMyTransfers(c *gin.Context) {
	providerID, ok := currentUserID(c)
	if !ok {
		return
	}

	params := utils.GetPaginationParams(c)
	transfers, total, err := h.payoutService.ListTransfers(c.Request.Context(), providerID, params)
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	meta := &utils.Meta{Pagination: utils.NewPaginationMeta(params, total)}
	utils.SuccessResponseWithMeta(c, "Transfers retrieved successfully", transfers, meta)
}

// RegisterBankDetail stores the provider's fund account for payouts.
// It stays pending until ops verifies it.
func (h *TransferHandler) RegisterBankDetail(c *gin.Context) {
	providerID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req validators.RegisterBankDetailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request format")
		return
	}

	if errs := validators.ValidateRegisterBankDetail(&req); errs != nil {
		utils.ValidationErrorResponse(c, errs.Details())
		return
	}

	detail, err := h.payoutService.RegisterBankDetail(c.Request.Context(), providerID, &req)
	if err != nil {
		h.logger.WithError(err).WithUserID(providerID).Error("Failed to register bank detail")
		utils.AppErrorResponse(c, err)
		return
	}

	utils.CreatedResponse(c, "Bank detail registered successfully", detail)
}

func (h *TransferHandler) VerifyBankDetail(c *gin.Context) {
	detailID, ok := pathObjectID(c, "id")
	if !ok {
		return
	}

	detail, err := h.payoutService.VerifyBankDetail(c.Request.Context(), detailID)
	if err != nil {
		utils.AppErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Bank detail verified successfully", detail)
}
