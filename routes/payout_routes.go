package routes

import (
	"localserve/internal/handlers"
	"localserve/internal/middleware"

	"github.com/gin-gonic/gin"
)

// SetupPayoutRoutes wires transfer dispatch and provider bank details.
func SetupPayoutRoutes(
	r *gin.RouterGroup,
	jwtSecret string,
	transferHandler *handlers.TransferHandler,
) {
	transfers := r.Group("/transfers")
	transfers.Use(middleware.AuthRequired(jwtSecret), middleware.ProviderRequired())
	{
		transfers.GET("", transferHandler.ListMyTransfers)
		transfers.GET("/:id", transferHandler.GetTransfer)
		transfers.POST("/:id/dispatch", transferHandler.Dispatch)
	}

	bankDetails := r.Group("/providers/bank-details")
	bankDetails.Use(middleware.AuthRequired(jwtSecret))
	{
		bankDetails.POST("", middleware.ProviderRequired(), transferHandler.RegisterBankDetail)
		bankDetails.PUT("/:id/verify", middleware.AdminRequired(), transferHandler.VerifyBankDetail)
	}
}
