package routes

import (
	"localserve/internal/handlers"
	"localserve/internal/middleware"

	"github.com/gin-gonic/gin"
)

// SetupBookingRoutes wires the service catalog and request lifecycle,
// including bill issuance and the customer payment endpoints.
func SetupBookingRoutes(
	r *gin.RouterGroup,
	jwtSecret string,
	bookingHandler *handlers.BookingHandler,
	paymentHandler *handlers.PaymentHandler,
) {
	services := r.Group("/services")
	services.Use(middleware.AuthRequired(jwtSecret))
	{
		services.POST("", middleware.ProviderRequired(), bookingHandler.CreateService)
		services.GET("/mine", middleware.ProviderRequired(), bookingHandler.ListMyServices)
		services.GET("/:id", bookingHandler.GetService)
	}

	requests := r.Group("/requests")
	requests.Use(middleware.AuthRequired(jwtSecret))
	{
		requests.POST("", middleware.CustomerRequired(), bookingHandler.CreateRequest)
		requests.GET("", bookingHandler.ListMyRequests)
		requests.GET("/:id", bookingHandler.GetRequest)

		requests.PUT("/:id/accept", middleware.ProviderRequired(), bookingHandler.AcceptRequest)
		requests.PUT("/:id/reject", middleware.ProviderRequired(), bookingHandler.RejectRequest)
		requests.PUT("/:id/complete", middleware.ProviderRequired(), bookingHandler.CompleteRequest)
		requests.POST("/:id/bill", middleware.ProviderRequired(), bookingHandler.IssueBill)

		requests.POST("/:id/checkout", middleware.CustomerRequired(), paymentHandler.Checkout)
		requests.POST("/:id/pay", middleware.CustomerRequired(), paymentHandler.Pay)
	}
}
