package routes

import (
	"rentpulse/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPayments = "/payments"
)

func addPaymentRoutes(rg *gin.RouterGroup, paymentHandler *handlers.PaymentHandler) {
	pay := rg.Group(PathPayments)
	{
		pay.POST("/:quote_id", paymentHandler.CreatePaymentByQuoteID)
		pay.GET("/quote/:quote_id", paymentHandler.GetPaymentByQuoteID)
		pay.GET("/:payment_id", paymentHandler.GetPaymentByID)
	}
}
