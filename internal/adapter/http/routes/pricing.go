package routes

import (
	"rentpulse/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPricing = "/pricing"
)

func addPricingRoutes(rg *gin.RouterGroup, pricingHandler *handlers.PricingHandler) {
	pricing := rg.Group(PathPricing)
	{
		pricing.POST("/quote", pricingHandler.CalculatePrice)
		pricing.POST("/batch", pricingHandler.CalculateBatch)
	}
}
