package routes

import (
	"rentpulse/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathForecasts = "/forecasts"
)

func addForecastRoutes(rg *gin.RouterGroup, forecastHandler *handlers.ForecastHandler) {
	forecasts := rg.Group(PathForecasts)
	{
		forecasts.POST("", forecastHandler.GenerateForecast)
		forecasts.POST("/roi", forecastHandler.AnalyzeROI)
		forecasts.POST("/portfolio", forecastHandler.AnalyzePortfolio)
	}
}
