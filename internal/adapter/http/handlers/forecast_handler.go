package handlers

import (
	"errors"
	"net/http"
	request "rentpulse/internal/adapter/http/dto/request"
	response "rentpulse/internal/adapter/http/dto/response"
	"rentpulse/internal/usecase"
	"rentpulse/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidForecastPayload = pkg.NewDomainErrorSimple("INVALID_FORECAST_INPUT", "Invalid forecast payload", http.StatusBadRequest)
)

// ForecastHandler handles HTTP requests for revenue forecasts and ROI analysis.

type ForecastHandler struct {
	usecase usecase.IForecastUseCase
}

func NewForecastHandler(uc usecase.IForecastUseCase) *ForecastHandler {
	return &ForecastHandler{usecase: uc}
}

// GenerateForecast projects monthly revenue for a property.
func (h *ForecastHandler) GenerateForecast(c *gin.Context) {
	var payload request.ForecastRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidForecastPayload.HTTPStatus, errInvalidForecastPayload.ToHTTPError())
		return
	}

	result, err := h.usecase.GenerateForecast(c.Request.Context(), payload.ToInput())
	if err != nil {
		appErr := mapForecastError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromForecastResult(result))
}

// AnalyzeROI computes return on investment for one property.
func (h *ForecastHandler) AnalyzeROI(c *gin.Context) {
	var payload request.ROIRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidForecastPayload.HTTPStatus, errInvalidForecastPayload.ToHTTPError())
		return
	}

	analysis, err := h.usecase.AnalyzeROI(c.Request.Context(), payload.PropertyID, payload.City, payload.Investment, payload.Months)
	if err != nil {
		appErr := mapForecastError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromROIAnalysis(analysis))
}

// AnalyzePortfolio ranks every known property by projected ROI.
func (h *ForecastHandler) AnalyzePortfolio(c *gin.Context) {
	var payload request.PortfolioRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidForecastPayload.HTTPStatus, errInvalidForecastPayload.ToHTTPError())
		return
	}

	analysis, err := h.usecase.AnalyzePortfolio(c.Request.Context(), payload.City, payload.Investment, payload.Months)
	if err != nil {
		appErr := mapForecastError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPortfolioAnalysis(analysis))
}

func mapForecastError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidMonths):
		return pkg.NewDomainErrorSimple("INVALID_FORECAST_HORIZON", "Forecast horizon out of range", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidInvestment):
		return pkg.NewDomainErrorSimple("INVALID_INVESTMENT", "Investment must be positive", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidPropertyID):
		return pkg.NewDomainErrorSimple("INVALID_PROPERTY_ID", "Property id is required", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
