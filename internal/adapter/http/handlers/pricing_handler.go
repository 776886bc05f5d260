package handlers

import (
	"context"
	"errors"
	"net/http"
	request "rentpulse/internal/adapter/http/dto/request"
	response "rentpulse/internal/adapter/http/dto/response"
	"rentpulse/internal/usecase"
	"rentpulse/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPricingPayload = pkg.NewDomainErrorSimple("INVALID_PRICING_INPUT", "Invalid pricing payload", http.StatusBadRequest)
)

// PricingHandler handles HTTP requests for maintenance issue pricing.

type PricingHandler struct {
	usecase usecase.IPricingUseCase
}

func NewPricingHandler(uc usecase.IPricingUseCase) *PricingHandler {
	return &PricingHandler{usecase: uc}
}

// CalculatePrice prices a single maintenance issue without persisting anything.
func (h *PricingHandler) CalculatePrice(c *gin.Context) {
	var payload request.PricingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPricingPayload.HTTPStatus, errInvalidPricingPayload.ToHTTPError())
		return
	}

	in := payload.ToInput()
	result, err := h.usecase.CalculatePrice(c.Request.Context(), in)
	if err != nil {
		appErr := mapPricingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPricingResult(in.IssueID, result))
}

// CalculateBatch prices several issues together and applies the bulk discount.
func (h *PricingHandler) CalculateBatch(c *gin.Context) {
	var payload request.BatchPricingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPricingPayload.HTTPStatus, errInvalidPricingPayload.ToHTTPError())
		return
	}

	result, err := h.usecase.CalculateBatch(c.Request.Context(), payload.ToInputs())
	if err != nil {
		appErr := mapPricingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBatchResult(result))
}

func mapPricingError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return pkg.NewDomainError("REQUEST_TIMEOUT", "Request cancelled or timed out", err, http.StatusGatewayTimeout)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
