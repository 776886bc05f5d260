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
	errInvalidAdvisorPayload = pkg.NewDomainErrorSimple("INVALID_ADVISOR_INPUT", "Invalid advisor payload", http.StatusBadRequest)
)

// AdvisorHandler handles HTTP requests for nightly-price recommendations.

type AdvisorHandler struct {
	usecase usecase.IAdvisorUseCase
}

func NewAdvisorHandler(uc usecase.IAdvisorUseCase) *AdvisorHandler {
	return &AdvisorHandler{usecase: uc}
}

// Recommend returns a nightly-price recommendation for a stay.
func (h *AdvisorHandler) Recommend(c *gin.Context) {
	var payload request.AdvisorRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAdvisorPayload.HTTPStatus, errInvalidAdvisorPayload.ToHTTPError())
		return
	}

	query, err := payload.ToQuery()
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_STAY_DATES", "Invalid check-in/check-out dates", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	rec, err := h.usecase.Recommend(c.Request.Context(), query)
	if err != nil {
		appErr := mapAdvisorError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRecommendation(rec))
}

func mapAdvisorError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidBasePrice):
		return pkg.NewDomainErrorSimple("INVALID_BASE_PRICE", "Base price must be positive", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidCity):
		return pkg.NewDomainErrorSimple("INVALID_CITY", "City is required", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
