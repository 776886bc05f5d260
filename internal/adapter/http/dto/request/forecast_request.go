package request

import (
	"strings"

	"rentpulse/internal/domain/entities"
)

// ForecastRequest drives one revenue forecast run. A zero months value means
// the default 12-month horizon.
type ForecastRequest struct {
	PropertyID         string `json:"property_id"`
	City               string `json:"city"`
	Months             int    `json:"months"`
	IncludeSeasonality *bool  `json:"include_seasonality"`
	IncludeGrowthTrend *bool  `json:"include_growth_trend"`
}

func (r ForecastRequest) ToInput() entities.ForecastInput {
	// Seasonality and growth default to on; callers opt out explicitly.
	seasonality := true
	if r.IncludeSeasonality != nil {
		seasonality = *r.IncludeSeasonality
	}
	growth := true
	if r.IncludeGrowthTrend != nil {
		growth = *r.IncludeGrowthTrend
	}
	return entities.ForecastInput{
		PropertyID:         strings.TrimSpace(r.PropertyID),
		City:               strings.TrimSpace(r.City),
		Months:             r.Months,
		IncludeSeasonality: seasonality,
		IncludeGrowthTrend: growth,
	}
}

// ROIRequest asks for the return-on-investment projection of one property.
type ROIRequest struct {
	PropertyID string  `json:"property_id" binding:"required"`
	City       string  `json:"city"`
	Investment float64 `json:"investment" binding:"required"`
	Months     int     `json:"months"`
}

// PortfolioRequest ranks every property with history against the portfolio
// average, using one reference investment per property.
type PortfolioRequest struct {
	City       string  `json:"city"`
	Investment float64 `json:"investment" binding:"required"`
	Months     int     `json:"months"`
}
