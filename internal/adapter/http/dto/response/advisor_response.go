package response

import (
	"time"

	"rentpulse/internal/domain/entities"
)

type RecommendationResponse struct {
	PropertyID       string                   `json:"property_id,omitempty"`
	BasePrice        float64                  `json:"base_price"`
	RecommendedPrice float64                  `json:"recommended_price"`
	MinPrice         float64                  `json:"min_price"`
	MaxPrice         float64                  `json:"max_price"`
	Confidence       int                      `json:"confidence"`
	Factors          []entities.PricingFactor `json:"factors"`
	Reasoning        string                   `json:"reasoning"`
	GeneratedAt      time.Time                `json:"generated_at"`
}

func FromRecommendation(r entities.PricingRecommendation) RecommendationResponse {
	return RecommendationResponse{
		PropertyID:       r.PropertyID,
		BasePrice:        r.BasePrice,
		RecommendedPrice: r.RecommendedPrice,
		MinPrice:         r.MinPrice,
		MaxPrice:         r.MaxPrice,
		Confidence:       r.Confidence,
		Factors:          r.Factors,
		Reasoning:        r.Reasoning,
		GeneratedAt:      r.GeneratedAt,
	}
}
