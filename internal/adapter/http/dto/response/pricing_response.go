package response

import (
	"time"

	"rentpulse/internal/domain/entities"
)

// PricingResponse is the full quote breakdown returned by the pricing
// endpoints. The entity types already carry their wire tags.
type PricingResponse struct {
	IssueID         string                  `json:"issue_id,omitempty"`
	Breakdown       entities.Breakdown      `json:"breakdown"`
	Factors         entities.PricingFactors `json:"factors"`
	Confidence      int                     `json:"confidence"`
	ValidUntil      time.Time               `json:"valid_until"`
	Recommendations []string                `json:"recommendations"`
	Alternatives    entities.Alternatives   `json:"alternatives"`
}

func FromPricingResult(issueID string, r entities.PricingResult) PricingResponse {
	return PricingResponse{
		IssueID:         issueID,
		Breakdown:       r.Breakdown,
		Factors:         r.Factors,
		Confidence:      r.Confidence,
		ValidUntil:      r.ValidUntil,
		Recommendations: r.Recommendations,
		Alternatives:    r.Alternatives,
	}
}

type BatchPricingResponse struct {
	Individual []PricingResponse  `json:"individual"`
	Bulk       entities.BatchBulk `json:"bulk"`
}

func FromBatchResult(r entities.BatchResult) BatchPricingResponse {
	individual := make([]PricingResponse, 0, len(r.Individual))
	for _, item := range r.Individual {
		individual = append(individual, FromPricingResult("", item))
	}
	return BatchPricingResponse{
		Individual: individual,
		Bulk:       r.Bulk,
	}
}
