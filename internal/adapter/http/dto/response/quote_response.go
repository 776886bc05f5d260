package response

import (
	"time"

	"rentpulse/internal/domain/entities"
)

type QuoteResponse struct {
	QuoteID    string    `json:"quote_id"`
	ID         string    `json:"id"`
	IssueID    string    `json:"issue_id"`
	PropertyID string    `json:"property_id,omitempty"`
	Total      float64   `json:"total"`
	Confidence int       `json:"confidence"`
	Status     string    `json:"status"`
	ValidUntil time.Time `json:"valid_until"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	// Pricing carries the full breakdown on creation responses.
	Pricing *PricingResponse `json:"pricing,omitempty"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	return QuoteResponse{
		QuoteID:    q.ID,
		ID:         q.ID,
		IssueID:    q.IssueID,
		PropertyID: q.PropertyID,
		Total:      q.Total,
		Confidence: q.Confidence,
		Status:     string(q.Status),
		ValidUntil: q.ValidUntil,
		CreatedAt:  q.CreatedAt,
		UpdatedAt:  q.UpdatedAt,
	}
}

func FromQuoteWithPricing(q entities.Quote, res entities.PricingResult) QuoteResponse {
	out := FromQuote(q)
	pricing := FromPricingResult(q.IssueID, res)
	out.Pricing = &pricing
	return out
}
