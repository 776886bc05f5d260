package entities

import "time"

// QuoteStatus represents the lifecycle of a maintenance quote.
//
// Domain notes:
//   - This service is the source of truth for quote/payment state.
//   - Transitions are driven by owner actions in the dashboard.
type QuoteStatus string

const (
	QuoteStatusPending   QuoteStatus = "pending"
	QuoteStatusApproved  QuoteStatus = "approved"
	QuoteStatusRejected  QuoteStatus = "rejected"
	QuoteStatusCancelled QuoteStatus = "cancelled"
)

// Quote is a persisted pricing result bound to one issue.
//
// Storage model (DynamoDB):
//   - PK: id
//
// We purposely use the issue id as quote id to guarantee one quote per issue,
// which keeps the approve/reject/cancel operations a single-key update.
type Quote struct {
	ID         string      `json:"id"`
	IssueID    string      `json:"issue_id"`
	PropertyID string      `json:"property_id"`
	Total      float64     `json:"total"`
	Confidence int         `json:"confidence"`
	Status     QuoteStatus `json:"status"`
	ValidUntil time.Time   `json:"valid_until"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}
