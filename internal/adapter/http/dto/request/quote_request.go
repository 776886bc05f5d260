package request

import "strings"

// QuoteStatusRequest drives the owner approve/reject/cancel endpoints.
type QuoteStatusRequest struct {
	IssueID string `json:"issue_id" binding:"required"`
}

func (r QuoteStatusRequest) ResolveIssueID() string {
	return strings.TrimSpace(r.IssueID)
}

// QuoteRepriceRequest overrides a stored quote total after a manual review.
type QuoteRepriceRequest struct {
	Total float64 `json:"total" binding:"required"`
}
