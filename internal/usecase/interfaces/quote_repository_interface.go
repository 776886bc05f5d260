package interfaces

import (
	"context"

	"rentpulse/internal/domain/entities"
)

// IQuoteRepository abstracts DynamoDB persistence for Quote.
//
// The service must be able to:
//   - create a quote when pricing is requested for an issue
//   - update quote status by issue ID (approve/reject/cancel)
//   - update the quoted total by quote ID (repricing)
type IQuoteRepository interface {
	Create(ctx context.Context, q entities.Quote) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	GetByIssueID(ctx context.Context, issueID string) (entities.Quote, error)
	UpdateStatusByIssueID(ctx context.Context, issueID string, status entities.QuoteStatus) (entities.Quote, error)
	UpdateTotalByID(ctx context.Context, id string, newTotal float64) (entities.Quote, error)
}
