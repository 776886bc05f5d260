package interfaces

import (
	"context"
	"time"

	"rentpulse/internal/domain/entities"
)

// IHistoryRepository exposes the read-only counts and aggregates over
// historical issue/contract rows that feed the calculators. Implementations
// query DynamoDB; calculators only ever see the resulting numbers.
type IHistoryRepository interface {
	// CountIssuesByCategorySince counts issues of one category reported at or
	// after `since`.
	CountIssuesByCategorySince(ctx context.Context, category entities.IssueCategory, since time.Time) (int, error)
	// CountQualifiedProviders counts active providers qualified for a category.
	CountQualifiedProviders(ctx context.Context, category entities.IssueCategory) (int, error)
	// CountIssuesByPropertySince counts issues on one property reported at or
	// after `since`.
	CountIssuesByPropertySince(ctx context.Context, propertyID string, since time.Time) (int, error)
	// CountOpenIssuesByProperty counts currently open issues on one property.
	CountOpenIssuesByProperty(ctx context.Context, propertyID string) (int, error)
	// GetHistory summarizes the trailing `months` of contract data, optionally
	// scoped to one property (empty id means portfolio-wide).
	GetHistory(ctx context.Context, propertyID string, months int) (entities.History, error)
	// ListPropertyIDs returns every property with contract history.
	ListPropertyIDs(ctx context.Context) ([]string, error)
}
