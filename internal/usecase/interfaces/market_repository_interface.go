package interfaces

import (
	"context"

	"rentpulse/internal/domain/entities"
)

// IMarketRepository serves the per-city market snapshot consumed once per
// forecast run.
type IMarketRepository interface {
	GetMarketAnalysis(ctx context.Context, city string) (entities.MarketAnalysis, error)
}
