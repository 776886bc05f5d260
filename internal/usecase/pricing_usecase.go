package usecase

import (
	"context"
	"time"

	"rentpulse/internal/config"
	"rentpulse/internal/domain/entities"
	"rentpulse/internal/domain/pricing"
	"rentpulse/internal/logger"
	"rentpulse/internal/usecase/interfaces"
)

// IPricingUseCase exposes the dynamic issue-pricing operations.
type IPricingUseCase interface {
	CalculatePrice(ctx context.Context, in entities.PricingInput) (entities.PricingResult, error)
	CalculateBatch(ctx context.Context, inputs []entities.PricingInput) (entities.BatchResult, error)
}

// PricingUseCase gathers the historical stats behind the demand, loyalty and
// bulk factors, then delegates to the pure calculator. Stat fetch failures
// degrade to neutral factors rather than failing the quote: the service
// always answers with some price.
type PricingUseCase struct {
	history interfaces.IHistoryRepository
	cfg     *config.Config
	now     func() time.Time
}

var _ IPricingUseCase = (*PricingUseCase)(nil)

func NewPricingUseCase(history interfaces.IHistoryRepository, cfg *config.Config) *PricingUseCase {
	return &PricingUseCase{history: history, cfg: cfg, now: time.Now}
}

func (u *PricingUseCase) CalculatePrice(ctx context.Context, in entities.PricingInput) (entities.PricingResult, error) {
	if err := ctx.Err(); err != nil {
		return entities.PricingResult{}, err
	}
	now := u.now().UTC()
	stats := u.gatherStats(ctx, in, now)
	return pricing.Calculate(in, stats, u.cfg.Pricing, now), nil
}

func (u *PricingUseCase) CalculateBatch(ctx context.Context, inputs []entities.PricingInput) (entities.BatchResult, error) {
	if err := ctx.Err(); err != nil {
		return entities.BatchResult{}, err
	}
	now := u.now().UTC()
	items := make([]pricing.BatchItem, 0, len(inputs))
	for _, in := range inputs {
		items = append(items, pricing.BatchItem{
			Input: in,
			Stats: u.gatherStats(ctx, in, now),
		})
	}
	return pricing.CalculateBatch(items, u.cfg.Pricing, now), nil
}

func (u *PricingUseCase) gatherStats(ctx context.Context, in entities.PricingInput, now time.Time) entities.PricingStats {
	var stats entities.PricingStats
	if u.history == nil {
		return stats
	}

	if n, err := u.history.CountIssuesByCategorySince(ctx, in.Category, now.AddDate(0, 0, -30)); err != nil {
		logger.Log.Warnf("[pricing][usecase] category issue count failed category=%s err=%v", in.Category, err)
	} else {
		stats.CategoryIssuesLast30Days = n
	}

	if n, err := u.history.CountQualifiedProviders(ctx, in.Category); err != nil {
		logger.Log.Warnf("[pricing][usecase] provider count failed category=%s err=%v", in.Category, err)
	} else {
		stats.QualifiedProviders = n
	}

	if in.PropertyID != "" {
		if n, err := u.history.CountIssuesByPropertySince(ctx, in.PropertyID, now.AddDate(-1, 0, 0)); err != nil {
			logger.Log.Warnf("[pricing][usecase] property issue count failed property=%s err=%v", in.PropertyID, err)
		} else {
			stats.PropertyIssuesLast12Months = n
		}

		if n, err := u.history.CountOpenIssuesByProperty(ctx, in.PropertyID); err != nil {
			logger.Log.Warnf("[pricing][usecase] open issue count failed property=%s err=%v", in.PropertyID, err)
		} else {
			stats.OpenIssuesOnProperty = n
		}
	}

	return stats
}
