package pricing

import (
	"time"

	"rentpulse/internal/config"
	"rentpulse/internal/domain/entities"
)

// BatchItem pairs one pricing input with the historical stats backing its
// demand/loyalty/bulk factors.
type BatchItem struct {
	Input entities.PricingInput
	Stats entities.PricingStats
}

// CalculateBatch prices every item independently, then applies one more
// discount tier keyed purely on the item count. This batch-level discount
// stacks on top of the per-item bulk discount; the combined effect is
// intentional and pinned by regression tests.
func CalculateBatch(items []BatchItem, cfg config.Pricing, now time.Time) entities.BatchResult {
	individual := make([]entities.PricingResult, 0, len(items))
	totalBefore := 0.0
	for _, it := range items {
		res := Calculate(it.Input, it.Stats, cfg, now)
		individual = append(individual, res)
		totalBefore += res.Breakdown.Total
	}

	rate := batchDiscountRate(len(items))
	savings := round2(totalBefore * rate)

	return entities.BatchResult{
		Individual: individual,
		Bulk: entities.BatchBulk{
			TotalBeforeDiscount: round2(totalBefore),
			DiscountRate:        rate,
			Savings:             savings,
			FinalTotal:          round2(totalBefore - savings),
		},
	}
}

func batchDiscountRate(n int) float64 {
	switch {
	case n >= 10:
		return 0.25
	case n >= 5:
		return 0.20
	case n >= 3:
		return 0.15
	case n >= 2:
		return 0.10
	default:
		return 0
	}
}
