package entities

import "time"

// PricingFactors is the resolved multiplier/weight bundle behind a quote.
// Multipliers are always >= 0; the additive bonus/discount fractions may be
// negative.
type PricingFactors struct {
	BaseCost             float64 `json:"base_cost"`
	UrgencyMultiplier    float64 `json:"urgency_multiplier"`
	ComplexityMultiplier float64 `json:"complexity_multiplier"`
	SeasonalMultiplier   float64 `json:"seasonal_multiplier"`
	DemandMultiplier     float64 `json:"demand_multiplier"`
	DistanceMultiplier   float64 `json:"distance_multiplier"`
	TimeOfDayMultiplier  float64 `json:"time_of_day_multiplier"`
	ProviderBonus        float64 `json:"provider_bonus"`
	LoyaltyDiscount      float64 `json:"loyalty_discount"`
	BulkDiscount         float64 `json:"bulk_discount"`
}

// Breakdown itemizes how a quote total was reached. Adjustments holds the
// named additive deltas on top of labor cost.
type Breakdown struct {
	BaseCost      float64            `json:"base_cost"`
	LaborHours    float64            `json:"labor_hours"`
	LaborCost     float64            `json:"labor_cost"`
	MaterialsCost float64            `json:"materials_cost"`
	Adjustments   map[string]float64 `json:"adjustments"`
	Subtotal      float64            `json:"subtotal"`
	Tax           float64            `json:"tax"`
	Total         float64            `json:"total"`
}

// Alternatives are the fixed economy/standard/premium tiers derived from the
// total (0.8x / 1x / 1.3x).
type Alternatives struct {
	Economy  float64 `json:"economy"`
	Standard float64 `json:"standard"`
	Premium  float64 `json:"premium"`
}

// PricingResult is the full quote produced for one issue. Created fresh per
// calculation; never mutated afterwards.
type PricingResult struct {
	Breakdown       Breakdown      `json:"breakdown"`
	Factors         PricingFactors `json:"factors"`
	Confidence      int            `json:"confidence"`
	ValidUntil      time.Time      `json:"valid_until"`
	Recommendations []string       `json:"recommendations"`
	Alternatives    Alternatives   `json:"alternatives"`
}

// BatchBulk is the batch-level discount applied on top of the individual
// totals, keyed purely on the number of items.
type BatchBulk struct {
	TotalBeforeDiscount float64 `json:"total_before_discount"`
	DiscountRate        float64 `json:"discount_rate"`
	Savings             float64 `json:"savings"`
	FinalTotal          float64 `json:"final_total"`
}

// BatchResult groups per-item quotes with the batch-level discount.
type BatchResult struct {
	Individual []PricingResult `json:"individual"`
	Bulk       BatchBulk       `json:"bulk"`
}
