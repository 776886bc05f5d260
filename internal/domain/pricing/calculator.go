package pricing

import (
	"fmt"
	"math"
	"strings"
	"time"

	"rentpulse/internal/config"
	"rentpulse/internal/domain/entities"
)

const quoteValidity = 7 * 24 * time.Hour

// Calculate produces a quote for one issue. It is a pure function of its
// arguments: same input, stats, config and clock always yield the same
// result. Malformed or absent optional fields never cause an error; every
// branch degrades to a neutral default.
func Calculate(in entities.PricingInput, stats entities.PricingStats, cfg config.Pricing, now time.Time) entities.PricingResult {
	baseRate := categoryRate(cfg.BaseRates, in.Category)

	factors := entities.PricingFactors{
		BaseCost:             baseRate,
		UrgencyMultiplier:    urgencyMultiplier(in, cfg),
		ComplexityMultiplier: complexityMultiplier(in.Description, cfg),
		SeasonalMultiplier:   seasonalMultiplier(in, cfg, now),
		DemandMultiplier:     demandMultiplier(stats),
		DistanceMultiplier:   1.0,
		TimeOfDayMultiplier:  timeOfDayMultiplier(in.ScheduledAt),
		LoyaltyDiscount:      loyaltyDiscount(stats.PropertyIssuesLast12Months),
		BulkDiscount:         bulkDiscount(stats.OpenIssuesOnProperty),
	}
	if in.Provider != nil {
		if in.PropertyCity != "" && in.Provider.City != "" &&
			!strings.EqualFold(in.Provider.City, in.PropertyCity) {
			factors.DistanceMultiplier = 1.15
		}
		factors.ProviderBonus = ratingBonus(in.Provider.Rating)
	}

	hours := in.EstimatedHours
	if hours <= 0 {
		hours = estimateHours(in, cfg)
	}
	laborCost := baseRate * hours

	materialsCost := 0.0
	for _, m := range in.Materials {
		if m.UnitCost > 0 && m.Quantity > 0 {
			materialsCost += m.UnitCost * float64(m.Quantity)
		}
	}

	// Multiplicative factors become additive deltas on labor cost; the
	// bonus/discount fractions apply directly (discounts negated).
	adjustments := map[string]float64{}
	addAdjustment(adjustments, "urgency", laborCost*(factors.UrgencyMultiplier-1))
	addAdjustment(adjustments, "complexity", laborCost*(factors.ComplexityMultiplier-1))
	addAdjustment(adjustments, "seasonal", laborCost*(factors.SeasonalMultiplier-1))
	addAdjustment(adjustments, "demand", laborCost*(factors.DemandMultiplier-1))
	addAdjustment(adjustments, "distance", laborCost*(factors.DistanceMultiplier-1))
	addAdjustment(adjustments, "time_of_day", laborCost*(factors.TimeOfDayMultiplier-1))
	addAdjustment(adjustments, "provider_bonus", laborCost*factors.ProviderBonus)
	addAdjustment(adjustments, "loyalty_discount", -laborCost*factors.LoyaltyDiscount)
	addAdjustment(adjustments, "bulk_discount", -laborCost*factors.BulkDiscount)

	subtotal := laborCost + materialsCost
	for _, v := range adjustments {
		subtotal += v
	}
	tax := subtotal * cfg.TaxRate
	total := round2(subtotal + tax)

	return entities.PricingResult{
		Breakdown: entities.Breakdown{
			BaseCost:      baseRate,
			LaborHours:    hours,
			LaborCost:     round2(laborCost),
			MaterialsCost: round2(materialsCost),
			Adjustments:   adjustments,
			Subtotal:      round2(subtotal),
			Tax:           round2(tax),
			Total:         total,
		},
		Factors:    factors,
		Confidence: confidence(in, factors),
		ValidUntil: now.Add(quoteValidity),
		Alternatives: entities.Alternatives{
			Economy:  round2(total * 0.8),
			Standard: total,
			Premium:  round2(total * 1.3),
		},
		Recommendations: recommendations(in, factors),
	}
}

func categoryRate(rates map[string]float64, cat entities.IssueCategory) float64 {
	if r, ok := rates[string(cat)]; ok {
		return r
	}
	return rates[string(entities.CategoryOther)]
}

func urgencyMultiplier(in entities.PricingInput, cfg config.Pricing) float64 {
	if in.IsEmergency {
		return cfg.EmergencyMultiplier
	}
	if m, ok := cfg.Urgency[string(in.Priority)]; ok {
		return m
	}
	return 1.0
}

// complexityMultiplier scans the free-text description against the complex
// and simple keyword lists. A net complex count starts at a 1.2 baseline and
// adds 0.1 per extra hit (cap 2.0); a net simple count subtracts 0.05 per hit
// from 1.0 (floor 0.8); a tie, including an empty description, stays neutral.
func complexityMultiplier(description string, cfg config.Pricing) float64 {
	desc := strings.ToLower(description)
	complex := countHits(desc, cfg.ComplexKeywords)
	simple := countHits(desc, cfg.SimpleKeywords)

	switch {
	case complex > simple:
		return math.Min(2.0, 1.2+0.1*float64(complex-simple-1))
	case simple > complex:
		return math.Max(0.8, 1.0-0.05*float64(simple-complex))
	default:
		return 1.0
	}
}

func countHits(desc string, keywords []string) int {
	n := 0
	for _, kw := range keywords {
		n += strings.Count(desc, strings.ToLower(kw))
	}
	return n
}

func seasonalMultiplier(in entities.PricingInput, cfg config.Pricing, now time.Time) float64 {
	t := now
	if in.ScheduledAt != nil {
		t = *in.ScheduledAt
	}
	months, ok := cfg.Seasonal[string(in.Category)]
	if !ok {
		return 1.0
	}
	if m, ok := months[monthKey(t)]; ok {
		return m
	}
	return 1.0
}

func monthKey(t time.Time) string {
	return fmt.Sprintf("%02d", int(t.Month()))
}

// demandMultiplier compares recent category demand against qualified supply.
// No qualified providers with open demand counts as the highest pressure band.
func demandMultiplier(stats entities.PricingStats) float64 {
	if stats.QualifiedProviders <= 0 {
		if stats.CategoryIssuesLast30Days > 0 {
			return 1.4
		}
		return 1.0
	}
	ratio := float64(stats.CategoryIssuesLast30Days) / float64(stats.QualifiedProviders)
	switch {
	case ratio > 3:
		return 1.4
	case ratio > 2:
		return 1.2
	case ratio < 1:
		return 0.9
	default:
		return 1.0
	}
}

func ratingBonus(rating float64) float64 {
	switch {
	case rating >= 4.5:
		return 0.20
	case rating >= 4.0:
		return 0.10
	case rating >= 3.5:
		return 0
	case rating >= 3.0:
		return -0.05
	default:
		return -0.10
	}
}

func loyaltyDiscount(issuesLast12Months int) float64 {
	switch {
	case issuesLast12Months >= 20:
		return 0.15
	case issuesLast12Months >= 11:
		return 0.12
	case issuesLast12Months >= 6:
		return 0.08
	case issuesLast12Months >= 3:
		return 0.05
	default:
		return 0
	}
}

func bulkDiscount(openIssues int) float64 {
	switch {
	case openIssues >= 10:
		return 0.20
	case openIssues >= 5:
		return 0.15
	case openIssues >= 3:
		return 0.10
	default:
		return 0
	}
}

// timeOfDayMultiplier picks the first matching band: night, weekend, then
// outside business hours. Bands do not stack.
func timeOfDayMultiplier(scheduledAt *time.Time) float64 {
	if scheduledAt == nil {
		return 1.0
	}
	t := *scheduledAt
	hour := t.Hour()
	switch {
	case hour >= 22 || hour < 6:
		return 1.5
	case t.Weekday() == time.Saturday || t.Weekday() == time.Sunday:
		return 1.3
	case hour < 8 || hour >= 18:
		return 1.2
	default:
		return 1.0
	}
}

// estimateHours infers labor hours from the per-category base estimate and a
// task-type keyword scan of the description. First matching rule wins.
func estimateHours(in entities.PricingInput, cfg config.Pricing) float64 {
	hours, ok := cfg.HourEstimates[string(in.Category)]
	if !ok {
		hours = cfg.HourEstimates[string(entities.CategoryOther)]
	}

	desc := strings.ToLower(in.Description)
	for _, rule := range cfg.TaskRules {
		matched := false
		for _, kw := range rule.Keywords {
			if strings.Contains(desc, strings.ToLower(kw)) {
				matched = true
				break
			}
		}
		if matched {
			hours *= rule.Multiplier
			break
		}
	}

	if hours < 1 {
		hours = 1
	}
	return math.Round(hours*10) / 10
}

func confidence(in entities.PricingInput, f entities.PricingFactors) int {
	c := 70
	if in.Provider != nil {
		c += 20
	}
	if in.EstimatedHours > 0 {
		c += 10
	}
	if len(in.Materials) > 0 {
		c += 15
	}
	if len(in.Description) > 50 {
		c += 10
	}
	if f.ComplexityMultiplier > 1.3 {
		c -= 10
	}
	if f.UrgencyMultiplier > 1.4 {
		c -= 5
	}
	return clampInt(c, 30, 100)
}

func recommendations(in entities.PricingInput, f entities.PricingFactors) []string {
	var recs []string
	if f.UrgencyMultiplier > 1.4 {
		recs = append(recs, "Urgency surcharge applied; scheduling within business hours at lower priority would reduce the quote.")
	}
	if f.SeasonalMultiplier > 1.2 {
		recs = append(recs, "Seasonal demand is high for this category; deferring non-critical work may lower the rate.")
	}
	if f.DemandMultiplier > 1.3 {
		recs = append(recs, "Provider availability is tight for this category; booking early is advised.")
	}
	if f.LoyaltyDiscount > 0 {
		recs = append(recs, fmt.Sprintf("Loyalty discount of %.0f%% applied based on this property's service history.", f.LoyaltyDiscount*100))
	}
	if f.BulkDiscount > 0 {
		recs = append(recs, fmt.Sprintf("Bulk discount of %.0f%% applied for concurrent open issues on this property.", f.BulkDiscount*100))
	}
	if f.TimeOfDayMultiplier > 1.2 {
		recs = append(recs, "Night or weekend scheduling adds a surcharge; a weekday daytime slot would be cheaper.")
	}
	if in.Provider == nil {
		recs = append(recs, "Assigning a provider enables distance and rating adjustments and raises quote confidence.")
	}
	return recs
}

func addAdjustment(m map[string]float64, name string, v float64) {
	if v != 0 {
		m[name] = round2(v)
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
