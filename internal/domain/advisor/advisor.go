package advisor

import (
	"fmt"
	"math"
	"time"

	"rentpulse/internal/config"
	"rentpulse/internal/domain/entities"
)

// BuildRecommendation turns the fetched signals into a nightly-price
// recommendation. Absent signals simply contribute no factor; the function is
// deterministic for a given signal set.
//
// MinPrice and MaxPrice are advisory bounds for the UI. RecommendedPrice is
// intentionally not clamped into them; see the regression test.
func BuildRecommendation(propertyID string, basePrice float64, signals entities.AdvisorSignals, cfg config.Advisor, now time.Time) entities.PricingRecommendation {
	factors := buildFactors(basePrice, signals)

	price := basePrice
	for _, f := range factors {
		price += basePrice * f.Impact / 100 * f.Weight
	}
	price = roundToStep(price, cfg.RoundingStep)

	return entities.PricingRecommendation{
		PropertyID:       propertyID,
		BasePrice:        basePrice,
		RecommendedPrice: price,
		MinPrice:         round2(basePrice * cfg.MinPriceRatio),
		MaxPrice:         round2(basePrice * cfg.MaxPriceRatio),
		Confidence:       confidence(signals),
		Factors:          factors,
		GeneratedAt:      now,
	}
}

func buildFactors(basePrice float64, s entities.AdvisorSignals) []entities.PricingFactor {
	var factors []entities.PricingFactor

	if s.Market != nil {
		if basePrice > 0 && s.Market.CompetitorAvgPrice > 0 {
			impact := clamp((s.Market.CompetitorAvgPrice/basePrice-1)*100, -25, 25)
			factors = append(factors, entities.PricingFactor{
				Name:   "competitor_pricing",
				Impact: round2(impact),
				Weight: 0.30,
				Description: fmt.Sprintf("Comparable listings average %.0f per night (%d sampled).",
					s.Market.CompetitorAvgPrice, s.Market.SampleSize),
			})
		}
		factors = append(factors, entities.PricingFactor{
			Name:        "market_demand",
			Impact:      round2(clamp((s.Market.DemandScore-50)/50*15, -15, 15)),
			Weight:      0.25,
			Description: fmt.Sprintf("Demand score %.0f/100 for the requested dates.", s.Market.DemandScore),
		})
		if s.Market.OccupancyRate > 0 {
			factors = append(factors, entities.PricingFactor{
				Name:        "market_occupancy",
				Impact:      round2(clamp((s.Market.OccupancyRate-0.75)*40, -10, 10)),
				Weight:      0.15,
				Description: fmt.Sprintf("Area occupancy is running at %.0f%%.", s.Market.OccupancyRate*100),
			})
		}
	}

	if s.Weather != nil {
		factors = append(factors, entities.PricingFactor{
			Name:        "weather",
			Impact:      weatherImpact(*s.Weather),
			Weight:      0.15,
			Description: fmt.Sprintf("Forecast: %s, %.0f°C, %.0f%% rain probability.", s.Weather.Condition, s.Weather.MaxTempC, s.Weather.RainProb*100),
		})
	}

	if s.Events != nil && s.Events.Count > 0 {
		impact := math.Min(20, 5*float64(s.Events.Count))
		desc := fmt.Sprintf("%d local events overlap the stay.", s.Events.Count)
		if s.Events.MajorEvent != "" {
			impact = 20
			desc = fmt.Sprintf("Major event nearby: %s.", s.Events.MajorEvent)
		}
		factors = append(factors, entities.PricingFactor{
			Name:        "local_events",
			Impact:      impact,
			Weight:      0.20,
			Description: desc,
		})
	}

	if s.SeasonalFactor > 0 {
		factors = append(factors, entities.PricingFactor{
			Name:        "seasonality",
			Impact:      round2((s.SeasonalFactor - 1) * 100),
			Weight:      0.20,
			Description: fmt.Sprintf("Historical seasonal demand multiplier for this month is %.2f.", s.SeasonalFactor),
		})
	}

	return factors
}

func weatherImpact(w entities.WeatherSignal) float64 {
	switch {
	case w.RainProb > 0.7 || w.MaxTempC < 5:
		return -5
	case w.RainProb < 0.3 && w.MaxTempC >= 18 && w.MaxTempC <= 30:
		return 8
	default:
		return 0
	}
}

func confidence(s entities.AdvisorSignals) int {
	c := 50
	if s.Market != nil {
		c += 15
		if s.Market.SampleSize >= 10 {
			c += 5
		}
	}
	if s.Weather != nil {
		c += 10
	}
	if s.Events != nil {
		c += 10
	}
	if s.SeasonalFactor > 0 {
		c += 10
	}
	if c > 95 {
		c = 95
	}
	if c < 30 {
		c = 30
	}
	return c
}

func roundToStep(v, step float64) float64 {
	if step <= 0 {
		return round2(v)
	}
	return math.Round(v/step) * step
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
