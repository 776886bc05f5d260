package entities

import "time"

// PricingFactor is one named, weighted contributor to the nightly-price
// recommendation. Impact is a percentage of the base price; Weight is the
// importance in [0,1].
type PricingFactor struct {
	Name        string  `json:"name"`
	Impact      float64 `json:"impact"`
	Weight      float64 `json:"weight"`
	Description string  `json:"description"`
}

// PricingRecommendation is the advisor output. MinPrice and MaxPrice are
// informational bounds; RecommendedPrice is deliberately not clamped into
// them.
type PricingRecommendation struct {
	PropertyID       string          `json:"property_id"`
	BasePrice        float64         `json:"base_price"`
	RecommendedPrice float64         `json:"recommended_price"`
	MinPrice         float64         `json:"min_price"`
	MaxPrice         float64         `json:"max_price"`
	Confidence       int             `json:"confidence"`
	Factors          []PricingFactor `json:"factors"`
	Reasoning        string          `json:"reasoning"`
	GeneratedAt      time.Time       `json:"generated_at"`
}

// MarketSignal is the competitor/demand snapshot for a city and date range.
type MarketSignal struct {
	CompetitorAvgPrice float64 `json:"competitor_avg_price"`
	OccupancyRate      float64 `json:"occupancy_rate"`
	// DemandScore is 0..100.
	DemandScore float64 `json:"demand_score"`
	SampleSize  int     `json:"sample_size"`
}

// WeatherSignal is the forecast for the advised nights.
type WeatherSignal struct {
	Condition string  `json:"condition"`
	MaxTempC  float64 `json:"max_temp_c"`
	RainProb  float64 `json:"rain_prob"`
}

// EventsSignal summarizes local events overlapping the advised nights.
type EventsSignal struct {
	Count      int    `json:"count"`
	MajorEvent string `json:"major_event"`
}

// AdvisorQuery asks for a nightly-price recommendation for a stay.
type AdvisorQuery struct {
	PropertyID string    `json:"property_id"`
	City       string    `json:"city"`
	BasePrice  float64   `json:"base_price"`
	CheckIn    time.Time `json:"check_in"`
	CheckOut   time.Time `json:"check_out"`
}

// AdvisorSignals groups the independently fetched inputs. A nil pointer means
// the source failed or was not configured; the owning factor is then omitted.
type AdvisorSignals struct {
	Market  *MarketSignal
	Weather *WeatherSignal
	Events  *EventsSignal
	// SeasonalFactor is the month demand multiplier; 0 means unknown.
	SeasonalFactor float64
}
