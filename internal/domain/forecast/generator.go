package forecast

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"rentpulse/internal/config"
	"rentpulse/internal/domain/entities"
)

// Generate projects one MonthlyForecast per requested month, ascending from
// the month after now, and aggregates the sequence.
//
// The occupancy estimate carries deliberate stochastic variance around its
// seasonal baseline, so the random source is injected: tests fix the seed,
// production wiring seeds from the clock. Nothing else in the projection is
// random.
func Generate(in entities.ForecastInput, hist entities.History, market entities.MarketAnalysis, cfg config.Forecast, rng *rand.Rand, now time.Time) entities.ForecastResult {
	months := in.Months
	if months <= 0 {
		months = 12
	}

	forecasts := make([]entities.MonthlyForecast, 0, months)
	for i := 1; i <= months; i++ {
		forecasts = append(forecasts, forecastMonth(in, hist, market, cfg, rng, now, i))
	}

	summary := summarize(forecasts)

	return entities.ForecastResult{
		Months:          forecasts,
		Summary:         summary,
		Recommendations: recommendations(summary, forecasts, market),
	}
}

func forecastMonth(in entities.ForecastInput, hist entities.History, market entities.MarketAnalysis, cfg config.Forecast, rng *rand.Rand, now time.Time, monthsAhead int) entities.MonthlyForecast {
	target := now.AddDate(0, monthsAhead, 0)

	base := market.AverageRent
	if in.IncludeGrowthTrend {
		base *= math.Pow(1+market.MarketGrowthRate/12, float64(monthsAhead))
	}

	seasonal := 1.0
	if in.IncludeSeasonality {
		seasonal = seasonalFactor(market, cfg, target)
		base *= seasonal
	}

	revenue := entities.RevenueBreakdown{
		Rental:      base * cfg.RentalShare,
		Utilities:   base * cfg.UtilitiesShare,
		Maintenance: base * cfg.MaintenanceShare,
		Other:       base * cfg.OtherShare,
		Total:       base,
	}

	// Expenses derive from the pre-occupancy revenue figures.
	expenses := entities.ExpenseBreakdown{
		Maintenance: revenue.Total * cfg.MaintenanceRate,
		Utilities:   revenue.Utilities * cfg.UtilitiesRate,
		Management:  revenue.Total * cfg.ManagementRate,
		Repairs:     revenue.Total * cfg.RepairsRate,
		Other:       revenue.Total * cfg.OtherRate,
	}
	expenses.Total = expenses.Maintenance + expenses.Utilities + expenses.Management + expenses.Repairs + expenses.Other

	occupancy := cfg.BaseOccupancy * seasonal * (0.95 + rng.Float64()*0.10)
	if occupancy > 1.0 {
		occupancy = 1.0
	}

	// Rental and utilities income track occupancy; maintenance/other fees do not.
	revenue.Rental *= occupancy
	revenue.Utilities *= occupancy
	revenue.Total = revenue.Rental + revenue.Utilities + revenue.Maintenance + revenue.Other

	roundRevenue(&revenue)
	roundExpenses(&expenses)

	return entities.MonthlyForecast{
		Month:         fmt.Sprintf("%04d-%02d", target.Year(), int(target.Month())),
		Revenue:       revenue,
		Expenses:      expenses,
		NetIncome:     round2(revenue.Total - expenses.Total),
		OccupancyRate: math.Round(occupancy*10000) / 10000,
		Confidence:    monthConfidence(in, hist, monthsAhead),
	}
}

func seasonalFactor(market entities.MarketAnalysis, cfg config.Forecast, t time.Time) float64 {
	key := fmt.Sprintf("%02d", int(t.Month()))
	if f, ok := market.SeasonalFactors[key]; ok && f > 0 {
		return f
	}
	if f, ok := cfg.SeasonalFactors[key]; ok && f > 0 {
		return f
	}
	return 1.0
}

func monthConfidence(in entities.ForecastInput, hist entities.History, monthsAhead int) int {
	c := 70
	switch {
	case monthsAhead <= 3:
		c += 20
	case monthsAhead <= 6:
		c += 10
	}
	if monthsAhead > 12 {
		c -= 15
	}
	if in.IncludeSeasonality {
		c += 10
	}
	if hist.MonthsOfData >= 12 {
		c += 10
	}
	return clampInt(c, 30, 95)
}

func summarize(months []entities.MonthlyForecast) entities.ForecastSummary {
	var s entities.ForecastSummary
	if len(months) == 0 {
		return s
	}

	confSum := 0
	for _, m := range months {
		s.TotalRevenue += m.Revenue.Total
		s.TotalExpenses += m.Expenses.Total
		s.TotalNetIncome += m.NetIncome
		s.AverageOccupancy += m.OccupancyRate
		confSum += m.Confidence
	}
	n := float64(len(months))
	s.TotalRevenue = round2(s.TotalRevenue)
	s.TotalExpenses = round2(s.TotalExpenses)
	s.TotalNetIncome = round2(s.TotalNetIncome)
	s.AverageOccupancy = math.Round(s.AverageOccupancy/n*10000) / 10000
	s.AvgConfidence = int(math.Round(float64(confSum) / n))

	s.RevenueGrowth = quarterGrowth(months, func(m entities.MonthlyForecast) float64 { return m.Revenue.Total })
	s.ExpenseGrowth = quarterGrowth(months, func(m entities.MonthlyForecast) float64 { return m.Expenses.Total })
	s.NetIncomeGrowth = quarterGrowth(months, func(m entities.MonthlyForecast) float64 { return m.NetIncome })

	return s
}

// quarterGrowth compares the average of the first three months against the
// last three. Short sequences shrink the window to keep the halves disjoint;
// a single month reports zero.
func quarterGrowth(months []entities.MonthlyForecast, value func(entities.MonthlyForecast) float64) float64 {
	n := len(months)
	if n < 2 {
		return 0
	}
	window := 3
	if n/2 < window {
		window = n / 2
	}

	first, last := 0.0, 0.0
	for i := 0; i < window; i++ {
		first += value(months[i])
		last += value(months[n-window+i])
	}
	if first == 0 {
		return 0
	}
	return round2((last - first) / first * 100)
}

func recommendations(s entities.ForecastSummary, months []entities.MonthlyForecast, market entities.MarketAnalysis) []string {
	var recs []string

	if s.TotalRevenue > 0 {
		margin := s.TotalNetIncome / s.TotalRevenue
		if margin < 0.3 {
			recs = append(recs, fmt.Sprintf("Projected profit margin is %.0f%%; review the expense structure to reach the 30%% target.", margin*100))
		}
	}
	if s.AverageOccupancy < 0.8 {
		recs = append(recs, "Projected occupancy falls below 80%; consider pricing or listing adjustments in the weaker months.")
	}

	maintenance := 0.0
	for _, m := range months {
		maintenance += m.Expenses.Maintenance
	}
	if s.TotalRevenue > 0 && maintenance/s.TotalRevenue > 0.18 {
		recs = append(recs, "Maintenance spend runs high relative to revenue; a preventive maintenance plan could reduce it.")
	}

	switch market.Competition {
	case entities.CompetitionHigh:
		recs = append(recs, "Local competition is high; differentiate the listing or adjust pricing to protect occupancy.")
	case entities.CompetitionMedium:
		recs = append(recs, "Local competition is moderate; monitor competitor pricing monthly.")
	}

	return recs
}

func roundRevenue(r *entities.RevenueBreakdown) {
	r.Rental = round2(r.Rental)
	r.Utilities = round2(r.Utilities)
	r.Maintenance = round2(r.Maintenance)
	r.Other = round2(r.Other)
	r.Total = round2(r.Total)
}

func roundExpenses(e *entities.ExpenseBreakdown) {
	e.Maintenance = round2(e.Maintenance)
	e.Utilities = round2(e.Utilities)
	e.Management = round2(e.Management)
	e.Repairs = round2(e.Repairs)
	e.Other = round2(e.Other)
	e.Total = round2(e.Total)
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
