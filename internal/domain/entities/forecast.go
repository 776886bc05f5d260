package entities

// CompetitionLevel grades the local rental market.
type CompetitionLevel string

const (
	CompetitionLow    CompetitionLevel = "low"
	CompetitionMedium CompetitionLevel = "medium"
	CompetitionHigh   CompetitionLevel = "high"
)

// MarketAnalysis is the read-mostly market snapshot fetched once per forecast
// run. SeasonalFactors is keyed by month "01".."12".
type MarketAnalysis struct {
	City             string             `json:"city"`
	AverageRent      float64            `json:"average_rent"`
	MarketGrowthRate float64            `json:"market_growth_rate"`
	Competition      CompetitionLevel   `json:"competition"`
	SeasonalFactors  map[string]float64 `json:"seasonal_factors"`
}

// History summarizes the trailing historical data that feeds a forecast run.
type History struct {
	MonthsOfData    int     `json:"months_of_data"`
	AvgMonthlyRent  float64 `json:"avg_monthly_rent"`
	MaintenanceCost float64 `json:"maintenance_cost"`
}

// ForecastInput drives one forecast generation run.
type ForecastInput struct {
	// PropertyID scopes the forecast to one property; empty means portfolio-wide.
	PropertyID string `json:"property_id"`
	// City selects the market snapshot.
	City               string `json:"city"`
	Months             int    `json:"months"`
	IncludeSeasonality bool   `json:"include_seasonality"`
	IncludeGrowthTrend bool   `json:"include_growth_trend"`
}

// RevenueBreakdown splits projected monthly revenue.
type RevenueBreakdown struct {
	Rental      float64 `json:"rental"`
	Utilities   float64 `json:"utilities"`
	Maintenance float64 `json:"maintenance"`
	Other       float64 `json:"other"`
	Total       float64 `json:"total"`
}

// ExpenseBreakdown splits projected monthly expenses.
type ExpenseBreakdown struct {
	Maintenance float64 `json:"maintenance"`
	Utilities   float64 `json:"utilities"`
	Management  float64 `json:"management"`
	Repairs     float64 `json:"repairs"`
	Other       float64 `json:"other"`
	Total       float64 `json:"total"`
}

// MonthlyForecast is one projected month. Month is "YYYY-MM".
type MonthlyForecast struct {
	Month         string           `json:"month"`
	Revenue       RevenueBreakdown `json:"revenue"`
	Expenses      ExpenseBreakdown `json:"expenses"`
	NetIncome     float64          `json:"net_income"`
	OccupancyRate float64          `json:"occupancy_rate"`
	Confidence    int              `json:"confidence"`
}

// ForecastSummary aggregates the monthly sequence. The growth figures compare
// the average of the first three months against the last three.
type ForecastSummary struct {
	TotalRevenue     float64 `json:"total_revenue"`
	TotalExpenses    float64 `json:"total_expenses"`
	TotalNetIncome   float64 `json:"total_net_income"`
	AverageOccupancy float64 `json:"average_occupancy"`
	AvgConfidence    int     `json:"avg_confidence"`
	RevenueGrowth    float64 `json:"revenue_growth"`
	ExpenseGrowth    float64 `json:"expense_growth"`
	NetIncomeGrowth  float64 `json:"net_income_growth"`
}

// ForecastResult is the full output of one forecast run. Months is ordered
// chronologically ascending from "now".
type ForecastResult struct {
	Months          []MonthlyForecast `json:"months"`
	Summary         ForecastSummary   `json:"summary"`
	Recommendations []string          `json:"recommendations"`
}

// ROIAnalysis is the return-on-investment projection for one property.
type ROIAnalysis struct {
	PropertyID    string  `json:"property_id"`
	Investment    float64 `json:"investment"`
	Months        int     `json:"months"`
	TotalReturn   float64 `json:"total_return"`
	ROIPercent    float64 `json:"roi_percent"`
	PaybackMonths float64 `json:"payback_months"`
}

// PortfolioEntry is one property's position inside a portfolio analysis.
type PortfolioEntry struct {
	PropertyID string  `json:"property_id"`
	ROIPercent float64 `json:"roi_percent"`
	NetIncome  float64 `json:"net_income"`
	VsAverage  float64 `json:"vs_average"`
}

// PortfolioAnalysis ranks every property against the portfolio average ROI.
type PortfolioAnalysis struct {
	AverageROI      float64          `json:"average_roi"`
	Entries         []PortfolioEntry `json:"entries"`
	TopPerformers   []string         `json:"top_performers"`
	UnderPerformers []string         `json:"under_performers"`
}
