package response

import "rentpulse/internal/domain/entities"

type ForecastResponse struct {
	Months          []entities.MonthlyForecast `json:"months"`
	Summary         entities.ForecastSummary   `json:"summary"`
	Recommendations []string                   `json:"recommendations"`
}

func FromForecastResult(r entities.ForecastResult) ForecastResponse {
	return ForecastResponse{
		Months:          r.Months,
		Summary:         r.Summary,
		Recommendations: r.Recommendations,
	}
}

type ROIResponse struct {
	PropertyID    string  `json:"property_id"`
	Investment    float64 `json:"investment"`
	Months        int     `json:"months"`
	TotalReturn   float64 `json:"total_return"`
	ROIPercent    float64 `json:"roi_percent"`
	PaybackMonths float64 `json:"payback_months"`
}

func FromROIAnalysis(a entities.ROIAnalysis) ROIResponse {
	return ROIResponse{
		PropertyID:    a.PropertyID,
		Investment:    a.Investment,
		Months:        a.Months,
		TotalReturn:   a.TotalReturn,
		ROIPercent:    a.ROIPercent,
		PaybackMonths: a.PaybackMonths,
	}
}

type PortfolioResponse struct {
	AverageROI      float64                   `json:"average_roi"`
	Entries         []entities.PortfolioEntry `json:"entries"`
	TopPerformers   []string                  `json:"top_performers"`
	UnderPerformers []string                  `json:"under_performers"`
}

func FromPortfolioAnalysis(a entities.PortfolioAnalysis) PortfolioResponse {
	return PortfolioResponse{
		AverageROI:      a.AverageROI,
		Entries:         a.Entries,
		TopPerformers:   a.TopPerformers,
		UnderPerformers: a.UnderPerformers,
	}
}
