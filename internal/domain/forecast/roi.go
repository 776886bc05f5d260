package forecast

import (
	"sort"

	"rentpulse/internal/domain/entities"
)

// ROI derives the return-on-investment figures for one property from an
// already generated forecast.
func ROI(propertyID string, investment float64, fc entities.ForecastResult) entities.ROIAnalysis {
	months := len(fc.Months)
	totalReturn := fc.Summary.TotalNetIncome

	a := entities.ROIAnalysis{
		PropertyID:  propertyID,
		Investment:  investment,
		Months:      months,
		TotalReturn: totalReturn,
	}
	if investment > 0 {
		a.ROIPercent = round2((totalReturn - investment) / investment * 100)
	}
	if months > 0 && totalReturn > 0 {
		a.PaybackMonths = round2(investment / (totalReturn / float64(months)))
	}
	return a
}

// Portfolio ranks per-property ROI analyses against the portfolio average.
// Entries come back sorted by ROI descending; top performers beat the
// average, under performers trail it.
func Portfolio(analyses []entities.ROIAnalysis) entities.PortfolioAnalysis {
	var p entities.PortfolioAnalysis
	if len(analyses) == 0 {
		return p
	}

	sum := 0.0
	for _, a := range analyses {
		sum += a.ROIPercent
	}
	p.AverageROI = round2(sum / float64(len(analyses)))

	entries := make([]entities.PortfolioEntry, 0, len(analyses))
	for _, a := range analyses {
		entries = append(entries, entities.PortfolioEntry{
			PropertyID: a.PropertyID,
			ROIPercent: a.ROIPercent,
			NetIncome:  a.TotalReturn,
			VsAverage:  round2(a.ROIPercent - p.AverageROI),
		})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].ROIPercent > entries[j].ROIPercent })
	p.Entries = entries

	for _, e := range entries {
		switch {
		case e.VsAverage > 0:
			p.TopPerformers = append(p.TopPerformers, e.PropertyID)
		case e.VsAverage < 0:
			p.UnderPerformers = append(p.UnderPerformers, e.PropertyID)
		}
	}
	return p
}
