package usecase

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"rentpulse/internal/config"
	"rentpulse/internal/domain/entities"
	"rentpulse/internal/domain/forecast"
	"rentpulse/internal/logger"
	"rentpulse/internal/usecase/interfaces"
)

var (
	ErrInvalidMonths     = errors.New("invalid forecast horizon")
	ErrInvalidInvestment = errors.New("invalid investment amount")
	ErrInvalidPropertyID = errors.New("invalid property id")
)

const (
	maxForecastMonths = 36
	historyWindow     = 24
	fallbackAvgRent   = 1000.0
)

// IForecastUseCase exposes revenue forecasting and the ROI/portfolio wrappers.
type IForecastUseCase interface {
	GenerateForecast(ctx context.Context, in entities.ForecastInput) (entities.ForecastResult, error)
	AnalyzeROI(ctx context.Context, propertyID, city string, investment float64, months int) (entities.ROIAnalysis, error)
	AnalyzePortfolio(ctx context.Context, city string, investment float64, months int) (entities.PortfolioAnalysis, error)
}

// ForecastUseCase fetches trailing history and the market snapshot, then
// delegates to the pure generator. The random source behind the occupancy
// estimate is injectable so tests stay reproducible.
type ForecastUseCase struct {
	history interfaces.IHistoryRepository
	market  interfaces.IMarketRepository
	cfg     *config.Config
	now     func() time.Time
	newRand func() *rand.Rand
}

var _ IForecastUseCase = (*ForecastUseCase)(nil)

func NewForecastUseCase(history interfaces.IHistoryRepository, market interfaces.IMarketRepository, cfg *config.Config) *ForecastUseCase {
	return &ForecastUseCase{
		history: history,
		market:  market,
		cfg:     cfg,
		now:     time.Now,
		newRand: func() *rand.Rand { return rand.New(rand.NewSource(time.Now().UnixNano())) },
	}
}

func (u *ForecastUseCase) GenerateForecast(ctx context.Context, in entities.ForecastInput) (entities.ForecastResult, error) {
	if in.Months < 0 || in.Months > maxForecastMonths {
		return entities.ForecastResult{}, ErrInvalidMonths
	}

	now := u.now().UTC()
	hist := u.fetchHistory(ctx, in.PropertyID)
	market := u.fetchMarket(ctx, in.City, hist)

	return forecast.Generate(in, hist, market, u.cfg.Forecast, u.newRand(), now), nil
}

func (u *ForecastUseCase) AnalyzeROI(ctx context.Context, propertyID, city string, investment float64, months int) (entities.ROIAnalysis, error) {
	if propertyID == "" {
		return entities.ROIAnalysis{}, ErrInvalidPropertyID
	}
	if investment <= 0 {
		return entities.ROIAnalysis{}, ErrInvalidInvestment
	}

	fc, err := u.GenerateForecast(ctx, entities.ForecastInput{
		PropertyID:         propertyID,
		City:               city,
		Months:             months,
		IncludeSeasonality: true,
		IncludeGrowthTrend: true,
	})
	if err != nil {
		return entities.ROIAnalysis{}, err
	}
	return forecast.ROI(propertyID, investment, fc), nil
}

// AnalyzePortfolio runs the ROI projection over every property with history
// and ranks them against the portfolio average. The same reference investment
// applies to each property, so the ranking reflects projected net income.
func (u *ForecastUseCase) AnalyzePortfolio(ctx context.Context, city string, investment float64, months int) (entities.PortfolioAnalysis, error) {
	if investment <= 0 {
		return entities.PortfolioAnalysis{}, ErrInvalidInvestment
	}

	ids, err := u.history.ListPropertyIDs(ctx)
	if err != nil {
		return entities.PortfolioAnalysis{}, err
	}

	analyses := make([]entities.ROIAnalysis, 0, len(ids))
	for _, id := range ids {
		a, err := u.AnalyzeROI(ctx, id, city, investment, months)
		if err != nil {
			return entities.PortfolioAnalysis{}, err
		}
		analyses = append(analyses, a)
	}
	return forecast.Portfolio(analyses), nil
}

func (u *ForecastUseCase) fetchHistory(ctx context.Context, propertyID string) entities.History {
	if u.history == nil {
		return entities.History{}
	}
	hist, err := u.history.GetHistory(ctx, propertyID, historyWindow)
	if err != nil {
		logger.Log.Warnf("[forecast][usecase] history fetch failed property=%q err=%v", propertyID, err)
		return entities.History{}
	}
	return hist
}

// fetchMarket returns the stored snapshot for the city, or a rule-based
// default when the store has none. A missing snapshot lowers confidence
// downstream but never fails the forecast.
func (u *ForecastUseCase) fetchMarket(ctx context.Context, city string, hist entities.History) entities.MarketAnalysis {
	if u.market != nil {
		m, err := u.market.GetMarketAnalysis(ctx, city)
		if err == nil && m.AverageRent > 0 {
			return m
		}
		if err != nil {
			logger.Log.Warnf("[forecast][usecase] market snapshot fetch failed city=%q err=%v", city, err)
		}
	}

	avgRent := hist.AvgMonthlyRent
	if avgRent <= 0 {
		avgRent = fallbackAvgRent
	}
	return entities.MarketAnalysis{
		City:             city,
		AverageRent:      avgRent,
		MarketGrowthRate: u.cfg.Forecast.AnnualGrowthRate,
		Competition:      entities.CompetitionMedium,
		SeasonalFactors:  u.cfg.Forecast.SeasonalFactors,
	}
}
