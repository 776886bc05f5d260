package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"rentpulse/internal/config"
	"rentpulse/internal/domain/advisor"
	"rentpulse/internal/domain/entities"
	"rentpulse/internal/logger"
	"rentpulse/internal/usecase/interfaces"
)

var (
	ErrInvalidBasePrice = errors.New("invalid base price")
	ErrInvalidCity      = errors.New("invalid city")
)

// IAdvisorUseCase exposes the short-term rental pricing advisor.
type IAdvisorUseCase interface {
	Recommend(ctx context.Context, q entities.AdvisorQuery) (entities.PricingRecommendation, error)
}

// AdvisorUseCase fans out to the independent signal sources, builds the
// deterministic recommendation, then asks the reasoning provider for the
// textual justification. Every external fetch is optional: a failed source
// logs the error and drops its factor, never the recommendation.
type AdvisorUseCase struct {
	marketData interfaces.IMarketDataSource
	weather    interfaces.IWeatherSource
	events     interfaces.IEventsSource
	market     interfaces.IMarketRepository
	reasoning  advisor.ReasoningProvider
	cfg        *config.Config
	now        func() time.Time
}

var _ IAdvisorUseCase = (*AdvisorUseCase)(nil)

func NewAdvisorUseCase(
	marketData interfaces.IMarketDataSource,
	weather interfaces.IWeatherSource,
	events interfaces.IEventsSource,
	market interfaces.IMarketRepository,
	reasoning advisor.ReasoningProvider,
	cfg *config.Config,
) *AdvisorUseCase {
	if reasoning == nil {
		reasoning = advisor.TemplateReasoning{}
	}
	return &AdvisorUseCase{
		marketData: marketData,
		weather:    weather,
		events:     events,
		market:     market,
		reasoning:  reasoning,
		cfg:        cfg,
		now:        time.Now,
	}
}

func (u *AdvisorUseCase) Recommend(ctx context.Context, q entities.AdvisorQuery) (entities.PricingRecommendation, error) {
	if q.BasePrice <= 0 {
		return entities.PricingRecommendation{}, ErrInvalidBasePrice
	}
	if strings.TrimSpace(q.City) == "" {
		return entities.PricingRecommendation{}, ErrInvalidCity
	}

	now := u.now().UTC()
	checkIn := q.CheckIn
	if checkIn.IsZero() {
		checkIn = now.AddDate(0, 0, 1)
	}
	checkOut := q.CheckOut
	if !checkOut.After(checkIn) {
		checkOut = checkIn.AddDate(0, 0, 1)
	}

	signals := u.gatherSignals(ctx, q.City, checkIn, checkOut)
	rec := advisor.BuildRecommendation(q.PropertyID, q.BasePrice, signals, u.cfg.Advisor, now)

	text, err := u.reasoning.Summarize(ctx, rec)
	if err != nil {
		logger.Log.Warnf("[advisor][usecase] reasoning provider failed city=%s err=%v", q.City, err)
		text, _ = advisor.TemplateReasoning{}.Summarize(ctx, rec)
	}
	rec.Reasoning = text

	return rec, nil
}

// gatherSignals fetches the four signal groups concurrently. There is no
// ordering dependency between them and no partial-failure handling beyond
// omitting the failed signal.
func (u *AdvisorUseCase) gatherSignals(ctx context.Context, city string, checkIn, checkOut time.Time) entities.AdvisorSignals {
	var signals entities.AdvisorSignals
	var wg sync.WaitGroup

	if u.marketData != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m, err := u.marketData.FetchMarketSignal(ctx, city, checkIn, checkOut)
			if err != nil {
				logger.Log.Warnf("[advisor][usecase] market signal fetch failed city=%s err=%v", city, err)
				return
			}
			signals.Market = &m
		}()
	}

	if u.weather != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			w, err := u.weather.FetchWeather(ctx, city, checkIn)
			if err != nil {
				logger.Log.Warnf("[advisor][usecase] weather fetch failed city=%s err=%v", city, err)
				return
			}
			signals.Weather = &w
		}()
	}

	if u.events != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			e, err := u.events.FetchEvents(ctx, city, checkIn, checkOut)
			if err != nil {
				logger.Log.Warnf("[advisor][usecase] events fetch failed city=%s err=%v", city, err)
				return
			}
			signals.Events = &e
		}()
	}

	if u.market != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m, err := u.market.GetMarketAnalysis(ctx, city)
			if err != nil {
				logger.Log.Warnf("[advisor][usecase] seasonality fetch failed city=%s err=%v", city, err)
				return
			}
			key := fmt.Sprintf("%02d", int(checkIn.Month()))
			if f, ok := m.SeasonalFactors[key]; ok && f > 0 {
				signals.SeasonalFactor = f
			}
		}()
	}

	wg.Wait()

	if signals.SeasonalFactor == 0 {
		key := fmt.Sprintf("%02d", int(checkIn.Month()))
		if f, ok := u.cfg.Forecast.SeasonalFactors[key]; ok && f > 0 {
			signals.SeasonalFactor = f
		}
	}

	return signals
}
