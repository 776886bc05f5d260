package usecase

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"rentpulse/internal/config"
	"rentpulse/internal/domain/advisor"
	"rentpulse/internal/domain/entities"
	mock_interfaces "rentpulse/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type failingReasoning struct{}

func (failingReasoning) Summarize(ctx context.Context, rec entities.PricingRecommendation) (string, error) {
	return "", errors.New("llm unavailable")
}

func TestAdvisorUseCase_Recommend_Validations(t *testing.T) {
	cfg := config.Default()

	t.Run("invalid base price", func(t *testing.T) {
		uc := NewAdvisorUseCase(nil, nil, nil, nil, nil, cfg)
		_, err := uc.Recommend(context.Background(), entities.AdvisorQuery{City: "Lisbon", BasePrice: 0})
		if !errors.Is(err, ErrInvalidBasePrice) {
			t.Fatalf("expected ErrInvalidBasePrice, got %v", err)
		}
	})

	t.Run("invalid city", func(t *testing.T) {
		uc := NewAdvisorUseCase(nil, nil, nil, nil, nil, cfg)
		_, err := uc.Recommend(context.Background(), entities.AdvisorQuery{City: "  ", BasePrice: 100})
		if !errors.Is(err, ErrInvalidCity) {
			t.Fatalf("expected ErrInvalidCity, got %v", err)
		}
	})
}

func TestAdvisorUseCase_Recommend_AllSignals(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	cfg := config.Default()

	checkIn := time.Date(2026, time.June, 10, 0, 0, 0, 0, time.UTC)
	checkOut := checkIn.AddDate(0, 0, 3)

	marketSignal := entities.MarketSignal{CompetitorAvgPrice: 120, OccupancyRate: 0.82, DemandScore: 70, SampleSize: 14}
	weatherSignal := entities.WeatherSignal{Condition: "sunny", MaxTempC: 26, RainProb: 0.1}
	eventsSignal := entities.EventsSignal{Count: 2}
	snapshot := entities.MarketAnalysis{City: "Lisbon", SeasonalFactors: cfg.Forecast.SeasonalFactors}

	marketData := mock_interfaces.NewMockIMarketDataSource(ctrl)
	weather := mock_interfaces.NewMockIWeatherSource(ctrl)
	events := mock_interfaces.NewMockIEventsSource(ctrl)
	marketRepo := mock_interfaces.NewMockIMarketRepository(ctrl)

	marketData.EXPECT().FetchMarketSignal(gomock.Any(), "Lisbon", checkIn, checkOut).Return(marketSignal, nil)
	weather.EXPECT().FetchWeather(gomock.Any(), "Lisbon", checkIn).Return(weatherSignal, nil)
	events.EXPECT().FetchEvents(gomock.Any(), "Lisbon", checkIn, checkOut).Return(eventsSignal, nil)
	marketRepo.EXPECT().GetMarketAnalysis(gomock.Any(), "Lisbon").Return(snapshot, nil)

	uc := NewAdvisorUseCase(marketData, weather, events, marketRepo, nil, cfg)
	uc.now = func() time.Time { return ucNow }

	got, err := uc.Recommend(context.Background(), entities.AdvisorQuery{
		PropertyID: "prop-1",
		City:       "Lisbon",
		BasePrice:  100,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := advisor.BuildRecommendation("prop-1", 100, entities.AdvisorSignals{
		Market:         &marketSignal,
		Weather:        &weatherSignal,
		Events:         &eventsSignal,
		SeasonalFactor: cfg.Forecast.SeasonalFactors["06"],
	}, cfg.Advisor, ucNow)
	want.Reasoning, _ = advisor.TemplateReasoning{}.Summarize(context.Background(), want)

	if !reflect.DeepEqual(got, want) {
		t.Fatalf("recommendation diverges:\ngot  %+v\nwant %+v", got, want)
	}
}

func TestAdvisorUseCase_Recommend_Degraded(t *testing.T) {
	cfg := config.Default()

	t.Run("failed source drops its factor only", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		weather := mock_interfaces.NewMockIWeatherSource(ctrl)
		weather.EXPECT().FetchWeather(gomock.Any(), "Lisbon", gomock.Any()).
			Return(entities.WeatherSignal{}, errors.New("upstream 503"))

		uc := NewAdvisorUseCase(nil, weather, nil, nil, nil, cfg)
		uc.now = func() time.Time { return ucNow }

		got, err := uc.Recommend(context.Background(), entities.AdvisorQuery{City: "Lisbon", BasePrice: 100})
		if err != nil {
			t.Fatalf("a failed source must not fail the recommendation, got %v", err)
		}
		for _, f := range got.Factors {
			if f.Name == "weather" {
				t.Fatalf("weather factor should be omitted after fetch failure: %+v", got.Factors)
			}
		}
		// Only the config seasonal fallback remains.
		if len(got.Factors) != 1 || got.Factors[0].Name != "seasonality" {
			t.Fatalf("expected only the seasonality factor, got %+v", got.Factors)
		}
	})

	t.Run("reasoning failure falls back to template", func(t *testing.T) {
		uc := NewAdvisorUseCase(nil, nil, nil, nil, failingReasoning{}, cfg)
		uc.now = func() time.Time { return ucNow }

		got, err := uc.Recommend(context.Background(), entities.AdvisorQuery{City: "Lisbon", BasePrice: 100})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Reasoning == "" || !strings.Contains(got.Reasoning, "Recommended nightly price") {
			t.Fatalf("expected template reasoning fallback, got %q", got.Reasoning)
		}
	})

	t.Run("check-out defaults to one night", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		events := mock_interfaces.NewMockIEventsSource(ctrl)
		checkIn := time.Date(2026, time.July, 1, 0, 0, 0, 0, time.UTC)
		events.EXPECT().FetchEvents(gomock.Any(), "Lisbon", checkIn, checkIn.AddDate(0, 0, 1)).
			Return(entities.EventsSignal{}, nil)

		uc := NewAdvisorUseCase(nil, nil, events, nil, nil, cfg)
		uc.now = func() time.Time { return ucNow }

		if _, err := uc.Recommend(context.Background(), entities.AdvisorQuery{City: "Lisbon", BasePrice: 100, CheckIn: checkIn}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
