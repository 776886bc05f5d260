package interfaces

import (
	"context"
	"time"

	"rentpulse/internal/domain/entities"
)

// The advisor fetches its signals from independent sources; any of them may
// fail, in which case the owning factor is simply omitted.

// IMarketDataSource provides competitor pricing/occupancy/demand for a city
// and date range (scraped or simulated).
type IMarketDataSource interface {
	FetchMarketSignal(ctx context.Context, city string, checkIn, checkOut time.Time) (entities.MarketSignal, error)
}

// IWeatherSource provides the forecast for the advised nights.
type IWeatherSource interface {
	FetchWeather(ctx context.Context, city string, date time.Time) (entities.WeatherSignal, error)
}

// IEventsSource lists local events overlapping the advised nights.
type IEventsSource interface {
	FetchEvents(ctx context.Context, city string, from, to time.Time) (entities.EventsSignal, error)
}
