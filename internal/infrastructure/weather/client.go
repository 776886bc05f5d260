package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"rentpulse/internal/domain/entities"
	"rentpulse/internal/usecase/interfaces"
)

const defaultBaseURL = "https://wttr.in"

// Client fetches the daily forecast for a city from a wttr.in compatible
// endpoint. No API key required; the base URL is swappable for deployments
// that proxy or self-host it.
type Client struct {
	baseURL string
	client  *http.Client
}

var _ interfaces.IWeatherSource = (*Client)(nil)

func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

type forecastResponse struct {
	Weather []struct {
		Date     string `json:"date"`
		MaxTempC string `json:"maxtempC"`
		Hourly   []struct {
			ChanceOfRain string `json:"chanceofrain"`
			WeatherDesc  []struct {
				Value string `json:"value"`
			} `json:"weatherDesc"`
		} `json:"hourly"`
	} `json:"weather"`
}

func (c *Client) FetchWeather(ctx context.Context, city string, date time.Time) (entities.WeatherSignal, error) {
	endpoint := fmt.Sprintf("%s/%s?format=j1", c.baseURL, url.PathEscape(city))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return entities.WeatherSignal{}, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return entities.WeatherSignal{}, fmt.Errorf("fetch weather: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return entities.WeatherSignal{}, fmt.Errorf("weather provider returned %d: %s", resp.StatusCode, string(body))
	}

	var parsed forecastResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return entities.WeatherSignal{}, fmt.Errorf("decode forecast: %w", err)
	}

	day, ok := pickDay(parsed, date)
	if !ok {
		return entities.WeatherSignal{}, fmt.Errorf("no forecast for %s", date.Format(time.DateOnly))
	}
	return day, nil
}

// pickDay selects the forecast entry matching the requested date, falling
// back to the first entry when the date is beyond the provider horizon.
func pickDay(parsed forecastResponse, date time.Time) (entities.WeatherSignal, bool) {
	if len(parsed.Weather) == 0 {
		return entities.WeatherSignal{}, false
	}

	target := date.Format(time.DateOnly)
	chosen := parsed.Weather[0]
	for _, w := range parsed.Weather {
		if w.Date == target {
			chosen = w
			break
		}
	}

	var maxTemp float64
	fmt.Sscanf(chosen.MaxTempC, "%f", &maxTemp)

	condition := "unknown"
	maxRain := 0.0
	for _, h := range chosen.Hourly {
		var rain float64
		fmt.Sscanf(h.ChanceOfRain, "%f", &rain)
		if rain > maxRain {
			maxRain = rain
		}
		if condition == "unknown" && len(h.WeatherDesc) > 0 {
			condition = h.WeatherDesc[0].Value
		}
	}

	return entities.WeatherSignal{
		Condition: condition,
		MaxTempC:  maxTemp,
		RainProb:  maxRain / 100,
	}, true
}
