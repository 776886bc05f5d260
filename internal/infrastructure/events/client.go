package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"rentpulse/internal/domain/entities"
	"rentpulse/internal/usecase/interfaces"
)

var ErrMissingAPIKey = errors.New("missing events api key")

// Client lists local events overlapping a stay from an events-API deployment
// (PredictHQ-style JSON: a results array with title, rank and dates).
type Client struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

var _ interfaces.IEventsSource = (*Client)(nil)

func NewClient(baseURL, apiKey string) (*Client, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 10 * time.Second},
	}, nil
}

type eventsResponse struct {
	Results []struct {
		Title string `json:"title"`
		// Rank is 0..100; 80+ marks city-scale events.
		Rank int `json:"rank"`
	} `json:"results"`
}

const majorEventRank = 80

func (c *Client) FetchEvents(ctx context.Context, city string, from, to time.Time) (entities.EventsSignal, error) {
	q := url.Values{}
	q.Set("place", city)
	q.Set("active.gte", from.Format(time.DateOnly))
	q.Set("active.lte", to.Format(time.DateOnly))

	endpoint := fmt.Sprintf("%s/v1/events/?%s", c.baseURL, q.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return entities.EventsSignal{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Add("Authorization", "Bearer "+c.apiKey)
	req.Header.Add("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return entities.EventsSignal{}, fmt.Errorf("fetch events: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return entities.EventsSignal{}, fmt.Errorf("events provider returned %d: %s", resp.StatusCode, string(body))
	}

	var parsed eventsResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return entities.EventsSignal{}, fmt.Errorf("decode events: %w", err)
	}

	signal := entities.EventsSignal{Count: len(parsed.Results)}
	bestRank := 0
	for _, ev := range parsed.Results {
		if ev.Rank >= majorEventRank && ev.Rank > bestRank {
			signal.MajorEvent = ev.Title
			bestRank = ev.Rank
		}
	}
	return signal, nil
}
