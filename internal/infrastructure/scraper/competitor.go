package scraper

import (
	"context"
	"errors"
	"fmt"
	"hash/fnv"
	"net/url"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"rentpulse/internal/domain/entities"
	"rentpulse/internal/logger"
	"rentpulse/internal/usecase/interfaces"

	"github.com/chromedp/chromedp"
)

var ErrNoListingsFound = errors.New("no competitor listings found")

// CompetitorScraper fetches comparable nightly prices for a city by rendering
// the listing search page in headless Chrome.
//
// Mock mode (SCRAPER_MOCK) returns a deterministic per-city signal, which
// keeps local stacks and CI off the real site. Callers already treat any
// error as "omit the market factor", so a blocked or redesigned page degrades
// the recommendation instead of failing it.
type CompetitorScraper struct {
	searchURL string
	timeout   time.Duration
	mockMode  bool
}

var _ interfaces.IMarketDataSource = (*CompetitorScraper)(nil)

func NewCompetitorScraper() *CompetitorScraper {
	timeout := 90 * time.Second
	if v := os.Getenv("SCRAPER_TIMEOUT_SECONDS"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			timeout = time.Duration(secs) * time.Second
		}
	}
	mock := isScraperMockEnabled()
	if mock {
		logger.Log.Infof("[scraper] mock mode enabled")
	}
	return &CompetitorScraper{
		searchURL: getenvDefault("COMPETITOR_SEARCH_URL", "https://www.airbnb.com/s/%s/homes?checkin=%s&checkout=%s"),
		timeout:   timeout,
		mockMode:  mock,
	}
}

func (s *CompetitorScraper) FetchMarketSignal(ctx context.Context, city string, checkIn, checkOut time.Time) (entities.MarketSignal, error) {
	if s.mockMode {
		return simulatedSignal(city, checkIn), nil
	}

	prices, err := s.scrapePrices(ctx, city, checkIn, checkOut)
	if err != nil {
		return entities.MarketSignal{}, err
	}
	if len(prices) == 0 {
		return entities.MarketSignal{}, ErrNoListingsFound
	}

	signal := summarizePrices(prices)
	logger.Log.Infof("[scraper] market signal city=%s sample=%d avg=%.0f demand=%.0f",
		city, signal.SampleSize, signal.CompetitorAvgPrice, signal.DemandScore)
	return signal, nil
}

func (s *CompetitorScraper) scrapePrices(ctx context.Context, city string, checkIn, checkOut time.Time) ([]float64, error) {
	browserCtx, cancel := s.newBrowserContext(ctx)
	defer cancel()

	browserCtx, cancelTimeout := context.WithTimeout(browserCtx, s.timeout)
	defer cancelTimeout()

	target := fmt.Sprintf(s.searchURL,
		url.PathEscape(city),
		checkIn.Format(time.DateOnly),
		checkOut.Format(time.DateOnly),
	)

	var priceTexts []string
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(target),
		chromedp.Sleep(5*time.Second), // give JS time to render
		chromedp.Evaluate(`
			(function() {
				var results = [];
				var nodes = document.querySelectorAll('[data-testid="price-availability-row"], [data-testid="listing-card-price"], span._tyxjp1');
				nodes.forEach(function(n) { results.push(n.textContent); });
				return results;
			})()
		`, &priceTexts),
	)
	if err != nil {
		return nil, fmt.Errorf("scrape %s: %w", city, err)
	}

	prices := make([]float64, 0, len(priceTexts))
	for _, txt := range priceTexts {
		if p, ok := parsePrice(txt); ok {
			prices = append(prices, p)
		}
	}
	return prices, nil
}

// newBrowserContext creates a fresh chromedp context (one browser, one tab at a time).
func (s *CompetitorScraper) newBrowserContext(parent context.Context) (context.Context, context.CancelFunc) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-blink-features", "AutomationControlled"),
		chromedp.Flag("log-level", "3"), // suppress Chrome logs
		chromedp.UserAgent("Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"),
		chromedp.WindowSize(1280, 900),
	)

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(parent, opts...)
	ctx, cancelCtx := chromedp.NewContext(allocCtx, chromedp.WithLogf(func(string, ...interface{}) {}))

	cancel := func() {
		cancelCtx()
		cancelAlloc()
	}
	return ctx, cancel
}

// parsePrice extracts the first money amount from a listing card text like
// "€ 1,234 per night".
func parsePrice(text string) (float64, bool) {
	var digits strings.Builder
	seen := false
	for _, r := range text {
		switch {
		case r >= '0' && r <= '9':
			digits.WriteRune(r)
			seen = true
		case r == '.' && seen:
			digits.WriteRune(r)
		case r == ',' || r == ' ' || r == ' ':
			// Thousands separators inside an amount.
		case seen:
			// First complete number wins.
			p, err := strconv.ParseFloat(digits.String(), 64)
			return p, err == nil && p > 0
		}
	}
	if !seen {
		return 0, false
	}
	p, err := strconv.ParseFloat(digits.String(), 64)
	return p, err == nil && p > 0
}

// summarizePrices trims the top and bottom decile before averaging, so one
// luxury penthouse does not skew the comparable price.
func summarizePrices(prices []float64) entities.MarketSignal {
	sort.Float64s(prices)
	trim := len(prices) / 10
	trimmed := prices[trim : len(prices)-trim]

	sum := 0.0
	for _, p := range trimmed {
		sum += p
	}
	avg := sum / float64(len(trimmed))

	// Listing scarcity is the only demand proxy a search page gives us: a
	// thin result set for a large market reads as high demand.
	demand := 100 - float64(len(prices))*2
	if demand < 20 {
		demand = 20
	}

	return entities.MarketSignal{
		CompetitorAvgPrice: avg,
		DemandScore:        demand,
		SampleSize:         len(prices),
	}
}

// simulatedSignal derives a stable pseudo-market from the city name and the
// stay month. Deterministic on purpose: local runs and recorded demos must
// not flap.
func simulatedSignal(city string, checkIn time.Time) entities.MarketSignal {
	h := fnv.New32a()
	h.Write([]byte(strings.ToLower(strings.TrimSpace(city))))
	h.Write([]byte(checkIn.Format("2006-01")))
	seed := h.Sum32()

	return entities.MarketSignal{
		CompetitorAvgPrice: 60 + float64(seed%120),
		OccupancyRate:      0.55 + float64(seed%40)/100,
		DemandScore:        30 + float64(seed%70),
		SampleSize:         12 + int(seed%30),
	}
}

func isScraperMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("SCRAPER_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
