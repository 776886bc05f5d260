package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"rentpulse/internal/domain/advisor"
	"rentpulse/internal/domain/entities"
	"rentpulse/internal/logger"

	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"golang.org/x/time/rate"
)

var ErrMissingAPIKey = errors.New("missing LLM api key")

const systemPrompt = "You are a pricing analyst for short-term rentals. " +
	"Write one short paragraph, plain text, no markdown. " +
	"Explain the recommended nightly price using only the factors provided; never invent numbers."

// Config selects the OpenAI-compatible endpoint behind the advisor reasoning.
type Config struct {
	BaseURL string
	APIKey  string
	Model   string
	// RPM caps requests per minute; 0 means 60.
	RPM int
}

// Reasoner turns a finished recommendation into its natural-language
// justification. It never influences the numbers; callers fall back to the
// template provider when it errors.
type Reasoner struct {
	chatModel model.ChatModel
	limiter   *rate.Limiter
}

var _ advisor.ReasoningProvider = (*Reasoner)(nil)

func NewReasoner(ctx context.Context, cfg Config) (*Reasoner, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	chatModel, err := openai.NewChatModel(ctx, &openai.ChatModelConfig{
		BaseURL: cfg.BaseURL,
		APIKey:  cfg.APIKey,
		Model:   cfg.Model,
	})
	if err != nil {
		return nil, fmt.Errorf("init chat model: %w", err)
	}

	rpm := cfg.RPM
	if rpm <= 0 {
		rpm = 60
	}
	limiter := rate.NewLimiter(rate.Limit(float64(rpm)/60.0), 1)

	logger.Log.Infof("[advisor][llm] reasoning model initialized model=%s", cfg.Model)
	return &Reasoner{chatModel: chatModel, limiter: limiter}, nil
}

func (r *Reasoner) Summarize(ctx context.Context, rec entities.PricingRecommendation) (string, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return "", err
	}

	messages := []*schema.Message{
		{Role: schema.System, Content: systemPrompt},
		{Role: schema.User, Content: buildPrompt(rec)},
	}

	resp, err := r.chatModel.Generate(ctx, messages)
	if err != nil {
		return "", fmt.Errorf("generate reasoning: %w", err)
	}

	text := strings.TrimSpace(resp.Content)
	if text == "" {
		return "", errors.New("empty reasoning response")
	}
	return text, nil
}

func buildPrompt(rec entities.PricingRecommendation) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Base nightly price: %.2f\n", rec.BasePrice)
	fmt.Fprintf(&b, "Recommended nightly price: %.2f\n", rec.RecommendedPrice)
	fmt.Fprintf(&b, "Advisory range: %.2f to %.2f\n", rec.MinPrice, rec.MaxPrice)
	fmt.Fprintf(&b, "Confidence: %d/100\n", rec.Confidence)
	b.WriteString("Factors:\n")
	for _, f := range rec.Factors {
		fmt.Fprintf(&b, "- %s: impact %+.1f%%, weight %.2f. %s\n", f.Name, f.Impact, f.Weight, f.Description)
	}
	if len(rec.Factors) == 0 {
		b.WriteString("- none; no market signals were available\n")
	}
	return b.String()
}
