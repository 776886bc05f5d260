package advisor

import (
	"context"
	"fmt"
	"strings"

	"rentpulse/internal/domain/entities"
)

// ReasoningProvider produces the natural-language justification attached to a
// recommendation. The numeric recommendation never depends on it.
type ReasoningProvider interface {
	Summarize(ctx context.Context, rec entities.PricingRecommendation) (string, error)
}

// TemplateReasoning is the deterministic default provider. It is also the
// fallback whenever an external provider fails.
type TemplateReasoning struct{}

var _ ReasoningProvider = TemplateReasoning{}

func (TemplateReasoning) Summarize(_ context.Context, rec entities.PricingRecommendation) (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "Recommended nightly price is %.0f against a base of %.0f.", rec.RecommendedPrice, rec.BasePrice)

	if len(rec.Factors) == 0 {
		b.WriteString(" No market signals were available, so the base price stands.")
		return b.String(), nil
	}

	b.WriteString(" Main drivers:")
	for _, f := range rec.Factors {
		direction := "raises"
		if f.Impact < 0 {
			direction = "lowers"
		} else if f.Impact == 0 {
			direction = "leaves"
		}
		fmt.Fprintf(&b, " %s %s the price (%+.1f%% at weight %.2f);", strings.ReplaceAll(f.Name, "_", " "), direction, f.Impact, f.Weight)
	}
	out := strings.TrimSuffix(b.String(), ";") + "."
	return out, nil
}
