package request

import (
	"testing"

	"rentpulse/internal/domain/entities"
)

func TestPricingRequest_ToInput(t *testing.T) {
	t.Run("normalizes and defaults", func(t *testing.T) {
		r := PricingRequest{
			IssueID:  "  iss-1  ",
			Category: "  Plumbing ",
		}

		in := r.ToInput()
		if in.IssueID != "iss-1" {
			t.Fatalf("expected trimmed issue id, got %q", in.IssueID)
		}
		if in.Category != entities.CategoryPlumbing {
			t.Fatalf("expected lowercased category, got %q", in.Category)
		}
		if in.Priority != entities.PriorityMedium {
			t.Fatalf("expected medium priority default, got %q", in.Priority)
		}
	})

	t.Run("maps materials and provider", func(t *testing.T) {
		r := PricingRequest{
			Category:  "hvac",
			Priority:  "URGENT",
			Materials: []MaterialRequest{{Name: "filter", UnitCost: 25, Quantity: 2}},
			Provider:  &ProviderRequest{ID: "prov-1", City: "madrid", Rating: 4.6},
		}

		in := r.ToInput()
		if in.Priority != entities.PriorityUrgent {
			t.Fatalf("expected urgent priority, got %q", in.Priority)
		}
		if len(in.Materials) != 1 || in.Materials[0].UnitCost != 25 {
			t.Fatalf("unexpected materials: %+v", in.Materials)
		}
		if in.Provider == nil || in.Provider.Rating != 4.6 {
			t.Fatalf("unexpected provider: %+v", in.Provider)
		}
	})
}

func TestBatchPricingRequest_ToInputs(t *testing.T) {
	r := BatchPricingRequest{Issues: []PricingRequest{
		{Category: "plumbing"},
		{Category: "electrical"},
	}}

	inputs := r.ToInputs()
	if len(inputs) != 2 {
		t.Fatalf("expected 2 inputs, got %d", len(inputs))
	}
	if inputs[1].Category != entities.CategoryElectrical {
		t.Fatalf("expected electrical, got %q", inputs[1].Category)
	}
}
