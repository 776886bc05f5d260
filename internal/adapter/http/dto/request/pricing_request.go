package request

import (
	"strings"
	"time"

	"rentpulse/internal/domain/entities"
)

type MaterialRequest struct {
	Name     string  `json:"name" binding:"required"`
	UnitCost float64 `json:"unit_cost" binding:"required"`
	Quantity int     `json:"quantity" binding:"required"`
}

type ProviderRequest struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	City   string  `json:"city"`
	Rating float64 `json:"rating"`
}

// PricingRequest is the payload for quote calculation endpoints. Everything
// except the category is optional; absent fields fall back to heuristics.
type PricingRequest struct {
	IssueID        string            `json:"issue_id"`
	PropertyID     string            `json:"property_id"`
	PropertyCity   string            `json:"property_city"`
	Category       string            `json:"category" binding:"required"`
	Priority       string            `json:"priority"`
	Description    string            `json:"description"`
	EstimatedHours float64           `json:"estimated_hours"`
	Materials      []MaterialRequest `json:"materials"`
	IsEmergency    bool              `json:"is_emergency"`
	ScheduledAt    *time.Time        `json:"scheduled_at"`
	Provider       *ProviderRequest  `json:"provider"`
}

func (r PricingRequest) ToInput() entities.PricingInput {
	in := entities.PricingInput{
		IssueID:        strings.TrimSpace(r.IssueID),
		PropertyID:     strings.TrimSpace(r.PropertyID),
		PropertyCity:   strings.TrimSpace(r.PropertyCity),
		Category:       entities.IssueCategory(strings.ToLower(strings.TrimSpace(r.Category))),
		Priority:       entities.IssuePriority(strings.ToLower(strings.TrimSpace(r.Priority))),
		Description:    strings.TrimSpace(r.Description),
		EstimatedHours: r.EstimatedHours,
		IsEmergency:    r.IsEmergency,
		ScheduledAt:    r.ScheduledAt,
	}
	if in.Priority == "" {
		in.Priority = entities.PriorityMedium
	}
	for _, m := range r.Materials {
		in.Materials = append(in.Materials, entities.Material{
			Name:     m.Name,
			UnitCost: m.UnitCost,
			Quantity: m.Quantity,
		})
	}
	if r.Provider != nil {
		in.Provider = &entities.Provider{
			ID:     r.Provider.ID,
			Name:   r.Provider.Name,
			City:   r.Provider.City,
			Rating: r.Provider.Rating,
		}
	}
	return in
}

// BatchPricingRequest prices several issues in one call; the batch discount
// is keyed on the item count.
type BatchPricingRequest struct {
	Issues []PricingRequest `json:"issues" binding:"required,min=1"`
}

func (r BatchPricingRequest) ToInputs() []entities.PricingInput {
	inputs := make([]entities.PricingInput, 0, len(r.Issues))
	for _, issue := range r.Issues {
		inputs = append(inputs, issue.ToInput())
	}
	return inputs
}
