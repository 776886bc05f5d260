package entities

import "time"

// IssueCategory classifies a maintenance/service request.
type IssueCategory string

const (
	CategoryPlumbing   IssueCategory = "plumbing"
	CategoryElectrical IssueCategory = "electrical"
	CategoryHVAC       IssueCategory = "hvac"
	CategoryStructural IssueCategory = "structural"
	CategoryOther      IssueCategory = "other"
)

// IssuePriority is the reporter-assigned priority.
type IssuePriority string

const (
	PriorityLow    IssuePriority = "low"
	PriorityMedium IssuePriority = "medium"
	PriorityHigh   IssuePriority = "high"
	PriorityUrgent IssuePriority = "urgent"
)

// Material is one itemized material line on a pricing request.
type Material struct {
	Name     string  `json:"name"`
	UnitCost float64 `json:"unit_cost"`
	Quantity int     `json:"quantity"`
}

// Provider is the service provider optionally pre-assigned to an issue.
type Provider struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	City   string  `json:"city"`
	Rating float64 `json:"rating"`
}

// PricingInput is everything the caller knows about the issue being priced.
// Optional fields never cause an error; absent fields fall back to heuristics.
type PricingInput struct {
	IssueID      string        `json:"issue_id"`
	PropertyID   string        `json:"property_id"`
	PropertyCity string        `json:"property_city"`
	Category     IssueCategory `json:"category"`
	Priority     IssuePriority `json:"priority"`
	Description  string        `json:"description"`

	// EstimatedHours of 0 means "infer from category and description".
	EstimatedHours float64    `json:"estimated_hours"`
	Materials      []Material `json:"materials"`
	IsEmergency    bool       `json:"is_emergency"`
	ScheduledAt    *time.Time `json:"scheduled_at"`
	Provider       *Provider  `json:"provider"`
}

// PricingStats carries the read-only historical aggregates the demand,
// loyalty and bulk factors need. The use case fills it from the repository;
// the calculator itself never touches a data store.
type PricingStats struct {
	// Issues of the same category reported in the trailing 30 days.
	CategoryIssuesLast30Days int
	// Active providers qualified for the category.
	QualifiedProviders int
	// Issues on this property in the trailing 12 months.
	PropertyIssuesLast12Months int
	// Issues currently open on this property.
	OpenIssuesOnProperty int
}
