package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"rentpulse/internal/domain/entities"
	"rentpulse/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrQuoteNotFound      = errors.New("quote not found")
	ErrQuoteAlreadyExists = errors.New("quote already exists")
	ErrInvalidIssueID     = errors.New("invalid issue id")
	ErrInvalidQuoteID     = errors.New("invalid quote id")
	ErrInvalidQuoteTotal  = errors.New("invalid quote total")
)

// IQuoteUseCase exposes the quote lifecycle: price an issue and persist the
// result, then drive owner approve/reject/cancel decisions.
type IQuoteUseCase interface {
	CreateQuote(ctx context.Context, in entities.PricingInput) (entities.Quote, entities.PricingResult, error)
	ApproveByIssueID(ctx context.Context, issueID string) (entities.Quote, error)
	RejectByIssueID(ctx context.Context, issueID string) (entities.Quote, error)
	CancelByIssueID(ctx context.Context, issueID string) (entities.Quote, error)
	RepriceQuote(ctx context.Context, quoteID string, newTotal float64) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	GetByIssueID(ctx context.Context, issueID string) (entities.Quote, error)
}

type QuoteUseCase struct {
	repo    interfaces.IQuoteRepository
	pricing IPricingUseCase
	now     func() time.Time
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(repo interfaces.IQuoteRepository, pricing IPricingUseCase) *QuoteUseCase {
	return &QuoteUseCase{repo: repo, pricing: pricing, now: time.Now}
}

// CreateQuote prices the issue with the dynamic calculator and persists the
// resulting total. One quote per issue; ad-hoc requests without an issue id
// get a generated one.
func (u *QuoteUseCase) CreateQuote(ctx context.Context, in entities.PricingInput) (entities.Quote, entities.PricingResult, error) {
	in.IssueID = strings.TrimSpace(in.IssueID)
	if in.IssueID == "" {
		in.IssueID = uuid.NewString()
	}

	if existing, err := u.repo.GetByIssueID(ctx, in.IssueID); err != nil {
		return entities.Quote{}, entities.PricingResult{}, err
	} else if existing.ID != "" {
		return entities.Quote{}, entities.PricingResult{}, ErrQuoteAlreadyExists
	}

	res, err := u.pricing.CalculatePrice(ctx, in)
	if err != nil {
		return entities.Quote{}, entities.PricingResult{}, err
	}

	now := u.now().UTC()
	q := entities.Quote{
		ID:         in.IssueID,
		IssueID:    in.IssueID,
		PropertyID: in.PropertyID,
		Total:      res.Breakdown.Total,
		Confidence: res.Confidence,
		Status:     entities.QuoteStatusPending,
		ValidUntil: res.ValidUntil,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	created, err := u.repo.Create(ctx, q)
	if err != nil {
		return entities.Quote{}, entities.PricingResult{}, err
	}
	return created, res, nil
}

func (u *QuoteUseCase) ApproveByIssueID(ctx context.Context, issueID string) (entities.Quote, error) {
	return u.updateStatusByIssueID(ctx, issueID, entities.QuoteStatusApproved)
}

func (u *QuoteUseCase) RejectByIssueID(ctx context.Context, issueID string) (entities.Quote, error) {
	return u.updateStatusByIssueID(ctx, issueID, entities.QuoteStatusRejected)
}

func (u *QuoteUseCase) CancelByIssueID(ctx context.Context, issueID string) (entities.Quote, error) {
	return u.updateStatusByIssueID(ctx, issueID, entities.QuoteStatusCancelled)
}

func (u *QuoteUseCase) updateStatusByIssueID(ctx context.Context, issueID string, status entities.QuoteStatus) (entities.Quote, error) {
	issueID = strings.TrimSpace(issueID)
	if issueID == "" {
		return entities.Quote{}, ErrInvalidIssueID
	}

	updated, err := u.repo.UpdateStatusByIssueID(ctx, issueID, status)
	if err != nil {
		return entities.Quote{}, err
	}
	if updated.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return updated, nil
}

func (u *QuoteUseCase) RepriceQuote(ctx context.Context, quoteID string, newTotal float64) (entities.Quote, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}
	if newTotal <= 0 {
		return entities.Quote{}, ErrInvalidQuoteTotal
	}

	updated, err := u.repo.UpdateTotalByID(ctx, quoteID, newTotal)
	if err != nil {
		return entities.Quote{}, err
	}
	if updated.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return updated, nil
}

func (u *QuoteUseCase) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}

	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}

func (u *QuoteUseCase) GetByIssueID(ctx context.Context, issueID string) (entities.Quote, error) {
	issueID = strings.TrimSpace(issueID)
	if issueID == "" {
		return entities.Quote{}, ErrInvalidIssueID
	}

	q, err := u.repo.GetByIssueID(ctx, issueID)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}
