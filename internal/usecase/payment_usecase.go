package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"rentpulse/internal/domain/entities"
	"rentpulse/internal/logger"
	"rentpulse/internal/usecase/interfaces"
)

var (
	ErrPaymentNotFound            = errors.New("payment not found")
	ErrInvalidPaymentQuoteID      = errors.New("invalid quote_id")
	ErrInvalidPaymentPayload      = errors.New("invalid payment payload")
	ErrQuoteNotApproved           = errors.New("quote not approved")
	ErrPaymentGatewayUnavailable  = errors.New("payment gateway not configured")
	ErrPaymentGatewayBadRequest   = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized = errors.New("payment gateway unauthorized")
)

// IPaymentUseCase encapsulates "create and record a payment for an approved
// quote".
type IPaymentUseCase interface {
	CreateForQuote(ctx context.Context, quoteID string, payload json.RawMessage) (entities.Payment, error)
	GetByID(ctx context.Context, id string) (entities.Payment, error)
	ListByQuoteID(ctx context.Context, quoteID string) ([]entities.Payment, error)
}

type PaymentUseCase struct {
	repo      interfaces.IPaymentRepository
	quoteRepo interfaces.IQuoteRepository
	gateway   interfaces.IPaymentGateway
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(repo interfaces.IPaymentRepository, quoteRepo interfaces.IQuoteRepository, gateway interfaces.IPaymentGateway) *PaymentUseCase {
	return &PaymentUseCase{repo: repo, quoteRepo: quoteRepo, gateway: gateway}
}

// CreateForQuote loads the quote, enriches the gateway payload with the quote
// linkage and the quoted amount (the quote in the store is the source of
// truth for the amount), calls the gateway and records the provider response.
func (u *PaymentUseCase) CreateForQuote(ctx context.Context, quoteID string, payload json.RawMessage) (entities.Payment, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return entities.Payment{}, ErrInvalidPaymentQuoteID
	}
	if len(payload) == 0 {
		payload = json.RawMessage("{}")
	}
	if !json.Valid(payload) {
		return entities.Payment{}, ErrInvalidPaymentPayload
	}
	if u.gateway == nil {
		return entities.Payment{}, ErrPaymentGatewayUnavailable
	}

	quote, err := u.quoteRepo.GetByID(ctx, quoteID)
	if err != nil {
		return entities.Payment{}, err
	}
	if quote.ID == "" {
		return entities.Payment{}, ErrQuoteNotFound
	}
	if quote.Status != entities.QuoteStatusApproved {
		return entities.Payment{}, ErrQuoteNotApproved
	}

	payload = enrichPayload(payload, quote)

	providerPaymentID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, payload)
	if err != nil {
		logger.Log.Errorf("[payment][usecase] gateway create failed quote_id=%s err=%v", quoteID, err)
		switch {
		case isGatewayUnauthorized(err):
			return entities.Payment{}, ErrPaymentGatewayUnauthorized
		case isGatewayBadRequest(err):
			return entities.Payment{}, ErrPaymentGatewayBadRequest
		default:
			return entities.Payment{}, err
		}
	}
	logger.Log.Infof("[payment][usecase] gateway create success quote_id=%s provider_payment_id=%s provider_status=%s",
		quoteID, providerPaymentID, providerStatus)

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		logger.Log.Warnf("[payment][usecase] provider response unmarshal failed quote_id=%s err=%v", quoteID, err)
	}

	p := entities.Payment{
		ID:                 providerPaymentID,
		QuoteID:            quoteID,
		Date:               time.Now().UTC(),
		Status:             paymentStatusFromProvider(providerStatus),
		ProviderPayloadRaw: providerResp,
		ProviderPayload:    parsed,
	}
	return u.repo.Create(ctx, p)
}

func (u *PaymentUseCase) GetByID(ctx context.Context, id string) (entities.Payment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Payment{}, errors.New("invalid payment id")
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Payment{}, err
	}
	if p.ID == "" {
		return entities.Payment{}, ErrPaymentNotFound
	}
	return p, nil
}

func (u *PaymentUseCase) ListByQuoteID(ctx context.Context, quoteID string) ([]entities.Payment, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return nil, ErrInvalidPaymentQuoteID
	}
	return u.repo.ListByQuoteID(ctx, quoteID)
}

// enrichPayload fills quote linkage and overrides the amount with the stored
// quote total. Unparseable payloads pass through untouched; the gateway will
// reject them with its own error.
func enrichPayload(payload json.RawMessage, quote entities.Quote) json.RawMessage {
	var m map[string]any
	if err := json.Unmarshal(payload, &m); err != nil {
		return payload
	}
	if _, ok := m["external_reference"]; !ok {
		m["external_reference"] = quote.ID
	}
	if _, ok := m["description"]; !ok {
		m["description"] = fmt.Sprintf("Maintenance quote %s", quote.ID)
	}
	m["transaction_amount"] = quote.Total

	b, err := json.Marshal(m)
	if err != nil {
		return payload
	}
	return b
}

func paymentStatusFromProvider(status string) entities.PaymentStatus {
	switch strings.ToLower(status) {
	case "approved", "accredited":
		return entities.PaymentStatusApproved
	case "rejected", "cancelled", "denied":
		return entities.PaymentStatusDenied
	default:
		return entities.PaymentStatusPending
	}
}

func isGatewayBadRequest(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}
