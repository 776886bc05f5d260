package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"rentpulse/internal/domain/entities"
	mock_interfaces "rentpulse/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestPaymentUseCase_CreateForQuote_Validations(t *testing.T) {
	t.Run("empty quote id", func(t *testing.T) {
		uc := NewPaymentUseCase(nil, nil, nil)
		_, err := uc.CreateForQuote(context.Background(), " ", json.RawMessage(`{}`))
		if !errors.Is(err, ErrInvalidPaymentQuoteID) {
			t.Fatalf("expected ErrInvalidPaymentQuoteID, got %v", err)
		}
	})

	t.Run("invalid json payload", func(t *testing.T) {
		uc := NewPaymentUseCase(nil, nil, nil)
		_, err := uc.CreateForQuote(context.Background(), "q-1", json.RawMessage(`{`))
		if !errors.Is(err, ErrInvalidPaymentPayload) {
			t.Fatalf("expected ErrInvalidPaymentPayload, got %v", err)
		}
	})

	t.Run("gateway not configured", func(t *testing.T) {
		uc := NewPaymentUseCase(nil, nil, nil)
		_, err := uc.CreateForQuote(context.Background(), "q-1", json.RawMessage(`{}`))
		if !errors.Is(err, ErrPaymentGatewayUnavailable) {
			t.Fatalf("expected ErrPaymentGatewayUnavailable, got %v", err)
		}
	})
}

func TestPaymentUseCase_CreateForQuote_QuoteChecks(t *testing.T) {
	t.Run("quote repo returns error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		quoteRepo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUseCase(nil, quoteRepo, gateway)

		quoteRepo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{}, errors.New("db"))

		_, err := uc.CreateForQuote(context.Background(), "q-1", json.RawMessage(`{}`))
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("quote not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		quoteRepo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUseCase(nil, quoteRepo, gateway)

		quoteRepo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{}, nil)

		_, err := uc.CreateForQuote(context.Background(), "q-1", json.RawMessage(`{}`))
		if !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})

	t.Run("quote not approved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		quoteRepo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUseCase(nil, quoteRepo, gateway)

		quoteRepo.EXPECT().GetByID(gomock.Any(), "q-1").
			Return(entities.Quote{ID: "q-1", Status: entities.QuoteStatusPending}, nil)

		_, err := uc.CreateForQuote(context.Background(), "q-1", json.RawMessage(`{}`))
		if !errors.Is(err, ErrQuoteNotApproved) {
			t.Fatalf("expected ErrQuoteNotApproved, got %v", err)
		}
	})
}

func TestPaymentUseCase_CreateForQuote_Gateway(t *testing.T) {
	approvedQuote := entities.Quote{ID: "q-1", IssueID: "q-1", Total: 290.83, Status: entities.QuoteStatusApproved}

	t.Run("payload enriched with quote linkage and amount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		quoteRepo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUseCase(repo, quoteRepo, gateway)

		quoteRepo.EXPECT().GetByID(gomock.Any(), "q-1").Return(approvedQuote, nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, payload json.RawMessage) (string, string, json.RawMessage, error) {
				var m map[string]any
				if err := json.Unmarshal(payload, &m); err != nil {
					t.Fatalf("gateway payload is not valid json: %v", err)
				}
				if m["external_reference"] != "q-1" {
					t.Fatalf("expected external_reference q-1, got %v", m["external_reference"])
				}
				if m["transaction_amount"] != 290.83 {
					t.Fatalf("expected transaction_amount overridden to 290.83, got %v", m["transaction_amount"])
				}
				return "mp-123", "approved", json.RawMessage(`{"id":"mp-123","status":"approved"}`), nil
			})
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Payment) (entities.Payment, error) { return p, nil })

		got, err := uc.CreateForQuote(context.Background(), "q-1", json.RawMessage(`{"payment_method_id":"pix","transaction_amount":1}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != "mp-123" || got.QuoteID != "q-1" {
			t.Fatalf("unexpected payment envelope: %+v", got)
		}
		if got.Status != entities.PaymentStatusApproved {
			t.Fatalf("expected approved status, got %s", got.Status)
		}
		if got.ProviderPayload["id"] != "mp-123" {
			t.Fatalf("expected parsed provider payload, got %+v", got.ProviderPayload)
		}
	})

	t.Run("provider rejection maps to denied", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		quoteRepo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUseCase(repo, quoteRepo, gateway)

		quoteRepo.EXPECT().GetByID(gomock.Any(), "q-1").Return(approvedQuote, nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).
			Return("mp-124", "rejected", json.RawMessage(`{"id":"mp-124","status":"rejected"}`), nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Payment) (entities.Payment, error) { return p, nil })

		got, err := uc.CreateForQuote(context.Background(), "q-1", json.RawMessage(`{}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != entities.PaymentStatusDenied {
			t.Fatalf("expected denied status, got %s", got.Status)
		}
	})

	t.Run("gateway bad request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		quoteRepo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUseCase(nil, quoteRepo, gateway)

		quoteRepo.EXPECT().GetByID(gomock.Any(), "q-1").Return(approvedQuote, nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).
			Return("", "", nil, errors.New(`{"error":"bad_request","status":400}`))

		_, err := uc.CreateForQuote(context.Background(), "q-1", json.RawMessage(`{}`))
		if !errors.Is(err, ErrPaymentGatewayBadRequest) {
			t.Fatalf("expected ErrPaymentGatewayBadRequest, got %v", err)
		}
	})

	t.Run("gateway unauthorized", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		quoteRepo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUseCase(nil, quoteRepo, gateway)

		quoteRepo.EXPECT().GetByID(gomock.Any(), "q-1").Return(approvedQuote, nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).
			Return("", "", nil, errors.New(`{"error":"unauthorized","status":401}`))

		_, err := uc.CreateForQuote(context.Background(), "q-1", json.RawMessage(`{}`))
		if !errors.Is(err, ErrPaymentGatewayUnauthorized) {
			t.Fatalf("expected ErrPaymentGatewayUnauthorized, got %v", err)
		}
	})

	t.Run("other gateway errors pass through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		quoteRepo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUseCase(nil, quoteRepo, gateway)

		quoteRepo.EXPECT().GetByID(gomock.Any(), "q-1").Return(approvedQuote, nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).
			Return("", "", nil, errors.New("connection reset"))

		_, err := uc.CreateForQuote(context.Background(), "q-1", json.RawMessage(`{}`))
		if err == nil || err.Error() != "connection reset" {
			t.Fatalf("expected transport error to pass through, got %v", err)
		}
	})
}

func TestPaymentUseCase_Lookups(t *testing.T) {
	t.Run("get by id not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		uc := NewPaymentUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "mp-1").Return(entities.Payment{}, nil)

		if _, err := uc.GetByID(context.Background(), "mp-1"); !errors.Is(err, ErrPaymentNotFound) {
			t.Fatalf("expected ErrPaymentNotFound, got %v", err)
		}
	})

	t.Run("list by quote id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		uc := NewPaymentUseCase(repo, nil, nil)

		repo.EXPECT().ListByQuoteID(gomock.Any(), "q-1").
			Return([]entities.Payment{{ID: "mp-1", QuoteID: "q-1"}}, nil)

		got, err := uc.ListByQuoteID(context.Background(), "q-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 || got[0].ID != "mp-1" {
			t.Fatalf("unexpected payments: %+v", got)
		}
	})

	t.Run("empty quote id", func(t *testing.T) {
		uc := NewPaymentUseCase(nil, nil, nil)
		if _, err := uc.ListByQuoteID(context.Background(), ""); !errors.Is(err, ErrInvalidPaymentQuoteID) {
			t.Fatalf("expected ErrInvalidPaymentQuoteID, got %v", err)
		}
	})
}
