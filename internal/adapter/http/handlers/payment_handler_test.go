package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"rentpulse/internal/adapter/http/handlers/mocks"
	"rentpulse/internal/domain/entities"
	"rentpulse/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestPaymentHandler_CreatePaymentByQuoteID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		t.Setenv("PAYMENT_GATEWAY_MOCK", "")
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/payments/:quote_id", h.CreatePaymentByQuoteID)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/q-1", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid payload tolerated in mock mode", func(t *testing.T) {
		t.Setenv("PAYMENT_GATEWAY_MOCK", "true")
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		uc.EXPECT().
			CreateForQuote(gomock.Any(), "q-1", json.RawMessage("{}")).
			Return(entities.Payment{ID: "pay-1", QuoteID: "q-1", Status: entities.PaymentStatusApproved}, nil)

		r := gin.New()
		r.POST("/v1/payments/:quote_id", h.CreatePaymentByQuoteID)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/q-1", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("unwraps provider_payload envelope", func(t *testing.T) {
		t.Setenv("PAYMENT_GATEWAY_MOCK", "")
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		uc.EXPECT().
			CreateForQuote(gomock.Any(), "q-1", gomock.Any()).
			DoAndReturn(func(_ interface{}, _ string, payload json.RawMessage) (entities.Payment, error) {
				var got map[string]interface{}
				if err := json.Unmarshal(payload, &got); err != nil {
					t.Fatalf("payload is not valid json: %v", err)
				}
				if got["payment_method_id"] != "pix" {
					t.Fatalf("expected unwrapped payload, got %s", string(payload))
				}
				return entities.Payment{ID: "pay-1", QuoteID: "q-1", Status: entities.PaymentStatusApproved}, nil
			})

		r := gin.New()
		r.POST("/v1/payments/:quote_id", h.CreatePaymentByQuoteID)

		body := `{"provider_payload":{"payment_method_id":"pix","transaction_amount":290.83}}`
		req := httptest.NewRequest(http.MethodPost, "/v1/payments/q-1", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var resp map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp["payment_id"] != "pay-1" {
			t.Fatalf("expected payment_id pay-1, got %v", resp["payment_id"])
		}
	})

	t.Run("quote not approved", func(t *testing.T) {
		t.Setenv("PAYMENT_GATEWAY_MOCK", "")
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		uc.EXPECT().
			CreateForQuote(gomock.Any(), "q-1", gomock.Any()).
			Return(entities.Payment{}, usecase.ErrQuoteNotApproved)

		r := gin.New()
		r.POST("/v1/payments/:quote_id", h.CreatePaymentByQuoteID)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/q-1", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("gateway unauthorized", func(t *testing.T) {
		t.Setenv("PAYMENT_GATEWAY_MOCK", "")
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		uc.EXPECT().
			CreateForQuote(gomock.Any(), "q-1", gomock.Any()).
			Return(entities.Payment{}, usecase.ErrPaymentGatewayUnauthorized)

		r := gin.New()
		r.POST("/v1/payments/:quote_id", h.CreatePaymentByQuoteID)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/q-1", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})
}

func TestPaymentHandler_GetPaymentByQuoteID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("no payments", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		uc.EXPECT().
			ListByQuoteID(gomock.Any(), "q-1").
			Return(nil, nil)

		r := gin.New()
		r.GET("/v1/payments/quote/:quote_id", h.GetPaymentByQuoteID)

		req := httptest.NewRequest(http.MethodGet, "/v1/payments/quote/q-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("picks latest payment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		older := entities.Payment{ID: "pay-1", QuoteID: "q-1", Date: time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)}
		newer := entities.Payment{ID: "pay-2", QuoteID: "q-1", Date: time.Date(2026, time.June, 5, 0, 0, 0, 0, time.UTC)}
		uc.EXPECT().
			ListByQuoteID(gomock.Any(), "q-1").
			Return([]entities.Payment{older, newer}, nil)

		r := gin.New()
		r.GET("/v1/payments/quote/:quote_id", h.GetPaymentByQuoteID)

		req := httptest.NewRequest(http.MethodGet, "/v1/payments/quote/q-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var got map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if got["payment_id"] != "pay-2" {
			t.Fatalf("expected latest payment pay-2, got %v", got["payment_id"])
		}
	})
}

func TestPaymentHandler_GetPaymentByID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		h := NewPaymentHandler(uc)

		uc.EXPECT().
			GetByID(gomock.Any(), "missing").
			Return(entities.Payment{}, usecase.ErrPaymentNotFound)

		r := gin.New()
		r.GET("/v1/payments/:payment_id", h.GetPaymentByID)

		req := httptest.NewRequest(http.MethodGet, "/v1/payments/missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
