package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"rentpulse/internal/adapter/http/handlers/mocks"
	"rentpulse/internal/domain/entities"
	"rentpulse/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestAdvisorHandler_Recommend(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAdvisorUseCase(ctrl)
		h := NewAdvisorHandler(uc)

		r := gin.New()
		r.POST("/v1/advisor/recommendation", h.Recommend)

		req := httptest.NewRequest(http.MethodPost, "/v1/advisor/recommendation", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("check-out before check-in", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAdvisorUseCase(ctrl)
		h := NewAdvisorHandler(uc)

		r := gin.New()
		r.POST("/v1/advisor/recommendation", h.Recommend)

		body := `{"city":"porto","base_price":90,"check_in":"2026-09-10","check_out":"2026-09-08"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/advisor/recommendation", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid base price", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAdvisorUseCase(ctrl)
		h := NewAdvisorHandler(uc)

		uc.EXPECT().
			Recommend(gomock.Any(), gomock.Any()).
			Return(entities.PricingRecommendation{}, usecase.ErrInvalidBasePrice)

		r := gin.New()
		r.POST("/v1/advisor/recommendation", h.Recommend)

		body := `{"city":"porto","base_price":-10}`
		req := httptest.NewRequest(http.MethodPost, "/v1/advisor/recommendation", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAdvisorUseCase(ctrl)
		h := NewAdvisorHandler(uc)

		rec := entities.PricingRecommendation{
			BasePrice:        90,
			RecommendedPrice: 104.4,
			Confidence:       72,
			Reasoning:        "High season and a festival nearby support a premium.",
		}
		uc.EXPECT().
			Recommend(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ interface{}, q entities.AdvisorQuery) (entities.PricingRecommendation, error) {
				if q.City != "porto" {
					t.Fatalf("expected city porto, got %s", q.City)
				}
				if q.CheckOut.Sub(q.CheckIn).Hours() != 48 {
					t.Fatalf("expected a 2-night stay, got %s to %s", q.CheckIn, q.CheckOut)
				}
				return rec, nil
			})

		r := gin.New()
		r.POST("/v1/advisor/recommendation", h.Recommend)

		body := `{"city":"porto","base_price":90,"check_in":"2026-09-10","check_out":"2026-09-12"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/advisor/recommendation", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var got map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if got["recommended_price"] != 104.4 {
			t.Fatalf("expected recommended_price 104.4, got %v", got["recommended_price"])
		}
	})
}
