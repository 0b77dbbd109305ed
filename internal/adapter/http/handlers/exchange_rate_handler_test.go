package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"trendy_logistics/internal/adapter/http/handlers/mocks"
	"trendy_logistics/internal/domain/entities"
	"trendy_logistics/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestExchangeRateHandler_Convert(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("validation error maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIExchangeRateUseCase(ctrl)
		h := NewExchangeRateHandler(uc)

		r := gin.New()
		r.GET("/v1/exchange-rates/convert", h.Convert)

		uc.EXPECT().Convert(gomock.Any(), "", "", "").Return(entities.Conversion{}, &usecase.ValidationError{})

		req := httptest.NewRequest(http.MethodGet, "/v1/exchange-rates/convert", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing rate maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIExchangeRateUseCase(ctrl)
		h := NewExchangeRateHandler(uc)

		r := gin.New()
		r.GET("/v1/exchange-rates/convert", h.Convert)

		uc.EXPECT().Convert(gomock.Any(), "USD", "GBP", "100").Return(entities.Conversion{}, &usecase.NotFoundError{})

		req := httptest.NewRequest(http.MethodGet, "/v1/exchange-rates/convert?from=USD&to=GBP&amount=100", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("unexpected error maps to 500 without leaking details", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIExchangeRateUseCase(ctrl)
		h := NewExchangeRateHandler(uc)

		r := gin.New()
		r.GET("/v1/exchange-rates/convert", h.Convert)

		uc.EXPECT().Convert(gomock.Any(), "USD", "NGN", "100").Return(entities.Conversion{}, errors.New("dynamodb: connection reset"))

		req := httptest.NewRequest(http.MethodGet, "/v1/exchange-rates/convert?from=USD&to=NGN&amount=100", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		var body map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body["message"] != "An internal error occurred" {
			t.Fatalf("expected generic message, got %q", body["message"])
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIExchangeRateUseCase(ctrl)
		h := NewExchangeRateHandler(uc)

		r := gin.New()
		r.GET("/v1/exchange-rates/convert", h.Convert)

		uc.EXPECT().Convert(gomock.Any(), "USD", "NGN", "100").Return(entities.Conversion{
			From:           entities.Currency{Code: "USD", Name: "US Dollar"},
			To:             entities.Currency{Code: "NGN", Name: "Nigerian Naira"},
			Rate:           1500,
			Amount:         100,
			ConvertedFull:  150000,
			ConvertedRound: 150000,
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/exchange-rates/convert?from=USD&to=NGN&amount=100", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			From      struct{ Code string }
			Rate      float64
			Converted struct {
				Round float64
				Full  float64
			}
			Inverted bool
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body.From.Code != "USD" || body.Rate != 1500 || body.Converted.Full != 150000 {
			t.Fatalf("unexpected body: %+v", body)
		}
	})
}
