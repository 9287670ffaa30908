package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"ringbuilder/internal/adapter/http/handlers/mocks"
	"ringbuilder/internal/domain/entities"
	"ringbuilder/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func postCartForm(r *gin.Engine, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/v1/cart", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func cartForm() url.Values {
	return url.Values{
		"shop":        {"gems.myshopify.com"},
		"session_id":  {"sess-1"},
		"setting_id":  {"set-1"},
		"stone_id":    {"sto-1"},
		"metal_type":  {"14k_white_gold"},
		"ring_size":   {"6.5"},
		"total_price": {"4935"},
	}
}

func TestCartHandler_Submit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing required fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICartUseCase(ctrl)
		h := NewCartHandler(uc)

		r := gin.New()
		r.POST("/v1/cart", h.Submit)

		w := postCartForm(r, url.Values{"shop": {"gems.myshopify.com"}})
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("incomplete configuration", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICartUseCase(ctrl)
		h := NewCartHandler(uc)

		uc.EXPECT().Submit(gomock.Any(), gomock.Any()).
			Return(usecase.CartSubmission{}, usecase.ErrConfigurationIncomplete)

		r := gin.New()
		r.POST("/v1/cart", h.Submit)

		w := postCartForm(r, cartForm())
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("stale price conflicts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICartUseCase(ctrl)
		h := NewCartHandler(uc)

		uc.EXPECT().Submit(gomock.Any(), gomock.Any()).
			Return(usecase.CartSubmission{}, usecase.ErrPriceChanged)

		r := gin.New()
		r.POST("/v1/cart", h.Submit)

		w := postCartForm(r, cartForm())
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		var resp map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if resp["code"] != "PRICE_CHANGED" {
			t.Fatalf("expected PRICE_CHANGED, got %v", resp["code"])
		}
	})

	t.Run("double submission conflicts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICartUseCase(ctrl)
		h := NewCartHandler(uc)

		uc.EXPECT().Submit(gomock.Any(), gomock.Any()).
			Return(usecase.CartSubmission{}, usecase.ErrAlreadySubmitted)

		r := gin.New()
		r.POST("/v1/cart", h.Submit)

		w := postCartForm(r, cartForm())
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("gateway unavailable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICartUseCase(ctrl)
		h := NewCartHandler(uc)

		uc.EXPECT().Submit(gomock.Any(), gomock.Any()).
			Return(usecase.CartSubmission{}, usecase.ErrCartGatewayUnavailable)

		r := gin.New()
		r.POST("/v1/cart", h.Submit)

		w := postCartForm(r, cartForm())
		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})

	t.Run("gateway failure is a bad gateway", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICartUseCase(ctrl)
		h := NewCartHandler(uc)

		uc.EXPECT().Submit(gomock.Any(), gomock.Any()).
			Return(usecase.CartSubmission{}, errors.New("cart endpoint down"))

		r := gin.New()
		r.POST("/v1/cart", h.Submit)

		w := postCartForm(r, cartForm())
		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICartUseCase(ctrl)
		h := NewCartHandler(uc)

		uc.EXPECT().Submit(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ interface{}, cmd usecase.SubmitCartCommand) (usecase.CartSubmission, error) {
				if cmd.Shop != "gems.myshopify.com" || cmd.SessionID != "sess-1" {
					t.Fatalf("unexpected command %+v", cmd)
				}
				return usecase.CartSubmission{
					Configuration: entities.RingConfiguration{
						ID:          "cfg-1",
						TotalPrice:  4935,
						CartDataRaw: json.RawMessage(`{"id":123}`),
					},
					RedirectURL: "https://gems.myshopify.com/cart",
				}, nil
			})

		r := gin.New()
		r.POST("/v1/cart", h.Submit)

		w := postCartForm(r, cartForm())
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
		}

		var resp map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if resp["configuration_id"] != "cfg-1" {
			t.Fatalf("expected configuration id, got %v", resp["configuration_id"])
		}
		if resp["redirect_url"] != "https://gems.myshopify.com/cart" {
			t.Fatalf("expected redirect url, got %v", resp["redirect_url"])
		}
		if resp["total_price"] != float64(4935) {
			t.Fatalf("expected total 4935, got %v", resp["total_price"])
		}
	})
}

func TestCartHandler_GetConfiguration(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICartUseCase(ctrl)
		h := NewCartHandler(uc)

		uc.EXPECT().GetConfiguration(gomock.Any(), "cfg-9").
			Return(entities.RingConfiguration{}, usecase.ErrConfigurationNotFound)

		r := gin.New()
		r.GET("/v1/cart/configurations/:id", h.GetConfiguration)

		req := httptest.NewRequest(http.MethodGet, "/v1/cart/configurations/cfg-9", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICartUseCase(ctrl)
		h := NewCartHandler(uc)

		uc.EXPECT().GetConfiguration(gomock.Any(), "cfg-1").
			Return(entities.RingConfiguration{ID: "cfg-1"}, nil)

		r := gin.New()
		r.GET("/v1/cart/configurations/:id", h.GetConfiguration)

		req := httptest.NewRequest(http.MethodGet, "/v1/cart/configurations/cfg-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestCartHandler_ListConfigurations(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing shop", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICartUseCase(ctrl)
		h := NewCartHandler(uc)

		uc.EXPECT().ListConfigurations(gomock.Any(), "").
			Return(nil, usecase.ErrInvalidShop)

		r := gin.New()
		r.GET("/v1/cart/configurations", h.ListConfigurations)

		req := httptest.NewRequest(http.MethodGet, "/v1/cart/configurations", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICartUseCase(ctrl)
		h := NewCartHandler(uc)

		uc.EXPECT().ListConfigurations(gomock.Any(), "gems.myshopify.com").
			Return([]entities.RingConfiguration{{ID: "cfg-1"}, {ID: "cfg-2"}}, nil)

		r := gin.New()
		r.GET("/v1/cart/configurations", h.ListConfigurations)

		req := httptest.NewRequest(http.MethodGet, "/v1/cart/configurations?shop=gems.myshopify.com", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		items, ok := resp["configurations"].([]interface{})
		if !ok || len(items) != 2 {
			t.Fatalf("expected 2 configurations, got %v", resp["configurations"])
		}
	})
}
