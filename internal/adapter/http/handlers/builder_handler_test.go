package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ringbuilder/internal/adapter/http/handlers/mocks"
	"ringbuilder/internal/domain/entities"
	"ringbuilder/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func sessionResult() usecase.SessionResult {
	s := entities.NewBuilderSession("sess-1", "gems.myshopify.com", time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))
	return usecase.SessionResult{Session: s, Steps: s.StepStates()}
}

func TestBuilderHandler_ResumeSession(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBuilderUseCase(ctrl)
		h := NewBuilderHandler(uc)

		r := gin.New()
		r.POST("/v1/builder/sessions", h.ResumeSession)

		req := httptest.NewRequest(http.MethodPost, "/v1/builder/sessions", bytes.NewBufferString("{"))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing shop", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBuilderUseCase(ctrl)
		h := NewBuilderHandler(uc)

		r := gin.New()
		r.POST("/v1/builder/sessions", h.ResumeSession)

		req := httptest.NewRequest(http.MethodPost, "/v1/builder/sessions", bytes.NewBufferString(`{"session_id":"sess-1"}`))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBuilderUseCase(ctrl)
		h := NewBuilderHandler(uc)

		uc.EXPECT().ResumeSession(gomock.Any(), "gems.myshopify.com", "sess-1").Return(sessionResult(), nil)

		r := gin.New()
		r.POST("/v1/builder/sessions", h.ResumeSession)

		body := `{"shop":"gems.myshopify.com","session_id":"sess-1"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/builder/sessions", bytes.NewBufferString(body))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}

		var resp map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if resp["id"] != "sess-1" {
			t.Fatalf("expected session id in response, got %v", resp["id"])
		}
		if _, ok := resp["price"]; !ok {
			t.Fatalf("expected price breakdown in response")
		}
		if _, ok := resp["steps"]; !ok {
			t.Fatalf("expected step states in response")
		}
	})
}

func TestBuilderHandler_GetSession(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing shop query", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBuilderUseCase(ctrl)
		h := NewBuilderHandler(uc)

		r := gin.New()
		r.GET("/v1/builder/sessions/:id", h.GetSession)

		req := httptest.NewRequest(http.MethodGet, "/v1/builder/sessions/sess-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBuilderUseCase(ctrl)
		h := NewBuilderHandler(uc)

		uc.EXPECT().GetSession(gomock.Any(), "sess-1", "gems.myshopify.com").
			Return(usecase.SessionResult{}, usecase.ErrSessionNotFound)

		r := gin.New()
		r.GET("/v1/builder/sessions/:id", h.GetSession)

		req := httptest.NewRequest(http.MethodGet, "/v1/builder/sessions/sess-1?shop=gems.myshopify.com", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBuilderUseCase(ctrl)
		h := NewBuilderHandler(uc)

		uc.EXPECT().GetSession(gomock.Any(), "sess-1", "gems.myshopify.com").Return(sessionResult(), nil)

		r := gin.New()
		r.GET("/v1/builder/sessions/:id", h.GetSession)

		req := httptest.NewRequest(http.MethodGet, "/v1/builder/sessions/sess-1?shop=gems.myshopify.com", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestBuilderHandler_SelectSetting(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing required fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBuilderUseCase(ctrl)
		h := NewBuilderHandler(uc)

		r := gin.New()
		r.PATCH("/v1/builder/sessions/:id/setting", h.SelectSetting)

		req := httptest.NewRequest(http.MethodPatch, "/v1/builder/sessions/sess-1/setting?shop=gems.myshopify.com", bytes.NewBufferString(`{}`))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("setting not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBuilderUseCase(ctrl)
		h := NewBuilderHandler(uc)

		uc.EXPECT().SelectSetting(gomock.Any(), "sess-1", "gems.myshopify.com", "set-9", entities.Metal14KWhiteGold).
			Return(usecase.SessionResult{}, usecase.ErrSettingNotFound)

		r := gin.New()
		r.PATCH("/v1/builder/sessions/:id/setting", h.SelectSetting)

		body := `{"setting_id":"set-9","metal_type":"14k_white_gold"}`
		req := httptest.NewRequest(http.MethodPatch, "/v1/builder/sessions/sess-1/setting?shop=gems.myshopify.com", bytes.NewBufferString(body))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBuilderUseCase(ctrl)
		h := NewBuilderHandler(uc)

		uc.EXPECT().SelectSetting(gomock.Any(), "sess-1", "gems.myshopify.com", "set-1", entities.Metal14KWhiteGold).
			Return(sessionResult(), nil)

		r := gin.New()
		r.PATCH("/v1/builder/sessions/:id/setting", h.SelectSetting)

		body := `{"setting_id":"set-1","metal_type":"14k_white_gold"}`
		req := httptest.NewRequest(http.MethodPatch, "/v1/builder/sessions/sess-1/setting?shop=gems.myshopify.com", bytes.NewBufferString(body))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestBuilderHandler_SelectStone(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("incompatible shape", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBuilderUseCase(ctrl)
		h := NewBuilderHandler(uc)

		uc.EXPECT().SelectStone(gomock.Any(), "sess-1", "gems.myshopify.com", "sto-1").
			Return(usecase.SessionResult{}, usecase.ErrIncompatibleStoneShape)

		r := gin.New()
		r.PATCH("/v1/builder/sessions/:id/stone", h.SelectStone)

		req := httptest.NewRequest(http.MethodPatch, "/v1/builder/sessions/sess-1/stone?shop=gems.myshopify.com", bytes.NewBufferString(`{"stone_id":"sto-1"}`))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})
}

func TestBuilderHandler_UpdateEngraving(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("text too long", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBuilderUseCase(ctrl)
		h := NewBuilderHandler(uc)

		uc.EXPECT().UpdateEngraving(gomock.Any(), "sess-1", "gems.myshopify.com", true, gomock.Any(), gomock.Any(), gomock.Any()).
			Return(usecase.SessionResult{}, usecase.ErrEngravingTooLong)

		r := gin.New()
		r.PATCH("/v1/builder/sessions/:id/engraving", h.UpdateEngraving)

		body := `{"enabled":true,"text":"this engraving text is way too long"}`
		req := httptest.NewRequest(http.MethodPatch, "/v1/builder/sessions/sess-1/engraving?shop=gems.myshopify.com", bytes.NewBufferString(body))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}

		var resp map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if resp["code"] != "ENGRAVING_TOO_LONG" {
			t.Fatalf("expected ENGRAVING_TOO_LONG, got %v", resp["code"])
		}
	})
}

func TestBuilderHandler_GoToStep(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("submitted session conflicts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBuilderUseCase(ctrl)
		h := NewBuilderHandler(uc)

		uc.EXPECT().GoToStep(gomock.Any(), "sess-1", "gems.myshopify.com", entities.StepReview).
			Return(usecase.SessionResult{}, usecase.ErrSessionSubmitted)

		r := gin.New()
		r.PATCH("/v1/builder/sessions/:id/step", h.GoToStep)

		req := httptest.NewRequest(http.MethodPatch, "/v1/builder/sessions/sess-1/step?shop=gems.myshopify.com", bytes.NewBufferString(`{"step":4}`))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("gated step returns the unchanged session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBuilderUseCase(ctrl)
		h := NewBuilderHandler(uc)

		uc.EXPECT().GoToStep(gomock.Any(), "sess-1", "gems.myshopify.com", entities.StepReview).
			Return(sessionResult(), nil)

		r := gin.New()
		r.PATCH("/v1/builder/sessions/:id/step", h.GoToStep)

		req := httptest.NewRequest(http.MethodPatch, "/v1/builder/sessions/sess-1/step?shop=gems.myshopify.com", bytes.NewBufferString(`{"step":4}`))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var resp map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if resp["current_step"] != float64(entities.StepSetting) {
			t.Fatalf("expected current step unchanged, got %v", resp["current_step"])
		}
	})
}

func TestBuilderHandler_ResetSession(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIBuilderUseCase(ctrl)
	h := NewBuilderHandler(uc)

	uc.EXPECT().ResetSession(gomock.Any(), "sess-1", "gems.myshopify.com").Return(sessionResult(), nil)

	r := gin.New()
	r.DELETE("/v1/builder/sessions/:id", h.ResetSession)

	req := httptest.NewRequest(http.MethodDelete, "/v1/builder/sessions/sess-1?shop=gems.myshopify.com", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}
