package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"ringbuilder/internal/adapter/http/handlers/mocks"
	"ringbuilder/internal/domain/entities"
	"ringbuilder/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestInquiryHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing required fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInquiryUseCase(ctrl)
		h := NewInquiryHandler(uc)

		r := gin.New()
		r.POST("/v1/inquiries", h.Create)

		req := httptest.NewRequest(http.MethodPost, "/v1/inquiries", bytes.NewBufferString(`{"shop":"gems.myshopify.com"}`))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInquiryUseCase(ctrl)
		h := NewInquiryHandler(uc)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(entities.Inquiry{}, usecase.ErrInvalidInquiryEmail)

		r := gin.New()
		r.POST("/v1/inquiries", h.Create)

		body := `{"shop":"gems.myshopify.com","name":"Alex","email":"nope","message":"hi"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/inquiries", bytes.NewBufferString(body))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInquiryUseCase(ctrl)
		h := NewInquiryHandler(uc)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(entities.Inquiry{ID: "inq-1", Shop: "gems.myshopify.com"}, nil)

		r := gin.New()
		r.POST("/v1/inquiries", h.Create)

		body := `{"shop":"gems.myshopify.com","name":"Alex","email":"alex@example.com","message":"Is this stone eye-clean?","stone_id":"sto-1"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/inquiries", bytes.NewBufferString(body))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
		}
	})
}

func TestInquiryHandler_ListByShop(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing shop", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInquiryUseCase(ctrl)
		h := NewInquiryHandler(uc)

		uc.EXPECT().ListByShop(gomock.Any(), "").Return(nil, usecase.ErrInvalidShop)

		r := gin.New()
		r.GET("/v1/inquiries", h.ListByShop)

		req := httptest.NewRequest(http.MethodGet, "/v1/inquiries", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInquiryUseCase(ctrl)
		h := NewInquiryHandler(uc)

		uc.EXPECT().ListByShop(gomock.Any(), "gems.myshopify.com").
			Return([]entities.Inquiry{{ID: "inq-1"}}, nil)

		r := gin.New()
		r.GET("/v1/inquiries", h.ListByShop)

		req := httptest.NewRequest(http.MethodGet, "/v1/inquiries?shop=gems.myshopify.com", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
