package handlers

import (
	"errors"
	"net/http"
	"strings"

	request "ringbuilder/internal/adapter/http/dto/request"
	response "ringbuilder/internal/adapter/http/dto/response"
	"ringbuilder/internal/usecase"
	"ringbuilder/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidInquiryPayload = pkg.NewDomainErrorSimple("INVALID_INQUIRY_INPUT", "Invalid inquiry payload", http.StatusBadRequest)

// InquiryHandler records shopper questions and relays them to the merchant.

type InquiryHandler struct {
	usecase usecase.IInquiryUseCase
}

func NewInquiryHandler(uc usecase.IInquiryUseCase) *InquiryHandler {
	return &InquiryHandler{usecase: uc}
}

func (h *InquiryHandler) Create(c *gin.Context) {
	var payload request.InquiryRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidInquiryPayload.HTTPStatus, errInvalidInquiryPayload.ToHTTPError())
		return
	}

	inquiry, err := h.usecase.Create(c.Request.Context(), payload.ToCommand())
	if err != nil {
		appErr := mapInquiryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromInquiry(inquiry))
}

func (h *InquiryHandler) ListByShop(c *gin.Context) {
	shop := strings.TrimSpace(c.Query("shop"))
	items, err := h.usecase.ListByShop(c.Request.Context(), shop)
	if err != nil {
		appErr := mapInquiryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, gin.H{"inquiries": response.FromInquiries(items)})
}

func mapInquiryError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidShop),
		errors.Is(err, usecase.ErrInvalidInquiryName),
		errors.Is(err, usecase.ErrInvalidInquiryEmail),
		errors.Is(err, usecase.ErrInvalidInquiryMessage):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
