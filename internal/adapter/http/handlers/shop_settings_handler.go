package handlers

import (
	"errors"
	"net/http"

	request "ringbuilder/internal/adapter/http/dto/request"
	response "ringbuilder/internal/adapter/http/dto/response"
	"ringbuilder/internal/usecase"
	"ringbuilder/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidSettingsPayload = pkg.NewDomainErrorSimple("INVALID_SETTINGS_INPUT", "Invalid settings payload", http.StatusBadRequest)

// ShopSettingsHandler serves the merchant admin pricing configuration.

type ShopSettingsHandler struct {
	usecase usecase.IShopSettingsUseCase
}

func NewShopSettingsHandler(uc usecase.IShopSettingsUseCase) *ShopSettingsHandler {
	return &ShopSettingsHandler{usecase: uc}
}

func (h *ShopSettingsHandler) Get(c *gin.Context) {
	cfg, err := h.usecase.Get(c.Request.Context(), c.Param("shop"))
	if err != nil {
		appErr := mapShopSettingsError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromShopSettings(cfg))
}

func (h *ShopSettingsHandler) Put(c *gin.Context) {
	var payload request.ShopSettingsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSettingsPayload.HTTPStatus, errInvalidSettingsPayload.ToHTTPError())
		return
	}

	cfg, err := h.usecase.Put(c.Request.Context(), payload.ToEntity(c.Param("shop")))
	if err != nil {
		appErr := mapShopSettingsError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromShopSettings(cfg))
}

func mapShopSettingsError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidShop),
		errors.Is(err, usecase.ErrInvalidMarkupPercent),
		errors.Is(err, usecase.ErrInvalidEngravingFee),
		errors.Is(err, usecase.ErrInvalidSideStoneTier),
		errors.Is(err, usecase.ErrInvalidRingSizeOption):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
