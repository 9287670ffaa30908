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

var errInvalidCatalogQuery = pkg.NewDomainErrorSimple("INVALID_CATALOG_QUERY", "Invalid catalog query", http.StatusBadRequest)

// CatalogHandler serves the settings and stones the shopper picks from.

type CatalogHandler struct {
	usecase usecase.ICatalogUseCase
}

func NewCatalogHandler(uc usecase.ICatalogUseCase) *CatalogHandler {
	return &CatalogHandler{usecase: uc}
}

func (h *CatalogHandler) ListSettings(c *gin.Context) {
	var query request.ListSettingsRequest
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(errInvalidCatalogQuery.HTTPStatus, errInvalidCatalogQuery.ToHTTPError())
		return
	}

	settings, err := h.usecase.ListSettings(c.Request.Context(), query.ResolveShop(), query.ResolveFilter())
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSettings(settings))
}

func (h *CatalogHandler) GetSetting(c *gin.Context) {
	setting, err := h.usecase.GetSetting(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSetting(setting))
}

func (h *CatalogHandler) ListStones(c *gin.Context) {
	var query request.ListStonesRequest
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(errInvalidCatalogQuery.HTTPStatus, errInvalidCatalogQuery.ToHTTPError())
		return
	}

	stones, err := h.usecase.ListStones(c.Request.Context(), query.ResolveShop(), query.ResolveFilter())
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromStones(stones))
}

func (h *CatalogHandler) GetStone(c *gin.Context) {
	stone, err := h.usecase.GetStone(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromStone(stone))
}

func mapCatalogError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidShop), errors.Is(err, usecase.ErrInvalidCatalogFilter):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSettingNotFound):
		return pkg.NewDomainErrorSimple("SETTING_NOT_FOUND", "Setting not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrStoneNotFound):
		return pkg.NewDomainErrorSimple("STONE_NOT_FOUND", "Stone not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
