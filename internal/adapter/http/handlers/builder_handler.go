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

var (
	errInvalidBuilderPayload = pkg.NewDomainErrorSimple("INVALID_BUILDER_INPUT", "Invalid builder payload", http.StatusBadRequest)
	errMissingShopContext    = pkg.NewDomainErrorSimple("MISSING_SHOP", "Missing shop context", http.StatusBadRequest)
)

// BuilderHandler handles the storefront wizard endpoints. Every mutation
// responds with the full session plus its derived price breakdown and step
// states, so the storefront never has to compute price or gating itself.

type BuilderHandler struct {
	usecase usecase.IBuilderUseCase
}

func NewBuilderHandler(uc usecase.IBuilderUseCase) *BuilderHandler {
	return &BuilderHandler{usecase: uc}
}

// ResumeSession restores the shopper's stored session or starts a fresh
// one. A stale, foreign-shop, or unreadable stored session silently yields
// a fresh session.
func (h *BuilderHandler) ResumeSession(c *gin.Context) {
	var payload request.ResumeSessionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBuilderPayload.HTTPStatus, errInvalidBuilderPayload.ToHTTPError())
		return
	}

	res, err := h.usecase.ResumeSession(c.Request.Context(), payload.ResolveShop(), payload.SessionID)
	if err != nil {
		appErr := mapBuilderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSessionResult(res))
}

func (h *BuilderHandler) GetSession(c *gin.Context) {
	shop, ok := shopContext(c)
	if !ok {
		return
	}

	res, err := h.usecase.GetSession(c.Request.Context(), c.Param("id"), shop)
	if err != nil {
		appErr := mapBuilderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSessionResult(res))
}

func (h *BuilderHandler) SelectSetting(c *gin.Context) {
	shop, ok := shopContext(c)
	if !ok {
		return
	}
	var payload request.SelectSettingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBuilderPayload.HTTPStatus, errInvalidBuilderPayload.ToHTTPError())
		return
	}

	res, err := h.usecase.SelectSetting(c.Request.Context(), c.Param("id"), shop, payload.SettingID, payload.ResolveMetal())
	if err != nil {
		appErr := mapBuilderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSessionResult(res))
}

func (h *BuilderHandler) SelectStone(c *gin.Context) {
	shop, ok := shopContext(c)
	if !ok {
		return
	}
	var payload request.SelectStoneRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBuilderPayload.HTTPStatus, errInvalidBuilderPayload.ToHTTPError())
		return
	}

	res, err := h.usecase.SelectStone(c.Request.Context(), c.Param("id"), shop, payload.StoneID)
	if err != nil {
		appErr := mapBuilderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSessionResult(res))
}

func (h *BuilderHandler) UpdateMetalType(c *gin.Context) {
	shop, ok := shopContext(c)
	if !ok {
		return
	}
	var payload request.UpdateMetalRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBuilderPayload.HTTPStatus, errInvalidBuilderPayload.ToHTTPError())
		return
	}

	res, err := h.usecase.UpdateMetalType(c.Request.Context(), c.Param("id"), shop, payload.ResolveMetal())
	if err != nil {
		appErr := mapBuilderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSessionResult(res))
}

func (h *BuilderHandler) UpdateRingSize(c *gin.Context) {
	shop, ok := shopContext(c)
	if !ok {
		return
	}
	var payload request.UpdateRingSizeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBuilderPayload.HTTPStatus, errInvalidBuilderPayload.ToHTTPError())
		return
	}

	res, err := h.usecase.UpdateRingSize(c.Request.Context(), c.Param("id"), shop, payload.RingSize)
	if err != nil {
		appErr := mapBuilderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSessionResult(res))
}

func (h *BuilderHandler) UpdateSideStones(c *gin.Context) {
	shop, ok := shopContext(c)
	if !ok {
		return
	}
	var payload request.UpdateSideStonesRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBuilderPayload.HTTPStatus, errInvalidBuilderPayload.ToHTTPError())
		return
	}

	res, err := h.usecase.UpdateSideStones(c.Request.Context(), c.Param("id"), shop, payload.Quality, payload.Quantity)
	if err != nil {
		appErr := mapBuilderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSessionResult(res))
}

func (h *BuilderHandler) UpdateEngraving(c *gin.Context) {
	shop, ok := shopContext(c)
	if !ok {
		return
	}
	var payload request.UpdateEngravingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBuilderPayload.HTTPStatus, errInvalidBuilderPayload.ToHTTPError())
		return
	}

	res, err := h.usecase.UpdateEngraving(c.Request.Context(), c.Param("id"), shop, payload.Enabled, payload.Text, payload.Font, payload.Position)
	if err != nil {
		appErr := mapBuilderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSessionResult(res))
}

func (h *BuilderHandler) UpdateGiftMessage(c *gin.Context) {
	shop, ok := shopContext(c)
	if !ok {
		return
	}
	var payload request.UpdateGiftMessageRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBuilderPayload.HTTPStatus, errInvalidBuilderPayload.ToHTTPError())
		return
	}

	res, err := h.usecase.UpdateGiftMessage(c.Request.Context(), c.Param("id"), shop, payload.Enabled, payload.Message)
	if err != nil {
		appErr := mapBuilderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSessionResult(res))
}

// GoToStep navigates the wizard. A gated target returns 200 with the
// unchanged session: the storefront treats a disabled tab click as a
// no-op, not an error.
func (h *BuilderHandler) GoToStep(c *gin.Context) {
	shop, ok := shopContext(c)
	if !ok {
		return
	}
	var payload request.GoToStepRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBuilderPayload.HTTPStatus, errInvalidBuilderPayload.ToHTTPError())
		return
	}

	res, err := h.usecase.GoToStep(c.Request.Context(), c.Param("id"), shop, payload.ResolveStep())
	if err != nil {
		appErr := mapBuilderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSessionResult(res))
}

func (h *BuilderHandler) ResetSession(c *gin.Context) {
	shop, ok := shopContext(c)
	if !ok {
		return
	}

	res, err := h.usecase.ResetSession(c.Request.Context(), c.Param("id"), shop)
	if err != nil {
		appErr := mapBuilderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSessionResult(res))
}

func shopContext(c *gin.Context) (string, bool) {
	shop := strings.TrimSpace(c.Query("shop"))
	if shop == "" {
		c.JSON(errMissingShopContext.HTTPStatus, errMissingShopContext.ToHTTPError())
		return "", false
	}
	return shop, true
}

func mapBuilderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidShop),
		errors.Is(err, usecase.ErrInvalidSessionID),
		errors.Is(err, usecase.ErrInvalidMetalType),
		errors.Is(err, usecase.ErrInvalidRingSize),
		errors.Is(err, usecase.ErrInvalidSideStoneQuality),
		errors.Is(err, usecase.ErrInvalidSideStoneQty),
		errors.Is(err, usecase.ErrInvalidStep):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEngravingTooLong):
		return pkg.NewDomainErrorSimple("ENGRAVING_TOO_LONG", "Engraving text exceeds the maximum length", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrGiftMessageTooLong):
		return pkg.NewDomainErrorSimple("GIFT_MESSAGE_TOO_LONG", "Gift message exceeds the maximum length", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrIncompatibleStoneShape):
		return pkg.NewDomainErrorSimple("INCOMPATIBLE_STONE_SHAPE", "Stone shape is not compatible with the selected setting", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrSessionNotFound):
		return pkg.NewDomainErrorSimple("SESSION_NOT_FOUND", "Builder session not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSettingNotFound):
		return pkg.NewDomainErrorSimple("SETTING_NOT_FOUND", "Setting not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrStoneNotFound):
		return pkg.NewDomainErrorSimple("STONE_NOT_FOUND", "Stone not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSessionSubmitted):
		return pkg.NewDomainErrorSimple("SESSION_SUBMITTED", "Builder session was already submitted", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
