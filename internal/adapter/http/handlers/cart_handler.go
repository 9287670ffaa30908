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

var errInvalidCartForm = pkg.NewDomainErrorSimple("INVALID_CART_FORM", "Invalid cart form", http.StatusBadRequest)

// CartHandler submits a completed configuration to the shop cart.

type CartHandler struct {
	usecase usecase.ICartUseCase
}

func NewCartHandler(uc usecase.ICartUseCase) *CartHandler {
	return &CartHandler{usecase: uc}
}

// Submit accepts the storefront's multipart cart form. On failure the
// session is left intact so the shopper can retry without re-entering the
// configuration.
func (h *CartHandler) Submit(c *gin.Context) {
	var form request.SubmitCartRequest
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(errInvalidCartForm.HTTPStatus, errInvalidCartForm.ToHTTPError())
		return
	}

	sub, err := h.usecase.Submit(c.Request.Context(), form.ToCommand())
	if err != nil {
		appErr := mapCartError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromCartSubmission(sub))
}

func (h *CartHandler) GetConfiguration(c *gin.Context) {
	cfg, err := h.usecase.GetConfiguration(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapCartError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, cfg)
}

// ListConfigurations is the merchant view of everything submitted to the
// cart for a shop.
func (h *CartHandler) ListConfigurations(c *gin.Context) {
	shop := strings.TrimSpace(c.Query("shop"))
	items, err := h.usecase.ListConfigurations(c.Request.Context(), shop)
	if err != nil {
		appErr := mapCartError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, gin.H{"configurations": items})
}

func mapCartError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidShop), errors.Is(err, usecase.ErrInvalidSessionID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSessionNotFound):
		return pkg.NewDomainErrorSimple("SESSION_NOT_FOUND", "Builder session not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrConfigurationNotFound):
		return pkg.NewDomainErrorSimple("CONFIGURATION_NOT_FOUND", "Ring configuration not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrConfigurationIncomplete):
		return pkg.NewDomainErrorSimple("CONFIGURATION_INCOMPLETE", "Ring configuration is incomplete", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrPriceChanged):
		return pkg.NewDomainErrorSimple("PRICE_CHANGED", "Configuration price changed, refresh and try again", http.StatusConflict)
	case errors.Is(err, usecase.ErrAlreadySubmitted):
		return pkg.NewDomainErrorSimple("ALREADY_SUBMITTED", "Configuration was already added to the cart", http.StatusConflict)
	case errors.Is(err, usecase.ErrCartGatewayUnavailable):
		return pkg.NewDomainErrorSimple("CART_UNAVAILABLE", "Cart is temporarily unavailable", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("CART_SUBMIT_FAILED", "Failed to add to cart", err, http.StatusBadGateway)
	}
}
