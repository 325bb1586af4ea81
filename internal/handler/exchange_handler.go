package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"investpro/internal/service"
)

// ExchangeHandler handles the USD/BRL exchange rate endpoints.
type ExchangeHandler struct {
	rates service.ExchangeRateService
}

// NewExchangeHandler creates a new exchange handler.
func NewExchangeHandler(rates service.ExchangeRateService) *ExchangeHandler {
	return &ExchangeHandler{rates: rates}
}

// CurrentRate proxies a fresh quote from the upstream API.
func (h *ExchangeHandler) CurrentRate(c echo.Context) error {
	quote, err := h.rates.CurrentRate(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, quote)
}

// CachedRate serves the cached quote, refetching when it is stale.
func (h *ExchangeHandler) CachedRate(c echo.Context) error {
	quote, err := h.rates.CachedRate(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, quote)
}
