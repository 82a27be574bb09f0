package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/swiftremit/money_transfer_app/internal/apperrors"
	portssvc "github.com/swiftremit/money_transfer_app/internal/core/ports/services"
	"github.com/swiftremit/money_transfer_app/internal/dto"
	"github.com/swiftremit/money_transfer_app/internal/middleware"
)

// ratesHandler handles HTTP requests related to exchange rates and quotes.
type ratesHandler struct {
	fxService portssvc.FXSvcFacade
}

// newRatesHandler creates a new ratesHandler.
func newRatesHandler(fx portssvc.FXSvcFacade) *ratesHandler {
	return &ratesHandler{fxService: fx}
}

// registerRatesRoutes registers routes related to exchange rates.
func registerRatesRoutes(rg *gin.RouterGroup, fx portssvc.FXSvcFacade) {
	h := newRatesHandler(fx)

	rates := rg.Group("/rates")
	{
		rates.GET("", h.getRates)
		rates.GET("/convert", h.convert)
	}
}

// getRates godoc
// @Summary Get current exchange rates
// @Description Retrieves the current rate table for a base currency. Always succeeds; a stale or fallback table is served when the live source is unavailable.
// @Tags rates
// @Produce json
// @Param base query string false "Base currency (3-letter code)" default(USD)
// @Success 200 {object} dto.RatesResponse
// @Failure 400 {object} map[string]string "Invalid base currency"
// @Security BearerAuth
// @Router /rates [get]
func (h *ratesHandler) getRates(c *gin.Context) {
	var params dto.RatesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	table := h.fxService.GetCurrentRates(c.Request.Context(), params.Base)
	c.JSON(http.StatusOK, dto.ToRatesResponse(table))
}

// convert godoc
// @Summary Quote a currency conversion
// @Description Prices a prospective transfer: converted amount, exchange rate, fees and total cost.
// @Tags rates
// @Produce json
// @Param amount query number true "Amount in source currency"
// @Param from query string true "Source currency (3-letter code)"
// @Param to query string true "Target currency (3-letter code)"
// @Success 200 {object} dto.ConversionResponse
// @Failure 400 {object} map[string]string "Invalid parameters"
// @Failure 422 {object} map[string]string "Rate unavailable for currency pair"
// @Security BearerAuth
// @Router /rates/convert [get]
func (h *ratesHandler) convert(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ConvertParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	result, err := h.fxService.Quote(c.Request.Context(), params.Amount, params.From, params.To)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrRateUnavailable) {
			logger.Warn("Rate unavailable for quote", slog.String("from", params.From), slog.String("to", params.To))
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to quote conversion", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to quote conversion"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToConversionResponse(result))
}
