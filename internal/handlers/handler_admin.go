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

// adminHandler handles the admin surface: status transitions, the global
// transaction listing and aggregate stats.
type adminHandler struct {
	transactionService portssvc.TransactionSvcFacade
	reportingService   portssvc.ReportingSvcFacade
}

// newAdminHandler creates a new adminHandler.
func newAdminHandler(ts portssvc.TransactionSvcFacade, rs portssvc.ReportingSvcFacade) *adminHandler {
	return &adminHandler{
		transactionService: ts,
		reportingService:   rs,
	}
}

// registerAdminRoutes registers the admin routes. The group must already
// carry AuthMiddleware; RequireAdmin is applied here.
func registerAdminRoutes(rg *gin.RouterGroup, transactionService portssvc.TransactionSvcFacade, reportingService portssvc.ReportingSvcFacade) {
	h := newAdminHandler(transactionService, reportingService)

	admin := rg.Group("/admin", middleware.RequireAdmin())
	{
		admin.GET("/transactions", h.listAllTransactions)
		admin.PATCH("/transactions/:transactionID/status", h.updateTransactionStatus)
		admin.GET("/stats", h.getStats)
	}
}

// listAllTransactions godoc
// @Summary List all transactions
// @Description Retrieves transactions across all users, newest first (admin only)
// @Tags admin
// @Produce json
// @Param limit query int false "Maximum rows to return" default(100)
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Admin privileges required"
// @Security BearerAuth
// @Router /admin/transactions [get]
func (h *adminHandler) listAllTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListAllTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	txns, err := h.transactionService.ListAllTransactions(c.Request.Context(), params.Limit)
	if err != nil {
		logger.Error("Failed to list all transactions", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list transactions"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListTransactionsResponse(txns))
}

// updateTransactionStatus godoc
// @Summary Update transaction status
// @Description Transitions a transaction to a new status with optional notes (admin only). Completed and failed are terminal.
// @Tags admin
// @Accept json
// @Produce json
// @Param transactionID path string true "Transaction ID"
// @Param status body dto.UpdateTransactionStatusRequest true "New status and notes"
// @Success 200 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Unknown status or terminal transition"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Admin privileges required"
// @Failure 404 {object} map[string]string "Transaction not found"
// @Security BearerAuth
// @Router /admin/transactions/{transactionID}/status [patch]
func (h *adminHandler) updateTransactionStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	transactionID := c.Param("transactionID")

	var req dto.UpdateTransactionStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	txn, err := h.transactionService.UpdateStatus(c.Request.Context(), transactionID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidStatus) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
		} else {
			logger.Error("Failed to update transaction status", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update transaction status"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// getStats godoc
// @Summary Get platform stats
// @Description Retrieves user and transaction counts, completed transfer volume and transactions held for review (admin only)
// @Tags admin
// @Produce json
// @Success 200 {object} dto.AdminStatsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Admin privileges required"
// @Security BearerAuth
// @Router /admin/stats [get]
func (h *adminHandler) getStats(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	stats, err := h.reportingService.GetAdminStats(c.Request.Context())
	if err != nil {
		logger.Error("Failed to get admin stats", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve stats"})
		return
	}

	c.JSON(http.StatusOK, dto.ToAdminStatsResponse(stats))
}
