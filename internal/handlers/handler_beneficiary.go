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

// beneficiaryHandler handles HTTP requests related to beneficiaries.
type beneficiaryHandler struct {
	beneficiaryService portssvc.BeneficiarySvcFacade
}

// newBeneficiaryHandler creates a new beneficiaryHandler.
func newBeneficiaryHandler(bs portssvc.BeneficiarySvcFacade) *beneficiaryHandler {
	return &beneficiaryHandler{beneficiaryService: bs}
}

// RegisterBeneficiaryRoutes registers routes related to beneficiaries.
func RegisterBeneficiaryRoutes(rg *gin.RouterGroup, beneficiaryService portssvc.BeneficiarySvcFacade) {
	h := newBeneficiaryHandler(beneficiaryService)

	beneficiaries := rg.Group("/beneficiaries")
	{
		beneficiaries.POST("", h.createBeneficiary)
		beneficiaries.GET("", h.listBeneficiaries)
		beneficiaries.GET("/:beneficiaryID", h.getBeneficiary)
		beneficiaries.PUT("/:beneficiaryID", h.updateBeneficiary)
		beneficiaries.DELETE("/:beneficiaryID", h.deleteBeneficiary)
	}
}

// createBeneficiary godoc
// @Summary Add a beneficiary
// @Description Creates a new beneficiary owned by the authenticated user
// @Tags beneficiaries
// @Accept json
// @Produce json
// @Param beneficiary body dto.CreateBeneficiaryRequest true "Beneficiary details"
// @Success 201 {object} dto.BeneficiaryResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /beneficiaries [post]
func (h *beneficiaryHandler) createBeneficiary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateBeneficiaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	callerUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	created, err := h.beneficiaryService.CreateBeneficiary(c.Request.Context(), req, callerUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create beneficiary", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create beneficiary"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToBeneficiaryResponse(created))
}

// listBeneficiaries godoc
// @Summary List beneficiaries
// @Description Retrieves all beneficiaries owned by the authenticated user, newest first
// @Tags beneficiaries
// @Produce json
// @Success 200 {object} dto.ListBeneficiariesResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /beneficiaries [get]
func (h *beneficiaryHandler) listBeneficiaries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	callerUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	items, err := h.beneficiaryService.ListBeneficiaries(c.Request.Context(), callerUserID)
	if err != nil {
		logger.Error("Failed to list beneficiaries", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list beneficiaries"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListBeneficiariesResponse(items))
}

// getBeneficiary godoc
// @Summary Get a beneficiary
// @Description Retrieves a beneficiary owned by the authenticated user
// @Tags beneficiaries
// @Produce json
// @Param beneficiaryID path string true "Beneficiary ID"
// @Success 200 {object} dto.BeneficiaryResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Beneficiary not found"
// @Security BearerAuth
// @Router /beneficiaries/{beneficiaryID} [get]
func (h *beneficiaryHandler) getBeneficiary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	beneficiaryID := c.Param("beneficiaryID")

	callerUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	beneficiary, err := h.beneficiaryService.GetBeneficiary(c.Request.Context(), beneficiaryID, callerUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Beneficiary not found"})
		} else {
			logger.Error("Failed to get beneficiary", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve beneficiary"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToBeneficiaryResponse(beneficiary))
}

// updateBeneficiary godoc
// @Summary Update a beneficiary
// @Description Changes fields of a beneficiary owned by the authenticated user
// @Tags beneficiaries
// @Accept json
// @Produce json
// @Param beneficiaryID path string true "Beneficiary ID"
// @Param beneficiary body dto.UpdateBeneficiaryRequest true "Fields to update"
// @Success 200 {object} dto.BeneficiaryResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Beneficiary not found"
// @Security BearerAuth
// @Router /beneficiaries/{beneficiaryID} [put]
func (h *beneficiaryHandler) updateBeneficiary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	beneficiaryID := c.Param("beneficiaryID")

	var req dto.UpdateBeneficiaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	callerUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	updated, err := h.beneficiaryService.UpdateBeneficiary(c.Request.Context(), beneficiaryID, req, callerUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Beneficiary not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to update beneficiary", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update beneficiary"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToBeneficiaryResponse(updated))
}

// deleteBeneficiary godoc
// @Summary Delete a beneficiary
// @Description Removes a beneficiary owned by the authenticated user. Fails if any transaction references it.
// @Tags beneficiaries
// @Produce json
// @Param beneficiaryID path string true "Beneficiary ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Beneficiary is referenced by transactions"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Beneficiary not found"
// @Security BearerAuth
// @Router /beneficiaries/{beneficiaryID} [delete]
func (h *beneficiaryHandler) deleteBeneficiary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	beneficiaryID := c.Param("beneficiaryID")

	callerUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.beneficiaryService.DeleteBeneficiary(c.Request.Context(), beneficiaryID, callerUserID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Beneficiary not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to delete beneficiary", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete beneficiary"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
