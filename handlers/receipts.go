package handlers

import (
	"net/http"
	"strconv"

	"stayfront/database/repository"
	"stayfront/models"
	"stayfront/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const defaultReceiptListLimit = 50

// ReceiptsHandler exposes the booking audit trail: receipts persisted for
// each confirmed booking.
type ReceiptsHandler struct {
	Repo   repository.ReceiptRepository
	Logger *zap.Logger
}

func NewReceiptsHandler(repo repository.ReceiptRepository, logger *zap.Logger) *ReceiptsHandler {
	return &ReceiptsHandler{Repo: repo, Logger: logger}
}

// GetReceipt returns the receipt recorded for one booking.
func (h *ReceiptsHandler) GetReceipt(c *gin.Context) {
	bookingID := c.Param("bookingID")
	if bookingID == "" {
		utils.JSONError(c, http.StatusBadRequest, "booking id is required")
		return
	}

	receipt, err := h.Repo.GetByBookingID(c.Request.Context(), bookingID)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, err.Error())
		return
	}
	c.JSON(http.StatusOK, receipt)
}

// ListReceipts returns the tenant's most recent receipts, newest first.
func (h *ReceiptsHandler) ListReceipts(c *gin.Context) {
	limit := int64(defaultReceiptListLimit)
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed <= 0 {
			utils.JSONError(c, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = parsed
	}

	tenantDomain := c.GetString("tenantDomain")
	receipts, err := h.Repo.ListByTenant(c.Request.Context(), tenantDomain, limit)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	if receipts == nil {
		receipts = []models.BookingReceipt{}
	}
	c.JSON(http.StatusOK, gin.H{"receipts": receipts})
}
