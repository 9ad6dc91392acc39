package handlers

import (
	"context"
	"net/http"
	"time"

	"stayfront/models"
	"stayfront/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SearchAPI is the slice of the platform client the availability handler
// needs.
type SearchAPI interface {
	SearchAvailability(ctx context.Context, params models.SearchParams) (*models.AvailabilityResult, error)
}

// AvailabilityHandler serves rate option searches.
type AvailabilityHandler struct {
	API    SearchAPI
	Logger *zap.Logger
}

func NewAvailabilityHandler(api SearchAPI, logger *zap.Logger) *AvailabilityHandler {
	return &AvailabilityHandler{API: api, Logger: logger}
}

// Search runs an availability search. Missing stay dates default to a
// two-night stay starting today, matching the search the site fires on
// first load.
func (h *AvailabilityHandler) Search(c *gin.Context) {
	var params models.SearchParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid search parameters", "details": err.Error()})
		return
	}

	if params.CheckIn == "" {
		params.CheckIn = time.Now().Format("2006-01-02")
	}
	if params.CheckOut == "" {
		params.CheckOut = time.Now().AddDate(0, 0, 2).Format("2006-01-02")
	}

	res, err := h.API.SearchAvailability(c.Request.Context(), params)
	if err != nil {
		utils.JSONError(c, statusForError(err), err.Error())
		return
	}
	c.JSON(http.StatusOK, res)
}
