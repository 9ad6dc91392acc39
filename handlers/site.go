package handlers

import (
	"net/http"

	"stayfront/services/site"
	"stayfront/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SiteHandler serves tenant configuration and hotel data.
type SiteHandler struct {
	Svc    site.SiteService
	Logger *zap.Logger
}

func NewSiteHandler(svc site.SiteService, logger *zap.Logger) *SiteHandler {
	return &SiteHandler{Svc: svc, Logger: logger}
}

// GetSiteConfig returns the tenant's public site configuration.
func (h *SiteHandler) GetSiteConfig(c *gin.Context) {
	cfg, err := h.Svc.SiteConfig(c.Request.Context())
	if err != nil {
		utils.JSONError(c, statusForError(err), err.Error())
		return
	}
	c.JSON(http.StatusOK, cfg)
}

// GetHotel returns the tenant's hotel record.
func (h *SiteHandler) GetHotel(c *gin.Context) {
	hotel, err := h.Svc.Hotel(c.Request.Context())
	if err != nil {
		utils.JSONError(c, statusForError(err), err.Error())
		return
	}
	c.JSON(http.StatusOK, hotel)
}

// ReloadSite refetches both entries from the platform, overwriting the
// cache.
func (h *SiteHandler) ReloadSite(c *gin.Context) {
	if err := h.Svc.Load(c.Request.Context()); err != nil {
		utils.JSONError(c, statusForError(err), err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "reloaded"})
}
