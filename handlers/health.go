package handlers

import (
	"net/http"
	"time"

	"stayfront/utils"

	"github.com/gin-gonic/gin"
)

// Healthz reports service liveness plus the reachability of the site cache.
func Healthz(c *gin.Context) {
	ctx := c.Request.Context()

	cacheStatus := "ok"
	if err := utils.GetSiteCacheClient().Ping(ctx).Err(); err != nil {
		cacheStatus = "unreachable"
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"cache":  cacheStatus,
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}
