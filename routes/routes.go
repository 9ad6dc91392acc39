package routes

import (
	"stayfront/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all endpoints of the tenant site service.
func RegisterRoutes(r *gin.Engine, siteH *handlers.SiteHandler, availH *handlers.AvailabilityHandler, bookingH *handlers.BookingHandler, receiptsH *handlers.ReceiptsHandler) {
	r.GET("/healthz", handlers.Healthz)

	api := r.Group("/api")
	{
		siteGroup := api.Group("/site")
		{
			siteGroup.GET("/config", siteH.GetSiteConfig)
			siteGroup.GET("/hotel", siteH.GetHotel)
			siteGroup.POST("/reload", siteH.ReloadSite)
		}

		api.GET("/availability/search", availH.Search)

		bookingGroup := api.Group("/booking")
		{
			bookingGroup.POST("/submit", bookingH.SubmitBooking) // gateway path
			bookingGroup.POST("/direct", bookingH.BookDirect)    // legacy card path
			bookingGroup.GET("/receipts", receiptsH.ListReceipts)
			bookingGroup.GET("/receipts/:bookingID", receiptsH.GetReceipt)
		}
	}
}
