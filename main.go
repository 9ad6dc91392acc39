// File: stayfront/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"stayfront/config"
	"stayfront/cron"
	"stayfront/database"
	"stayfront/database/repository"
	"stayfront/handlers"
	"stayfront/middleware"
	"stayfront/routes"
	"stayfront/services/booking"
	"stayfront/services/payment"
	"stayfront/services/site"
	"stayfront/upstream"
	"stayfront/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitSiteCache()
	stripe.Key = config.AppConfig.StripeSecretKey

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(cors.Default())
	router.Use(middleware.RateLimitMiddleware())
	router.Use(middleware.TenantResolutionMiddleware(config.AppConfig.TenantDomain))

	// Upstream platform client.
	platform := upstream.NewClient(config.AppConfig.APIBaseURL, config.AppConfig.TenantDomain, logger)

	// Services.
	siteCache := &site.RedisCache{Client: utils.GetSiteCacheClient()}
	siteService := site.NewSiteService(platform, siteCache, 30*time.Minute, logger)

	gateway := payment.NewStripeGateway(
		config.AppConfig.StripePublishableKey,
		config.AppConfig.StripeSecretKey,
		logger,
	)

	receiptEnqueuer := cron.NewReceiptEnqueuer(logger)
	defer receiptEnqueuer.Close()

	receiptRepo := repository.NewMongoReceiptRepo()

	bookingService := booking.NewBookingService(platform, gateway, config.AppConfig.VaultKey, logger)
	bookingService.Receipts = receiptRepo
	bookingService.Notifier = receiptEnqueuer

	// Handlers.
	siteHandler := handlers.NewSiteHandler(siteService, logger)
	availabilityHandler := handlers.NewAvailabilityHandler(platform, logger)
	bookingHandler := handlers.NewBookingHandler(bookingService, logger)
	receiptsHandler := handlers.NewReceiptsHandler(receiptRepo, logger)

	routes.RegisterRoutes(router, siteHandler, availabilityHandler, bookingHandler, receiptsHandler)

	// Background receipt worker.
	cron.InitReceiptWorker(logger)

	// Warm the site cache; failure is not fatal, the first request retries.
	warmCtx, warmCancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := siteService.Load(upstream.WithTenantDomain(warmCtx, config.AppConfig.TenantDomain)); err != nil {
		logger.Sugar().Warnf("main: failed to warm site cache: %v", err)
	}
	warmCancel()

	srv := &http.Server{
		Addr:    ":" + config.AppConfig.AppPort,
		Handler: router,
	}

	go func() {
		logger.Sugar().Infof("stayfront listening on :%s", config.AppConfig.AppPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server error: %v", err)
		}
	}()

	// Graceful shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Errorf("main: forced shutdown: %v", err)
	}
}
