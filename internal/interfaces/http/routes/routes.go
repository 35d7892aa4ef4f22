// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/novagallery/gallery-backend/internal/config"
	"github.com/novagallery/gallery-backend/internal/domain/activity"
	"github.com/novagallery/gallery-backend/internal/domain/cart"
	"github.com/novagallery/gallery-backend/internal/domain/catalog"
	"github.com/novagallery/gallery-backend/internal/domain/checkout"
	"github.com/novagallery/gallery-backend/internal/domain/order"
	"github.com/novagallery/gallery-backend/internal/domain/settings"
	"github.com/novagallery/gallery-backend/internal/interfaces/http/handlers"
	"github.com/novagallery/gallery-backend/internal/interfaces/http/middleware"
	"github.com/novagallery/gallery-backend/internal/pkg/events"
	"github.com/novagallery/gallery-backend/internal/pkg/pdf"
)

// SetupRoutes wires the storefront and admin APIs onto the router group.
func SetupRoutes(rg *gin.RouterGroup, db *gorm.DB, redisClient *redis.Client, cfg *config.Config, logger *logrus.Logger) {
	bus := events.NewBus()

	// Shared services
	activityService := activity.NewService(db, logger)
	settingsService := settings.NewService(db, activityService)

	catalogRepo := catalog.NewGormRepository(db)
	catalogService := catalog.NewService(catalogRepo, activityService, bus)
	categoryService := catalog.NewCategoryService(catalogRepo, activityService, bus)

	cartStore := cart.NewRedisStore(redisClient)
	cartService := cart.NewService(cartStore, bus)

	orderRepo := order.NewGormRepository(db)
	orderService := order.NewService(orderRepo, activityService, bus)

	checkoutStore := checkout.NewRedisStore(redisClient, cfg.Checkout.SessionTTL)
	checkoutService := checkout.NewService(checkoutStore, cartService, orderService, logger, cfg.Checkout.VerificationDelay)

	pdfService := pdf.NewService(cfg, logger)

	// Handlers
	productHandler := handlers.NewProductHandler(catalogService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	cartHandler := handlers.NewCartHandler(cartService, catalogService)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutService)
	orderHandler := handlers.NewOrderHandler(orderService, settingsService, pdfService)
	activityHandler := handlers.NewActivityHandler(activityService)
	settingsHandler := handlers.NewSettingsHandler(settingsService)
	exportHandler := handlers.NewExportHandler(orderService, activityService)
	authHandler := handlers.NewAuthHandler(settingsService, activityService, cfg)

	// Storefront (anonymous, session-scoped)
	storefront := rg.Group("")
	storefront.Use(middleware.SessionID())
	{
		storefront.GET("/products", productHandler.GetProducts)
		storefront.GET("/products/:id", productHandler.GetProduct)
		storefront.GET("/categories", categoryHandler.GetCategories)
		storefront.GET("/settings/storefront", settingsHandler.GetStorefrontSettings)

		cartGroup := storefront.Group("/cart")
		{
			cartGroup.GET("", cartHandler.GetCart)
			cartGroup.DELETE("", cartHandler.ClearCart)
			cartGroup.POST("/items", cartHandler.AddItem)
			cartGroup.PATCH("/items/:id", cartHandler.UpdateQuantity)
			cartGroup.DELETE("/items/:id", cartHandler.RemoveItem)
		}

		checkoutGroup := storefront.Group("/checkout")
		{
			checkoutGroup.GET("", checkoutHandler.GetState)
			checkoutGroup.POST("/proceed", checkoutHandler.Proceed)
			checkoutGroup.POST("/details", checkoutHandler.SubmitDetails)
			checkoutGroup.POST("/back", checkoutHandler.Back)
			checkoutGroup.POST("/confirm", checkoutHandler.ConfirmPayment)
			checkoutGroup.POST("/reset", checkoutHandler.Reset)
		}
	}

	// Admin auth (login is public, the rest requires a valid token)
	adminAuth := rg.Group("/auth")
	{
		adminAuth.POST("/login", authHandler.Login)

		protected := adminAuth.Group("")
		protected.Use(middleware.AuthMiddleware(cfg), middleware.AdminMiddleware())
		{
			protected.POST("/logout", authHandler.Logout)
			protected.PUT("/credentials", authHandler.ChangeCredentials)
		}
	}

	// Admin back office
	admin := rg.Group("/admin")
	admin.Use(middleware.AuthMiddleware(cfg), middleware.AdminMiddleware())
	{
		admin.POST("/products", productHandler.CreateProduct)
		admin.PUT("/products/:id", productHandler.UpdateProduct)
		admin.DELETE("/products/:id", productHandler.DeleteProduct)

		admin.POST("/categories", categoryHandler.CreateCategory)
		admin.DELETE("/categories/:id", categoryHandler.DeleteCategory)

		admin.GET("/orders", orderHandler.GetOrders)
		admin.GET("/orders/export", exportHandler.ExportOrders)
		admin.GET("/orders/:number", orderHandler.GetOrder)
		admin.POST("/orders/:number/verify", orderHandler.VerifyOrder)
		admin.GET("/orders/:number/invoice", orderHandler.GenerateInvoice)

		admin.GET("/logs", activityHandler.GetLogs)
		admin.GET("/logs/export", exportHandler.ExportLogs)

		admin.GET("/settings/invoice", settingsHandler.GetInvoiceSettings)
		admin.PUT("/settings/invoice", settingsHandler.UpdateInvoiceSettings)
		admin.PUT("/settings/qr", settingsHandler.UpdateQRCode)
		admin.PUT("/settings/social", settingsHandler.UpdateSocialLinks)
		admin.PUT("/settings/contact", settingsHandler.UpdateContactSettings)
	}
}
