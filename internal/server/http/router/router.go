package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/polkiloo/reservashop/internal/config"
	"github.com/polkiloo/reservashop/internal/metrics"
	"github.com/polkiloo/reservashop/internal/server/http/handlers"
	"github.com/polkiloo/reservashop/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.ShopFacade, cfg *config.Config, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestID())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(metrics.Middleware())
	engine.Use(middleware.CORS(cfg.AllowedOrigins))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	healthHandler := handlers.NewHealthHandler(facade, logger)
	authHandler := handlers.NewAuthHandler(facade)
	productHandler := handlers.NewProductHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)
	reservationHandler := handlers.NewReservationHandler(facade)
	reviewHandler := handlers.NewReviewHandler(facade)
	galleryHandler := handlers.NewGalleryHandler(facade)
	adminHandler := handlers.NewAdminHandler(facade)

	authRequired := middleware.AuthRequired(facade)
	adminRequired := middleware.AdminRequired()

	engine.GET("/", healthHandler.Root)
	engine.GET("/health", healthHandler.Health)
	engine.GET("/metrics", gin.WrapH(metrics.Handler()))

	auth := engine.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.GET("/me", authRequired, authHandler.Me)

	engine.GET("/products", productHandler.List)

	orders := engine.Group("/orders", authRequired)
	orders.POST("", orderHandler.Create)
	orders.GET("", orderHandler.List)
	orders.GET("/:id", orderHandler.Get)
	orders.POST("/:id/payment", orderHandler.Pay)

	reservations := engine.Group("/reservations", authRequired)
	reservations.POST("", reservationHandler.Create)
	reservations.GET("", reservationHandler.List)
	reservations.GET("/:id", reservationHandler.Get)
	reservations.PATCH("/:id", reservationHandler.Update)
	reservations.DELETE("/:id", reservationHandler.Cancel)

	reviews := engine.Group("/reviews")
	reviews.GET("", reviewHandler.List)
	reviews.GET("/:id", reviewHandler.Get)
	reviews.POST("", authRequired, reviewHandler.Create)

	gallery := engine.Group("/gallery")
	gallery.GET("", galleryHandler.List)
	gallery.GET("/:id", galleryHandler.Get)
	gallery.POST("", authRequired, adminRequired, galleryHandler.Create)
	gallery.DELETE("/:id", authRequired, adminRequired, galleryHandler.Delete)

	admin := engine.Group("/admin", authRequired, adminRequired)
	admin.GET("/dashboard", adminHandler.Dashboard)
	admin.GET("/reservations", adminHandler.Reservations)
	admin.GET("/orders", adminHandler.Orders)
	admin.GET("/users", adminHandler.Users)
	admin.POST("/products", productHandler.Create)
	admin.PATCH("/products/:id", productHandler.Update)
	admin.DELETE("/products/:id", productHandler.Delete)

	return engine
}
