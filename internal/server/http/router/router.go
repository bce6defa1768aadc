package router

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/lat08/web-eyewear-sub001/internal/domain/model"
	"github.com/lat08/web-eyewear-sub001/internal/server/http/handlers"
	"github.com/lat08/web-eyewear-sub001/internal/server/http/middleware"
)

// Pinger reports backing store connectivity for the health endpoint.
type Pinger interface {
	HealthCheck(ctx context.Context) error
}

// Setup configures the gin router with handlers and middleware.
func Setup(facade handlers.StorefrontFacade, parser middleware.TokenParser, pinger Pinger, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	engine.GET("/ping", func(c *gin.Context) {
		if err := pinger.HealthCheck(c.Request.Context()); err != nil {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.Status(http.StatusOK)
	})

	catalogHandler := handlers.NewCatalogHandler(facade)
	cartHandler := handlers.NewCartHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)

	api := engine.Group("/api")
	api.GET("/products", catalogHandler.List)
	api.GET("/products/:slug", catalogHandler.Get)
	api.POST("/cart/validate", cartHandler.Validate)

	authed := api.Group("")
	authed.Use(middleware.AuthRequired(parser))
	authed.POST("/orders", orderHandler.Checkout)
	authed.GET("/orders", orderHandler.List)
	authed.GET("/orders/:id", orderHandler.Get)

	admin := authed.Group("")
	admin.Use(middleware.RequireRole(model.RoleAdmin))
	admin.PATCH("/orders/:id/status", orderHandler.UpdateStatus)

	return engine
}
