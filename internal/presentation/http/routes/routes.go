package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sangkips/tradenet-api/internal/application/service"
	"github.com/sangkips/tradenet-api/internal/config"
	"github.com/sangkips/tradenet-api/internal/presentation/http/handler"
	"github.com/sangkips/tradenet-api/internal/presentation/http/middleware"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth    *handler.AuthHandler
	Link    *handler.LinkHandler
	Product *handler.ProductHandler
	Contact *handler.ContactHandler
	Admin   *handler.AdminHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	AuthService *service.AuthService
	Cfg         *config.Config
	// RateLimiter is optional; nil disables throttling.
	RateLimiter *middleware.UserRateLimiter
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.MetricsMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	registerAuthRoutes(router, h)

	protected := router.Group("")
	protected.Use(middleware.AuthMiddleware(deps.AuthService))
	if deps.RateLimiter != nil {
		protected.Use(deps.RateLimiter.Middleware())
	}

	registerLinkRoutes(protected, h)
	registerProductRoutes(protected, h)
	registerContactRoutes(protected, h)
	registerAdminRoutes(protected, h)

	return router
}

func registerAuthRoutes(router *gin.Engine, h *Handlers) {
	router.POST("/register/", h.Auth.Register)
	router.POST("/token/", h.Auth.Token)
	router.POST("/token/refresh/", h.Auth.Refresh)
}

func registerLinkRoutes(protected *gin.RouterGroup, h *Handlers) {
	links := protected.Group("/link")
	{
		links.GET("/", h.Link.List)
		links.POST("/", h.Link.Create)
		links.POST("/create/", h.Link.Create)
		links.GET("/:id/", h.Link.Get)
		links.PUT("/:id/", h.Link.Update)
		links.PATCH("/:id/", h.Link.Update)
		links.PUT("/:id/update/", h.Link.Update)
		links.PATCH("/:id/update/", h.Link.Update)
		links.DELETE("/:id/", middleware.RequireAdmin(), h.Link.Delete)
		links.DELETE("/:id/delete/", middleware.RequireAdmin(), h.Link.Delete)
	}
}

func registerProductRoutes(protected *gin.RouterGroup, h *Handlers) {
	products := protected.Group("/product")
	{
		products.GET("/", h.Product.List)
		products.POST("/", h.Product.Create)
		products.GET("/:id/", h.Product.Get)
		products.PUT("/:id/", h.Product.Update)
		products.PATCH("/:id/", h.Product.Update)
		products.DELETE("/:id/", h.Product.Delete)
	}
}

func registerContactRoutes(protected *gin.RouterGroup, h *Handlers) {
	contacts := protected.Group("/contact")
	{
		contacts.GET("/", h.Contact.List)
		contacts.POST("/", h.Contact.Create)
		contacts.GET("/:id/", h.Contact.Get)
		contacts.PUT("/:id/", h.Contact.Update)
		contacts.PATCH("/:id/", h.Contact.Update)
		contacts.DELETE("/:id/", h.Contact.Delete)
	}
}

func registerAdminRoutes(protected *gin.RouterGroup, h *Handlers) {
	admin := protected.Group("/admin")
	admin.Use(middleware.RequireAdmin())
	{
		admin.POST("/link/clear-debt/", h.Admin.ClearDebt)
		admin.GET("/product/:id/suppliers/", h.Admin.ProductSuppliers)
	}
}
