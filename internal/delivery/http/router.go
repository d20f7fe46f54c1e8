package http

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	custommiddleware "github.com/tradepulse/tradepulse/internal/middleware"
)

// RouterConfig holds all dependencies for routing
type RouterConfig struct {
	AuthHandler   *AuthHandler
	ViewHandler   *ViewHandler
	ActionHandler *ActionHandler
	CORSOrigins   []string
}

// SetupRoutes configures all HTTP routes
func SetupRoutes(e *echo.Echo, config *RouterConfig) {
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Skipper: func(c echo.Context) bool {
			// Skip logging for high-frequency polling endpoints to reduce noise
			path := c.Request().URL.Path
			if path == "/health" {
				return true
			}
			if strings.HasPrefix(path, "/api/view") && c.Request().Method == http.MethodGet {
				return true
			}
			return false
		},
	}))
	e.Use(middleware.Recover())
	if len(config.CORSOrigins) > 0 {
		e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins:     config.CORSOrigins,
			AllowCredentials: true,
		}))
	} else {
		e.Use(middleware.CORS())
	}
	e.Use(middleware.RequestID())
	e.Use(middleware.Secure())

	// Health check
	e.GET("/health", func(c echo.Context) error {
		return SuccessResponse(c, map[string]interface{}{
			"status":  "healthy",
			"service": "tradepulse-api",
		})
	})

	// API group
	api := e.Group("/api")

	// Auth routes (public)
	auth := api.Group("/auth")
	{
		auth.POST("/login", config.AuthHandler.Login)
		auth.POST("/logout", config.AuthHandler.Logout)
		auth.POST("/register", config.AuthHandler.Register)
		auth.GET("/me", config.AuthHandler.Me, custommiddleware.AuthMiddleware)
	}

	// Dashboard read model (protected)
	views := api.Group("/view", custommiddleware.AuthMiddleware)
	{
		views.GET("", config.ViewHandler.GetView)
		views.GET("/holdings", config.ViewHandler.GetHoldings)
		views.GET("/trades", config.ViewHandler.GetTrades)
		views.PUT("/overlay", config.ViewHandler.SetOverlay)
	}

	// Operator commands (protected)
	actions := api.Group("/actions", custommiddleware.AuthMiddleware)
	{
		actions.POST("/toggle", config.ActionHandler.Toggle)
		actions.POST("/settings", config.ActionHandler.SaveSettings)
	}
}
