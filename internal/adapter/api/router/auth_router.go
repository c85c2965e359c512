package router

import (
	"github.com/labstack/echo/v4"

	"laporkota/internal/adapter/api/handler"
	"laporkota/internal/adapter/api/middleware"
)

// SetupAuthRouter initializes auth routes
func SetupAuthRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	authHandler := handler.GetAuthHandler()

	// Public routes
	e.POST("/v1/auth/register", authHandler.Register)
	e.POST("/v1/auth/login", authHandler.Login)
	e.POST("/v1/auth/refresh", authHandler.RefreshToken)

	// Protected routes
	protected := e.Group("/v1/auth")
	protected.Use(authMiddleware.Authenticate)

	protected.GET("/me", authHandler.Me)
	protected.POST("/logout", authHandler.Logout)
}
