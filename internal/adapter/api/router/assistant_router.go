package router

import (
	"github.com/labstack/echo/v4"

	"laporkota/internal/adapter/api/handler"
	"laporkota/internal/adapter/api/middleware"
)

func SetupAssistantRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, rateLimitMiddleware *middleware.RateLimitMiddleware) {
	assistantHandler := handler.GetAssistantHandler()

	assistant := e.Group("/v1/assistant")
	assistant.Use(authMiddleware.Authenticate)

	assistant.POST("/chat", assistantHandler.Chat, rateLimitMiddleware.Limit("assistant_chat"))
}
