package router

import (
	"github.com/labstack/echo/v4"

	"laporkota/internal/adapter/api/middleware"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware, rateLimitMiddleware *middleware.RateLimitMiddleware) {
	SetupAuthRouter(e, authMiddleware)
	SetupComplaintRouter(e, authMiddleware, rateLimitMiddleware)
	SetupUserRouter(e, authMiddleware)
	SetupAssistantRouter(e, authMiddleware, rateLimitMiddleware)
	SetupAdminRouter(e, authMiddleware, adminMiddleware)
	SetupHealthRouter(e)
}
