package router

import (
	"github.com/labstack/echo/v4"

	"laporkota/internal/adapter/api/handler"
	"laporkota/internal/adapter/api/middleware"
)

func SetupComplaintRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, rateLimitMiddleware *middleware.RateLimitMiddleware) {
	complaintHandler := handler.GetComplaintHandler()

	complaints := e.Group("/v1/complaints")
	complaints.Use(authMiddleware.Authenticate)

	complaints.GET("", complaintHandler.ListMine)
	complaints.POST("", complaintHandler.Submit, rateLimitMiddleware.Limit("submit_complaint"))
	complaints.GET("/stats", complaintHandler.Stats)
	complaints.GET("/:id", complaintHandler.Get)
	complaints.PATCH("/:id", complaintHandler.Edit)
	complaints.DELETE("/:id", complaintHandler.Delete)
}
