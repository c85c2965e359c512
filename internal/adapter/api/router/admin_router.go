package router

import (
	"github.com/labstack/echo/v4"

	"laporkota/internal/adapter/api/handler"
	"laporkota/internal/adapter/api/middleware"
)

func SetupAdminRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	adminHandler := handler.GetAdminHandler()

	// Admin routes - require authentication and admin role
	admin := e.Group("/v1/admin")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(adminMiddleware.AdminOnly)

	// Dashboard
	admin.GET("/stats", adminHandler.Stats)

	// Complaint triage
	admin.GET("/complaints", adminHandler.ListComplaints)
	admin.PATCH("/complaints/:id/status", adminHandler.ChangeStatus)
	admin.DELETE("/complaints/:id", adminHandler.DeleteComplaint)

	// User management
	admin.GET("/users", adminHandler.ListUsers)
	admin.PATCH("/users/:id/role", adminHandler.SetRole)
	admin.DELETE("/users/:id", adminHandler.DeleteUser)
}
