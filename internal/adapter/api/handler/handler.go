package handler

import (
	"laporkota/internal/usecase"
)

var (
	authHandler      *AuthHandler
	userHandler      *UserHandler
	complaintHandler *ComplaintHandler
	adminHandler     *AdminHandler
	assistantHandler *AssistantHandler
)

func Setup(
	authUseCase *usecase.AuthUseCase,
	userUseCase *usecase.UserUseCase,
	complaintUseCase *usecase.ComplaintUseCase,
	statsUseCase *usecase.StatsUseCase,
	assistantUseCase *usecase.AssistantUseCase,
) {
	authHandler = NewAuthHandler(authUseCase)
	userHandler = NewUserHandler(userUseCase)
	complaintHandler = NewComplaintHandler(complaintUseCase, statsUseCase)
	adminHandler = NewAdminHandler(complaintUseCase, statsUseCase, userUseCase)
	assistantHandler = NewAssistantHandler(assistantUseCase)
}

func GetAuthHandler() *AuthHandler {
	return authHandler
}

func GetUserHandler() *UserHandler {
	return userHandler
}

func GetComplaintHandler() *ComplaintHandler {
	return complaintHandler
}

func GetAdminHandler() *AdminHandler {
	return adminHandler
}

func GetAssistantHandler() *AssistantHandler {
	return assistantHandler
}
