package handler

import (
	"github.com/labstack/echo/v4"

	"laporkota/internal/domain/entity"
	"laporkota/internal/usecase"
	"laporkota/pkg/errors"
	"laporkota/pkg/response"
)

type AssistantHandler struct {
	assistantUseCase *usecase.AssistantUseCase
}

func NewAssistantHandler(assistantUseCase *usecase.AssistantUseCase) *AssistantHandler {
	return &AssistantHandler{
		assistantUseCase: assistantUseCase,
	}
}

type chatRequest struct {
	History []entity.ChatMessage `json:"history" validate:"omitempty,dive"`
	Message string               `json:"message" validate:"required"`
}

type chatResponse struct {
	Reply string `json:"reply"`
}

func (h *AssistantHandler) Chat(c echo.Context) error {
	var req chatRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	reply, err := h.assistantUseCase.Chat(c.Request().Context(), req.History, req.Message)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, chatResponse{Reply: reply})
}
