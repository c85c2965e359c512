package usecase

import (
	"context"
	"strings"

	"laporkota/internal/domain/entity"
	"laporkota/internal/domain/service"
	"laporkota/pkg/errors"
	"laporkota/pkg/logger"
)

// FallbackReply is appended to the conversation whenever the chat model
// fails; the underlying error is logged, never shown.
const FallbackReply = "Sorry, something went wrong. Please try again."

type AssistantUseCase struct {
	chatModel service.ChatModel
}

func NewAssistantUseCase(chatModel service.ChatModel) *AssistantUseCase {
	return &AssistantUseCase{
		chatModel: chatModel,
	}
}

// Chat forwards one turn to the hosted model. The server keeps no
// conversation state; the caller replays the history on every call.
func (uc *AssistantUseCase) Chat(ctx context.Context, history []entity.ChatMessage, message string) (string, error) {
	if strings.TrimSpace(message) == "" {
		return "", errors.Validation("message is required", nil)
	}

	reply, err := uc.chatModel.Send(ctx, history, message)
	if err != nil {
		logger.Error("Assistant chat failed: %v", err)
		return FallbackReply, nil
	}

	return reply, nil
}
