package service

import (
	"context"

	"laporkota/internal/domain/entity"
)

// ChatModel is the hosted chat-completion collaborator. Stateless per call:
// the full history is passed explicitly every time.
type ChatModel interface {
	Send(ctx context.Context, history []entity.ChatMessage, message string) (string, error)
}
