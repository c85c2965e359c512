package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"laporkota/internal/domain/entity"
	"laporkota/pkg/errors"
)

type fakeChatModel struct {
	reply   string
	err     error
	history []entity.ChatMessage
}

func (m *fakeChatModel) Send(ctx context.Context, history []entity.ChatMessage, message string) (string, error) {
	m.history = history
	if m.err != nil {
		return "", m.err
	}
	return m.reply, nil
}

func TestChatReturnsModelReply(t *testing.T) {
	model := &fakeChatModel{reply: "Report it under the road category."}
	uc := NewAssistantUseCase(model)

	history := []entity.ChatMessage{
		{Role: entity.ChatRoleUser, Text: "Hi"},
		{Role: entity.ChatRoleModel, Text: "Hello, how can I help?"},
	}

	reply, err := uc.Chat(context.Background(), history, "Where do I report a pothole?")

	require.NoError(t, err)
	assert.Equal(t, "Report it under the road category.", reply)
	assert.Len(t, model.history, 2, "history must be passed through to the model")
}

func TestChatRequiresMessage(t *testing.T) {
	uc := NewAssistantUseCase(&fakeChatModel{reply: "unused"})

	_, err := uc.Chat(context.Background(), nil, "   ")

	require.Error(t, err)
	assert.True(t, errors.Is(err, "VALIDATION_ERROR"))
}

func TestChatFallsBackOnModelFailure(t *testing.T) {
	uc := NewAssistantUseCase(&fakeChatModel{err: assert.AnError})

	reply, err := uc.Chat(context.Background(), nil, "Hello?")

	require.NoError(t, err, "a model failure is absorbed, not surfaced")
	assert.Equal(t, FallbackReply, reply)
}
