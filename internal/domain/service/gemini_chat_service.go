package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"laporkota/internal/domain/entity"
	"laporkota/pkg/errors"
	"laporkota/pkg/logger"
)

// GeminiChatService - hosted generative AI implementation using the
// Generative Language HTTP API
type GeminiChatService struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

func NewGeminiChatService(apiKey, model string) *GeminiChatService {
	if model == "" {
		model = "gemini-2.5-flash"
	}

	return &GeminiChatService{
		apiKey:  apiKey,
		model:   model,
		baseURL: "https://generativelanguage.googleapis.com/v1beta",
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role"`
	Parts []geminiPart `json:"parts"`
}

type geminiGenerateRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiGenerateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

func (s *GeminiChatService) Send(ctx context.Context, history []entity.ChatMessage, message string) (string, error) {
	contents := make([]geminiContent, 0, len(history)+1)
	for _, m := range history {
		role := m.Role
		if role != entity.ChatRoleModel {
			role = entity.ChatRoleUser
		}
		contents = append(contents, geminiContent{
			Role:  role,
			Parts: []geminiPart{{Text: m.Text}},
		})
	}
	contents = append(contents, geminiContent{
		Role:  entity.ChatRoleUser,
		Parts: []geminiPart{{Text: message}},
	})

	body, err := json.Marshal(geminiGenerateRequest{Contents: contents})
	if err != nil {
		return "", errors.Internal("Failed to encode chat request", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", s.baseURL, s.model, s.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", errors.Internal("Failed to build chat request", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", errors.Internal("Chat model request failed", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.Internal("Failed to read chat model response", err)
	}

	var result geminiGenerateResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", errors.Internal("Failed to parse chat model response", err)
	}

	if resp.StatusCode != http.StatusOK {
		msg := "chat model returned an error"
		if result.Error != nil && result.Error.Message != "" {
			msg = result.Error.Message
		}
		logger.Warn("Gemini error: status=%d, message=%s", resp.StatusCode, msg)
		return "", errors.Internal(msg, nil)
	}

	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return "", errors.Internal("Chat model returned no candidates", nil)
	}

	return result.Candidates[0].Content.Parts[0].Text, nil
}
