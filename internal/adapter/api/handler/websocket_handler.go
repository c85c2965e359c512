package handler

import (
	"net/http"

	fbauth "firebase.google.com/go/v4/auth"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"laporkota/internal/domain/entity"
	infraws "laporkota/internal/infrastructure/websocket"
	"laporkota/internal/usecase"
	"laporkota/pkg/logger"
)

type WebSocketHandler struct {
	manager     *infraws.Manager
	authClient  *fbauth.Client
	authUseCase *usecase.AuthUseCase
	upgrader    websocket.Upgrader
}

func NewWebSocketHandler(manager *infraws.Manager, authClient *fbauth.Client, authUseCase *usecase.AuthUseCase) *WebSocketHandler {
	return &WebSocketHandler{
		manager:     manager,
		authClient:  authClient,
		authUseCase: authUseCase,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

// HandleConnection authenticates via the token query parameter (browsers
// cannot set headers on websocket dials), then streams complaint snapshots
// scoped to the caller's role.
func (h *WebSocketHandler) HandleConnection(c echo.Context) error {
	idToken := c.QueryParam("token")
	if idToken == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "token query parameter is required")
	}

	token, err := h.authClient.VerifyIDToken(c.Request().Context(), idToken)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid or expired token")
	}

	role, err := h.authUseCase.ResolveRole(c.Request().Context(), token.UID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to resolve role")
	}

	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		logger.Error("WebSocket upgrade failed: %v", err)
		return err
	}

	client := &infraws.Client{
		ID:     uuid.New().String(),
		UserID: token.UID,
		Admin:  role == entity.RoleAdmin,
		Conn:   conn,
		Send:   make(chan []byte, 16),
	}

	h.manager.Register <- client

	go client.WritePump()
	go client.ReadPump(h.manager)

	return nil
}
