package handler

import (
	"strings"

	"github.com/labstack/echo/v4"

	"laporkota/internal/usecase"
	"laporkota/pkg/errors"
	"laporkota/pkg/response"
)

type AuthHandler struct {
	authUseCase *usecase.AuthUseCase
}

func NewAuthHandler(authUseCase *usecase.AuthUseCase) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
	}
}

type registerRequest struct {
	Name     string `json:"name" validate:"required,min=2"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type userResponse struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	PhotoURL string `json:"photo_url,omitempty"`
}

type authResponse struct {
	Token        string       `json:"token"`
	RefreshToken string       `json:"refresh_token"`
	User         userResponse `json:"user"`
}

func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	result, err := h.authUseCase.Register(c.Request().Context(), usecase.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, authResponse{
		Token:        result.Token,
		RefreshToken: result.RefreshToken,
		User: userResponse{
			ID:    result.User.ID,
			Email: result.User.Email,
			Name:  result.User.Name,
			Role:  result.User.Role,
		},
	})
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	result, err := h.authUseCase.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, authResponse{
		Token:        result.Token,
		RefreshToken: result.RefreshToken,
		User: userResponse{
			ID:       result.User.ID,
			Email:    result.User.Email,
			Name:     result.User.Name,
			Role:     result.User.Role,
			PhotoURL: result.User.PhotoURL,
		},
	})
}

func (h *AuthHandler) RefreshToken(c echo.Context) error {
	var req struct {
		RefreshToken string `json:"refresh_token" validate:"required"`
	}

	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	result, err := h.authUseCase.RefreshToken(c.Request().Context(), req.RefreshToken)
	if err != nil {
		return response.Error(c, err)
	}

	resp := authResponse{
		Token:        result.Token,
		RefreshToken: result.RefreshToken,
	}
	if result.User != nil {
		resp.User = userResponse{
			ID:    result.User.ID,
			Email: result.User.Email,
			Name:  result.User.Name,
			Role:  result.User.Role,
		}
	}

	return response.Success(c, resp)
}

// Me resolves the signed-in identity to its profile and dashboard role.
func (h *AuthHandler) Me(c echo.Context) error {
	uid := c.Get("uid").(string)

	role, err := h.authUseCase.ResolveRole(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	resp := map[string]interface{}{"role": role}

	user, err := h.authUseCase.GetUserByID(c.Request().Context(), uid)
	if err == nil {
		resp["user"] = userResponse{
			ID:       user.ID,
			Email:    user.Email,
			Name:     user.Name,
			Role:     role,
			PhotoURL: user.PhotoURL,
		}
	}

	return response.Success(c, resp)
}

func (h *AuthHandler) Logout(c echo.Context) error {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return response.Error(c, errors.Unauthorized("Authorization header required", nil))
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return response.Error(c, errors.Unauthorized("Invalid authorization format", nil))
	}

	if err := h.authUseCase.Logout(c.Request().Context(), parts[1]); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Successfully logged out",
	})
}
