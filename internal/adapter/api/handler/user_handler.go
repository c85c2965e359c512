package handler

import (
	"github.com/labstack/echo/v4"

	"laporkota/internal/usecase"
	"laporkota/pkg/errors"
	"laporkota/pkg/response"
)

type UserHandler struct {
	userUseCase *usecase.UserUseCase
}

func NewUserHandler(userUseCase *usecase.UserUseCase) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
	}
}

type updateEmailRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewEmail        string `json:"new_email" validate:"required,email"`
}

type updatePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8"`
}

func (h *UserHandler) GetProfile(c echo.Context) error {
	uid := c.Get("uid").(string)

	user, err := h.userUseCase.GetProfile(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}

// UpdateProfile accepts a multipart form with an optional "name" field and
// an optional "photo" file, which runs through the media normalizer.
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	uid := c.Get("uid").(string)

	input := usecase.UpdateProfileInput{
		Name: c.FormValue("name"),
	}

	if form, err := c.MultipartForm(); err == nil && form != nil {
		if photos := form.File["photo"]; len(photos) > 0 {
			data, err := readFormFile(photos[0])
			if err != nil {
				return response.Error(c, errors.MediaEncoding("Failed to read uploaded photo", err))
			}
			input.Photo = data
		}
	}

	user, err := h.userUseCase.UpdateProfile(c.Request().Context(), uid, input)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}

func (h *UserHandler) UpdateEmail(c echo.Context) error {
	uid := c.Get("uid").(string)

	var req updateEmailRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	user, err := h.userUseCase.UpdateEmail(c.Request().Context(), uid, req.CurrentPassword, req.NewEmail)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}

func (h *UserHandler) UpdatePassword(c echo.Context) error {
	uid := c.Get("uid").(string)

	var req updatePasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	if err := h.userUseCase.UpdatePassword(c.Request().Context(), uid, req.CurrentPassword, req.NewPassword); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Password updated",
	})
}
