package handler

import (
	"github.com/labstack/echo/v4"

	"laporkota/internal/usecase"
	"laporkota/pkg/errors"
	"laporkota/pkg/response"
	"laporkota/pkg/utils"
)

type AdminHandler struct {
	complaintUseCase *usecase.ComplaintUseCase
	statsUseCase     *usecase.StatsUseCase
	userUseCase      *usecase.UserUseCase
}

func NewAdminHandler(
	complaintUseCase *usecase.ComplaintUseCase,
	statsUseCase *usecase.StatsUseCase,
	userUseCase *usecase.UserUseCase,
) *AdminHandler {
	return &AdminHandler{
		complaintUseCase: complaintUseCase,
		statsUseCase:     statsUseCase,
		userUseCase:      userUseCase,
	}
}

type changeStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type setRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=user admin"`
}

func (h *AdminHandler) ListComplaints(c echo.Context) error {
	pagination := utils.GetPaginationParams(c)

	complaints, total, err := h.complaintUseCase.ListAll(
		c.Request().Context(),
		c.QueryParam("status"),
		c.QueryParam("type"),
		c.QueryParam("priority"),
		c.QueryParam("sort"),
		pagination.PageSize,
		pagination.Offset,
	)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, complaints, total, pagination.Page, pagination.PageSize)
}

func (h *AdminHandler) ChangeStatus(c echo.Context) error {
	var req changeStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	// Status membership is checked by the use case so an unknown value maps
	// to INVALID_STATE rather than a generic validation failure.
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	complaint, err := h.complaintUseCase.ChangeStatus(c.Request().Context(), c.Param("id"), req.Status)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, complaint)
}

func (h *AdminHandler) DeleteComplaint(c echo.Context) error {
	uid := c.Get("uid").(string)

	if err := h.complaintUseCase.Delete(c.Request().Context(), c.Param("id"), uid, true); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Complaint deleted",
	})
}

// Stats returns the system-wide dashboard figures.
func (h *AdminHandler) Stats(c echo.Context) error {
	summary, recent, err := h.statsUseCase.Dashboard(c.Request().Context(), "", 5)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"summary": summary,
		"recent":  recent,
	})
}

func (h *AdminHandler) ListUsers(c echo.Context) error {
	pagination := utils.GetPaginationParams(c)

	users, total, err := h.userUseCase.ListUsers(
		c.Request().Context(),
		c.QueryParam("role"),
		pagination.PageSize,
		pagination.Offset,
	)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, users, total, pagination.Page, pagination.PageSize)
}

func (h *AdminHandler) SetRole(c echo.Context) error {
	var req setRoleRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	user, err := h.userUseCase.SetRole(c.Request().Context(), c.Param("id"), req.Role)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}

func (h *AdminHandler) DeleteUser(c echo.Context) error {
	uid := c.Get("uid").(string)
	if uid == c.Param("id") {
		return response.Error(c, errors.BadRequest("Administrators cannot delete their own account", nil))
	}

	if err := h.userUseCase.DeleteUser(c.Request().Context(), c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "User deleted",
	})
}
