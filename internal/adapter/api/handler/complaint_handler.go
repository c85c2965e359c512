package handler

import (
	"io"
	"mime/multipart"
	"time"

	"github.com/labstack/echo/v4"

	"laporkota/internal/usecase"
	"laporkota/pkg/errors"
	"laporkota/pkg/response"
	"laporkota/pkg/utils"
)

type ComplaintHandler struct {
	complaintUseCase *usecase.ComplaintUseCase
	statsUseCase     *usecase.StatsUseCase
}

func NewComplaintHandler(complaintUseCase *usecase.ComplaintUseCase, statsUseCase *usecase.StatsUseCase) *ComplaintHandler {
	return &ComplaintHandler{
		complaintUseCase: complaintUseCase,
		statsUseCase:     statsUseCase,
	}
}

type submitComplaintRequest struct {
	Title       string `form:"title" validate:"required"`
	Description string `form:"description" validate:"required"`
	Type        string `form:"type" validate:"required,oneof=road waste water electricity noise other"`
	Location    string `form:"location"`
	Priority    string `form:"priority" validate:"omitempty,oneof=low medium high"`
}

type editComplaintRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Location    *string `json:"location"`
	Priority    *string `json:"priority" validate:"omitempty,oneof=low medium high"`
}

// Submit accepts a multipart form: text fields plus up to 3 "images" files
// and one optional "video" file.
func (h *ComplaintHandler) Submit(c echo.Context) error {
	uid := c.Get("uid").(string)

	var req submitComplaintRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	input := usecase.SubmitComplaintInput{
		Title:       req.Title,
		Description: req.Description,
		Type:        req.Type,
		Location:    req.Location,
		Priority:    req.Priority,
	}

	if raw := c.FormValue("incident_date"); raw != "" {
		incidentDate, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return response.Error(c, errors.Validation("incident_date must be RFC3339", err))
		}
		input.IncidentDate = incidentDate
	}

	form, err := c.MultipartForm()
	if err == nil && form != nil {
		for _, fh := range form.File["images"] {
			data, err := readFormFile(fh)
			if err != nil {
				return response.Error(c, errors.MediaEncoding("Failed to read uploaded image", err))
			}
			input.Images = append(input.Images, data)
		}

		if videos := form.File["video"]; len(videos) > 0 {
			data, err := readFormFile(videos[0])
			if err != nil {
				return response.Error(c, errors.MediaEncoding("Failed to read uploaded video", err))
			}
			input.Video = data
		}
	}

	result, err := h.complaintUseCase.Submit(c.Request().Context(), uid, input)
	if err != nil {
		return response.Error(c, err)
	}

	return response.CreatedWithWarnings(c, map[string]string{"id": result.ID}, result.Warnings)
}

func (h *ComplaintHandler) Get(c echo.Context) error {
	uid := c.Get("uid").(string)
	isAdmin, _ := c.Get("isAdmin").(bool)

	complaint, err := h.complaintUseCase.GetByID(c.Request().Context(), c.Param("id"), uid, isAdmin)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, complaint)
}

func (h *ComplaintHandler) ListMine(c echo.Context) error {
	uid := c.Get("uid").(string)
	pagination := utils.GetPaginationParams(c)

	complaints, total, err := h.complaintUseCase.ListByUser(
		c.Request().Context(),
		uid,
		c.QueryParam("status"),
		pagination.PageSize,
		pagination.Offset,
	)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, complaints, total, pagination.Page, pagination.PageSize)
}

func (h *ComplaintHandler) Edit(c echo.Context) error {
	uid := c.Get("uid").(string)

	var req editComplaintRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	complaint, err := h.complaintUseCase.EditFields(c.Request().Context(), c.Param("id"), uid, usecase.EditComplaintInput{
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		Priority:    req.Priority,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, complaint)
}

func (h *ComplaintHandler) Delete(c echo.Context) error {
	uid := c.Get("uid").(string)
	isAdmin, _ := c.Get("isAdmin").(bool)

	if err := h.complaintUseCase.Delete(c.Request().Context(), c.Param("id"), uid, isAdmin); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Complaint deleted",
	})
}

// Stats returns the caller's own dashboard figures.
func (h *ComplaintHandler) Stats(c echo.Context) error {
	uid := c.Get("uid").(string)

	summary, recent, err := h.statsUseCase.Dashboard(c.Request().Context(), uid, 5)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"summary": summary,
		"recent":  recent,
	})
}

func readFormFile(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return io.ReadAll(f)
}
