package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"laporkota/internal/domain/entity"
	"laporkota/internal/domain/repository"
	"laporkota/internal/domain/service"
	"laporkota/pkg/errors"
	"laporkota/pkg/logger"
)

type ComplaintUseCase struct {
	complaintRepo repository.ComplaintRepository
	mediaStore    service.MediaStore
	maxImages     int
}

func NewComplaintUseCase(complaintRepo repository.ComplaintRepository, mediaStore service.MediaStore, maxImages int) *ComplaintUseCase {
	if maxImages <= 0 {
		maxImages = entity.MaxComplaintImages
	}

	return &ComplaintUseCase{
		complaintRepo: complaintRepo,
		mediaStore:    mediaStore,
		maxImages:     maxImages,
	}
}

type SubmitComplaintInput struct {
	Title        string
	Description  string
	Type         string
	Location     string
	Priority     string
	IncidentDate time.Time
	Images       [][]byte
	Video        []byte
}

type SubmitResult struct {
	ID       string
	Warnings []string
}

type EditComplaintInput struct {
	Title       *string
	Description *string
	Location    *string
	Priority    *string
}

// Submit validates the form input, persists the complaint with a
// server-assigned creation timestamp, then encodes and attaches its media.
// Retrying after a failure creates a new document: submission is
// at-least-once, never deduplicated.
func (uc *ComplaintUseCase) Submit(ctx context.Context, userID string, input SubmitComplaintInput) (*SubmitResult, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, errors.Validation("A signed-in user is required to submit a complaint", nil)
	}

	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, errors.Validation("title is required", nil)
	}

	description := strings.TrimSpace(input.Description)
	if description == "" {
		return nil, errors.Validation("description is required", nil)
	}

	if input.Type == "" {
		return nil, errors.Validation("type is required", nil)
	}
	if !entity.IsValidComplaintType(input.Type) {
		return nil, errors.Validation("type must be one of: road, waste, water, electricity, noise, other", nil)
	}

	priority := input.Priority
	if priority == "" {
		priority = entity.PriorityMedium
	}
	if !entity.IsValidPriority(priority) {
		return nil, errors.Validation("priority must be one of: low, medium, high", nil)
	}

	var warnings []string

	images := input.Images
	if len(images) > uc.maxImages {
		warnings = append(warnings, fmt.Sprintf("only the first %d images were kept, %d dropped", uc.maxImages, len(images)-uc.maxImages))
		images = images[:uc.maxImages]
	}

	complaint := &entity.Complaint{
		UserID:       userID,
		Title:        title,
		Description:  description,
		Type:         input.Type,
		Priority:     priority,
		Location:     strings.TrimSpace(input.Location),
		Status:       entity.StatusPending,
		Images:       []string{},
		IncidentDate: input.IncidentDate,
	}

	if err := uc.complaintRepo.Create(ctx, complaint); err != nil {
		return nil, err
	}

	// Second phase, mirroring the mobile client: media is encoded against
	// the fresh document id and attached afterwards. A media item that fails
	// to encode is dropped with a warning; the submission stands.
	stored := make([]string, 0, len(images))
	for i, data := range images {
		payload, err := uc.mediaStore.StoreImage(ctx, complaint.ID, i, data)
		if err != nil {
			logger.LogComplaintError(complaint.ID, "store_image", err)
			warnings = append(warnings, fmt.Sprintf("image %d could not be encoded and was dropped", i+1))
			continue
		}
		stored = append(stored, payload)
	}

	video := ""
	if len(input.Video) > 0 {
		payload, err := uc.mediaStore.StoreVideo(ctx, complaint.ID, input.Video)
		if err != nil {
			logger.LogComplaintError(complaint.ID, "store_video", err)
			warnings = append(warnings, "video could not be encoded and was dropped")
		} else {
			video = payload
		}
	}

	if len(stored) > 0 || video != "" {
		if err := uc.complaintRepo.SetMedia(ctx, complaint.ID, stored, video); err != nil {
			return nil, err
		}
	}

	return &SubmitResult{
		ID:       complaint.ID,
		Warnings: warnings,
	}, nil
}

func (uc *ComplaintUseCase) GetByID(ctx context.Context, id, callerID string, isAdmin bool) (*entity.Complaint, error) {
	complaint, err := uc.complaintRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !isAdmin && complaint.UserID != callerID {
		return nil, errors.Forbidden("You don't have permission to view this complaint", nil)
	}

	return complaint, nil
}

func (uc *ComplaintUseCase) ListByUser(ctx context.Context, userID, status string, limit, offset int) ([]*entity.Complaint, int64, error) {
	filter := map[string]interface{}{"userId": userID}
	if status != "" {
		filter["status"] = status
	}

	return uc.complaintRepo.List(ctx, filter, "", limit, offset)
}

func (uc *ComplaintUseCase) ListAll(ctx context.Context, status, complaintType, priority, sort string, limit, offset int) ([]*entity.Complaint, int64, error) {
	filter := make(map[string]interface{})
	if status != "" {
		filter["status"] = status
	}
	if complaintType != "" {
		filter["type"] = complaintType
	}
	if priority != "" {
		filter["priority"] = priority
	}

	return uc.complaintRepo.List(ctx, filter, sort, limit, offset)
}

// EditFields is the owner's self-service edit. It never touches status.
func (uc *ComplaintUseCase) EditFields(ctx context.Context, id, callerID string, input EditComplaintInput) (*entity.Complaint, error) {
	complaint, err := uc.complaintRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if complaint.UserID != callerID {
		return nil, errors.Forbidden("You don't have permission to edit this complaint", nil)
	}

	fields := make(map[string]interface{})

	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return nil, errors.Validation("title cannot be empty", nil)
		}
		fields["title"] = title
		complaint.Title = title
	}

	if input.Description != nil {
		description := strings.TrimSpace(*input.Description)
		if description == "" {
			return nil, errors.Validation("description cannot be empty", nil)
		}
		fields["description"] = description
		complaint.Description = description
	}

	if input.Location != nil {
		location := strings.TrimSpace(*input.Location)
		fields["location"] = location
		complaint.Location = location
	}

	if input.Priority != nil {
		if !entity.IsValidPriority(*input.Priority) {
			return nil, errors.Validation("priority must be one of: low, medium, high", nil)
		}
		fields["priority"] = *input.Priority
		complaint.Priority = *input.Priority
	}

	if len(fields) == 0 {
		return complaint, nil
	}

	if err := uc.complaintRepo.UpdateFields(ctx, id, fields); err != nil {
		return nil, err
	}

	return complaint, nil
}

// ChangeStatus moves a complaint through the pending → in-progress →
// resolved lifecycle. No linear order is enforced: pending → resolved is
// fine. Values outside the set are rejected before any write, leaving the
// stored status untouched.
func (uc *ComplaintUseCase) ChangeStatus(ctx context.Context, id, newStatus string) (*entity.Complaint, error) {
	if !entity.IsValidStatus(newStatus) {
		return nil, errors.InvalidState(fmt.Sprintf("%q is not a valid status", newStatus), nil)
	}

	complaint, err := uc.complaintRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := uc.complaintRepo.UpdateFields(ctx, id, map[string]interface{}{"status": newStatus}); err != nil {
		return nil, err
	}

	complaint.Status = newStatus
	return complaint, nil
}

// Delete removes the record for the owner or an administrator. Deleting a
// record that is already gone surfaces NOT_FOUND, consistently on both
// paths.
func (uc *ComplaintUseCase) Delete(ctx context.Context, id, callerID string, isAdmin bool) error {
	complaint, err := uc.complaintRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if !isAdmin && complaint.UserID != callerID {
		return errors.Forbidden("You don't have permission to delete this complaint", nil)
	}

	return uc.complaintRepo.Delete(ctx, id)
}
