package permissions

import (
	"time"

	"github.com/campuslabs/campus-events-backend/pkg/db/models"
	"github.com/campuslabs/campus-events-backend/pkg/enums"
)

// PermissionDTO is the transport shape for an approval request.
type PermissionDTO struct {
	ID             uint                 `json:"id"`
	EventID        uint                 `json:"event_id"`
	RequestorID    uint                 `json:"user_id"`
	ApproverID     uint                 `json:"approver_id"`
	PermissionType enums.PermissionType `json:"permission_type"`
	Status         enums.ApprovalStatus `json:"status"`
	Description    *string              `json:"description,omitempty"`
	RequestedAt    time.Time            `json:"requested_at"`
}

// CreatePermissionRequest captures the payload for opening a permission.
type CreatePermissionRequest struct {
	EventID        uint                 `json:"event_id" validate:"required"`
	ApproverID     uint                 `json:"approver_id" validate:"required"`
	PermissionType enums.PermissionType `json:"permission_type" validate:"required"`
	Description    *string              `json:"description,omitempty"`
}

func FromModel(p *models.Permission) *PermissionDTO {
	if p == nil {
		return nil
	}

	return &PermissionDTO{
		ID:             p.ID,
		EventID:        p.EventID,
		RequestorID:    p.RequestorID,
		ApproverID:     p.ApproverID,
		PermissionType: p.PermissionType,
		Status:         p.Status,
		Description:    p.Description,
		RequestedAt:    p.RequestedAt,
	}
}

func FromModels(items []models.Permission) []PermissionDTO {
	dtos := make([]PermissionDTO, 0, len(items))
	for i := range items {
		dtos = append(dtos, *FromModel(&items[i]))
	}
	return dtos
}
