package models

import (
	"time"

	"github.com/campuslabs/campus-events-backend/pkg/enums"
)

// Permission records a request awaiting one designated approver's decision.
// RequestorID is stored in the user_id column.
type Permission struct {
	ID             uint                 `gorm:"primaryKey"`
	EventID        uint                 `gorm:"column:event_id;not null;index"`
	RequestorID    uint                 `gorm:"column:user_id;not null;index"`
	ApproverID     uint                 `gorm:"column:approver_id;not null;index"`
	PermissionType enums.PermissionType `gorm:"column:permission_type;type:text;not null"`
	Status         enums.ApprovalStatus `gorm:"column:status;type:text;not null;default:pending"`
	Description    *string              `gorm:"column:description"`
	RequestedAt    time.Time            `gorm:"column:requested_at;autoCreateTime"`
}
