package models

import (
	"time"

	"github.com/campuslabs/campus-events-backend/pkg/enums"
)

// VenueBooking reserves a venue for an event's time window, authorized by an
// approved venue-type permission.
type VenueBooking struct {
	ID           uint                 `gorm:"primaryKey"`
	VenueID      uint                 `gorm:"column:venue_id;not null;index"`
	EventID      uint                 `gorm:"column:event_id;not null;index"`
	PermissionID uint                 `gorm:"column:permission_id;not null;index"`
	BookerID     uint                 `gorm:"column:booker_id;not null;index"`
	StartTime    time.Time            `gorm:"column:start_time;not null"`
	EndTime      time.Time            `gorm:"column:end_time;not null"`
	Purpose      *string              `gorm:"column:purpose"`
	Status       enums.ApprovalStatus `gorm:"column:status;type:text;not null;default:approved"`
	CreatedAt    time.Time            `gorm:"column:created_at;autoCreateTime"`
}
