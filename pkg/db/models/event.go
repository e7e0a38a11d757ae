package models

import (
	"time"

	"github.com/campuslabs/campus-events-backend/pkg/enums"
)

// Event accumulates bookings, permissions, and registrations over its
// lifecycle (draft until a moderator approves or rejects it).
type Event struct {
	ID                 uint              `gorm:"primaryKey"`
	Title              string            `gorm:"column:title;not null"`
	Description        *string           `gorm:"column:description"`
	OrganizerID        uint              `gorm:"column:organizer_id;not null;index"`
	StartDate          time.Time         `gorm:"column:start_date;not null"`
	EndDate            time.Time         `gorm:"column:end_date;not null"`
	Status             enums.EventStatus `gorm:"column:status;type:text;not null;default:draft"`
	ExpectedAttendance int               `gorm:"column:expected_attendance"`
	EventType          *string           `gorm:"column:event_type"`
	Logo               *string           `gorm:"column:logo"`
	CreatedAt          time.Time         `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt          time.Time         `gorm:"column:updated_at;autoUpdateTime"`

	Organizer *User `gorm:"foreignKey:OrganizerID"`
}
