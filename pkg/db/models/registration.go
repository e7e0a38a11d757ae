package models

import "time"

// Registration enrolls a user for an event. The composite unique index keeps
// a user from registering twice for the same event.
type Registration struct {
	ID               uint      `gorm:"primaryKey"`
	EventID          uint      `gorm:"column:event_id;not null;uniqueIndex:idx_registrations_event_user"`
	UserID           uint      `gorm:"column:user_id;not null;uniqueIndex:idx_registrations_event_user"`
	RegistrationDate time.Time `gorm:"column:registration_date;autoCreateTime"`
}
