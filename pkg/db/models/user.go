package models

import (
	"time"

	"github.com/campuslabs/campus-events-backend/pkg/enums"
)

// User represents the canonical identity entity.
type User struct {
	ID           uint       `gorm:"primaryKey"`
	Email        string     `gorm:"type:text;not null;uniqueIndex"`
	PasswordHash string     `gorm:"column:password_hash;not null"`
	FullName     string     `gorm:"column:full_name;not null"`
	Role         enums.Role `gorm:"column:role;type:text;not null"`
	Department   *string    `gorm:"column:department"`
	ProfilePic   *string    `gorm:"column:profile_pic"`
	IsActive     bool       `gorm:"column:is_active;not null;default:true"`
	CreatedAt    time.Time  `gorm:"column:created_at;autoCreateTime"`
}
