package models

import "github.com/campuslabs/campus-events-backend/pkg/enums"

// Venue is a bookable capacity resource.
type Venue struct {
	ID        uint            `gorm:"primaryKey"`
	Name      string          `gorm:"column:name;not null"`
	VenueType enums.VenueType `gorm:"column:venue_type;type:text;not null"`
	Capacity  int             `gorm:"column:capacity"`
	Location  *string         `gorm:"column:location"`
	Picture   *string         `gorm:"column:picture"`
	IsActive  bool            `gorm:"column:is_active;not null;default:true"`
}
