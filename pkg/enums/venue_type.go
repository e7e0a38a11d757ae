package enums

import "fmt"

// VenueType classifies bookable spaces.
type VenueType string

const (
	VenueTypeHall      VenueType = "hall"
	VenueTypeClassroom VenueType = "classroom"
	VenueTypeLab       VenueType = "lab"
)

var validVenueTypes = []VenueType{
	VenueTypeHall,
	VenueTypeClassroom,
	VenueTypeLab,
}

// String implements fmt.Stringer.
func (v VenueType) String() string {
	return string(v)
}

// IsValid reports whether the value is a known VenueType.
func (v VenueType) IsValid() bool {
	for _, candidate := range validVenueTypes {
		if candidate == v {
			return true
		}
	}
	return false
}

// ParseVenueType converts raw input into a VenueType.
func ParseVenueType(value string) (VenueType, error) {
	for _, candidate := range validVenueTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid venue type %q", value)
}
