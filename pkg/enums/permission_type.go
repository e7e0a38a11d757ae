package enums

import "fmt"

// PermissionType classifies what a permission authorizes.
type PermissionType string

const (
	PermissionTypeVenue     PermissionType = "venue"
	PermissionTypeBudget    PermissionType = "budget"
	PermissionTypeEquipment PermissionType = "equipment"
)

var validPermissionTypes = []PermissionType{
	PermissionTypeVenue,
	PermissionTypeBudget,
	PermissionTypeEquipment,
}

// String implements fmt.Stringer.
func (p PermissionType) String() string {
	return string(p)
}

// IsValid reports whether the value is a known PermissionType.
func (p PermissionType) IsValid() bool {
	for _, candidate := range validPermissionTypes {
		if candidate == p {
			return true
		}
	}
	return false
}

// ParsePermissionType converts raw input into a PermissionType.
func ParsePermissionType(value string) (PermissionType, error) {
	for _, candidate := range validPermissionTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid permission type %q", value)
}
