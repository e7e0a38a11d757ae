package enums

import "fmt"

// Role is the closed set of account roles.
type Role string

const (
	RoleStudent      Role = "student"
	RoleOrganization Role = "organization"
	RoleAdmin        Role = "admin"
)

var validRoles = []Role{
	RoleStudent,
	RoleOrganization,
	RoleAdmin,
}

// Capability names an action a role may or may not perform. Authorization
// checks go through Role.Can instead of comparing role strings inline.
type Capability string

const (
	CapabilityOrganizeEvents  Capability = "organize_events"
	CapabilityModerateEvents  Capability = "moderate_events"
	CapabilityManageVenues    Capability = "manage_venues"
	CapabilityManageInventory Capability = "manage_inventory"
)

var capabilitiesByRole = map[Role]map[Capability]bool{
	RoleStudent: {},
	RoleOrganization: {
		CapabilityOrganizeEvents: true,
	},
	RoleAdmin: {
		CapabilityOrganizeEvents:  true,
		CapabilityModerateEvents:  true,
		CapabilityManageVenues:    true,
		CapabilityManageInventory: true,
	},
}

// String implements fmt.Stringer.
func (r Role) String() string {
	return string(r)
}

// IsValid reports whether the value is a known Role.
func (r Role) IsValid() bool {
	for _, candidate := range validRoles {
		if candidate == r {
			return true
		}
	}
	return false
}

// Can reports whether the role holds the capability.
func (r Role) Can(capability Capability) bool {
	return capabilitiesByRole[r][capability]
}

// ParseRole converts raw input into a Role.
func ParseRole(value string) (Role, error) {
	for _, candidate := range validRoles {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid role %q", value)
}
