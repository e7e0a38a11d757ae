package enums

import "fmt"

// EventStatus tracks event publication: draft until a moderator decides.
type EventStatus string

const (
	EventStatusDraft    EventStatus = "draft"
	EventStatusApproved EventStatus = "approved"
	EventStatusRejected EventStatus = "rejected"
)

var validEventStatuses = []EventStatus{
	EventStatusDraft,
	EventStatusApproved,
	EventStatusRejected,
}

// String implements fmt.Stringer.
func (s EventStatus) String() string {
	return string(s)
}

// IsValid reports whether the value is a known EventStatus.
func (s EventStatus) IsValid() bool {
	for _, candidate := range validEventStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// IsTerminal reports whether the status admits no further transitions.
func (s EventStatus) IsTerminal() bool {
	return s == EventStatusApproved || s == EventStatusRejected
}

// CanTransitionTo allows only draft -> approved|rejected.
func (s EventStatus) CanTransitionTo(next EventStatus) bool {
	return s == EventStatusDraft && next.IsTerminal()
}

// ParseEventStatus converts raw input into an EventStatus.
func ParseEventStatus(value string) (EventStatus, error) {
	for _, candidate := range validEventStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid event status %q", value)
}
