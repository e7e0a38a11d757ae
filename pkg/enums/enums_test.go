package enums

import "testing"

func TestParseRole(t *testing.T) {
	for _, raw := range []string{"student", "organization", "admin"} {
		role, err := ParseRole(raw)
		if err != nil {
			t.Fatalf("parse %q: %v", raw, err)
		}
		if !role.IsValid() {
			t.Fatalf("expected %q to be valid", raw)
		}
	}
	if _, err := ParseRole("superuser"); err == nil {
		t.Fatal("expected error for unknown role")
	}
}

func TestRoleCapabilities(t *testing.T) {
	if RoleStudent.Can(CapabilityOrganizeEvents) {
		t.Fatal("students must not organize events")
	}
	if !RoleOrganization.Can(CapabilityOrganizeEvents) {
		t.Fatal("organizations organize events")
	}
	if RoleOrganization.Can(CapabilityModerateEvents) {
		t.Fatal("organizations must not moderate events")
	}
	if !RoleAdmin.Can(CapabilityModerateEvents) {
		t.Fatal("admins moderate events")
	}
	if Role("ghost").Can(CapabilityOrganizeEvents) {
		t.Fatal("unknown roles hold no capabilities")
	}
}

func TestApprovalStatusTransitions(t *testing.T) {
	if !ApprovalStatusPending.CanTransitionTo(ApprovalStatusApproved) {
		t.Fatal("pending -> approved must be allowed")
	}
	if !ApprovalStatusPending.CanTransitionTo(ApprovalStatusRejected) {
		t.Fatal("pending -> rejected must be allowed")
	}
	if ApprovalStatusApproved.CanTransitionTo(ApprovalStatusRejected) {
		t.Fatal("approved is terminal")
	}
	if ApprovalStatusRejected.CanTransitionTo(ApprovalStatusApproved) {
		t.Fatal("rejected is terminal")
	}
	if ApprovalStatusPending.CanTransitionTo(ApprovalStatusPending) {
		t.Fatal("pending -> pending is not a transition")
	}
}

func TestEventStatusTransitions(t *testing.T) {
	if !EventStatusDraft.CanTransitionTo(EventStatusApproved) {
		t.Fatal("draft -> approved must be allowed")
	}
	if EventStatusApproved.CanTransitionTo(EventStatusRejected) {
		t.Fatal("approved is terminal")
	}
	if EventStatusRejected.CanTransitionTo(EventStatusDraft) {
		t.Fatal("rejected is terminal")
	}
}

func TestParsePermissionType(t *testing.T) {
	if _, err := ParsePermissionType("venue"); err != nil {
		t.Fatalf("venue should parse: %v", err)
	}
	if _, err := ParsePermissionType("catering"); err == nil {
		t.Fatal("expected error for unknown permission type")
	}
}
