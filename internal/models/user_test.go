package models

import "testing"

func TestRoleAtLeast(t *testing.T) {
	tests := []struct {
		role     string
		required string
		want     bool
	}{
		{RoleSuperAdmin, RoleModerator, true},
		{RoleSuperAdmin, RoleSuperAdmin, true},
		{RoleAdmin, RoleEditor, true},
		{RoleEditor, RoleEditor, true},
		{RoleEditor, RoleAdmin, false},
		{RoleModerator, RoleEditor, false},
		{"", RoleModerator, false},
		{"owner", RoleModerator, false},
		{RoleAdmin, "unknown", false},
	}
	for _, tt := range tests {
		if got := RoleAtLeast(tt.role, tt.required); got != tt.want {
			t.Errorf("RoleAtLeast(%q, %q) = %v, want %v", tt.role, tt.required, got, tt.want)
		}
	}
}

func TestValidRole(t *testing.T) {
	for _, role := range []string{RoleModerator, RoleEditor, RoleAdmin, RoleSuperAdmin} {
		if !ValidRole(role) {
			t.Errorf("ValidRole(%q) = false", role)
		}
	}
	for _, role := range []string{"", "root", "Admin"} {
		if ValidRole(role) {
			t.Errorf("ValidRole(%q) = true", role)
		}
	}
}
