package user

import "testing"

func TestRoleCanApprove(t *testing.T) {
	cases := []struct {
		role Role
		want bool
	}{
		{RoleSuperAdmin, true},
		{RoleAdmin, true},
		{RoleHR, true},
		{RoleManager, true},
		{RoleEmployee, false},
		{Role("intruder"), false},
	}
	for _, c := range cases {
		if got := c.role.CanApprove(); got != c.want {
			t.Errorf("Role(%q).CanApprove() = %v, want %v", c.role, got, c.want)
		}
	}
}

func TestRoleCanManagePeople(t *testing.T) {
	cases := []struct {
		role Role
		want bool
	}{
		{RoleSuperAdmin, true},
		{RoleAdmin, true},
		{RoleHR, true},
		{RoleManager, false},
		{RoleEmployee, false},
	}
	for _, c := range cases {
		if got := c.role.CanManagePeople(); got != c.want {
			t.Errorf("Role(%q).CanManagePeople() = %v, want %v", c.role, got, c.want)
		}
	}
}

func TestRoleValid(t *testing.T) {
	for _, role := range Roles {
		if !role.Valid() {
			t.Errorf("Role(%q).Valid() = false, want true", role)
		}
	}
	if Role("owner").Valid() {
		t.Error(`Role("owner").Valid() = true, want false`)
	}
}
