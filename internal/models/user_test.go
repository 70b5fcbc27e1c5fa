package models

import "testing"

func TestRoleList(t *testing.T) {
	u := &User{Roles: "user, employee"}

	roles := u.RoleList()
	if len(roles) != 2 || roles[0] != "user" || roles[1] != "employee" {
		t.Fatalf("unexpected roles: %v", roles)
	}
}

func TestHasRole(t *testing.T) {
	u := &User{Roles: "user,employee"}

	if !u.HasRole(RoleEmployee) {
		t.Fatalf("expected employee role")
	}
	if u.HasRole(RoleAdmin) {
		t.Fatalf("unexpected admin role")
	}
}

func TestJoinRoles_RoundTrip(t *testing.T) {
	u := &User{Roles: JoinRoles([]string{RoleUser, RoleAdmin})}

	if !u.HasRole(RoleUser) || !u.HasRole(RoleAdmin) {
		t.Fatalf("round trip lost roles: %q", u.Roles)
	}
}
