package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRolePredicates(t *testing.T) {
	cases := []struct {
		role       Role
		admin      bool
		manages    bool
		canApprove bool
	}{
		{RoleAdmin, true, true, true},
		{RoleHRManager, false, true, true},
		{RoleTeamLead, false, false, true},
		{RoleEmployee, false, false, false},
		{Role("unknown"), false, false, false},
	}

	for _, c := range cases {
		assert.Equal(t, c.admin, c.role.IsAdmin(), "IsAdmin(%s)", c.role)
		assert.Equal(t, c.manages, c.role.CanManageEmployees(), "CanManageEmployees(%s)", c.role)
		assert.Equal(t, c.canApprove, c.role.CanApprove(), "CanApprove(%s)", c.role)
	}
}

func TestUserDelegatesToRole(t *testing.T) {
	u := User{Role: RoleHRManager}

	assert.False(t, u.IsAdmin())
	assert.True(t, u.CanManageEmployees())
	assert.True(t, u.CanApprove())
}
