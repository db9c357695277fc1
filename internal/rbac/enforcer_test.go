package rbac_test

import (
	"testing"

	"github.com/hipper-gif/smiley-kitchen-sub003/internal/rbac"
	"github.com/hipper-gif/smiley-kitchen-sub003/internal/user"

	"github.com/stretchr/testify/assert"
)

func TestEnforcer(t *testing.T) {
	e, err := rbac.NewEnforcer()
	assert.NoError(t, err)

	cases := []struct {
		role     string
		resource string
		action   string
		allowed  bool
	}{
		{user.RoleUser, "order", "create", true},
		{user.RoleUser, "order", "cancel", true},
		{user.RoleUser, "menu", "read", true},
		{user.RoleUser, "company", "read", true},
		{user.RoleUser, "company", "update", false},
		{user.RoleUser, "company_orders", "read", false},
		{user.RoleCompanyAdmin, "company", "update", true},
		{user.RoleCompanyAdmin, "company_orders", "read", true},
		// admins inherit the user role
		{user.RoleCompanyAdmin, "order", "create", true},
		{"intruder", "order", "create", false},
	}

	for _, tc := range cases {
		allowed, err := e.Enforce(tc.role, tc.resource, tc.action)
		assert.NoError(t, err)
		assert.Equal(t, tc.allowed, allowed, "%s %s %s", tc.role, tc.resource, tc.action)
	}
}
