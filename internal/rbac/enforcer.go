package rbac

import (
	"github.com/hipper-gif/smiley-kitchen-sub003/internal/user"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
)

// The portal has exactly two roles, so the model and policy are static:
// company_admin inherits everything a regular user may do.
const rbacModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && r.obj == p.obj && r.act == p.act
`

type Enforcer struct {
	enforcer *casbin.Enforcer
}

func NewEnforcer() (*Enforcer, error) {
	m, err := model.NewModelFromString(rbacModel)
	if err != nil {
		return nil, err
	}

	e, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, err
	}

	policies := [][]string{
		{user.RoleUser, "order", "read"},
		{user.RoleUser, "order", "create"},
		{user.RoleUser, "order", "update"},
		{user.RoleUser, "order", "cancel"},
		{user.RoleUser, "menu", "read"},
		{user.RoleUser, "company", "read"},
		{user.RoleCompanyAdmin, "company", "update"},
		{user.RoleCompanyAdmin, "company_orders", "read"},
	}
	for _, p := range policies {
		if _, err := e.AddPolicy(p[0], p[1], p[2]); err != nil {
			return nil, err
		}
	}

	if _, err := e.AddGroupingPolicy(user.RoleCompanyAdmin, user.RoleUser); err != nil {
		return nil, err
	}

	return &Enforcer{enforcer: e}, nil
}

func (e *Enforcer) Enforce(role, resource, action string) (bool, error) {
	return e.enforcer.Enforce(role, resource, action)
}
