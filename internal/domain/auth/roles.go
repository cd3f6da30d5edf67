package auth

const (
	RoleMember     = "member"
	RoleTeamAdmin  = "team_admin"
	RoleHQAdmin    = "hq_admin"
	RoleSuperAdmin = "super_admin"
)

// RoleContext is the caller's adjustment-layer eligibility. The super admin
// implies both admin surfaces.
type RoleContext struct {
	IsTeamAdmin        bool `json:"isTeamAdmin"`
	IsHeadquarterAdmin bool `json:"isHeadquarterAdmin"`
	IsSuperAdmin       bool `json:"isSuperAdmin"`
}

func ContextForRole(role string) RoleContext {
	switch role {
	case RoleTeamAdmin:
		return RoleContext{IsTeamAdmin: true}
	case RoleHQAdmin:
		return RoleContext{IsHeadquarterAdmin: true}
	case RoleSuperAdmin:
		return RoleContext{IsTeamAdmin: true, IsHeadquarterAdmin: true, IsSuperAdmin: true}
	default:
		return RoleContext{}
	}
}

// CanAdjust reports whether the caller may edit the given adjustment layer.
func (rc RoleContext) CanAdjust(layer string) bool {
	switch layer {
	case "manager":
		return rc.IsTeamAdmin || rc.IsSuperAdmin
	case "hq":
		return rc.IsHeadquarterAdmin || rc.IsSuperAdmin
	default:
		return false
	}
}
