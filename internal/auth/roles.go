package auth

import "errors"

// Role is the closed set of account roles.
type Role string

const (
	RoleClient Role = "client"
	RoleMaster Role = "master"
	RoleSalon  Role = "salon"
	RoleAdmin  Role = "admin"
)

// Action names a capability a role may hold.
type Action string

const (
	ActionManageCities     Action = "cities:write"
	ActionManageSalon      Action = "salon:write"
	ActionManageMaster     Action = "master:write"
	ActionManagePhotos     Action = "photos:write"
	ActionPostVacancies    Action = "vacancies:write"
	ActionApplyVacancies   Action = "vacancies:apply"
	ActionInviteMasters    Action = "relations:invite"
	ActionAnswerInvitation Action = "relations:answer"
	ActionModerate         Action = "system:moderate"
)

// capabilities is the role -> allowed-actions table. Every role present in
// the enum has an entry; Can is total over (Role, Action).
var capabilities = map[Role][]Action{
	RoleClient: {},
	RoleMaster: {
		ActionManageMaster,
		ActionManagePhotos,
		ActionApplyVacancies,
		ActionAnswerInvitation,
	},
	RoleSalon: {
		ActionManageSalon,
		ActionManagePhotos,
		ActionPostVacancies,
		ActionInviteMasters,
	},
	RoleAdmin: {
		ActionManageCities,
		ActionManageSalon,
		ActionManageMaster,
		ActionManagePhotos,
		ActionPostVacancies,
		ActionApplyVacancies,
		ActionInviteMasters,
		ActionAnswerInvitation,
		ActionModerate,
	},
}

// Can reports whether a role holds the given capability. Unknown roles hold
// nothing.
func Can(role Role, action Action) bool {
	actions, ok := capabilities[role]
	if !ok {
		return false
	}
	for _, a := range actions {
		if a == action {
			return true
		}
	}
	return false
}

// IsAdmin reports whether the claims belong to an administrator.
func IsAdmin(claims *Claims) bool {
	return claims.Role == RoleAdmin
}

// ValidateRole rejects roles outside the enum.
func ValidateRole(role Role) error {
	switch role {
	case RoleClient, RoleMaster, RoleSalon, RoleAdmin:
		return nil
	default:
		return errors.New("invalid role")
	}
}
