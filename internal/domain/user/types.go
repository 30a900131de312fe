package user

type Role string

const (
	RoleApplicant Role = "applicant"
	RoleAgency    Role = "agency"
	RoleAdmin     Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleApplicant, RoleAgency, RoleAdmin:
		return true
	default:
		return false
	}
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
