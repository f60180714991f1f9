package auth

// Role is the access level carried in a credential and stored on the user
// record.
type Role string

const (
	RoleUser         Role = "USER"
	RoleProfessional Role = "PROFESSIONAL"
	RoleAdmin        Role = "ADMIN"
)

// ParseRole returns the matching role, or false for anything outside the enum.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleUser, RoleProfessional, RoleAdmin:
		return Role(s), true
	}
	return "", false
}

func (r Role) Valid() bool {
	_, ok := ParseRole(string(r))
	return ok
}

// RoleSet is a permission set evaluated against the enum.
type RoleSet map[Role]struct{}

func NewRoleSet(roles ...Role) RoleSet {
	s := make(RoleSet, len(roles))
	for _, r := range roles {
		s[r] = struct{}{}
	}
	return s
}

func (s RoleSet) Contains(r Role) bool {
	_, ok := s[r]
	return ok
}
