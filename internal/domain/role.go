package domain

// IsAdmin reports whether the role grants access to admin-gated routes.
func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

// In reports whether r is one of roles.
func (r Role) In(roles ...Role) bool {
	for _, role := range roles {
		if r == role {
			return true
		}
	}
	return false
}
