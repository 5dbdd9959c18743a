package booking

// ===============================
// User Roles
// ===============================

type Role string

const (
	RolePatient Role = "patient"
	RoleAdmin   Role = "admin"
)

// ParseRole maps a stored role string onto the closed set of roles.
// Anything unknown degrades to patient.
func ParseRole(s string) Role {
	if s == string(RoleAdmin) {
		return RoleAdmin
	}
	return RolePatient
}

// ===============================
// Capabilities
// ===============================

func (r Role) CanManageRoster() bool {
	return r == RoleAdmin
}

func (r Role) CanManageCatalog() bool {
	return r == RoleAdmin
}

func (r Role) CanPromoteUsers() bool {
	return r == RoleAdmin
}

func (r Role) CanViewAllUsers() bool {
	return r == RoleAdmin
}
