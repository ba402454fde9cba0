package models

// Roles, lowest to highest privilege.
const (
	RoleViewer     = "viewer"
	RoleTechnician = "technician"
	RoleAdmin      = "admin"
)

// RoleLevel maps a role to its permission level. Unknown roles map to 0.
var RoleLevel = map[string]int{
	RoleViewer:     1,
	RoleTechnician: 2,
	RoleAdmin:      3,
}

// ValidRole reports whether r is a known role.
func ValidRole(r string) bool {
	_, ok := RoleLevel[r]
	return ok
}

type User struct {
	ID           int    `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"` // never exposed
	Role         string `json:"role"`
}
