package auth

// Role represents a dashboard user role.
type Role string

const (
	// RoleAdmin is operations staff: shipment lifecycle, no financials.
	RoleAdmin Role = "admin"
	// RoleSuper is the owner role with full financial visibility.
	RoleSuper Role = "super"
)

// NormalizeRole validates and normalizes a role string.
func NormalizeRole(value string) (Role, bool) {
	switch Role(value) {
	case RoleAdmin, RoleSuper:
		return Role(value), true
	default:
		return "", false
	}
}

// RoleAtLeast returns true when role satisfies required role.
func RoleAtLeast(role Role, required Role) bool {
	return roleRank(role) >= roleRank(required)
}

func roleRank(role Role) int {
	switch role {
	case RoleAdmin:
		return 1
	case RoleSuper:
		return 2
	default:
		return 0
	}
}
