package identity

// Role is the access level assigned to an employee by the identity
// service. The engine never creates or mutates roles, it only reads
// them from the verified token claims.
type Role string

const (
	RoleEmployee Role = "EMPLOYEE"
	RoleHR       Role = "HR"
	RoleAdmin    Role = "ADMIN"
)

// ParseRole maps a claim string to a known role.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleEmployee, RoleHR, RoleAdmin:
		return Role(s), true
	}
	return "", false
}

// Actor is the resolved caller of an engine operation: the employee id
// and role carried by the identity context. Every service call receives
// an Actor explicitly; the engine holds no session state.
type Actor struct {
	EmployeeID string
	Role       Role
}
