// Package entity contains the core business objects of the portal.
package entity

// Role represents the kind of account a person registers as.
// A role is fixed at registration time and decides which partition
// of the account store holds the record.
type Role string

const (
	// RolePatient indicates a patient account.
	RolePatient Role = "patient"
	// RoleProvider indicates a healthcare provider account.
	RoleProvider Role = "provider"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a known value.
func (r Role) IsValid() bool {
	switch r {
	case RolePatient, RoleProvider:
		return true
	default:
		return false
	}
}

// AllRoles lists every role the portal knows about, in a stable order.
func AllRoles() []Role {
	return []Role{RolePatient, RoleProvider}
}
