package entity

import "slices"

// Role represents the type of role a principal can have in the system.
type Role string

const (
	// RoleAdmin grants access to the back-office API.
	RoleAdmin Role = "admin"
	// RoleInvestor indicates a regular investor account.
	RoleInvestor Role = "investor"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// ToStrings converts Roles to []string for token claims.
func (rs Roles) ToStrings() []string {
	result := make([]string, len(rs))
	for i, r := range rs {
		result[i] = r.String()
	}

	return result
}

// RolesFromStrings converts []string to Roles, dropping empty values.
func RolesFromStrings(ss []string) Roles {
	result := make(Roles, 0, len(ss))
	for _, s := range ss {
		if s == "" {
			continue
		}
		result = append(result, Role(s))
	}

	return result
}

// AdminPrincipal is the authenticated caller of an administrative operation.
type AdminPrincipal struct {
	ID    string
	Email string
	Roles Roles
}
