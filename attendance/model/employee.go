package model

import "strings"

type Role string

const (
	RoleMember  Role = "member"
	RoleManager Role = "manager"
)

func (r Role) Valid() bool {
	return r == RoleMember || r == RoleManager
}

type Employee struct {
	Email string `json:"email" yaml:"email"`
	Name  string `json:"name" yaml:"name"`
	Role  Role   `json:"role" yaml:"role"`
}

func (e *Employee) IsManager() bool {
	return e != nil && e.Role == RoleManager
}

// NormalizeEmail is the form used for every email comparison.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
