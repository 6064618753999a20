package domain

import (
	"fmt"
	"time"
)

// Role is the permission level of a user account.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleEditor Role = "editor"
	RoleUser   Role = "user"
)

// ValidRoles contains all valid user roles.
var ValidRoles = []Role{RoleAdmin, RoleEditor, RoleUser}

// ParseRole converts a raw string into a Role, rejecting unknown values.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleEditor, RoleUser:
		return Role(s), nil
	}
	return "", NewValidationError("role", fmt.Sprintf("invalid user role %q", s))
}

// CanManageArticles reports whether the role grants access to the
// article admin endpoints.
func (r Role) CanManageArticles() bool {
	return r == RoleAdmin || r == RoleEditor
}

// CanManageUsers reports whether the role grants access to user
// administration.
func (r Role) CanManageUsers() bool {
	return r == RoleAdmin
}

func (r Role) String() string {
	return string(r)
}

// User represents an account in the system. ID 0 marks a user that has
// not been persisted yet.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	Active       bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
}
