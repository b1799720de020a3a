package domain

import (
	"time"

	"github.com/google/uuid"
)

// UserRole determines which parts of the application a profile can access
type UserRole string

const (
	RoleAdmin   UserRole = "admin"
	RoleCompany UserRole = "company"
	RoleClient  UserRole = "client"
)

// IsValid reports whether the role is one of the known roles
func (r UserRole) IsValid() bool {
	switch r {
	case RoleAdmin, RoleCompany, RoleClient:
		return true
	}
	return false
}

// Profile is the identity record attached to an authenticated user
type Profile struct {
	ID        uuid.UUID
	Role      UserRole
	FullName  string
	Phone     *string
	AvatarURL *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsCompanyOwner returns true if the profile manages a company
func (p *Profile) IsCompanyOwner() bool {
	return p.Role == RoleCompany
}
