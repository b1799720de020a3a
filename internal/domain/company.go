package domain

import (
	"time"

	"github.com/google/uuid"
)

// Company represents a business offering services, owned by one company profile
type Company struct {
	ID                    uuid.UUID
	OwnerID               uuid.UUID
	Name                  string
	Slug                  string
	Description           *string
	LogoURL               *string
	Category              string
	LocationAddress       *string
	LocationCity          *string
	LocationCountry       string
	Email                 *string
	Phone                 *string
	IsActive              bool
	SubscriptionTier      string
	SubscriptionExpiresAt *time.Time
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// IsOwnedBy returns true if the given user owns the company
func (c *Company) IsOwnedBy(userID uuid.UUID) bool {
	return c.OwnerID == userID
}

// Initial returns the first letter of the company name, used when there is no logo
func (c *Company) Initial() string {
	for _, r := range c.Name {
		return string(r)
	}
	return ""
}

// Service is a bookable offering of a company
type Service struct {
	ID              uuid.UUID
	CompanyID       uuid.UUID
	Name            string
	Description     *string
	DurationMinutes int
	Price           float64
	Currency        Currency
	IsActive        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
