package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BookingPlatform/pkg/types"
)

// ReservationStatus represents the status of a reservation
type ReservationStatus string

const (
	ReservationPending   ReservationStatus = "pending"
	ReservationConfirmed ReservationStatus = "confirmed"
	ReservationCancelled ReservationStatus = "cancelled"
	ReservationCompleted ReservationStatus = "completed"
)

// Reservation is a client booking of a service at a specific date and time
type Reservation struct {
	ID              uuid.UUID
	CompanyID       uuid.UUID
	ServiceID       uuid.UUID
	ClientID        *uuid.UUID
	ClientName      string
	ClientEmail     string
	ClientPhone     string
	ReservationDate time.Time
	StartTime       types.TimeString
	EndTime         types.TimeString
	Status          ReservationStatus
	Notes           *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsConfirmed returns true if the reservation is confirmed
func (r *Reservation) IsConfirmed() bool {
	return r.Status == ReservationConfirmed
}
