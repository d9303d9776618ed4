package shared

import (
	"time"

	"github.com/google/uuid"
)

// Write-side snapshots prevent dependency on Read-side query types (CQRS separation)
type ReservationSnapshot struct {
	ID               uuid.UUID
	UserID           uuid.UUID
	RoomID           uuid.UUID
	StartTime        time.Time
	EndTime          time.Time
	Purpose          string
	AttendeeCount    int
	Status           string
	RejectionReason  *string
	RejectedBySystem bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type RoomSnapshot struct {
	ID          uuid.UUID
	Name        string
	Description string
	Capacity    int
	Location    string
	ImageURL    string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// UserSnapshot.PasswordHash is only populated by lookups by email.
type UserSnapshot struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	Role         string
	IsActive     bool
}
