package queries

import (
	"time"

	"github.com/google/uuid"
)

// ReservationView is the full read model of one reservation, joined with its
// owner and room.
type ReservationView struct {
	ID               uuid.UUID `json:"id"`
	UserID           uuid.UUID `json:"user_id"`
	UserName         string    `json:"user_name"`
	UserEmail        string    `json:"user_email"`
	RoomID           uuid.UUID `json:"room_id"`
	RoomName         string    `json:"room_name"`
	StartTime        time.Time `json:"start_time"`
	EndTime          time.Time `json:"end_time"`
	Purpose          string    `json:"purpose"`
	AttendeeCount    int32     `json:"attendee_count"`
	Status           string    `json:"status"`
	RejectionReason  *string   `json:"rejection_reason,omitempty"`
	RejectedBySystem bool      `json:"rejected_by_system"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// ReservationListItem is a row of the requester's own history.
type ReservationListItem struct {
	ID              uuid.UUID `json:"id"`
	RoomID          uuid.UUID `json:"room_id"`
	RoomName        string    `json:"room_name"`
	StartTime       time.Time `json:"start_time"`
	EndTime         time.Time `json:"end_time"`
	Purpose         string    `json:"purpose"`
	AttendeeCount   int32     `json:"attendee_count"`
	Status          string    `json:"status"`
	RejectionReason *string   `json:"rejection_reason,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// PendingItem is a row of the admin approval queue.
type PendingItem struct {
	ID            uuid.UUID `json:"id"`
	UserID        uuid.UUID `json:"user_id"`
	UserName      string    `json:"user_name"`
	RoomID        uuid.UUID `json:"room_id"`
	RoomName      string    `json:"room_name"`
	StartTime     time.Time `json:"start_time"`
	EndTime       time.Time `json:"end_time"`
	Purpose       string    `json:"purpose"`
	AttendeeCount int32     `json:"attendee_count"`
	CreatedAt     time.Time `json:"created_at"`
}

type RoomView struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Capacity    int32     `json:"capacity"`
	Location    string    `json:"location"`
	ImageURL    string    `json:"image_url"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type BlockedSlotView struct {
	ID        uuid.UUID `json:"id"`
	RoomID    uuid.UUID `json:"room_id"`
	RoomName  string    `json:"room_name"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Reason    string    `json:"reason"`
	CreatedAt time.Time `json:"created_at"`
}

type ScheduleEntryKind string

const (
	ScheduleReservation ScheduleEntryKind = "reservation"
	ScheduleBlocked     ScheduleEntryKind = "blocked"
)

// ScheduleEntry is either an approved reservation or a blocked slot.
// Label carries the purpose or the blocking reason.
type ScheduleEntry struct {
	Kind      ScheduleEntryKind `json:"kind"`
	ID        uuid.UUID         `json:"id"`
	StartTime time.Time         `json:"start_time"`
	EndTime   time.Time         `json:"end_time"`
	Label     string            `json:"label"`
	UserName  *string           `json:"user_name,omitempty"`
}

type RoomSchedule struct {
	RoomID  uuid.UUID       `json:"room_id"`
	Date    string          `json:"date"`
	Entries []ScheduleEntry `json:"entries"`
}

type AvailabilityView struct {
	RoomID    uuid.UUID `json:"room_id"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Available bool      `json:"available"`
	Conflict  string    `json:"conflict,omitempty"`
}

type StatusCount struct {
	Status string `json:"status"`
	Total  int64  `json:"total"`
}

type RoomStatusCount struct {
	RoomID   uuid.UUID     `json:"room_id"`
	RoomName string        `json:"room_name"`
	Counts   []StatusCount `json:"counts"`
	Total    int64         `json:"total"`
}

type ReportSummary struct {
	From     *time.Time        `json:"from,omitempty"`
	To       *time.Time        `json:"to,omitempty"`
	RoomID   *uuid.UUID        `json:"room_id,omitempty"`
	ByStatus []StatusCount     `json:"by_status"`
	ByRoom   []RoomStatusCount `json:"by_room"`
	Total    int64             `json:"total"`
}

// AuthorizedUserView represents read-optimized user data with authorization info
type AuthorizedUserView struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}
