package reservation

import (
	"time"

	"room-reservation/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidTimeSlot       = errs.NewKind("end time must be after start time", errs.ErrValidation)
	ErrStartInPast           = errs.NewKind("start time must be in the future", errs.ErrValidation)
	ErrOutsideOperatingHours = errs.NewKind("reservation must lie within operating hours on a single day", errs.ErrValidation)
	ErrEmptyPurpose          = errs.NewKind("purpose is required", errs.ErrValidation)
	ErrPurposeTooLong        = errs.NewKind("purpose is too long (max 500 characters)", errs.ErrValidation)
	ErrInvalidAttendeeCount  = errs.NewKind("attendee count must be at least 1", errs.ErrValidation)
	ErrCapacityExceeded      = errs.NewKind("attendee count exceeds room capacity", errs.ErrValidation)
	ErrRoomInactive          = errs.NewKind("room is not available for reservation", errs.ErrValidation)
	ErrMissingReason         = errs.NewKind("rejection reason is required", errs.ErrValidation)
	ErrInvalidStatus         = errs.NewKind("invalid reservation status", errs.ErrValidation)

	ErrNotPending     = errs.NewKind("reservation is no longer pending", errs.ErrNotPending)
	ErrNotCancellable = errs.NewKind("reservation can no longer be cancelled", errs.ErrNotCancellable)
	ErrNotOwner       = errs.NewKind("reservation belongs to another user", errs.ErrNotOwner)

	ErrReservationNotFound = errs.NewKind("reservation not found", errs.ErrNotFound)
)

// RoomSpec is the part of a room a reservation is validated against.
type RoomSpec struct {
	ID       uuid.UUID
	Capacity int
	Active   bool
}

// Actor is the principal requesting a lifecycle change.
type Actor struct {
	UserID  uuid.UUID
	IsAdmin bool
}

type Reservation struct {
	id               uuid.UUID
	userID           uuid.UUID
	roomID           uuid.UUID
	timeSlot         TimeSlot
	purpose          Purpose
	attendees        AttendeeCount
	status           Status
	rejectionReason  *RejectionReason
	rejectedBySystem bool
	createdAt        time.Time
	updatedAt        time.Time
}

func NewReservation(
	room RoomSpec,
	userID uuid.UUID,
	slot TimeSlot,
	purpose Purpose,
	attendees AttendeeCount,
) (*Reservation, error) {
	if !room.Active {
		return nil, ErrRoomInactive
	}
	if attendees.Int() > room.Capacity {
		return nil, ErrCapacityExceeded
	}

	return &Reservation{
		id:        uuid.New(),
		userID:    userID,
		roomID:    room.ID,
		timeSlot:  slot,
		purpose:   purpose,
		attendees: attendees,
		status:    StatusPending,
	}, nil
}

func ReconstructReservation(
	id, userID, roomID uuid.UUID,
	timeSlot TimeSlot,
	purpose Purpose,
	attendees AttendeeCount,
	status Status,
	rejectionReason *RejectionReason,
	rejectedBySystem bool,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:               id,
		userID:           userID,
		roomID:           roomID,
		timeSlot:         timeSlot,
		purpose:          purpose,
		attendees:        attendees,
		status:           status,
		rejectionReason:  rejectionReason,
		rejectedBySystem: rejectedBySystem,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}
}

func (r *Reservation) Approve() error {
	next, err := Next(ActionApprove, r.status)
	if err != nil {
		return err
	}
	r.status = next
	return nil
}

// Reject validates the reason before the state so a missing reason is
// reported even for a reservation that is no longer pending.
func (r *Reservation) Reject(reason string) error {
	rr, err := NewRejectionReason(reason)
	if err != nil {
		return err
	}
	next, err := Next(ActionReject, r.status)
	if err != nil {
		return err
	}
	r.status = next
	r.rejectionReason = &rr
	r.rejectedBySystem = false
	return nil
}

func (r *Reservation) RejectBySystem() error {
	next, err := Next(ActionAutoReject, r.status)
	if err != nil {
		return err
	}
	rr := RejectionReason{value: SystemRejectionReason}
	r.status = next
	r.rejectionReason = &rr
	r.rejectedBySystem = true
	return nil
}

// Cancel is allowed for the owner or an admin, and only while the slot has
// not started at now.
func (r *Reservation) Cancel(actor Actor, now time.Time) error {
	if !actor.IsAdmin && actor.UserID != r.userID {
		return ErrNotOwner
	}
	next, err := Next(ActionCancel, r.status)
	if err != nil {
		return err
	}
	if !r.timeSlot.StartsAfter(now) {
		return ErrNotCancellable
	}
	r.status = next
	return nil
}

func (r *Reservation) IsOwnedBy(userID uuid.UUID) bool {
	return r.userID == userID
}

func (r *Reservation) ID() uuid.UUID                     { return r.id }
func (r *Reservation) UserID() uuid.UUID                 { return r.userID }
func (r *Reservation) RoomID() uuid.UUID                 { return r.roomID }
func (r *Reservation) TimeSlot() TimeSlot                { return r.timeSlot }
func (r *Reservation) Purpose() Purpose                  { return r.purpose }
func (r *Reservation) Attendees() AttendeeCount          { return r.attendees }
func (r *Reservation) Status() Status                    { return r.status }
func (r *Reservation) RejectionReason() *RejectionReason { return r.rejectionReason }
func (r *Reservation) RejectedBySystem() bool            { return r.rejectedBySystem }
func (r *Reservation) CreatedAt() time.Time              { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time              { return r.updatedAt }
