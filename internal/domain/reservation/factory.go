package reservation

import (
	"room-reservation/internal/pkg/clock"

	"github.com/google/uuid"
)

// Factory applies the submission-time rules that depend on the clock and
// the campus operating hours.
type Factory struct {
	Clock clock.Clock
	Hours OperatingHours
}

func NewFactory(clock clock.Clock, hours OperatingHours) *Factory {
	return &Factory{
		Clock: clock,
		Hours: hours,
	}
}

// ValidateSlot checks the slot alone, before any room is looked up.
func (f *Factory) ValidateSlot(slot TimeSlot) error {
	if !slot.StartsAfter(f.Clock.Now()) {
		return ErrStartInPast
	}
	if !f.Hours.Permits(slot) {
		return ErrOutsideOperatingHours
	}
	return nil
}

func (f *Factory) CreateReservation(
	room RoomSpec,
	userID uuid.UUID,
	slot TimeSlot,
	purpose Purpose,
	attendees AttendeeCount,
) (*Reservation, error) {
	if err := f.ValidateSlot(slot); err != nil {
		return nil, err
	}

	return NewReservation(room, userID, slot, purpose, attendees)
}
