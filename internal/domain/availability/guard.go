// Package availability decides whether a proposed slot may be submitted for a room.
package availability

import (
	"room-reservation/internal/domain/reservation"
	"room-reservation/internal/pkg/errs"
)

type ConflictKind string

const (
	ConflictBooked  ConflictKind = "booked"
	ConflictBlocked ConflictKind = "blocked"
)

var (
	ErrRoomBooked  = errs.NewKind("room already booked for this time", errs.ErrConflict)
	ErrRoomBlocked = errs.NewKind("room blocked for maintenance during this time", errs.ErrConflict)
)

// Occupancy is what currently holds a room: approved reservations and blocked slots.
// Pending reservations never appear here.
type Occupancy struct {
	Approved []reservation.TimeSlot
	Blocked  []reservation.TimeSlot
}

type Decision struct {
	Admit    bool
	Conflict ConflictKind
}

func Admit() Decision { return Decision{Admit: true} }

// Check admits the slot unless it overlaps an approved reservation (booked)
// or a blocked slot (blocked). Booked is reported first.
func Check(slot reservation.TimeSlot, occ Occupancy) Decision {
	for _, a := range occ.Approved {
		if a.Overlaps(slot) {
			return Decision{Conflict: ConflictBooked}
		}
	}
	for _, b := range occ.Blocked {
		if b.Overlaps(slot) {
			return Decision{Conflict: ConflictBlocked}
		}
	}
	return Admit()
}

// Err converts a rejection into its conflict error; nil when admitted.
func (d Decision) Err() error {
	if d.Admit {
		return nil
	}
	switch d.Conflict {
	case ConflictBlocked:
		return ErrRoomBlocked
	default:
		return ErrRoomBooked
	}
}

// KindOf extracts the conflict kind carried by err, if any. Both sentinels
// share the conflict mark, so they are matched by identity.
func KindOf(err error) (ConflictKind, bool) {
	switch {
	case errs.Same(err, ErrRoomBlocked):
		return ConflictBlocked, true
	case errs.Same(err, ErrRoomBooked):
		return ConflictBooked, true
	default:
		return "", false
	}
}
