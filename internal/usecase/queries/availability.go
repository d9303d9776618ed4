package queries

import (
	"context"
	"time"

	"room-reservation/internal/domain/availability"
	"room-reservation/internal/domain/reservation"

	"github.com/google/uuid"
)

// OccupancyReadStore lists what holds a room during a slot. Reads are not
// locked; submission repeats the check under the room lock.
type OccupancyReadStore interface {
	Occupancy(ctx context.Context, roomID uuid.UUID, slot reservation.TimeSlot) (availability.Occupancy, error)
}

type AvailabilityQueries interface {
	Check(ctx context.Context, roomID uuid.UUID, start, end time.Time) (*AvailabilityView, error)
}

type availabilityQueriesImpl struct {
	rooms     RoomReadStore
	occupancy OccupancyReadStore
}

func NewAvailabilityQueries(rooms RoomReadStore, occupancy OccupancyReadStore) AvailabilityQueries {
	return &availabilityQueriesImpl{
		rooms:     rooms,
		occupancy: occupancy,
	}
}

func (q *availabilityQueriesImpl) Check(ctx context.Context, roomID uuid.UUID, start, end time.Time) (*AvailabilityView, error) {
	slot, err := reservation.NewTimeSlot(start, end)
	if err != nil {
		return nil, err
	}
	if _, err := findRoom(ctx, q.rooms, roomID); err != nil {
		return nil, err
	}

	occ, err := q.occupancy.Occupancy(ctx, roomID, slot)
	if err != nil {
		return nil, err
	}

	decision := availability.Check(slot, occ)
	return &AvailabilityView{
		RoomID:    roomID,
		StartTime: slot.Start(),
		EndTime:   slot.End(),
		Available: decision.Admit,
		Conflict:  string(decision.Conflict),
	}, nil
}
