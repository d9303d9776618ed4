package queries

import (
	"context"
	"sort"
	"time"

	"room-reservation/internal/domain/reservation"

	"github.com/google/uuid"
)

const scheduleDateLayout = "2006-01-02"

type ScheduleReadStore interface {
	ApprovedIn(ctx context.Context, roomID uuid.UUID, window reservation.TimeSlot) ([]ScheduleEntry, error)
	BlockedIn(ctx context.Context, roomID uuid.UUID, window reservation.TimeSlot) ([]ScheduleEntry, error)
}

type ScheduleQueries interface {
	// RoomDay lists approved reservations and blocked slots overlapping the
	// campus-local date, sorted by start.
	RoomDay(ctx context.Context, roomID uuid.UUID, date string) (*RoomSchedule, error)
}

type scheduleQueriesImpl struct {
	rooms    RoomReadStore
	schedule ScheduleReadStore
	hours    reservation.OperatingHours
}

func NewScheduleQueries(rooms RoomReadStore, schedule ScheduleReadStore, hours reservation.OperatingHours) ScheduleQueries {
	return &scheduleQueriesImpl{
		rooms:    rooms,
		schedule: schedule,
		hours:    hours,
	}
}

func (q *scheduleQueriesImpl) RoomDay(ctx context.Context, roomID uuid.UUID, date string) (*RoomSchedule, error) {
	day, err := time.ParseInLocation(scheduleDateLayout, date, q.hours.Location())
	if err != nil {
		return nil, ErrInvalidDate
	}
	if _, err := findRoom(ctx, q.rooms, roomID); err != nil {
		return nil, err
	}

	window := q.hours.Day(day)
	approved, err := q.schedule.ApprovedIn(ctx, roomID, window)
	if err != nil {
		return nil, err
	}
	blocked, err := q.schedule.BlockedIn(ctx, roomID, window)
	if err != nil {
		return nil, err
	}

	entries := append(approved, blocked...)
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].StartTime.Before(entries[j].StartTime)
	})
	if entries == nil {
		entries = []ScheduleEntry{}
	}

	return &RoomSchedule{
		RoomID:  roomID,
		Date:    day.Format(scheduleDateLayout),
		Entries: entries,
	}, nil
}
