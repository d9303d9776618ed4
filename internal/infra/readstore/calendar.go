package readstore

import (
	"context"

	"room-reservation/internal/domain/availability"
	"room-reservation/internal/domain/reservation"
	"room-reservation/internal/infra"
	sqlc "room-reservation/internal/infra/sqlc/generated"
	"room-reservation/internal/pkg/pgconv"
	"room-reservation/internal/usecase/queries"

	"github.com/google/uuid"
)

type CalendarQueries interface {
	ListApprovedOverlapping(ctx context.Context, db sqlc.DBTX, arg sqlc.ListApprovedOverlappingParams) ([]sqlc.ListApprovedOverlappingRow, error)
	ListApprovedInRange(ctx context.Context, db sqlc.DBTX, arg sqlc.ListApprovedInRangeParams) ([]sqlc.ListApprovedInRangeRow, error)
	ListBlockedOverlapping(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBlockedOverlappingParams) ([]sqlc.ListBlockedOverlappingRow, error)
}

// CalendarReadStore answers "what holds this room" for availability checks
// and the per-day schedule.
type CalendarReadStore struct {
	queries CalendarQueries
	db      sqlc.DBTX
}

func NewCalendarReadStore(queries CalendarQueries, db sqlc.DBTX) *CalendarReadStore {
	return &CalendarReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *CalendarReadStore) Occupancy(ctx context.Context, roomID uuid.UUID, slot reservation.TimeSlot) (availability.Occupancy, error) {
	approved, err := r.queries.ListApprovedOverlapping(ctx, r.db, sqlc.ListApprovedOverlappingParams{
		RoomID:    roomID,
		EndTime:   pgconv.TimeToPgtype(slot.End()),
		StartTime: pgconv.TimeToPgtype(slot.Start()),
	})
	if err != nil {
		return availability.Occupancy{}, infra.WrapRepoErr("failed to list approved reservations", err)
	}
	blocked, err := r.blockedRows(ctx, roomID, slot)
	if err != nil {
		return availability.Occupancy{}, err
	}

	occ := availability.Occupancy{}
	for _, row := range approved {
		s, serr := reservation.NewTimeSlot(row.StartTime.Time, row.EndTime.Time)
		if serr != nil {
			return availability.Occupancy{}, infra.WrapRepoErr("stored reservation has an invalid slot", serr, infra.KindDBFailure)
		}
		occ.Approved = append(occ.Approved, s)
	}
	for _, row := range blocked {
		s, serr := reservation.NewTimeSlot(row.StartTime.Time, row.EndTime.Time)
		if serr != nil {
			return availability.Occupancy{}, infra.WrapRepoErr("stored blocked slot has an invalid interval", serr, infra.KindDBFailure)
		}
		occ.Blocked = append(occ.Blocked, s)
	}
	return occ, nil
}

func (r *CalendarReadStore) ApprovedIn(ctx context.Context, roomID uuid.UUID, window reservation.TimeSlot) ([]queries.ScheduleEntry, error) {
	rows, err := r.queries.ListApprovedInRange(ctx, r.db, sqlc.ListApprovedInRangeParams{
		RoomID:     roomID,
		RangeEnd:   pgconv.TimeToPgtype(window.End()),
		RangeStart: pgconv.TimeToPgtype(window.Start()),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list approved reservations in range", err)
	}

	entries := make([]queries.ScheduleEntry, len(rows))
	for i, row := range rows {
		userName := row.UserName
		entries[i] = queries.ScheduleEntry{
			Kind:      queries.ScheduleReservation,
			ID:        row.ID,
			StartTime: pgconv.TimeFromPgtype(row.StartTime),
			EndTime:   pgconv.TimeFromPgtype(row.EndTime),
			Label:     row.Purpose,
			UserName:  &userName,
		}
	}
	return entries, nil
}

func (r *CalendarReadStore) BlockedIn(ctx context.Context, roomID uuid.UUID, window reservation.TimeSlot) ([]queries.ScheduleEntry, error) {
	rows, err := r.blockedRows(ctx, roomID, window)
	if err != nil {
		return nil, err
	}

	entries := make([]queries.ScheduleEntry, len(rows))
	for i, row := range rows {
		entries[i] = queries.ScheduleEntry{
			Kind:      queries.ScheduleBlocked,
			ID:        row.ID,
			StartTime: pgconv.TimeFromPgtype(row.StartTime),
			EndTime:   pgconv.TimeFromPgtype(row.EndTime),
			Label:     row.Reason,
		}
	}
	return entries, nil
}

func (r *CalendarReadStore) blockedRows(ctx context.Context, roomID uuid.UUID, slot reservation.TimeSlot) ([]sqlc.ListBlockedOverlappingRow, error) {
	rows, err := r.queries.ListBlockedOverlapping(ctx, r.db, sqlc.ListBlockedOverlappingParams{
		RoomID:    roomID,
		EndTime:   pgconv.TimeToPgtype(slot.End()),
		StartTime: pgconv.TimeToPgtype(slot.Start()),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list blocked slots", err)
	}
	return rows, nil
}
