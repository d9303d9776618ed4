package repository

import (
	"context"

	"room-reservation/internal/domain/reservation"
	"room-reservation/internal/infra"
	"room-reservation/internal/infra/repository/converter"
	sqlc "room-reservation/internal/infra/sqlc/generated"
	"room-reservation/internal/pkg/pgconv"
	"room-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

type ReservationWriteQueries interface {
	CreateReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateReservationParams) (sqlc.CreateReservationRow, error)
	TransitionReservationStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.TransitionReservationStatusParams) (sqlc.Reservations, error)
	ListApprovedOverlapping(ctx context.Context, db sqlc.DBTX, arg sqlc.ListApprovedOverlappingParams) ([]sqlc.ListApprovedOverlappingRow, error)
	ListPendingOverlappingForUpdate(ctx context.Context, db sqlc.DBTX, arg sqlc.ListPendingOverlappingForUpdateParams) ([]sqlc.Reservations, error)
	CountPendingOverlapping(ctx context.Context, db sqlc.DBTX, arg sqlc.CountPendingOverlappingParams) (int64, error)
	RejectPendingReservations(ctx context.Context, db sqlc.DBTX, arg sqlc.RejectPendingReservationsParams) ([]uuid.UUID, error)
}

type ReservationRepository struct {
	queries ReservationWriteQueries
	db      sqlc.DBTX
}

func NewReservationRepository(queries ReservationWriteQueries, db sqlc.DBTX) *ReservationRepository {
	return &ReservationRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationRepository) Create(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) (uuid.UUID, error) {
	params := converter.ReservationToInfra(res)

	row, err := r.queries.CreateReservation(ctx, tx, params)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create reservation", err)
	}

	return row.ID, nil
}

func (r *ReservationRepository) ChangeStatus(ctx context.Context, tx sqlc.DBTX, change shared.StatusChange) (bool, error) {
	from := make([]string, 0, len(change.From))
	for _, s := range change.From {
		from = append(from, s.String())
	}

	_, err := r.queries.TransitionReservationStatus(ctx, tx, sqlc.TransitionReservationStatusParams{
		ToStatus:         change.To.String(),
		RejectionReason:  pgconv.StringPtrToPgtype(change.Reason),
		RejectedBySystem: change.RejectedBySystem,
		ID:               change.ID,
		FromStatuses:     from,
		StartsAfter:      pgconv.TimePtrToPgtype(change.StartsAfter),
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return false, nil
		}
		return false, infra.WrapRepoErr("failed to change reservation status", err)
	}
	return true, nil
}

func (r *ReservationRepository) ApprovedOverlapping(ctx context.Context, tx sqlc.DBTX, roomID uuid.UUID, slot reservation.TimeSlot, excludeID *uuid.UUID) ([]reservation.TimeSlot, error) {
	rows, err := r.queries.ListApprovedOverlapping(ctx, tx, sqlc.ListApprovedOverlappingParams{
		RoomID:    roomID,
		EndTime:   pgconv.TimeToPgtype(slot.End()),
		StartTime: pgconv.TimeToPgtype(slot.Start()),
		ExcludeID: pgconv.UUIDPtrToPgtype(excludeID),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list approved reservations", err)
	}

	slots := make([]reservation.TimeSlot, 0, len(rows))
	for _, row := range rows {
		s, serr := reservation.NewTimeSlot(row.StartTime.Time, row.EndTime.Time)
		if serr != nil {
			return nil, infra.WrapRepoErr("stored reservation has an invalid slot", serr, infra.KindDBFailure)
		}
		slots = append(slots, s)
	}
	return slots, nil
}

func (r *ReservationRepository) PendingOverlappingForUpdate(ctx context.Context, tx sqlc.DBTX, roomID uuid.UUID, slot reservation.TimeSlot, excludeID uuid.UUID) ([]*reservation.Reservation, error) {
	rows, err := r.queries.ListPendingOverlappingForUpdate(ctx, tx, sqlc.ListPendingOverlappingForUpdateParams{
		RoomID:    roomID,
		EndTime:   pgconv.TimeToPgtype(slot.End()),
		StartTime: pgconv.TimeToPgtype(slot.Start()),
		ExcludeID: excludeID,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock pending reservations", err)
	}

	out := make([]*reservation.Reservation, 0, len(rows))
	for _, row := range rows {
		res, cerr := converter.ReservationFromInfra(row)
		if cerr != nil {
			return nil, infra.WrapRepoErr("failed to rebuild pending reservation", cerr, infra.KindDBFailure)
		}
		out = append(out, res)
	}
	return out, nil
}

func (r *ReservationRepository) CountPendingOverlapping(ctx context.Context, tx sqlc.DBTX, roomID uuid.UUID, slot reservation.TimeSlot, excludeID uuid.UUID) (int64, error) {
	n, err := r.queries.CountPendingOverlapping(ctx, tx, sqlc.CountPendingOverlappingParams{
		RoomID:    roomID,
		EndTime:   pgconv.TimeToPgtype(slot.End()),
		StartTime: pgconv.TimeToPgtype(slot.Start()),
		ExcludeID: excludeID,
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count pending reservations", err)
	}
	return n, nil
}

func (r *ReservationRepository) RejectPending(ctx context.Context, tx sqlc.DBTX, ids []uuid.UUID, reason string) ([]uuid.UUID, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	rejected, err := r.queries.RejectPendingReservations(ctx, tx, sqlc.RejectPendingReservationsParams{
		Reason: pgconv.StringToPgtype(reason),
		Ids:    ids,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to reject pending reservations", err)
	}
	return rejected, nil
}
