package readstore

import (
	"context"
	"time"

	"room-reservation/internal/infra"
	sqlc "room-reservation/internal/infra/sqlc/generated"
	"room-reservation/internal/pkg/pgconv"
	"room-reservation/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationViewQueries interface {
	GetReservationByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Reservations, error)
	GetReservationViewByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetReservationViewByIDRow, error)
	ListReservationsByUserFirstPage(ctx context.Context, db sqlc.DBTX, arg sqlc.ListReservationsByUserFirstPageParams) ([]sqlc.ListReservationsByUserFirstPageRow, error)
	ListReservationsByUserKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.ListReservationsByUserKeysetParams) ([]sqlc.ListReservationsByUserKeysetRow, error)
	ListPendingFirstPage(ctx context.Context, db sqlc.DBTX, rowLimit int32) ([]sqlc.ListPendingFirstPageRow, error)
	ListPendingKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.ListPendingKeysetParams) ([]sqlc.ListPendingKeysetRow, error)
}

type ReservationReadStore struct {
	queries ReservationViewQueries
	db      sqlc.DBTX
}

func NewReservationReadStore(queries ReservationViewQueries, db sqlc.DBTX) *ReservationReadStore {
	return &ReservationReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	row, err := r.queries.GetReservationViewByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get reservation view by id", err)
	}
	return &queries.ReservationView{
		ID:               row.ID,
		UserID:           row.UserID,
		UserName:         row.UserName,
		UserEmail:        row.UserEmail,
		RoomID:           row.RoomID,
		RoomName:         row.RoomName,
		StartTime:        pgconv.TimeFromPgtype(row.StartTime),
		EndTime:          pgconv.TimeFromPgtype(row.EndTime),
		Purpose:          row.Purpose,
		AttendeeCount:    row.AttendeeCount,
		Status:           row.Status,
		RejectionReason:  pgconv.StringPtrFromPgtype(row.RejectionReason),
		RejectedBySystem: row.RejectedBySystem,
		CreatedAt:        pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:        pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}

// FindRow returns the bare stored row, used by the write side to rebuild the aggregate.
func (r *ReservationReadStore) FindRow(ctx context.Context, id uuid.UUID) (sqlc.Reservations, error) {
	row, err := r.queries.GetReservationByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return sqlc.Reservations{}, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return sqlc.Reservations{}, infra.WrapRepoErr("failed to get reservation by id", err)
	}
	return row, nil
}

func (r *ReservationReadStore) FindByUserFirstPage(ctx context.Context, userID uuid.UUID, status *string, limit int32) ([]*queries.ReservationListItem, error) {
	rows, err := r.queries.ListReservationsByUserFirstPage(ctx, r.db, sqlc.ListReservationsByUserFirstPageParams{
		UserID:   userID,
		Status:   pgconv.StringPtrToPgtype(status),
		RowLimit: limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations first page by user", err)
	}

	result := make([]*queries.ReservationListItem, len(rows))
	for i, row := range rows {
		result[i] = &queries.ReservationListItem{
			ID:              row.ID,
			RoomID:          row.RoomID,
			RoomName:        row.RoomName,
			StartTime:       pgconv.TimeFromPgtype(row.StartTime),
			EndTime:         pgconv.TimeFromPgtype(row.EndTime),
			Purpose:         row.Purpose,
			AttendeeCount:   row.AttendeeCount,
			Status:          row.Status,
			RejectionReason: pgconv.StringPtrFromPgtype(row.RejectionReason),
			CreatedAt:       pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}
	return result, nil
}

func (r *ReservationReadStore) FindByUserKeyset(ctx context.Context, userID uuid.UUID, status *string, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.ReservationListItem, error) {
	rows, err := r.queries.ListReservationsByUserKeyset(ctx, r.db, sqlc.ListReservationsByUserKeysetParams{
		UserID:    userID,
		Status:    pgconv.StringPtrToPgtype(status),
		CreatedAt: pgconv.TimeToPgtype(lastCreatedAt),
		ID:        lastID,
		RowLimit:  limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations keyset by user", err)
	}

	result := make([]*queries.ReservationListItem, len(rows))
	for i, row := range rows {
		result[i] = &queries.ReservationListItem{
			ID:              row.ID,
			RoomID:          row.RoomID,
			RoomName:        row.RoomName,
			StartTime:       pgconv.TimeFromPgtype(row.StartTime),
			EndTime:         pgconv.TimeFromPgtype(row.EndTime),
			Purpose:         row.Purpose,
			AttendeeCount:   row.AttendeeCount,
			Status:          row.Status,
			RejectionReason: pgconv.StringPtrFromPgtype(row.RejectionReason),
			CreatedAt:       pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}
	return result, nil
}

func (r *ReservationReadStore) FindPendingFirstPage(ctx context.Context, limit int32) ([]*queries.PendingItem, error) {
	rows, err := r.queries.ListPendingFirstPage(ctx, r.db, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list pending reservations", err)
	}

	result := make([]*queries.PendingItem, len(rows))
	for i, row := range rows {
		result[i] = &queries.PendingItem{
			ID:            row.ID,
			UserID:        row.UserID,
			UserName:      row.UserName,
			RoomID:        row.RoomID,
			RoomName:      row.RoomName,
			StartTime:     pgconv.TimeFromPgtype(row.StartTime),
			EndTime:       pgconv.TimeFromPgtype(row.EndTime),
			Purpose:       row.Purpose,
			AttendeeCount: row.AttendeeCount,
			CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}
	return result, nil
}

func (r *ReservationReadStore) FindPendingKeyset(ctx context.Context, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.PendingItem, error) {
	rows, err := r.queries.ListPendingKeyset(ctx, r.db, sqlc.ListPendingKeysetParams{
		CreatedAt: pgconv.TimeToPgtype(lastCreatedAt),
		ID:        lastID,
		RowLimit:  limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list pending reservations keyset", err)
	}

	result := make([]*queries.PendingItem, len(rows))
	for i, row := range rows {
		result[i] = &queries.PendingItem{
			ID:            row.ID,
			UserID:        row.UserID,
			UserName:      row.UserName,
			RoomID:        row.RoomID,
			RoomName:      row.RoomName,
			StartTime:     pgconv.TimeFromPgtype(row.StartTime),
			EndTime:       pgconv.TimeFromPgtype(row.EndTime),
			Purpose:       row.Purpose,
			AttendeeCount: row.AttendeeCount,
			CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}
	return result, nil
}
