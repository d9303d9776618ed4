package readstore

import (
	"context"

	"room-reservation/internal/infra"
	sqlc "room-reservation/internal/infra/sqlc/generated"
	"room-reservation/internal/pkg/pgconv"
	"room-reservation/internal/usecase/queries"
)

type ReportQueries interface {
	CountReservationsByStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.CountReservationsByStatusParams) ([]sqlc.CountReservationsByStatusRow, error)
	CountReservationsByRoom(ctx context.Context, db sqlc.DBTX, arg sqlc.CountReservationsByRoomParams) ([]sqlc.CountReservationsByRoomRow, error)
}

type ReportReadStore struct {
	queries ReportQueries
	db      sqlc.DBTX
}

func NewReportReadStore(queries ReportQueries, db sqlc.DBTX) *ReportReadStore {
	return &ReportReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ReportReadStore) CountByStatus(ctx context.Context, filter queries.ReportFilter) ([]queries.StatusCount, error) {
	rows, err := r.queries.CountReservationsByStatus(ctx, r.db, sqlc.CountReservationsByStatusParams{
		FromTime: pgconv.TimePtrToPgtype(filter.From),
		ToTime:   pgconv.TimePtrToPgtype(filter.To),
		RoomID:   pgconv.UUIDPtrToPgtype(filter.RoomID),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to count reservations by status", err)
	}

	result := make([]queries.StatusCount, len(rows))
	for i, row := range rows {
		result[i] = queries.StatusCount{Status: row.Status, Total: row.Total}
	}
	return result, nil
}

func (r *ReportReadStore) CountByRoom(ctx context.Context, filter queries.ReportFilter) ([]queries.RoomStatusRow, error) {
	rows, err := r.queries.CountReservationsByRoom(ctx, r.db, sqlc.CountReservationsByRoomParams{
		FromTime: pgconv.TimePtrToPgtype(filter.From),
		ToTime:   pgconv.TimePtrToPgtype(filter.To),
		RoomID:   pgconv.UUIDPtrToPgtype(filter.RoomID),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to count reservations by room", err)
	}

	result := make([]queries.RoomStatusRow, len(rows))
	for i, row := range rows {
		result[i] = queries.RoomStatusRow{
			RoomID:   row.RoomID,
			RoomName: row.RoomName,
			Status:   row.Status,
			Total:    row.Total,
		}
	}
	return result, nil
}
