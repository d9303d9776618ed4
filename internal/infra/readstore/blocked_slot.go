package readstore

import (
	"context"

	"room-reservation/internal/infra"
	sqlc "room-reservation/internal/infra/sqlc/generated"
	"room-reservation/internal/pkg/pgconv"
	"room-reservation/internal/usecase/queries"

	"github.com/google/uuid"
)

type BlockedSlotViewQueries interface {
	GetBlockedSlotViewByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetBlockedSlotViewByIDRow, error)
	ListBlockedSlots(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBlockedSlotsParams) ([]sqlc.ListBlockedSlotsRow, error)
}

type BlockedSlotReadStore struct {
	queries BlockedSlotViewQueries
	db      sqlc.DBTX
}

func NewBlockedSlotReadStore(queries BlockedSlotViewQueries, db sqlc.DBTX) *BlockedSlotReadStore {
	return &BlockedSlotReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BlockedSlotReadStore) List(ctx context.Context, roomID *uuid.UUID, limit int32) ([]*queries.BlockedSlotView, error) {
	rows, err := r.queries.ListBlockedSlots(ctx, r.db, sqlc.ListBlockedSlotsParams{
		RoomID:   pgconv.UUIDPtrToPgtype(roomID),
		RowLimit: limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list blocked slots", err)
	}

	result := make([]*queries.BlockedSlotView, len(rows))
	for i, row := range rows {
		result[i] = &queries.BlockedSlotView{
			ID:        row.ID,
			RoomID:    row.RoomID,
			RoomName:  row.RoomName,
			StartTime: pgconv.TimeFromPgtype(row.StartTime),
			EndTime:   pgconv.TimeFromPgtype(row.EndTime),
			Reason:    row.Reason,
			CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}
	return result, nil
}

func (r *BlockedSlotReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BlockedSlotView, error) {
	row, err := r.queries.GetBlockedSlotViewByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("blocked slot not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get blocked slot by id", err)
	}
	return &queries.BlockedSlotView{
		ID:        row.ID,
		RoomID:    row.RoomID,
		RoomName:  row.RoomName,
		StartTime: pgconv.TimeFromPgtype(row.StartTime),
		EndTime:   pgconv.TimeFromPgtype(row.EndTime),
		Reason:    row.Reason,
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
	}, nil
}
