package repository

import (
	"context"

	"room-reservation/internal/domain/blockedslot"
	"room-reservation/internal/domain/reservation"
	"room-reservation/internal/infra"
	"room-reservation/internal/infra/repository/converter"
	sqlc "room-reservation/internal/infra/sqlc/generated"
	"room-reservation/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type BlockedSlotWriteQueries interface {
	CreateBlockedSlot(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBlockedSlotParams) (sqlc.BlockedSlots, error)
	DeleteBlockedSlot(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
	ListBlockedOverlapping(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBlockedOverlappingParams) ([]sqlc.ListBlockedOverlappingRow, error)
}

type BlockedSlotRepository struct {
	queries BlockedSlotWriteQueries
	db      sqlc.DBTX
}

func NewBlockedSlotRepository(queries BlockedSlotWriteQueries, db sqlc.DBTX) *BlockedSlotRepository {
	return &BlockedSlotRepository{
		queries: queries,
		db:      db,
	}
}

func (r *BlockedSlotRepository) Create(ctx context.Context, tx sqlc.DBTX, slot *blockedslot.BlockedSlot) (uuid.UUID, error) {
	row, err := r.queries.CreateBlockedSlot(ctx, tx, converter.BlockedSlotToCreateParams(slot))
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create blocked slot", err)
	}
	return row.ID, nil
}

func (r *BlockedSlotRepository) Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (bool, error) {
	n, err := r.queries.DeleteBlockedSlot(ctx, tx, id)
	if err != nil {
		return false, infra.WrapRepoErr("failed to delete blocked slot", err)
	}
	return n > 0, nil
}

func (r *BlockedSlotRepository) Overlapping(ctx context.Context, tx sqlc.DBTX, roomID uuid.UUID, slot reservation.TimeSlot) ([]reservation.TimeSlot, error) {
	rows, err := r.queries.ListBlockedOverlapping(ctx, tx, sqlc.ListBlockedOverlappingParams{
		RoomID:    roomID,
		EndTime:   pgconv.TimeToPgtype(slot.End()),
		StartTime: pgconv.TimeToPgtype(slot.Start()),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list blocked slots", err)
	}

	slots := make([]reservation.TimeSlot, 0, len(rows))
	for _, row := range rows {
		s, serr := reservation.NewTimeSlot(row.StartTime.Time, row.EndTime.Time)
		if serr != nil {
			return nil, infra.WrapRepoErr("stored blocked slot has an invalid interval", serr, infra.KindDBFailure)
		}
		slots = append(slots, s)
	}
	return slots, nil
}
