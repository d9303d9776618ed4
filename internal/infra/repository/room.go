package repository

import (
	"context"

	"room-reservation/internal/domain/reservation"
	"room-reservation/internal/domain/room"
	"room-reservation/internal/infra"
	"room-reservation/internal/infra/repository/converter"
	sqlc "room-reservation/internal/infra/sqlc/generated"
	"room-reservation/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type RoomWriteQueries interface {
	LockRoomForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.LockRoomForUpdateRow, error)
	CreateRoom(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateRoomParams) (sqlc.Rooms, error)
	UpdateRoom(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateRoomParams) (int64, error)
	DeleteRoom(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
}

type RoomRepository struct {
	queries RoomWriteQueries
	db      sqlc.DBTX
}

func NewRoomRepository(queries RoomWriteQueries, db sqlc.DBTX) *RoomRepository {
	return &RoomRepository{
		queries: queries,
		db:      db,
	}
}

// LockForUpdate takes the row lock that serializes writers per room until the
// surrounding transaction ends.
func (r *RoomRepository) LockForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (reservation.RoomSpec, error) {
	row, err := r.queries.LockRoomForUpdate(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return reservation.RoomSpec{}, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return reservation.RoomSpec{}, infra.WrapRepoErr("failed to lock room", err)
	}
	return reservation.RoomSpec{
		ID:       row.ID,
		Capacity: int(row.Capacity),
		Active:   row.IsActive,
	}, nil
}

func (r *RoomRepository) Create(ctx context.Context, tx sqlc.DBTX, rm *room.Room) (uuid.UUID, error) {
	row, err := r.queries.CreateRoom(ctx, tx, converter.RoomToCreateParams(rm))
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create room", err)
	}
	return row.ID, nil
}

func (r *RoomRepository) Update(ctx context.Context, tx sqlc.DBTX, rm *room.Room) error {
	n, err := r.queries.UpdateRoom(ctx, tx, converter.RoomToUpdateParams(rm))
	if err != nil {
		return infra.WrapRepoErr("failed to update room", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *RoomRepository) Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error {
	n, err := r.queries.DeleteRoom(ctx, tx, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete room", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}
	return nil
}
