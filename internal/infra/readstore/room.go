package readstore

import (
	"context"

	"room-reservation/internal/infra"
	sqlc "room-reservation/internal/infra/sqlc/generated"
	"room-reservation/internal/pkg/pgconv"
	"room-reservation/internal/usecase/queries"

	"github.com/google/uuid"
)

type RoomViewQueries interface {
	GetRoomByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Rooms, error)
	GetRoomByName(ctx context.Context, db sqlc.DBTX, name string) (sqlc.Rooms, error)
	ListRooms(ctx context.Context, db sqlc.DBTX, onlyActive bool) ([]sqlc.Rooms, error)
}

type RoomReadStore struct {
	queries RoomViewQueries
	db      sqlc.DBTX
}

func NewRoomReadStore(queries RoomViewQueries, db sqlc.DBTX) *RoomReadStore {
	return &RoomReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *RoomReadStore) List(ctx context.Context, onlyActive bool) ([]*queries.RoomView, error) {
	rows, err := r.queries.ListRooms(ctx, r.db, onlyActive)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rooms", err)
	}
	result := make([]*queries.RoomView, len(rows))
	for i, row := range rows {
		result[i] = toRoomView(row)
	}
	return result, nil
}

func (r *RoomReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.RoomView, error) {
	row, err := r.queries.GetRoomByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get room by id", err)
	}
	return toRoomView(row), nil
}

func (r *RoomReadStore) FindByName(ctx context.Context, name string) (*queries.RoomView, error) {
	row, err := r.queries.GetRoomByName(ctx, r.db, name)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get room by name", err)
	}
	return toRoomView(row), nil
}

func toRoomView(row sqlc.Rooms) *queries.RoomView {
	return &queries.RoomView{
		ID:          row.ID,
		Name:        row.Name,
		Description: pgconv.StringFromPgtype(row.Description),
		Capacity:    row.Capacity,
		Location:    row.Location,
		ImageURL:    pgconv.StringFromPgtype(row.ImageUrl),
		IsActive:    row.IsActive,
		CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:   pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
