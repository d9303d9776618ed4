package queries

import (
	"context"

	"room-reservation/internal/domain/room"
	"room-reservation/internal/infra"

	"github.com/google/uuid"
)

type RoomReadStore interface {
	List(ctx context.Context, onlyActive bool) ([]*RoomView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*RoomView, error)
}

type RoomQueries interface {
	// List orders active rooms first, then by name.
	List(ctx context.Context, onlyActive bool) ([]*RoomView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*RoomView, error)
}

type roomQueriesImpl struct {
	repo RoomReadStore
}

func NewRoomQueries(repo RoomReadStore) RoomQueries {
	return &roomQueriesImpl{repo: repo}
}

func (q *roomQueriesImpl) List(ctx context.Context, onlyActive bool) ([]*RoomView, error) {
	return q.repo.List(ctx, onlyActive)
}

func (q *roomQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*RoomView, error) {
	return findRoom(ctx, q.repo, id)
}

func findRoom(ctx context.Context, repo RoomReadStore, id uuid.UUID) (*RoomView, error) {
	rv, err := repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, room.ErrRoomNotFound
		}
		return nil, err
	}
	return rv, nil
}
