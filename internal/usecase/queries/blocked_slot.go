package queries

import (
	"context"

	"room-reservation/internal/domain/blockedslot"
	"room-reservation/internal/infra"

	"github.com/google/uuid"
)

type BlockedSlotReadStore interface {
	List(ctx context.Context, roomID *uuid.UUID, limit int32) ([]*BlockedSlotView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*BlockedSlotView, error)
}

type BlockedSlotQueries interface {
	// List is newest first, optionally narrowed to one room.
	List(ctx context.Context, roomID *uuid.UUID, limit int) ([]*BlockedSlotView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*BlockedSlotView, error)
}

type blockedSlotQueriesImpl struct {
	repo BlockedSlotReadStore
}

func NewBlockedSlotQueries(repo BlockedSlotReadStore) BlockedSlotQueries {
	return &blockedSlotQueriesImpl{repo: repo}
}

func (q *blockedSlotQueriesImpl) List(ctx context.Context, roomID *uuid.UUID, limit int) ([]*BlockedSlotView, error) {
	return q.repo.List(ctx, roomID, int32(ValidateLimit(limit)))
}

func (q *blockedSlotQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*BlockedSlotView, error) {
	v, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, blockedslot.ErrBlockedSlotNotFound
		}
		return nil, err
	}
	return v, nil
}
