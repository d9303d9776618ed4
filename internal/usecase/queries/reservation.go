package queries

import (
	"context"
	"time"

	"room-reservation/internal/domain/reservation"
	"room-reservation/internal/infra"

	"github.com/google/uuid"
)

type ReservationReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	FindByUserFirstPage(ctx context.Context, userID uuid.UUID, status *string, limit int32) ([]*ReservationListItem, error)
	FindByUserKeyset(ctx context.Context, userID uuid.UUID, status *string, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*ReservationListItem, error)
	FindPendingFirstPage(ctx context.Context, limit int32) ([]*PendingItem, error)
	FindPendingKeyset(ctx context.Context, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*PendingItem, error)
}

type ReservationQueries interface {
	// GetByID is visible to the owner and to admins.
	GetByID(ctx context.Context, actor reservation.Actor, id uuid.UUID) (*ReservationView, error)
	// ListMine is newest first.
	ListMine(ctx context.Context, userID uuid.UUID, status *string, cursor *Cursor, limit int) ([]*ReservationListItem, *Cursor, error)
	// ListPending is the approval queue, oldest first.
	ListPending(ctx context.Context, cursor *Cursor, limit int) ([]*PendingItem, *Cursor, error)
}

type reservationQueriesImpl struct {
	repo ReservationReadStore
}

func NewReservationQueries(repo ReservationReadStore) ReservationQueries {
	return &reservationQueriesImpl{repo: repo}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, actor reservation.Actor, id uuid.UUID) (*ReservationView, error) {
	rv, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, reservation.ErrReservationNotFound
		}
		return nil, err
	}
	if !actor.IsAdmin && rv.UserID != actor.UserID {
		return nil, ErrReservationAccess
	}
	return rv, nil
}

func (q *reservationQueriesImpl) ListMine(ctx context.Context, userID uuid.UUID, status *string, cursor *Cursor, limit int) ([]*ReservationListItem, *Cursor, error) {
	if status != nil {
		if _, err := reservation.ParseStatus(*status); err != nil {
			return nil, nil, err
		}
	}
	lastCreatedAt, lastID, hasCursor, err := decodeCursor(cursor)
	if err != nil {
		return nil, nil, err
	}

	limit = ValidateLimit(limit)
	var rows []*ReservationListItem
	if hasCursor {
		rows, err = q.repo.FindByUserKeyset(ctx, userID, status, lastCreatedAt, lastID, int32(limit+1))
	} else {
		rows, err = q.repo.FindByUserFirstPage(ctx, userID, status, int32(limit+1))
	}
	if err != nil {
		return nil, nil, err
	}

	rows, next := page(rows, limit, func(r *ReservationListItem) (time.Time, uuid.UUID) { return r.CreatedAt, r.ID })
	return rows, next, nil
}

func (q *reservationQueriesImpl) ListPending(ctx context.Context, cursor *Cursor, limit int) ([]*PendingItem, *Cursor, error) {
	lastCreatedAt, lastID, hasCursor, err := decodeCursor(cursor)
	if err != nil {
		return nil, nil, err
	}

	limit = ValidateLimit(limit)
	var rows []*PendingItem
	if hasCursor {
		rows, err = q.repo.FindPendingKeyset(ctx, lastCreatedAt, lastID, int32(limit+1))
	} else {
		rows, err = q.repo.FindPendingFirstPage(ctx, int32(limit+1))
	}
	if err != nil {
		return nil, nil, err
	}

	rows, next := page(rows, limit, func(r *PendingItem) (time.Time, uuid.UUID) { return r.CreatedAt, r.ID })
	return rows, next, nil
}
