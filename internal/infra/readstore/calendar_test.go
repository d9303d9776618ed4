//go:build unit

package readstore

import (
	"context"
	"testing"
	"time"

	"room-reservation/internal/domain/reservation"
	"room-reservation/internal/infra"
	sqlc "room-reservation/internal/infra/sqlc/generated"
	"room-reservation/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCalendarQueries struct {
	mock.Mock
}

func (m *MockCalendarQueries) ListApprovedOverlapping(ctx context.Context, db sqlc.DBTX, arg sqlc.ListApprovedOverlappingParams) ([]sqlc.ListApprovedOverlappingRow, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).([]sqlc.ListApprovedOverlappingRow), args.Error(1)
}

func (m *MockCalendarQueries) ListApprovedInRange(ctx context.Context, db sqlc.DBTX, arg sqlc.ListApprovedInRangeParams) ([]sqlc.ListApprovedInRangeRow, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).([]sqlc.ListApprovedInRangeRow), args.Error(1)
}

func (m *MockCalendarQueries) ListBlockedOverlapping(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBlockedOverlappingParams) ([]sqlc.ListBlockedOverlappingRow, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).([]sqlc.ListBlockedOverlappingRow), args.Error(1)
}

var wib = time.FixedZone("WIB", 7*60*60)

func at(hour int) time.Time {
	return time.Date(2030, time.March, 4, hour, 0, 0, 0, wib)
}

func ts(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}

func TestOccupancy(t *testing.T) {
	roomID := uuid.New()
	slot, err := reservation.NewTimeSlot(at(9), at(11))
	require.NoError(t, err)

	t.Run("success - approved and blocked intervals", func(t *testing.T) {
		q := new(MockCalendarQueries)
		q.On("ListApprovedOverlapping", mock.Anything, mock.Anything, mock.MatchedBy(func(arg sqlc.ListApprovedOverlappingParams) bool {
			return arg.RoomID == roomID && arg.StartTime.Time.Equal(at(9)) && arg.EndTime.Time.Equal(at(11))
		})).Return([]sqlc.ListApprovedOverlappingRow{{ID: uuid.New(), StartTime: ts(at(10)), EndTime: ts(at(12))}}, nil)
		q.On("ListBlockedOverlapping", mock.Anything, mock.Anything, mock.Anything).
			Return([]sqlc.ListBlockedOverlappingRow{{ID: uuid.New(), StartTime: ts(at(8)), EndTime: ts(at(9)), Reason: "Perbaikan"}}, nil)

		occ, err := NewCalendarReadStore(q, nil).Occupancy(context.Background(), roomID, slot)
		require.NoError(t, err)
		require.Len(t, occ.Approved, 1)
		require.Len(t, occ.Blocked, 1)
		assert.True(t, occ.Approved[0].Start().Equal(at(10)))
		q.AssertExpectations(t)
	})

	t.Run("database error", func(t *testing.T) {
		q := new(MockCalendarQueries)
		q.On("ListApprovedOverlapping", mock.Anything, mock.Anything, mock.Anything).
			Return([]sqlc.ListApprovedOverlappingRow(nil), assert.AnError)

		_, err := NewCalendarReadStore(q, nil).Occupancy(context.Background(), roomID, slot)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})

	t.Run("stored interval that cannot be a slot", func(t *testing.T) {
		q := new(MockCalendarQueries)
		q.On("ListApprovedOverlapping", mock.Anything, mock.Anything, mock.Anything).
			Return([]sqlc.ListApprovedOverlappingRow{{StartTime: ts(at(11)), EndTime: ts(at(10))}}, nil)
		q.On("ListBlockedOverlapping", mock.Anything, mock.Anything, mock.Anything).
			Return([]sqlc.ListBlockedOverlappingRow{}, nil)

		_, err := NewCalendarReadStore(q, nil).Occupancy(context.Background(), roomID, slot)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestScheduleEntries(t *testing.T) {
	roomID := uuid.New()
	day, err := reservation.NewTimeSlot(at(0), at(24))
	require.NoError(t, err)

	q := new(MockCalendarQueries)
	q.On("ListApprovedInRange", mock.Anything, mock.Anything, mock.Anything).
		Return([]sqlc.ListApprovedInRangeRow{{ID: uuid.New(), UserName: "Siti Rahma", StartTime: ts(at(9)), EndTime: ts(at(10)), Purpose: "Kuliah umum"}}, nil)
	q.On("ListBlockedOverlapping", mock.Anything, mock.Anything, mock.Anything).
		Return([]sqlc.ListBlockedOverlappingRow{{ID: uuid.New(), StartTime: ts(at(13)), EndTime: ts(at(15)), Reason: "Ujian"}}, nil)

	store := NewCalendarReadStore(q, nil)

	approved, err := store.ApprovedIn(context.Background(), roomID, day)
	require.NoError(t, err)
	require.Len(t, approved, 1)
	assert.Equal(t, queries.ScheduleReservation, approved[0].Kind)
	assert.Equal(t, "Kuliah umum", approved[0].Label)
	require.NotNil(t, approved[0].UserName)
	assert.Equal(t, "Siti Rahma", *approved[0].UserName)

	blocked, err := store.BlockedIn(context.Background(), roomID, day)
	require.NoError(t, err)
	require.Len(t, blocked, 1)
	assert.Equal(t, queries.ScheduleBlocked, blocked[0].Kind)
	assert.Equal(t, "Ujian", blocked[0].Label)
	assert.Nil(t, blocked[0].UserName)
}
