//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"

	"room-reservation/internal/domain/availability"
	"room-reservation/internal/domain/reservation"
	"room-reservation/internal/domain/room"
	"room-reservation/internal/infra"
	"room-reservation/internal/usecase/queries"
	"room-reservation/tests/common/builder"
	queriesmock "room-reservation/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAvailabilityQueries_Check(t *testing.T) {
	ctx := context.Background()
	roomID := uuid.New()
	start, end := builder.At(9, 0), builder.At(11, 0)

	mustSlot := func(t *testing.T, h1, h2 int) reservation.TimeSlot {
		t.Helper()
		s, err := reservation.NewTimeSlot(builder.At(h1, 0), builder.At(h2, 0))
		require.NoError(t, err)
		return s
	}

	t.Run("空室", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		rooms := queriesmock.NewMockRoomReadStore(ctrl)
		occ := queriesmock.NewMockOccupancyReadStore(ctrl)

		rooms.EXPECT().FindByID(ctx, roomID).Return(builder.NewRoomBuilder().BuildView(), nil)
		occ.EXPECT().Occupancy(ctx, roomID, gomock.Any()).Return(availability.Occupancy{}, nil)

		got, err := queries.NewAvailabilityQueries(rooms, occ).Check(ctx, roomID, start, end)
		require.NoError(t, err)
		assert.True(t, got.Available)
		assert.Empty(t, got.Conflict)
		assert.Equal(t, roomID, got.RoomID)
	})

	t.Run("承認済みと重複", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		rooms := queriesmock.NewMockRoomReadStore(ctrl)
		occ := queriesmock.NewMockOccupancyReadStore(ctrl)

		rooms.EXPECT().FindByID(ctx, roomID).Return(builder.NewRoomBuilder().BuildView(), nil)
		occ.EXPECT().Occupancy(ctx, roomID, gomock.Any()).
			Return(availability.Occupancy{
				Approved: []reservation.TimeSlot{mustSlot(t, 10, 12)},
				Blocked:  []reservation.TimeSlot{mustSlot(t, 8, 10)},
			}, nil)

		got, err := queries.NewAvailabilityQueries(rooms, occ).Check(ctx, roomID, start, end)
		require.NoError(t, err)
		assert.False(t, got.Available)
		assert.Equal(t, "booked", got.Conflict)
	})

	t.Run("ブロック枠と重複", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		rooms := queriesmock.NewMockRoomReadStore(ctrl)
		occ := queriesmock.NewMockOccupancyReadStore(ctrl)

		rooms.EXPECT().FindByID(ctx, roomID).Return(builder.NewRoomBuilder().BuildView(), nil)
		occ.EXPECT().Occupancy(ctx, roomID, gomock.Any()).
			Return(availability.Occupancy{Blocked: []reservation.TimeSlot{mustSlot(t, 10, 12)}}, nil)

		got, err := queries.NewAvailabilityQueries(rooms, occ).Check(ctx, roomID, start, end)
		require.NoError(t, err)
		assert.Equal(t, "blocked", got.Conflict)
	})

	t.Run("終了が開始以前は検証エラー", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := queries.NewAvailabilityQueries(queriesmock.NewMockRoomReadStore(ctrl), queriesmock.NewMockOccupancyReadStore(ctrl))

		_, err := q.Check(ctx, roomID, end, start)
		require.ErrorIs(t, err, reservation.ErrInvalidTimeSlot)
	})

	t.Run("存在しない部屋", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		rooms := queriesmock.NewMockRoomReadStore(ctrl)
		rooms.EXPECT().FindByID(ctx, roomID).
			Return(nil, infra.WrapRepoErr("room not found", errors.New("no rows"), infra.KindNotFound))

		_, err := queries.NewAvailabilityQueries(rooms, queriesmock.NewMockOccupancyReadStore(ctrl)).Check(ctx, roomID, start, end)
		require.ErrorIs(t, err, room.ErrRoomNotFound)
	})
}
