//go:build unit

package queries_test

import (
	"context"
	"testing"

	"room-reservation/internal/domain/reservation"
	"room-reservation/internal/usecase/queries"
	"room-reservation/tests/common/builder"
	queriesmock "room-reservation/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestScheduleQueries_RoomDay(t *testing.T) {
	ctx := context.Background()
	roomID := uuid.New()
	hours := reservation.DefaultOperatingHours()

	t.Run("承認済みとブロック枠を開始順に並べる", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		rooms := queriesmock.NewMockRoomReadStore(ctrl)
		store := queriesmock.NewMockScheduleReadStore(ctrl)

		rooms.EXPECT().FindByID(ctx, roomID).Return(builder.NewRoomBuilder().BuildView(), nil)
		store.EXPECT().ApprovedIn(ctx, roomID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, window reservation.TimeSlot) ([]queries.ScheduleEntry, error) {
				assert.True(t, window.Start().Equal(builder.FutureDay), "window starts at local midnight")
				assert.Equal(t, 24.0, window.Duration().Hours())
				return []queries.ScheduleEntry{
					{Kind: queries.ScheduleReservation, StartTime: builder.At(13, 0), EndTime: builder.At(14, 0), Label: "Seminar"},
					{Kind: queries.ScheduleReservation, StartTime: builder.At(8, 0), EndTime: builder.At(9, 0), Label: "Kuliah"},
				}, nil
			})
		store.EXPECT().BlockedIn(ctx, roomID, gomock.Any()).
			Return([]queries.ScheduleEntry{
				{Kind: queries.ScheduleBlocked, StartTime: builder.At(10, 0), EndTime: builder.At(12, 0), Label: "Perbaikan AC"},
			}, nil)

		got, err := queries.NewScheduleQueries(rooms, store, hours).RoomDay(ctx, roomID, "2030-03-04")
		require.NoError(t, err)

		assert.Equal(t, "2030-03-04", got.Date)
		require.Len(t, got.Entries, 3)
		assert.Equal(t, "Kuliah", got.Entries[0].Label)
		assert.Equal(t, queries.ScheduleBlocked, got.Entries[1].Kind)
		assert.Equal(t, "Seminar", got.Entries[2].Label)
	})

	t.Run("予定なしは空配列", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		rooms := queriesmock.NewMockRoomReadStore(ctrl)
		store := queriesmock.NewMockScheduleReadStore(ctrl)

		rooms.EXPECT().FindByID(ctx, roomID).Return(builder.NewRoomBuilder().BuildView(), nil)
		store.EXPECT().ApprovedIn(ctx, roomID, gomock.Any()).Return(nil, nil)
		store.EXPECT().BlockedIn(ctx, roomID, gomock.Any()).Return(nil, nil)

		got, err := queries.NewScheduleQueries(rooms, store, hours).RoomDay(ctx, roomID, "2030-03-04")
		require.NoError(t, err)
		assert.NotNil(t, got.Entries)
		assert.Empty(t, got.Entries)
	})

	t.Run("日付形式エラー", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := queries.NewScheduleQueries(queriesmock.NewMockRoomReadStore(ctrl), queriesmock.NewMockScheduleReadStore(ctrl), hours)

		_, err := q.RoomDay(ctx, roomID, "04/03/2030")
		require.ErrorIs(t, err, queries.ErrInvalidDate)
	})
}
