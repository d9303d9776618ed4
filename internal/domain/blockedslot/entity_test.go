//go:build unit

package blockedslot_test

import (
	"strings"
	"testing"

	"room-reservation/internal/domain/blockedslot"
	"room-reservation/internal/domain/reservation"
	"room-reservation/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBlockedSlot(t *testing.T) {
	s, err := reservation.NewTimeSlot(builder.At(12, 0), builder.At(14, 0))
	require.NoError(t, err)
	roomID := uuid.New()

	t.Run("理由は前後空白を除去", func(t *testing.T) {
		b, err := blockedslot.NewBlockedSlot(roomID, s, "  Perbaikan AC ")
		require.NoError(t, err)
		assert.Equal(t, "Perbaikan AC", b.Reason())
		assert.Equal(t, roomID, b.RoomID())
		assert.NotEqual(t, uuid.Nil, b.ID())
		assert.True(t, b.TimeSlot().Start().Equal(builder.At(12, 0)))
	})

	cases := []struct {
		name   string
		reason string
		errIs  error
	}{
		{name: "空の理由NG", reason: "", errIs: blockedslot.ErrEmptyReason},
		{name: "空白のみNG", reason: " \t ", errIs: blockedslot.ErrEmptyReason},
		{name: "255文字ちょうどOK", reason: strings.Repeat("a", blockedslot.MaxReasonLength)},
		{name: "256文字NG", reason: strings.Repeat("a", blockedslot.MaxReasonLength+1), errIs: blockedslot.ErrReasonTooLong},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			b, err := blockedslot.NewBlockedSlot(roomID, s, c.reason)
			if c.errIs == nil {
				require.NoError(t, err)
				require.NotNil(t, b)
				return
			}
			require.Nil(t, b)
			require.ErrorIs(t, err, c.errIs)
		})
	}
}
