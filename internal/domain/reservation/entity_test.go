//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"room-reservation/internal/domain/reservation"
	"room-reservation/internal/pkg/clock"
	"room-reservation/internal/pkg/errs"
	"room-reservation/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReservation(t *testing.T) {
	t.Run("基本成功ケース", func(t *testing.T) {
		b := builder.NewReservationBuilder()
		res, err := b.BuildDomain()
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, res.ID())
		assert.Equal(t, reservation.StatusPending, res.Status())
		assert.Equal(t, b.RoomID, res.RoomID())
		assert.Nil(t, res.RejectionReason())
		assert.False(t, res.RejectedBySystem())
	})

	cases := []struct {
		name   string
		mutate func(*builder.ReservationBuilder)
		errIs  error
	}{
		{
			name:   "定員ちょうどOK",
			mutate: func(b *builder.ReservationBuilder) { b.Attendees = b.Capacity },
		},
		{
			name:   "定員超過NG",
			mutate: func(b *builder.ReservationBuilder) { b.Attendees = b.Capacity + 1 },
			errIs:  reservation.ErrCapacityExceeded,
		},
		{
			name:   "非公開の部屋NG",
			mutate: func(b *builder.ReservationBuilder) { b.RoomActive = false },
			errIs:  reservation.ErrRoomInactive,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			res, err := builder.NewReservationBuilder().With(c.mutate).BuildDomain()
			if c.errIs == nil {
				require.NoError(t, err)
				require.NotNil(t, res)
				return
			}
			require.ErrorIs(t, err, c.errIs)
			assert.True(t, errs.Is(err, errs.ErrValidation))
		})
	}
}

func TestLifecycle(t *testing.T) {
	now := builder.At(8, 0)

	t.Run("承認待ちから承認", func(t *testing.T) {
		res := builder.NewReservationBuilder().BuildStored()
		require.NoError(t, res.Approve())
		assert.Equal(t, reservation.StatusApproved, res.Status())
	})

	t.Run("承認待ち以外は承認できない", func(t *testing.T) {
		for _, st := range []reservation.Status{reservation.StatusApproved, reservation.StatusRejected, reservation.StatusCancelled} {
			res := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
				b.Status = st
				if st == reservation.StatusRejected {
					reason := "bentrok"
					b.RejectionReason = &reason
				}
			}).BuildStored()

			err := res.Approve()
			require.ErrorIs(t, err, reservation.ErrNotPending, st)
			assert.True(t, errs.Is(err, errs.ErrNotPending))
			assert.Equal(t, st, res.Status(), "status must not change on refusal")
		}
	})

	t.Run("却下は理由を前後空白除去して保持", func(t *testing.T) {
		res := builder.NewReservationBuilder().BuildStored()
		require.NoError(t, res.Reject("  Ruangan dipakai ujian  "))

		assert.Equal(t, reservation.StatusRejected, res.Status())
		require.NotNil(t, res.RejectionReason())
		assert.Equal(t, "Ruangan dipakai ujian", res.RejectionReason().String())
		assert.False(t, res.RejectedBySystem())
	})

	t.Run("空白のみの理由は状態より先に検証される", func(t *testing.T) {
		res := builder.NewReservationBuilder().AsApproved().BuildStored()
		err := res.Reject("   ")
		require.ErrorIs(t, err, reservation.ErrMissingReason)
		assert.Equal(t, reservation.StatusApproved, res.Status())
	})

	t.Run("承認済みは却下できない", func(t *testing.T) {
		res := builder.NewReservationBuilder().AsApproved().BuildStored()
		require.ErrorIs(t, res.Reject("alasan"), reservation.ErrNotPending)
	})

	t.Run("システム却下は定型理由", func(t *testing.T) {
		res := builder.NewReservationBuilder().BuildStored()
		require.NoError(t, res.RejectBySystem())
		assert.Equal(t, reservation.SystemRejectionReason, res.RejectionReason().String())
		assert.True(t, res.RejectedBySystem())
	})

	t.Run("取消", func(t *testing.T) {
		owner := uuid.New()
		admin := reservation.Actor{UserID: uuid.New(), IsAdmin: true}

		cases := []struct {
			name   string
			status reservation.Status
			actor  reservation.Actor
			now    time.Time
			errIs  error
		}{
			{name: "本人が承認待ちを取消", status: reservation.StatusPending, actor: reservation.Actor{UserID: owner}, now: now},
			{name: "本人が承認済みを取消", status: reservation.StatusApproved, actor: reservation.Actor{UserID: owner}, now: now},
			{name: "管理者は他人の予約を取消", status: reservation.StatusApproved, actor: admin, now: now},
			{name: "他人は取消不可", status: reservation.StatusPending, actor: reservation.Actor{UserID: uuid.New()}, now: now, errIs: reservation.ErrNotOwner},
			{name: "開始時刻ちょうどは取消不可", status: reservation.StatusApproved, actor: reservation.Actor{UserID: owner}, now: builder.At(9, 0), errIs: reservation.ErrNotCancellable},
			{name: "管理者でも開始後は取消不可", status: reservation.StatusApproved, actor: admin, now: builder.At(10, 0), errIs: reservation.ErrNotCancellable},
			{name: "取消済みは再取消不可", status: reservation.StatusCancelled, actor: reservation.Actor{UserID: owner}, now: now, errIs: reservation.ErrNotCancellable},
		}
		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				res := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
					b.UserID = owner
					b.Status = c.status
				}).BuildStored()

				err := res.Cancel(c.actor, c.now)
				if c.errIs != nil {
					require.ErrorIs(t, err, c.errIs)
					assert.Equal(t, c.status, res.Status())
					return
				}
				require.NoError(t, err)
				assert.Equal(t, reservation.StatusCancelled, res.Status())
			})
		}
	})
}

func TestNext(t *testing.T) {
	t.Run("終端状態からは遷移しない", func(t *testing.T) {
		actions := []reservation.Action{reservation.ActionApprove, reservation.ActionReject, reservation.ActionAutoReject, reservation.ActionCancel}
		for _, from := range []reservation.Status{reservation.StatusRejected, reservation.StatusCancelled} {
			for _, a := range actions {
				_, err := reservation.Next(a, from)
				require.Error(t, err, "%s from %s", a, from)
				assert.ErrorIs(t, err, reservation.Refusal(a))
			}
		}
	})

	t.Run("状態文字列の解析", func(t *testing.T) {
		st, err := reservation.ParseStatus("DISETUJUI")
		require.NoError(t, err)
		assert.Equal(t, reservation.StatusApproved, st)

		_, err = reservation.ParseStatus("approved")
		assert.ErrorIs(t, err, reservation.ErrInvalidStatus)
	})
}

func TestCascade(t *testing.T) {
	roomID := uuid.New()
	onRoom := func(start, end time.Time) *builder.ReservationBuilder {
		return builder.NewReservationBuilder().WithRoom(roomID).WithSlot(start, end)
	}

	winner := onRoom(builder.At(9, 0), builder.At(11, 0)).BuildStored()
	overlapping := onRoom(builder.At(10, 0), builder.At(12, 0)).BuildStored()
	inside := onRoom(builder.At(9, 30), builder.At(10, 0)).BuildStored()
	touching := onRoom(builder.At(11, 0), builder.At(12, 0)).BuildStored()
	otherRoom := builder.NewReservationBuilder().WithSlot(builder.At(9, 0), builder.At(11, 0)).BuildStored()
	alreadyApproved := onRoom(builder.At(8, 0), builder.At(9, 30)).AsApproved().BuildStored()

	losers, err := reservation.Cascade(winner, []*reservation.Reservation{
		winner, overlapping, inside, touching, otherRoom, alreadyApproved,
	})
	require.NoError(t, err)

	want := []uuid.UUID{overlapping.ID(), inside.ID()}
	if diff := cmp.Diff(want, reservation.IDs(losers)); diff != "" {
		t.Errorf("cascade losers mismatch (-want +got):\n%s", diff)
	}

	for _, l := range losers {
		assert.Equal(t, reservation.StatusRejected, l.Status())
		assert.True(t, l.RejectedBySystem())
	}
	assert.Equal(t, reservation.StatusPending, winner.Status(), "cascade does not approve the winner")
	assert.Equal(t, reservation.StatusPending, touching.Status())
	assert.Equal(t, reservation.StatusPending, otherRoom.Status())
	assert.Equal(t, reservation.StatusApproved, alreadyApproved.Status())
}

func TestFactory(t *testing.T) {
	hours := reservation.DefaultOperatingHours()

	newFactory := func(now time.Time) *reservation.Factory {
		return reservation.NewFactory(clock.NewMockClock(now), hours)
	}

	slotOf := func(t *testing.T, start, end time.Time) reservation.TimeSlot {
		t.Helper()
		s, err := reservation.NewTimeSlot(start, end)
		require.NoError(t, err)
		return s
	}

	t.Run("営業時間内の未来枠OK", func(t *testing.T) {
		f := newFactory(builder.At(6, 0))
		assert.NoError(t, f.ValidateSlot(slotOf(t, builder.At(7, 0), builder.At(17, 0))))
	})

	t.Run("過去開始NG", func(t *testing.T) {
		f := newFactory(builder.At(9, 0))
		err := f.ValidateSlot(slotOf(t, builder.At(9, 0), builder.At(10, 0)))
		assert.ErrorIs(t, err, reservation.ErrStartInPast)
	})

	t.Run("営業時間外NG", func(t *testing.T) {
		f := newFactory(builder.At(0, 0))
		err := f.ValidateSlot(slotOf(t, builder.At(16, 0), builder.At(17, 30)))
		assert.ErrorIs(t, err, reservation.ErrOutsideOperatingHours)
	})

	t.Run("日付をまたぐ枠NG", func(t *testing.T) {
		f := newFactory(builder.At(0, 0))
		err := f.ValidateSlot(slotOf(t, builder.At(16, 0), builder.At(24+8, 0)))
		assert.ErrorIs(t, err, reservation.ErrOutsideOperatingHours)
	})

	t.Run("作成時に定員も検証", func(t *testing.T) {
		f := newFactory(builder.At(6, 0))
		b := builder.NewReservationBuilder()
		purpose, _ := reservation.NewPurpose(b.Purpose)
		attendees, _ := reservation.NewAttendeeCount(b.Capacity + 1)

		_, err := f.CreateReservation(b.RoomSpec(), b.UserID, slotOf(t, b.Start, b.End), purpose, attendees)
		assert.ErrorIs(t, err, reservation.ErrCapacityExceeded)
	})
}
