//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"room-reservation/internal/domain/reservation"
	"room-reservation/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var base = time.Date(2030, 1, 7, 0, 0, 0, 0, time.UTC)

func slot(t *testing.T, fromMin, toMin int) reservation.TimeSlot {
	t.Helper()
	s, err := reservation.NewTimeSlot(base.Add(time.Duration(fromMin)*time.Minute), base.Add(time.Duration(toMin)*time.Minute))
	require.NoError(t, err)
	return s
}

func TestTimeSlot(t *testing.T) {
	t.Run("開始と終了が同じNG", func(t *testing.T) {
		_, err := reservation.NewTimeSlot(base, base)
		assert.ErrorIs(t, err, reservation.ErrInvalidTimeSlot)
	})

	t.Run("終了が開始より前NG", func(t *testing.T) {
		_, err := reservation.NewTimeSlot(base.Add(time.Hour), base)
		assert.ErrorIs(t, err, reservation.ErrInvalidTimeSlot)
	})

	t.Run("重なり判定", func(t *testing.T) {
		cases := []struct {
			name string
			a, b [2]int
			want bool
		}{
			{name: "境界で接するだけなら重ならない", a: [2]int{0, 10}, b: [2]int{10, 20}, want: false},
			{name: "部分的な重なり", a: [2]int{0, 10}, b: [2]int{5, 15}, want: true},
			{name: "包含", a: [2]int{0, 30}, b: [2]int{10, 20}, want: true},
			{name: "同一区間", a: [2]int{0, 10}, b: [2]int{0, 10}, want: true},
			{name: "離れている", a: [2]int{0, 10}, b: [2]int{20, 30}, want: false},
			{name: "1分だけ重なる", a: [2]int{0, 11}, b: [2]int{10, 20}, want: true},
		}
		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				a := slot(t, c.a[0], c.a[1])
				b := slot(t, c.b[0], c.b[1])
				assert.Equal(t, c.want, a.Overlaps(b))
				// symmetric
				assert.Equal(t, a.Overlaps(b), b.Overlaps(a))
			})
		}
	})

	t.Run("対称性を網羅的に確認", func(t *testing.T) {
		for as := 0; as < 6; as++ {
			for ae := as + 1; ae <= 6; ae++ {
				for bs := 0; bs < 6; bs++ {
					for be := bs + 1; be <= 6; be++ {
						a := slot(t, as*10, ae*10)
						b := slot(t, bs*10, be*10)
						require.Equal(t, a.Overlaps(b), b.Overlaps(a), "a=[%d,%d) b=[%d,%d)", as, ae, bs, be)
					}
				}
			}
		}
	})
}

func TestPurposeAndAttendees(t *testing.T) {
	t.Run("目的は前後の空白を除去", func(t *testing.T) {
		p, err := reservation.NewPurpose("  Rapat BEM  ")
		require.NoError(t, err)
		assert.Equal(t, "Rapat BEM", p.String())
	})

	t.Run("空白のみの目的NG", func(t *testing.T) {
		_, err := reservation.NewPurpose("   ")
		assert.ErrorIs(t, err, reservation.ErrEmptyPurpose)
	})

	t.Run("長すぎる目的NG", func(t *testing.T) {
		long := make([]rune, reservation.MaxPurposeLength+1)
		for i := range long {
			long[i] = 'a'
		}
		_, err := reservation.NewPurpose(string(long))
		assert.ErrorIs(t, err, reservation.ErrPurposeTooLong)
	})

	t.Run("参加者0人NG", func(t *testing.T) {
		_, err := reservation.NewAttendeeCount(0)
		assert.ErrorIs(t, err, reservation.ErrInvalidAttendeeCount)
	})
}

func TestOperatingHours(t *testing.T) {
	wib := time.FixedZone("WIB", 7*60*60)
	hours, err := reservation.NewOperatingHours("07:00", "17:00", wib)
	require.NoError(t, err)

	at := func(day, hour, minute int) time.Time {
		return time.Date(2030, 1, day, hour, minute, 0, 0, wib)
	}
	mk := func(s, e time.Time) reservation.TimeSlot {
		ts, err := reservation.NewTimeSlot(s, e)
		require.NoError(t, err)
		return ts
	}

	cases := []struct {
		name string
		slot reservation.TimeSlot
		want bool
	}{
		{name: "営業時間ちょうど", slot: mk(at(7, 7, 0), at(7, 17, 0)), want: true},
		{name: "開始が早すぎる", slot: mk(at(7, 6, 59), at(7, 9, 0)), want: false},
		{name: "終了が遅すぎる", slot: mk(at(7, 16, 0), at(7, 17, 1)), want: false},
		{name: "日をまたぐ", slot: mk(at(7, 16, 0), at(8, 8, 0)), want: false},
		{name: "UTCで与えても現地時間で判定", slot: mk(at(7, 9, 0).UTC(), at(7, 10, 0).UTC()), want: true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, hours.Permits(c.slot))
		})
	}

	t.Run("開店が閉店以降NG", func(t *testing.T) {
		_, err := reservation.NewOperatingHours("17:00", "07:00", wib)
		require.ErrorIs(t, err, reservation.ErrInvalidOperatingHours)
		assert.True(t, errs.Is(err, errs.ErrValidation))
	})

	t.Run("時刻の形式が不正", func(t *testing.T) {
		_, err := reservation.NewOperatingHours("7 pagi", "17:00", wib)
		assert.True(t, errs.Is(err, reservation.ErrInvalidOperatingHours))
	})

	t.Run("Mustは不正な入力でpanic", func(t *testing.T) {
		assert.Panics(t, func() { reservation.MustOperatingHours("17:00", "07:00", wib) })
		assert.NotPanics(t, func() { reservation.MustOperatingHours("07:00", "17:00", wib) })
	})

	t.Run("1日の区間", func(t *testing.T) {
		day := hours.Day(at(7, 13, 0))
		assert.Equal(t, at(7, 0, 0), day.Start())
		assert.Equal(t, at(8, 0, 0), day.End())
	})

	t.Run("表示形式", func(t *testing.T) {
		assert.Equal(t, "07:00", hours.Open())
		assert.Equal(t, "17:00", hours.Close())
	})
}
