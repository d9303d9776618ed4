//go:build unit

package policy_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"room-reservation/internal/domain/reservation"
	"room-reservation/internal/pkg/policy"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "campus.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("ファイルがなければデフォルト", func(t *testing.T) {
		p, err := policy.Load(filepath.Join(t.TempDir(), "missing.yaml"))
		require.NoError(t, err)
		assert.Equal(t, reservation.DefaultTimeZone, p.Timezone)
		assert.Equal(t, "07:00", p.OperatingHours.Open)
		assert.Equal(t, "17:00", p.OperatingHours.Close)
		assert.Empty(t, p.Seed.Rooms)
	})

	t.Run("空パスもデフォルト", func(t *testing.T) {
		p, err := policy.Load("")
		require.NoError(t, err)
		assert.Equal(t, policy.Default(), p)
	})

	t.Run("部分指定は残りを補完", func(t *testing.T) {
		path := writeFile(t, `
timezone: UTC
operating_hours:
  close: "20:00"
seed:
  rooms:
    - name: Kelas 101
      capacity: 40
      location: Gedung C
    - name: Gudang
      capacity: 5
      location: Gedung D
      active: false
`)
		p, err := policy.Load(path)
		require.NoError(t, err)
		assert.Equal(t, "07:00", p.OperatingHours.Open)
		assert.Equal(t, "20:00", p.OperatingHours.Close)
		require.Len(t, p.Seed.Rooms, 2)
		assert.True(t, p.Seed.Rooms[0].IsActive())
		assert.False(t, p.Seed.Rooms[1].IsActive())

		hours, err := p.Hours()
		require.NoError(t, err)
		slot, err := reservation.NewTimeSlot(
			time.Date(2030, 3, 4, 18, 0, 0, 0, time.UTC),
			time.Date(2030, 3, 4, 20, 0, 0, 0, time.UTC),
		)
		require.NoError(t, err)
		assert.True(t, hours.Permits(slot))
	})

	t.Run("開館が閉館より後NG", func(t *testing.T) {
		path := writeFile(t, "operating_hours:\n  open: \"18:00\"\n  close: \"08:00\"\n")
		_, err := policy.Load(path)
		require.Error(t, err)
	})

	t.Run("未知のキーNG", func(t *testing.T) {
		path := writeFile(t, "opening_hours:\n  open: \"07:00\"\n")
		_, err := policy.Load(path)
		require.Error(t, err)
	})

	t.Run("同梱のキャンパス設定を読める", func(t *testing.T) {
		p, err := policy.Load(filepath.Join("..", "..", "..", "config", "campus.yaml"))
		require.NoError(t, err)
		assert.Len(t, p.Seed.Rooms, 4)
		assert.NotEmpty(t, p.Seed.Users)
	})
}
