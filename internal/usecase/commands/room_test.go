//go:build unit

package commands_test

import (
	"context"
	"testing"

	"room-reservation/internal/domain/room"
	"room-reservation/internal/pkg/errs"
	"room-reservation/internal/pkg/ptr"
	"room-reservation/internal/usecase/commands"
	"room-reservation/tests/common/builder"
	"room-reservation/tests/common/memuow"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoomCommands(t *testing.T) {
	ctx := context.Background()

	attrs := room.Attributes{Name: "Ruang Rapat B", Capacity: 15, Location: "Gedung A Lantai 2", IsActive: true}

	t.Run("作成成功", func(t *testing.T) {
		store := memuow.New()
		cmds := commands.NewRoomCommands(store)

		id, err := cmds.Create(ctx, attrs)
		require.NoError(t, err)

		got, ok := store.Room(id)
		require.True(t, ok)
		assert.Equal(t, "Ruang Rapat B", got.Name)
		assert.Equal(t, 15, got.Capacity)
	})

	t.Run("同名の部屋は作成できない", func(t *testing.T) {
		store := memuow.New()
		store.AddRoom(attrs)
		cmds := commands.NewRoomCommands(store)

		_, err := cmds.Create(ctx, attrs)
		require.ErrorIs(t, err, room.ErrRoomNameTaken)
		assert.True(t, errs.Is(err, errs.ErrDuplicate))
	})

	t.Run("定員0はNG", func(t *testing.T) {
		cmds := commands.NewRoomCommands(memuow.New())
		bad := attrs
		bad.Capacity = 0

		_, err := cmds.Create(ctx, bad)
		require.ErrorIs(t, err, room.ErrInvalidCapacity)
	})

	t.Run("部分更新は指定項目だけ変える", func(t *testing.T) {
		store := memuow.New()
		id := store.AddRoom(attrs)
		cmds := commands.NewRoomCommands(store)

		require.NoError(t, cmds.Update(ctx, id, commands.RoomPatch{Capacity: ptr.Of(20), IsActive: ptr.Of(false)}))

		got, _ := store.Room(id)
		assert.Equal(t, 20, got.Capacity)
		assert.False(t, got.IsActive)
		assert.Equal(t, attrs.Name, got.Name)
		assert.Equal(t, attrs.Location, got.Location)
	})

	t.Run("他の部屋の名前への変更はNG", func(t *testing.T) {
		store := memuow.New()
		store.AddRoom(room.Attributes{Name: "Aula Utama", Capacity: 200, Location: "Gedung A", IsActive: true})
		id := store.AddRoom(attrs)
		cmds := commands.NewRoomCommands(store)

		err := cmds.Update(ctx, id, commands.RoomPatch{Name: ptr.Of("Aula Utama")})
		require.ErrorIs(t, err, room.ErrRoomNameTaken)
	})

	t.Run("存在しない部屋の更新はNotFound", func(t *testing.T) {
		cmds := commands.NewRoomCommands(memuow.New())
		err := cmds.Update(ctx, uuid.New(), commands.RoomPatch{Capacity: ptr.Of(3)})
		require.ErrorIs(t, err, room.ErrRoomNotFound)
	})

	t.Run("予約のある部屋は削除できない", func(t *testing.T) {
		store := memuow.New()
		id := store.AddRoom(attrs)
		store.AddReservation(builder.NewReservationBuilder().WithRoom(id).BuildStored())
		cmds := commands.NewRoomCommands(store)

		err := cmds.Delete(ctx, id)
		require.ErrorIs(t, err, room.ErrRoomInUse)
		_, ok := store.Room(id)
		assert.True(t, ok)
	})

	t.Run("予約のない部屋はブロック枠ごと削除", func(t *testing.T) {
		store := memuow.New()
		id := store.AddRoom(attrs)
		store.AddBlockedSlot(id, builder.At(9, 0), builder.At(10, 0), "Perawatan")
		cmds := commands.NewRoomCommands(store)

		require.NoError(t, cmds.Delete(ctx, id))
		_, ok := store.Room(id)
		assert.False(t, ok)
		assert.Zero(t, store.BlockedSlotCount())
	})
}
