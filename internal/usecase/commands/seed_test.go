//go:build unit

package commands_test

import (
	"context"
	"testing"

	"room-reservation/internal/domain/room"
	"room-reservation/internal/domain/user"
	"room-reservation/internal/pkg/errs"
	"room-reservation/internal/pkg/password"
	"room-reservation/internal/usecase/commands"
	"room-reservation/internal/usecase/shared"
	"room-reservation/tests/common/memuow"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedCommands(t *testing.T) {
	ctx := context.Background()

	input := commands.SeedInput{
		Users: []commands.SeedAccount{
			{Name: "Administrator", Email: "admin@unsil.ac.id", Password: "admin123", Role: "ADMIN"},
			{Name: "Mahasiswa Demo", Email: "mahasiswa@student.unsil.ac.id", Password: "student123", Role: "MAHASISWA"},
		},
		Rooms: []room.Attributes{
			{Name: "Aula Utama", Capacity: 200, Location: "Gedung A Lantai 1", IsActive: true},
			{Name: "Kelas 101", Capacity: 40, Location: "Gedung C Lantai 1", IsActive: true},
		},
	}

	t.Run("初回は全件作成", func(t *testing.T) {
		store := memuow.New()
		cmds := commands.NewSeedCommands(store, nil)

		got, err := cmds.Seed(ctx, input)
		require.NoError(t, err)
		assert.Equal(t, commands.SeedResult{UsersCreated: 2, RoomsCreated: 2}, *got)

		admin, err := store.CommandReads().UserByEmail(ctx, "admin@unsil.ac.id")
		require.NoError(t, err)
		assert.Equal(t, user.RoleAdmin.String(), admin.Role)
		require.NoError(t, password.ComparePassword(admin.PasswordHash, "admin123"))

		_, err = store.CommandReads().RoomByName(ctx, "Aula Utama")
		require.NoError(t, err)
	})

	t.Run("二回目は何も作らない", func(t *testing.T) {
		store := memuow.New()
		cmds := commands.NewSeedCommands(store, nil)

		_, err := cmds.Seed(ctx, input)
		require.NoError(t, err)

		got, err := cmds.Seed(ctx, input)
		require.NoError(t, err)
		assert.Equal(t, commands.SeedResult{UsersSkipped: 2, RoomsSkipped: 2}, *got)
	})

	t.Run("既存アカウントのパスワードは上書きしない", func(t *testing.T) {
		store := memuow.New()
		store.AddUser(shared.UserSnapshot{
			Name: "Administrator", Email: "ADMIN@unsil.ac.id",
			PasswordHash: "keep-me", Role: "ADMIN", IsActive: true,
		})
		cmds := commands.NewSeedCommands(store, nil)

		got, err := cmds.Seed(ctx, commands.SeedInput{Users: input.Users[:1]})
		require.NoError(t, err)
		assert.Equal(t, 1, got.UsersSkipped)

		admin, err := store.CommandReads().UserByEmail(ctx, "admin@unsil.ac.id")
		require.NoError(t, err)
		assert.Equal(t, "keep-me", admin.PasswordHash)
	})

	t.Run("不正なロールはバリデーションエラー", func(t *testing.T) {
		store := memuow.New()
		cmds := commands.NewSeedCommands(store, nil)

		_, err := cmds.Seed(ctx, commands.SeedInput{Users: []commands.SeedAccount{
			{Name: "Dosen", Email: "dosen@unsil.ac.id", Password: "dosen1234", Role: "DOSEN"},
		}})
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrValidation))
	})

	t.Run("定員0の部屋はバリデーションエラー", func(t *testing.T) {
		store := memuow.New()
		cmds := commands.NewSeedCommands(store, nil)

		_, err := cmds.Seed(ctx, commands.SeedInput{Rooms: []room.Attributes{{Name: "Gudang", Location: "Basement"}}})
		require.ErrorIs(t, err, room.ErrInvalidCapacity)
	})
}
